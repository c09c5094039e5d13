package ai

import "github.com/ali3442/SCM-Simulation-Project/internal/domain"

// Mock — конфигурируемая заглушка TextGenerator для тестов и запуска без модели.
type Mock struct {
	Response string
	Fail     bool

	Calls   int
	Prompts []string
}

// NewMock возвращает mock с нейтральным ответом по умолчанию.
func NewMock() *Mock {
	return &Mock{Response: "generated text"}
}

// Generate возвращает настроенный ответ и запоминает prompt.
// При Fail имитирует сбой сервиса: отдаёт sentinel вместо текста.
func (m *Mock) Generate(prompt string, maxTokens int) string {
	m.Calls++
	m.Prompts = append(m.Prompts, prompt)
	if m.Fail {
		return domain.UnavailableMessage
	}
	return m.Response
}

var _ domain.TextGenerator = (*Mock)(nil)
