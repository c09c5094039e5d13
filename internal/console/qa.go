// Пакет console реализует построчный диалог с генератором текста:
// вопрос — ответ — предложение продолжить. Это не протокол, а простой
// prompt/response цикл поверх стандартного ввода.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/ali3442/SCM-Simulation-Project/internal/domain"
)

// exitTokens завершают сессию на любом шаге (без учёта регистра).
var exitTokens = map[string]struct{}{
	"exit": {}, "no": {}, "quit": {}, "stop": {}, "n": {}, "لا": {},
}

// continueTokens подтверждают следующий вопрос; всё остальное завершает сессию.
var continueTokens = map[string]struct{}{
	"yes": {}, "y": {}, "yeah": {}, "sure": {}, "نعم": {}, "ايوه": {},
}

// QA — интерактивная сессия вопросов о supply chain management.
type QA struct {
	gen    domain.TextGenerator
	in     *bufio.Scanner
	out    io.Writer
	logger *log.Entry
}

// NewQA создаёт сессию поверх произвольных reader/writer — в тестах вместо
// стандартного ввода подставляется strings.Reader.
func NewQA(gen domain.TextGenerator, in io.Reader, out io.Writer, logger *log.Entry) *QA {
	if logger == nil {
		logger = log.WithField("component", "console-qa")
	}
	return &QA{
		gen:    gen,
		in:     bufio.NewScanner(in),
		out:    out,
		logger: logger,
	}
}

// Run ведёт диалог до токена выхода, отказа продолжать или конца ввода.
// Возвращает число заданных вопросов.
func (q *QA) Run() int {
	asked := 0
	for {
		fmt.Fprintln(q.out, "Ask the AI model about anything in Supply Chain Management:")
		question, ok := q.readLine()
		if !ok || isExit(question) {
			break
		}

		prompt := fmt.Sprintf("Answer the following question about Supply Chain Management:\n%s", question)
		fmt.Fprintf(q.out, "\nAI Answer:\n%s\n\n", q.gen.Generate(prompt, 0))
		asked++

		fmt.Fprintln(q.out, "Would you like to ask another question? (yes/no):")
		again, ok := q.readLine()
		if !ok || !isContinue(again) {
			break
		}
	}

	fmt.Fprintln(q.out, "Ending the Q&A session. Thank you!")
	q.logger.WithField("questions", asked).Info("q&a session finished")
	return asked
}

// readLine читает одну строку; false означает конец ввода.
func (q *QA) readLine() (string, bool) {
	if !q.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(q.in.Text()), true
}

func isExit(line string) bool {
	_, ok := exitTokens[strings.ToLower(line)]
	return ok
}

func isContinue(line string) bool {
	_, ok := continueTokens[strings.ToLower(line)]
	return ok
}
