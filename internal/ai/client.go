package ai

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/ali3442/SCM-Simulation-Project/internal/domain"
)

const (
	defaultTimeout   = 60 * time.Second
	defaultMaxTokens = 512

	temperature = 0.7
	topP        = 0.9
)

// Client ходит в llama.cpp-совместимый сервер генерации текста по HTTP.
// Ошибки никогда не пересекают границу: любой сбой транспорта или декодирования
// превращается в domain.UnavailableMessage.
type Client struct {
	baseURL string
	httpc   *http.Client
	logger  *log.Entry
}

// NewClient создаёт клиента для baseURL (например, http://localhost:8080).
func NewClient(baseURL string, logger *log.Entry) *Client {
	if logger == nil {
		logger = log.WithField("component", "ai-client")
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: defaultTimeout},
		logger:  logger,
	}
}

type completionRequest struct {
	Prompt      string  `json:"prompt"`
	NPredict    int     `json:"n_predict"`
	Temperature float64 `json:"temperature"`
	TopP        float64 `json:"top_p"`
}

type completionResponse struct {
	Content string `json:"content"`
}

// Generate отправляет prompt на /completion и возвращает ответ модели дословно.
func (c *Client) Generate(prompt string, maxTokens int) string {
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}

	body, err := json.Marshal(completionRequest{
		Prompt:      prompt,
		NPredict:    maxTokens,
		Temperature: temperature,
		TopP:        topP,
	})
	if err != nil {
		c.logger.WithError(err).Error("marshal completion request failed")
		return domain.UnavailableMessage
	}

	resp, err := c.httpc.Post(c.baseURL+"/completion", "application/json", bytes.NewReader(body))
	if err != nil {
		c.logger.WithError(err).Warn("completion request failed")
		return domain.UnavailableMessage
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		c.logger.WithField("status", resp.StatusCode).Warn("completion returned non-200")
		return domain.UnavailableMessage
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.WithError(err).Warn("read completion response failed")
		return domain.UnavailableMessage
	}

	var out completionResponse
	if err := json.Unmarshal(data, &out); err != nil {
		c.logger.WithError(err).Warn(fmt.Sprintf("decode completion response failed: %.64s", data))
		return domain.UnavailableMessage
	}

	return strings.TrimSpace(out.Content)
}

var _ domain.TextGenerator = (*Client)(nil)
