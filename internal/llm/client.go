package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// ErrNoChoices indica que el proveedor respondió sin contenido utilizable.
var ErrNoChoices = errors.New("llm empty response")

// CompletionClient define la interfaz para pedir una respuesta de chat a un LLM.
type CompletionClient interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

// Message es una entrada role/content de la conversación.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// CompletionRequest agrupa la conversación y los parámetros de generación.
type CompletionRequest struct {
	Model       string
	Messages    []Message
	MaxTokens   int
	Temperature float64
}

// APIError es una respuesta no-2xx del proveedor.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("llm http error: status=%d", e.StatusCode)
	}
	return fmt.Sprintf("llm http error: status=%d: %s", e.StatusCode, e.Message)
}

// HTTPClient implementa CompletionClient usando la API de OpenAI-compatible.
type HTTPClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
	logger  *zap.Logger
}

// NewHTTPClient construye un cliente HTTP apuntando a la API de chat completions.
// El cliente no tiene timeout propio: el límite por llamada lo pone quien llama vía ctx.
func NewHTTPClient(baseURL, apiKey string, logger *zap.Logger) *HTTPClient {
	if baseURL == "" {
		baseURL = "https://api.openai.com/v1"
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client:  &http.Client{},
		logger:  logger,
	}
}

func (c *HTTPClient) Complete(ctx context.Context, in CompletionRequest) (string, error) {
	reqBody := chatRequest{
		Model:       in.Model,
		Messages:    in.Messages,
		MaxTokens:   in.MaxTokens,
		Temperature: in.Temperature,
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(bodyBytes))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Warn("llm error status",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", respBody),
		)
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var cr chatResponse
		if json.Unmarshal(respBody, &cr) == nil && cr.Error != nil {
			apiErr.Message = cr.Error.Message
		}
		return "", apiErr
	}

	var cr chatResponse
	if err := json.Unmarshal(respBody, &cr); err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}

	if cr.Error != nil {
		return "", fmt.Errorf("llm api error: %s", cr.Error.Message)
	}

	// Un content vacío es válido; solo falla si no hay choices o viene null.
	if len(cr.Choices) == 0 || cr.Choices[0].Message.Content == nil {
		return "", ErrNoChoices
	}

	return *cr.Choices[0].Message.Content, nil
}

type chatRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	MaxTokens   int       `json:"max_tokens,omitempty"`
	Temperature float64   `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Role    string  `json:"role"`
			Content *string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}
