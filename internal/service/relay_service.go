package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"car-shop-relay/internal/domain"
	"car-shop-relay/internal/llm"
	"car-shop-relay/internal/persona"
)

const (
	replyMaxTokens   = 150
	replyTemperature = 0.7
)

// ErrServiceMisconfigured se devuelve cuando falta la API key; no se llama al proveedor.
var ErrServiceMisconfigured = errors.New("OpenAI API key not configured")

// UpstreamError envuelve cualquier falla de la llamada al proveedor de completions.
type UpstreamError struct {
	Err error
}

func (e *UpstreamError) Error() string {
	return "OpenAI API error: " + e.Err.Error()
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// RelayService arma la conversación persona + mensaje y la reenvía al LLM.
// No guarda estado entre requests.
type RelayService struct {
	llmClient llm.CompletionClient
	apiKey    string
	persona   persona.Persona
	timeout   time.Duration
	logger    *zap.Logger
}

// NewRelayService crea el servicio con la configuración ya resuelta al arrancar.
func NewRelayService(llmClient llm.CompletionClient, apiKey string, p persona.Persona, timeout time.Duration, logger *zap.Logger) *RelayService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RelayService{
		llmClient: llmClient,
		apiKey:    apiKey,
		persona:   p,
		timeout:   timeout,
		logger:    logger,
	}
}

// Reply genera la respuesta del asistente para un mensaje del cliente.
func (s *RelayService) Reply(ctx context.Context, req domain.ChatRequest) (domain.ChatResponse, error) {
	if s.apiKey == "" {
		return domain.ChatResponse{}, ErrServiceMisconfigured
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	start := time.Now()
	out, err := s.llmClient.Complete(ctx, llm.CompletionRequest{
		Model: s.persona.Model,
		Messages: []llm.Message{
			{Role: "system", Content: s.persona.Prompt},
			{Role: "user", Content: req.Message},
		},
		MaxTokens:   replyMaxTokens,
		Temperature: replyTemperature,
	})
	if err != nil {
		return domain.ChatResponse{}, &UpstreamError{Err: describeUpstreamFailure(err)}
	}

	s.logger.Debug("llm reply",
		zap.String("persona", s.persona.Name),
		zap.String("model", s.persona.Model),
		zap.Duration("latency", time.Since(start)),
	)

	return domain.ChatResponse{Response: strings.TrimSpace(out)}, nil
}

// Persona devuelve la persona activa.
func (s *RelayService) Persona() persona.Persona {
	return s.persona
}

func describeUpstreamFailure(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("request timed out: %w", err)
	}
	return err
}
