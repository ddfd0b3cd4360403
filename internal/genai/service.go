package genai

import (
	"context"
	"encoding/json"
	"log"
	"strings"

	"github.com/quizsmith/backend/internal/models"
)

// Prober answers whether the model service is worth committing a full
// generation request to.
type Prober interface {
	ProbeHealth(ctx context.Context) bool
	ProbeBase(ctx context.Context) models.ServiceHealth
}

// Executor issues the generation call and returns raw items or a classified
// error.
type Executor interface {
	Execute(ctx context.Context, req models.GenerationRequest) ([]json.RawMessage, error)
}

// Service sequences probe, execute and normalize into the single call the
// API layer consumes. It is stateless: each call is an independent
// single-shot operation, and the caller is responsible for not submitting a
// second request while one is in flight.
type Service struct {
	prober   Prober
	executor Executor
}

func NewService(client *Client) *Service {
	return &Service{prober: client, executor: client}
}

// GenerateQuestions runs one generation attempt end to end. Every failure is
// a classified *Error; nothing is retried. The DropReport is returned even
// on the NoUsableQuestions path so callers can report what was discarded.
func (s *Service) GenerateQuestions(ctx context.Context, req models.GenerationRequest) ([]models.QuestionRecord, DropReport, error) {
	if strings.TrimSpace(req.Topic) == "" {
		return nil, DropReport{}, &Error{Kind: KindValidation, Message: "topic is required"}
	}

	if !s.prober.ProbeHealth(ctx) {
		return nil, DropReport{}, &Error{
			Kind: KindNetworkUnreachable,
			Message: "the model service is unreachable; check your internet connection " +
				"and make sure the server is running",
		}
	}

	raw, err := s.executor.Execute(ctx, req)
	if err != nil {
		return nil, DropReport{}, err
	}

	records, report := Normalize(raw, req)
	if report.Dropped > 0 {
		log.Printf("[genai] normalization dropped %d of %d items: %s",
			report.Dropped, len(raw), strings.Join(report.Reasons, "; "))
	}
	if len(records) == 0 {
		return nil, report, &Error{
			Kind:    KindNoUsableQuestions,
			Message: "the model returned no usable questions; try again or rephrase the topic",
		}
	}

	return records, report, nil
}

// Status performs the coarse standalone liveness read, independent of the
// generation flow.
func (s *Service) Status(ctx context.Context) models.ServiceHealth {
	return s.prober.ProbeBase(ctx)
}
