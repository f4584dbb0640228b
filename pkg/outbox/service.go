package outbox

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gorravana/boutique-backend/pkg/db/models"
	"github.com/gorravana/boutique-backend/pkg/errors"
)

// Service writes domain events into the outbox table. Publishing is handled
// separately by the outbox-publisher binary.
type Service struct {
	repo *Repository
	now  func() time.Time
}

func NewService(repo *Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

// Emit stores the event inside the caller's transaction so the event commits
// or rolls back with the business write that produced it.
func (s *Service) Emit(ctx context.Context, tx *gorm.DB, event DomainEvent) error {
	if tx == nil {
		return errors.New(errors.CodeInternal, "outbox emit requires an active transaction")
	}
	if !event.EventType.IsValid() {
		return errors.New(errors.CodeInternal, fmt.Sprintf("invalid outbox event type %q", event.EventType))
	}
	if !event.AggregateType.IsValid() {
		return errors.New(errors.CodeInternal, fmt.Sprintf("invalid outbox aggregate type %q", event.AggregateType))
	}
	if event.AggregateID == uuid.Nil {
		return errors.New(errors.CodeInternal, "outbox event requires an aggregate id")
	}

	data, err := json.Marshal(event.Data)
	if err != nil {
		return errors.Wrap(errors.CodeInternal, err, "marshalling outbox event data")
	}

	envelope := PayloadEnvelope{
		Version:    envelopeVersion,
		EventID:    uuid.New(),
		OccurredAt: s.now().UTC(),
		Actor:      event.Actor,
		Data:       data,
	}

	payload, err := json.Marshal(envelope)
	if err != nil {
		return errors.Wrap(errors.CodeInternal, err, "marshalling outbox envelope")
	}

	row := &models.OutboxEvent{
		EventType:     event.EventType,
		AggregateType: event.AggregateType,
		AggregateID:   event.AggregateID,
		Payload:       payload,
	}

	if err := s.repo.Insert(ctx, tx, row); err != nil {
		return errors.Wrap(errors.CodeDependency, err, "inserting outbox event")
	}
	return nil
}
