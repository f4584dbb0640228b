package outbox

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/gorravana/boutique-backend/pkg/enums"
)

const envelopeVersion = 1

// DomainEvent is what callers hand to Emit inside their transaction.
type DomainEvent struct {
	EventType     enums.OutboxEventType
	AggregateType enums.OutboxAggregateType
	AggregateID   uuid.UUID
	Actor         string
	Data          any
}

// PayloadEnvelope is the stable wire shape stored in the payload column and
// published to Pub/Sub. Consumers key on Version for forward compatibility.
type PayloadEnvelope struct {
	Version    int             `json:"version"`
	EventID    uuid.UUID       `json:"event_id"`
	OccurredAt time.Time       `json:"occurred_at"`
	Actor      string          `json:"actor,omitempty"`
	Data       json.RawMessage `json:"data"`
}
