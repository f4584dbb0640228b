package cart

import "github.com/gorravana/boutique-backend/pkg/enums"

// Event is the structured notification a mutation produces. The aggregate
// never talks to a UI; callers dispatch events to whatever notification sink
// they use.
type Event struct {
	Kind      enums.CartEventKind `json:"kind"`
	ProductID string              `json:"product_id,omitempty"`
	Name      string              `json:"name,omitempty"`
	Quantity  int                 `json:"quantity,omitempty"`
}
