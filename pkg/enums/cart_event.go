package enums

// CartEventKind labels the structured event a cart or wishlist mutation emits.
// The notification collaborator decides how each kind is rendered; the
// aggregates never format user-facing text.
type CartEventKind string

const (
	CartEventAdded   CartEventKind = "added"
	CartEventUpdated CartEventKind = "updated"
	CartEventRemoved CartEventKind = "removed"
	CartEventCleared CartEventKind = "cleared"
)

// String implements fmt.Stringer.
func (k CartEventKind) String() string {
	return string(k)
}
