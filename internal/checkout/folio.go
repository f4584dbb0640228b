package checkout

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

// newFolio builds a customer-facing order number: GV-<date>-<4 digits>.
// Collisions within a day are possible and handled by retrying the insert
// against the unique folio constraint.
func newFolio(now time.Time) string {
	n, err := rand.Int(rand.Reader, big.NewInt(10000))
	suffix := int64(0)
	if err == nil {
		suffix = n.Int64()
	}
	return fmt.Sprintf("GV-%s-%04d", now.UTC().Format("20060102"), suffix)
}
