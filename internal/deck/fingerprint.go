package deck

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Fingerprint identifies deck content and order in log lines.
func Fingerprint(d Deck) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(d.String()))
}
