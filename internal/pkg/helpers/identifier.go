package helpers

import (
	"fmt"
	"time"
)

// Identifier prefixes for the store-side generator functions and their
// in-process fallback.
const (
	ApplicationIDPrefix = "APP"
	SpotlightIDPrefix   = "SPT"
	DonationIDPrefix    = "DON"
)

// FallbackID builds a display identifier when the store-side generator is
// unavailable. Callers must treat the format as opaque; this is the documented
// <PREFIX>-<unix-ms> fallback shape.
func FallbackID(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, time.Now().UnixMilli())
}
