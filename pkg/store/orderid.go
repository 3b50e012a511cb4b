package store

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"
)

// GenerateOrderID returns a globally unique, time-prefixed order ID of the
// form ORD-<unix-millis>-<12 hex chars>. The 48-bit random suffix keeps the
// collision probability under 1 in 10⁹ per millisecond without any shared
// counter.
func GenerateOrderID() string {
	var suffix [6]byte
	if _, err := rand.Read(suffix[:]); err != nil {
		// crypto/rand is documented never to fail on supported platforms.
		panic(fmt.Sprintf("order id entropy unavailable: %v", err))
	}
	return fmt.Sprintf("ORD-%d-%s", time.Now().UnixMilli(), hex.EncodeToString(suffix[:]))
}
