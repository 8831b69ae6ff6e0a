package poloniex

import (
	"crypto/hmac"
	"crypto/sha512"
	"fmt"
	"sync"
	"time"
)

// Sign computes the HMAC-SHA512 digest of payload keyed by secret,
// as lowercase hex. The trading api verifies the Sign header against
// the exact body bytes it receives, so callers must sign the same
// string they send.
func Sign(payload, secret string) string {
	mac := hmac.New(sha512.New, []byte(secret))
	mac.Write([]byte(payload))
	return fmt.Sprintf("%x", mac.Sum(nil))
}

// nonceCounter issues the strictly increasing nonces the trading api
// requires. Seeded from wall-clock microseconds; when called twice
// within the same tick it bumps by one instead of repeating.
type nonceCounter struct {
	mu   sync.Mutex
	last int64
}

func (n *nonceCounter) Next() int64 {
	n.mu.Lock()
	defer n.mu.Unlock()
	now := time.Now().UnixNano() / int64(time.Microsecond)
	if now <= n.last {
		now = n.last + 1
	}
	n.last = now
	return now
}
