package interfaces

import "time"

// ICallbackSigner mints the state token that authenticates a checkout
// success/cancel redirect for one gig owner.
type ICallbackSigner interface {
	SignCallback(userID, gigID string, ttl time.Duration) (string, error)
}
