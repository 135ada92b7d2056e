package model

import (
	"time"
)

// AccessToken is an opaque code that unlocks the reading experience for an
// end user. Tokens are minted by an operator and looked up by exact value at
// the gate. Under the current policy a token stays redeemable after use; the
// Used flag is written only through the dormant mark-used path.
type AccessToken struct {
	ID        int64     `json:"id"`
	Token     string    `json:"token"`
	Used      bool      `json:"used"`
	CreatedAt time.Time `json:"createdAt"`
}
