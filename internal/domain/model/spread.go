package model

import (
	"strings"

	"oracle-veil/internal/domain"
)

// SpreadSize is the number of cards in a reading.
const SpreadSize = 3

// Spread is a three-card selection mapped to the past/present/future slots.
// It lives only for the duration of one reading request.
type Spread struct {
	Past    string
	Present string
	Future  string
}

// NewSpread validates an ordered card selection. Exactly three non-empty
// names are required; anything else is ErrInvalidArgument.
func NewSpread(cards []string) (*Spread, error) {
	if len(cards) != SpreadSize {
		return nil, domain.ErrInvalidArgument
	}
	for _, c := range cards {
		if strings.TrimSpace(c) == "" {
			return nil, domain.ErrInvalidArgument
		}
	}
	return &Spread{Past: cards[0], Present: cards[1], Future: cards[2]}, nil
}
