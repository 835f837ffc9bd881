package judge

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fadedpez/veinticuatro/pkg/entities"
	"github.com/fadedpez/veinticuatro/pkg/services/solver"
)

var (
	// ErrEmptyClaim is returned when a claim contains no tokens.
	ErrEmptyClaim = errors.New("claim is empty")

	// ErrMalformedClaim is returned when a claim does not alternate cards and
	// operators.
	ErrMalformedClaim = errors.New("malformed claim")
)

// The literal a player types to claim the round cannot be solved.
const ImpossibleClaim = "impossible"

// Claim is a player's parsed answer for a round: either an assertion that the
// hand is impossible, or an expression over the dealt ranks. Parsing
// guarantees len(Ops) == len(Ranks)-1 for expression claims.
type Claim struct {
	Raw        string
	Impossible bool
	Ranks      []entities.Rank
	Ops        []solver.Operator
}

// ParseClaim reads a player's typed claim. The single word "impossible" (any
// case) claims the round has no solution; anything else must alternate rank
// and operator tokens separated by spaces, like "8 + 8 + K - 2". Lowercase
// ranks are accepted.
func ParseClaim(raw string) (*Claim, error) {
	tokens := strings.Fields(raw)
	if len(tokens) == 0 {
		return nil, ErrEmptyClaim
	}

	if len(tokens) == 1 && strings.EqualFold(tokens[0], ImpossibleClaim) {
		return &Claim{Raw: raw, Impossible: true}, nil
	}

	if len(tokens)%2 == 0 {
		return nil, fmt.Errorf("expression must alternate cards and operators: %w", ErrMalformedClaim)
	}

	claim := &Claim{Raw: raw}
	for i, token := range tokens {
		if i%2 == 0 {
			rank, err := entities.ParseRank(token)
			if err != nil {
				return nil, fmt.Errorf("token %d: %w", i+1, err)
			}
			claim.Ranks = append(claim.Ranks, rank)
		} else {
			op, err := solver.ParseOperator(token)
			if err != nil {
				return nil, fmt.Errorf("token %d: %w", i+1, err)
			}
			claim.Ops = append(claim.Ops, op)
		}
	}

	return claim, nil
}
