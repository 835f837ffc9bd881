package solver

import (
	"fmt"

	"github.com/fadedpez/veinticuatro/pkg/entities"
)

// Evaluate folds the cards with the operators strictly left to right, ignoring
// arithmetic precedence, so 2 + 3 * 4 evaluates as (2 + 3) * 4. The number of
// operators must be exactly one less than the number of cards; a mismatch is a
// programming error and panics. Division that would leave a remainder returns
// ErrNonIntegerDivision.
func Evaluate(cards []entities.Card, ops []Operator) (int, error) {
	if len(ops) != len(cards)-1 {
		panic(fmt.Sprintf("expected %d operators for %d cards, got %d", len(cards)-1, len(cards), len(ops)))
	}

	total := cards[0].Value
	for i, op := range ops {
		result, err := op.Apply(total, cards[i+1].Value)
		if err != nil {
			return 0, err
		}
		total = result
	}

	return total, nil
}
