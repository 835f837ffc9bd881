package judge

import (
	"errors"

	"github.com/fadedpez/veinticuatro/pkg/entities"
	"github.com/fadedpez/veinticuatro/pkg/services/solver"
)

// Verdict represents the outcome of judging a claim
type Verdict string

const (
	VerdictCorrect         Verdict = "CORRECT"
	VerdictWrongCards      Verdict = "WRONG_CARDS"
	VerdictWrongValue      Verdict = "WRONG_VALUE"
	VerdictIllegalDivision Verdict = "ILLEGAL_DIVISION"
	VerdictNotImpossible   Verdict = "NOT_IMPOSSIBLE"
)

// String returns the string representation of the verdict
func (v Verdict) String() string {
	return string(v)
}

// IsCorrect returns true if this verdict scores for the player
func (v Verdict) IsCorrect() bool {
	return v == VerdictCorrect
}

// Judge scores a claim against the round's hand and target. An impossibility
// claim is checked by exhaustive solving. An expression claim must use
// exactly the dealt ranks, divide without remainder, and reach the target.
func (r *Round) Judge(claim *Claim) Verdict {
	if claim == nil {
		panic("claim cannot be nil")
	}

	if claim.Impossible {
		if len(r.Solutions()) > 0 {
			return VerdictNotImpossible
		}
		return VerdictCorrect
	}

	if !ranksMatch(claim.Ranks, r.Hand) {
		return VerdictWrongCards
	}

	cards := make([]entities.Card, 0, len(claim.Ranks))
	for _, rank := range claim.Ranks {
		// Suits carry no value, so any suit stands in.
		card, _ := entities.NewCard(rank, entities.Spades)
		cards = append(cards, card)
	}

	result, err := solver.Evaluate(cards, claim.Ops)
	if err != nil {
		if errors.Is(err, solver.ErrNonIntegerDivision) {
			return VerdictIllegalDivision
		}
		return VerdictWrongValue
	}
	if result != r.Target {
		return VerdictWrongValue
	}

	return VerdictCorrect
}

// ranksMatch reports whether the claimed ranks are exactly the dealt ranks,
// counting repeats and ignoring suits.
func ranksMatch(claimed []entities.Rank, hand []entities.Card) bool {
	if len(claimed) != len(hand) {
		return false
	}

	counts := make(map[entities.Rank]int, len(hand))
	for _, card := range hand {
		counts[card.Rank]++
	}
	for _, rank := range claimed {
		counts[rank]--
		if counts[rank] < 0 {
			return false
		}
	}

	return true
}
