package solver

import (
	"strings"

	"github.com/fadedpez/veinticuatro/pkg/entities"
)

// SolutionSet holds the distinct display strings of every solution found for
// a hand. Two card orderings that render identically, which happens whenever
// a hand repeats a rank, collapse into one entry.
type SolutionSet map[string]struct{}

// Contains reports whether the exact display string is in the set.
func (s SolutionSet) Contains(solution string) bool {
	_, ok := s[solution]
	return ok
}

// Strings returns the solutions as a slice in no particular order.
func (s SolutionSet) Strings() []string {
	solutions := make([]string, 0, len(s))
	for solution := range s {
		solutions = append(solutions, solution)
	}
	return solutions
}

// Solve searches every ordering of the cards combined with every operator
// assignment and collects the display string of each combination that reaches
// target. An empty set means the target cannot be made.
func Solve(cards []entities.Card, target int) SolutionSet {
	solutions := make(SolutionSet)
	for _, ordering := range permutations(cards) {
		for _, ops := range PossibleOps(ordering, target) {
			solutions[formatSolution(ordering, ops)] = struct{}{}
		}
	}

	return solutions
}

// formatSolution renders cards and operators interleaved by rank, so the hand
// 8h 8c Kd 2s with + + - becomes "8 + 8 + K - 2". Suits never appear.
func formatSolution(cards []entities.Card, ops []Operator) string {
	parts := make([]string, 0, len(cards)+len(ops))
	for i, card := range cards {
		parts = append(parts, string(card.Rank))
		if i < len(ops) {
			parts = append(parts, ops[i].Symbol())
		}
	}
	return strings.Join(parts, " ")
}

// permutations returns every ordering of the cards. Positions are treated as
// distinct even when ranks repeat; duplicate renderings are absorbed by the
// SolutionSet.
func permutations(cards []entities.Card) [][]entities.Card {
	if len(cards) == 0 {
		return [][]entities.Card{{}}
	}

	working := make([]entities.Card, len(cards))
	copy(working, cards)

	var result [][]entities.Card
	var generate func(k int)
	generate = func(k int) {
		if k == 1 {
			ordering := make([]entities.Card, len(working))
			copy(ordering, working)
			result = append(result, ordering)
			return
		}
		for i := 0; i < k; i++ {
			generate(k - 1)
			if k%2 == 0 {
				working[i], working[k-1] = working[k-1], working[i]
			} else {
				working[0], working[k-1] = working[k-1], working[0]
			}
		}
	}
	generate(len(working))

	return result
}
