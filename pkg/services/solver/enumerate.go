package solver

import (
	"github.com/fadedpez/veinticuatro/pkg/entities"
)

// OperatorSequences returns every assignment of operators to the given number
// of gaps between cards, 4^gaps sequences in all. Sequences are generated in
// odometer order with the rightmost position varying fastest. A negative gap
// count returns nil; zero gaps returns a single empty sequence.
func OperatorSequences(gaps int) [][]Operator {
	if gaps < 0 {
		return nil
	}

	operators := Operators()
	total := 1
	for i := 0; i < gaps; i++ {
		total *= len(operators)
	}

	sequences := make([][]Operator, 0, total)
	indices := make([]int, gaps)
	for {
		seq := make([]Operator, gaps)
		for i, idx := range indices {
			seq[i] = operators[idx]
		}
		sequences = append(sequences, seq)

		pos := gaps - 1
		for pos >= 0 {
			indices[pos]++
			if indices[pos] < len(operators) {
				break
			}
			indices[pos] = 0
			pos--
		}
		if pos < 0 {
			break
		}
	}

	return sequences
}

// PossibleOps returns every operator sequence whose left-to-right evaluation
// of the cards reaches target, in enumeration order. Sequences that hit a
// non-integer division are skipped.
func PossibleOps(cards []entities.Card, target int) [][]Operator {
	var matches [][]Operator
	for _, ops := range OperatorSequences(len(cards) - 1) {
		result, err := Evaluate(cards, ops)
		if err != nil {
			continue
		}
		if result == target {
			matches = append(matches, ops)
		}
	}

	return matches
}
