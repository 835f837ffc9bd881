package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/fadedpez/veinticuatro/pkg/entities"
	"github.com/fadedpez/veinticuatro/pkg/services/solver"
)

const (
	handSize = 4
	target   = 24
)

func main() {
	fmt.Println("--- 24 solution finder ---")
	fmt.Println()
	fmt.Println("Enter each card's rank.")
	fmt.Println("For example: A, 2, 3, 4")

	scanner := bufio.NewScanner(os.Stdin)
	cards := make([]entities.Card, 0, handSize)
	for len(cards) < handSize {
		fmt.Print("Card: ")
		if !scanner.Scan() {
			return
		}

		card, err := entities.NewCard(entities.Rank(scanner.Text()), entities.RandomSuit())
		if err != nil {
			fmt.Println("Invalid rank. Try again.")
			continue
		}
		cards = append(cards, card)
	}

	fmt.Println()
	solutions := solver.Solve(cards, target)
	if len(solutions) == 0 {
		fmt.Println("Impossible to make 24.")
		return
	}
	i := 1
	for solution := range solutions {
		fmt.Printf("Solution %d: %s\n", i, solution)
		i++
	}
}
