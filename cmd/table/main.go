package main

import (
	"log"
	"strings"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/fadedpez/veinticuatro/internal/config"
	"github.com/fadedpez/veinticuatro/internal/logging"
	"github.com/fadedpez/veinticuatro/pkg/entities"
	"github.com/fadedpez/veinticuatro/pkg/services/judge"
)

func main() {
	// Load configuration from .env and environment
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := logging.NewLogger(cfg.LogLevel)
	logger.Debug("Table configured with target %d and hand size %d", cfg.TargetValue, cfg.HandSize)

	pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("veinti", pterm.FgDarkGray.ToStyle()),
		putils.LettersFromStringWithStyle("cuatro", pterm.FgRed.ToStyle()),
	).Render()

	name, _ := pterm.DefaultInteractiveTextInput.WithDefaultText("Enter your name").WithDefaultValue("player").Show()
	pterm.Println()

	player := judge.NewPlayer(name)
	pterm.Info.Printfln("Welcome to the table, %s. Combine the cards to make %d, or call the hand impossible.", player.Name, cfg.TargetValue)
	pterm.Info.Println("Answer like: 8 + 8 + K - 2. Type quit to leave the table.")

	deck := shuffledDeck()
	for {
		if len(deck.Cards) < cfg.HandSize {
			logger.Debug("Only %d cards left, opening a fresh deck", len(deck.Cards))
			deck = shuffledDeck()
		}

		round, err := judge.NewRound(deck, cfg.HandSize, cfg.TargetValue)
		if err != nil {
			log.Fatalf("Failed to deal a round: %v", err)
		}
		logger.Debug("Dealt round %s: %s", round.ID, formatHand(round.Hand))

		pterm.Println()
		pterm.DefaultBox.
			WithLeftPadding(4).
			WithRightPadding(4).
			WithTitle("On the table").
			WithTitleTopLeft().
			Println(formatHand(round.Hand))

		claim := readClaim()
		if claim == nil {
			break
		}

		verdict := round.Judge(claim)
		player.Record(verdict)
		announce(round, claim, verdict, cfg.TargetValue)

		pterm.Info.Printfln("Score: %d of %d (%.1f%%)", player.Correct, player.Played, player.WinRate())
	}

	pterm.Println()
	pterm.Info.Printfln("Thanks for playing, %s. Final score: %d of %d.", player.Name, player.Correct, player.Played)
}

func shuffledDeck() *entities.Deck {
	spinner, _ := pterm.DefaultSpinner.Start("Shuffling the deck ...")
	deck := entities.NewDeck()
	deck.Shuffle()
	spinner.Success()
	return deck
}

// readClaim prompts until the player types a parseable claim. A nil return
// means the player wants to leave.
func readClaim() *judge.Claim {
	for {
		answer, _ := pterm.DefaultInteractiveTextInput.WithDefaultText("Your answer").Show()
		if strings.EqualFold(strings.TrimSpace(answer), "quit") {
			return nil
		}

		claim, err := judge.ParseClaim(answer)
		if err != nil {
			pterm.Error.Printfln("Cannot read that answer: %v. Try again.", err)
			continue
		}
		return claim
	}
}

func announce(round *judge.Round, claim *judge.Claim, verdict judge.Verdict, target int) {
	switch verdict {
	case judge.VerdictCorrect:
		if claim.Impossible {
			pterm.Success.Printfln("Verified: there is no way to make %d with this hand.", target)
		} else {
			pterm.Success.Printfln("Correct! That makes %d.", target)
		}
	case judge.VerdictWrongCards:
		pterm.Error.Println("Those are not the cards on the table.")
	case judge.VerdictWrongValue:
		pterm.Error.Printfln("That does not make %d.", target)
	case judge.VerdictIllegalDivision:
		pterm.Error.Println("Division must come out even.")
	case judge.VerdictNotImpossible:
		solutions := round.Solutions()
		pterm.Error.Printfln("Not impossible! There are %d ways, for example: %s", len(solutions), sampleSolution(solutions.Strings()))
	}
}

func sampleSolution(solutions []string) string {
	if len(solutions) == 0 {
		return ""
	}
	return solutions[0]
}

func formatHand(cards []entities.Card) string {
	result := ""
	for _, card := range cards {
		result += formatCard(card) + " "
	}
	return strings.TrimSpace(result)
}

func formatCard(card entities.Card) string {
	// Map suits to glyphs, red suits tinted
	suitGlyphs := map[entities.Suit]string{
		entities.Hearts:   pterm.LightRed("♥"),
		entities.Diamonds: pterm.LightRed("♦"),
		entities.Clubs:    "♣",
		entities.Spades:   "♠",
	}

	return string(card.Rank) + suitGlyphs[card.Suit]
}
