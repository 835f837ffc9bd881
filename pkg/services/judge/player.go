package judge

// Player tracks one player's score across a table session.
type Player struct {
	Name    string
	Played  int
	Correct int
}

// NewPlayer creates a new player with the given name
func NewPlayer(name string) *Player {
	return &Player{
		Name: name,
	}
}

// Record tallies a judged round against the player's score.
func (p *Player) Record(verdict Verdict) {
	p.Played++
	if verdict.IsCorrect() {
		p.Correct++
	}
}

// WinRate calculates the player's win rate as a percentage
func (p *Player) WinRate() float64 {
	if p.Played == 0 {
		return 0.0
	}
	return float64(p.Correct) / float64(p.Played) * 100.0
}
