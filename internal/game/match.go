package game

// Match is a series of rounds between the same two players. "Play again"
// continues the numbering, "home" restarts it at 1.
type Match struct {
	settings Settings
	number   int
	current  *Round
	results  []Result
}

// NewMatch creates a match whose first round is number 1.
func NewMatch(s Settings) *Match {
	return &Match{settings: s, number: 1}
}

// Start returns a fresh round with the current round number.
func (m *Match) Start() *Round {
	m.current = NewRound(m.number, m.settings)
	return m.current
}

// PlayAgain records the finished round and starts the next one.
func (m *Match) PlayAgain() *Round {
	m.record()
	m.number++
	return m.Start()
}

// Home abandons the match and resets the numbering.
func (m *Match) Home() {
	m.current = nil
	m.results = nil
	m.number = 1
}

// RoundNumber is the number of the current or next round.
func (m *Match) RoundNumber() int {
	return m.number
}

// Current returns the round in play, if any.
func (m *Match) Current() (*Round, bool) {
	return m.current, m.current != nil
}

// Results returns the results of finished rounds, including the current
// round once it has ended.
func (m *Match) Results() []Result {
	m.record()
	return append([]Result(nil), m.results...)
}

// Wins counts rounds won by each player.
func (m *Match) Wins() map[Player]int {
	wins := map[Player]int{Player1: 0, Player2: 0}
	for _, r := range m.Results() {
		if r.Outcome == OutcomeWinner {
			wins[r.Winner]++
		}
	}
	return wins
}

func (m *Match) record() {
	if m.current == nil || m.current.Phase() != PhaseEnded {
		return
	}
	id := m.current.State().ID.String()
	for _, r := range m.results {
		if r.RoundID == id {
			return
		}
	}
	m.results = append(m.results, m.current.Result())
}
