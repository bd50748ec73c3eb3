package state

// MatchState represents whether a match is in progress
type MatchState int

const (
	StateNotRunning MatchState = iota
	StateRunning
)

// String returns the string representation of the match state
func (s MatchState) String() string {
	switch s {
	case StateNotRunning:
		return "NotRunning"
	case StateRunning:
		return "Running"
	default:
		return "Unknown"
	}
}

// Outcome is the judged result of a finished match
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomePlayerWin
	OutcomeEnemyWin
	OutcomeDraw
)

// String returns the log name of the outcome
func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomePlayerWin:
		return "player win"
	case OutcomeEnemyWin:
		return "enemy win"
	case OutcomeDraw:
		return "draw"
	default:
		return "unknown"
	}
}

// Banner returns the text shown on the start screen after a match
func (o Outcome) Banner() string {
	switch o {
	case OutcomePlayerWin:
		return "PLAYER WINS"
	case OutcomeEnemyWin:
		return "ENEMY WINS"
	case OutcomeDraw:
		return "DRAW"
	default:
		return ""
	}
}

// Judge compares the remaining health of both fighters
func Judge(playerHealth, enemyHealth int) Outcome {
	switch {
	case playerHealth > enemyHealth:
		return OutcomePlayerWin
	case enemyHealth > playerHealth:
		return OutcomeEnemyWin
	default:
		return OutcomeDraw
	}
}
