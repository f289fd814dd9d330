package loop

// GameState represents the current phase of a session.
type GameState int

const (
	GameStatePlaying GameState = iota // Level in progress
	GameStateWon                      // Objective reached, showing the win screen
	GameStateDead                     // Player died, asking whether to continue
)

func (s GameState) String() string {
	switch s {
	case GameStateWon:
		return "won"
	case GameStateDead:
		return "dead"
	default:
		return "playing"
	}
}

// ClientState holds the per-connection state of the frame loop.
type ClientState struct {
	GameState     GameState
	prevGameState GameState
	Running       bool
	Status        Status  // last level projection
	WinTimer      float64 // seconds spent on the win screen
	LevelScore    float64 // score banked by the last won level
}

// NewClientState creates a new initialized client state.
func NewClientState() *ClientState {
	return &ClientState{
		GameState:     GameStatePlaying,
		prevGameState: GameStatePlaying,
		Running:       true,
	}
}

// transitioned reports whether the state changed since the last call.
func (c *ClientState) transitioned() bool {
	changed := c.GameState != c.prevGameState
	c.prevGameState = c.GameState
	return changed
}
