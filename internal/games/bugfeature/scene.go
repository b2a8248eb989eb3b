package bugfeature

// Scene is one of the four top-level screens.
type Scene int

const (
	SceneSelection Scene = iota // Branch picker
	SceneCountdown              // 3..2..1 before gameplay, input ignored
	SceneGameplay               // Active run
	SceneGameOver               // Victory or defeat overlay, waits for restart
)

// String returns the scene name used in game state and logs.
func (s Scene) String() string {
	switch s {
	case SceneSelection:
		return "selection"
	case SceneCountdown:
		return "countdown"
	case SceneGameplay:
		return "gameplay"
	case SceneGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}
