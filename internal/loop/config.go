package loop

import "time"

// Game configuration constants.
// All tunable game parameters are centralized here for easy adjustment.

// Frame timing
const (
	targetFPS       = 60
	targetFrameTime = time.Second / targetFPS
	maxFrameDelta   = 250 * time.Millisecond // longer stalls are simulated as this
)

// View resolution - the visible viewport in world units around the player.
// Actual rendering scales to fit terminal size.
const (
	ViewWidth  = 960
	ViewHeight = 640
)

// Terminal render limits. Larger terminals get a centered, bordered canvas.
const (
	MaxTermWidth  = 240
	MaxTermHeight = 80
	hudRows       = 2 // rows reserved at the bottom for the HUD

	fallbackTermWidth  = 80 // used until the terminal size is known
	fallbackTermHeight = 24
)

// Objective placement
const (
	ObjectiveSpread       = 2048.0 // objective lies in [-spread, spread]²
	ObjectiveBaseDistance = 512.0  // minimum distance from the origin at level 0
	ObjectiveLevelStep    = 100.0  // extra minimum distance per level
)

// Broad phase
const (
	CollisionCellSize = 200.0
)

// Screens
const (
	WinScreenSeconds = 5.0
	winFadeCycles    = 2.0 // full fade in/out cycles during the win screen
)

// Background
const (
	StarfieldTile     = 2048.0 // stars repeat with this period in both axes
	StarfieldParallax = 0.5    // stars scroll at this fraction of camera speed
)
