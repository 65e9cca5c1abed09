package registry

import "github.com/vovakirdan/tui-snake/internal/config"

// DefaultPreset is used when no preset is named.
const DefaultPreset = "classic"

func init() {
	classic := config.DefaultSnakeConfig()
	Register("classic", "Classic 20x20", classic)

	small := classic
	small.GridSize = 10
	Register("small", "Small 10x10", small)

	large := classic
	large.GridSize = 30
	large.TickIntervalMs = 100
	large.InitialBodyLength = 4
	Register("large", "Large 30x30", large)

	// Small enough to actually fill.
	tiny := classic
	tiny.GridSize = 4
	tiny.TickIntervalMs = 250
	tiny.InitialBodyLength = 2
	Register("tiny", "Tiny 4x4", tiny)
}
