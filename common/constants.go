package common

const (
	BaseWidth  = 1280
	BaseHeight = 720

	// TileSize is the edge of one level tile in pixels.
	TileSize = 32
	// PixelsPerUnit converts motion units (one tile) to pixels.
	PixelsPerUnit = float64(TileSize)

	// FixedStep is the physics step in seconds.
	FixedStep = 1.0 / 50.0
	// MaxFrameDelta caps a single frame's elapsed time.
	MaxFrameDelta = 0.25
)
