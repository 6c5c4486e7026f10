package ebiten

import "image/color"

// Color palette
var (
	colorBackground    = color.RGBA{26, 26, 46, 255}    // Dark blue-gray
	colorMapBackground = color.RGBA{15, 15, 26, 255}    // Darker for map area
	colorFloor         = color.RGBA{100, 100, 120, 255} // Seen floor
	colorWall          = color.RGBA{180, 180, 200, 255} // Light gray-blue walls
	colorFog           = color.RGBA{8, 8, 14, 255}      // Unseen cells
	colorPlayer        = color.RGBA{0, 255, 0, 255}     // Bright green
	colorEnemy         = color.RGBA{255, 80, 80, 255}   // Bright red
	colorExit          = color.RGBA{100, 255, 100, 255} // Bright green
	colorText          = color.RGBA{200, 210, 245, 255} // Soft off-white
	colorAction        = color.RGBA{180, 150, 250, 255} // Blue-purple
	colorSubtle        = color.RGBA{120, 130, 180, 255} // Soft blue-purple-gray
	colorDenied        = color.RGBA{255, 100, 100, 255} // Bright red
	colorOverlay       = color.RGBA{0, 0, 0, 200}       // Transition fade
)

// Tile size constraints
const (
	defaultTileSize = 32
	minTileSize     = 12
	maxTileSize     = 96
	tileSizeStep    = 4
	baseFontSize    = 16.0
	wallThickness   = 0.125 // of the tile size
)

// Layout
const (
	defaultWindowWidth  = 960
	defaultWindowHeight = 720
	headerHeight        = 40
	mapMargin           = 20
	messageLines        = 5
)
