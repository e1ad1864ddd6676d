package core

// Color identifies the visual role of a screen cell. The platform layer maps
// roles to concrete colors from the active theme.
type Color uint8

// Roles used by the game renderer.
const (
	ColorDefault Color = iota
	ColorBackground
	ColorSnake
	ColorSnakeHead
	ColorFruit
	ColorChrome // borders, HUD, overlays
)
