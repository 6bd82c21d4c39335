package core

// Color is a semantic foreground color for a screen cell. The terminal
// front end maps each value to a concrete style.
type Color uint8

const (
	ColorDefault Color = iota
	ColorFloor
	ColorFragile
	ColorBridgeClosed
	ColorBridgeOpen
	ColorSwitch
	ColorGoal
	ColorBlock
	ColorBlockMoving
	ColorHUD
	ColorDim
	ColorWarn
	ColorWin
)
