package render

// Named z-index levels. Higher values render on top; any int is accepted
const (
	ZBase    = 0   // Background, cleared cells and full-grid fills
	ZFill    = 5   // Shape interiors drawn beneath outlines
	ZShape   = 10  // Outlines and primitives
	ZText    = 20  // Labels
	ZOverlay = 100 // Content that must never be covered by the scene
)
