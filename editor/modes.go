package editor

// Mode represents the current editing mode.
type Mode int

const (
	ModeNormal  Mode = iota // Normal navigation and selection
	ModePlace               // Next click places a new area
	ModeConnect             // Selecting source/target for a new relationship
	ModeResize              // Resize handles live on the selected area
)

// String returns the mode name for the status bar.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "NORMAL"
	case ModePlace:
		return "PLACE"
	case ModeConnect:
		return "CONNECT"
	case ModeResize:
		return "RESIZE"
	default:
		return "UNKNOWN"
	}
}
