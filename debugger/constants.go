package debugger

// Program listing constants.
const (
	// DefaultListContext is the number of instructions shown before and
	// after PC by the list command when no explicit count is given.
	DefaultListContext = 5
)
