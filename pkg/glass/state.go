package glass

// State is the navigation record every action reads and updates.
// It is only touched from the UI event loop.
type State struct {
	// CurrentPath is the directory shown as the tree root.
	CurrentPath string
	// SelectedPath is the highlighted node, or "" before the first selection.
	SelectedPath string
}

// Target is the path an action applies to: the selection, or the current directory.
func (s *State) Target() string {
	if s.SelectedPath != "" {
		return s.SelectedPath
	}
	return s.CurrentPath
}
