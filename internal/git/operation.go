package git

// Operation is the kind of multi-step git procedure in progress. It
// decides whether a continue/abort/skip phase applies once every file is
// resolved.
type Operation int

const (
	Merge Operation = iota
	Rebase
	RebaseInteractive
)

// IsRebase reports whether the operation is any kind of rebase.
func (o Operation) IsRebase() bool {
	return o == Rebase || o == RebaseInteractive
}

func (o Operation) String() string {
	switch o {
	case Merge:
		return "Merge"
	case Rebase:
		return "Rebase"
	case RebaseInteractive:
		return "Interactive Rebase"
	default:
		return "Unknown"
	}
}
