package domain

// State is the display state of the calculator form.
type State int

const (
	// Empty means no result is shown.
	Empty State = iota
	// Computed means a LoanResult is shown.
	Computed
)

func (s State) String() string {
	switch s {
	case Empty:
		return "empty"
	case Computed:
		return "computed"
	}
	return "unknown"
}
