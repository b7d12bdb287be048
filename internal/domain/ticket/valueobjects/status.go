package valueobjects

// Status is a ticket's lifecycle state. Stored as free text; the raw value is
// preserved so rows with legacy statuses round-trip unchanged, and anything
// outside the canonical vocabulary ranks after all known states.
type Status string

const (
	StatusOpen       Status = "open"
	StatusInProgress Status = "in progress"
	StatusClosed     Status = "closed"
)

// rankUnknown places out-of-vocabulary statuses after the known ones.
const rankUnknown = 4

var statusRanks = map[Status]int{
	StatusOpen:       1,
	StatusInProgress: 2,
	StatusClosed:     3,
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	_, ok := statusRanks[s]
	return ok
}

// Rank is the sort key for ticket listings: open before in progress before
// closed, unknown last.
func (s Status) Rank() int {
	if rank, ok := statusRanks[s]; ok {
		return rank
	}
	return rankUnknown
}
