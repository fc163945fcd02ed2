package types

// ExitStatus describes what ending a stake on the current day would mean.
type ExitStatus string

const (
	ExitPending ExitStatus = "PENDING"
	ExitEarly   ExitStatus = "EARLY"
	ExitMid     ExitStatus = "MID"
	ExitTerm    ExitStatus = "TERM"
	ExitLate    ExitStatus = "LATE"
)

func (s ExitStatus) String() string {
	return string(s)
}

// IsEarly is true while ending the stake would incur an early end penalty.
func (s ExitStatus) IsEarly() bool {
	return s == ExitPending || s == ExitEarly || s == ExitMid
}
