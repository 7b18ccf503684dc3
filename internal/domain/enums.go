package domain

// PolicyMode selects how the interval policy reacts to scores.
type PolicyMode string

const (
	// PolicyModeScored grows, keeps or resets the interval depending on the score.
	PolicyModeScored PolicyMode = "scored"
	// PolicyModeFixed always schedules the next review a fixed number of days out.
	PolicyModeFixed PolicyMode = "fixed"
)

func (m PolicyMode) String() string { return string(m) }

func (m PolicyMode) IsValid() bool {
	switch m {
	case PolicyModeScored, PolicyModeFixed:
		return true
	}
	return false
}
