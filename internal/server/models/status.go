package models

// Status is the moderation state shared by words and alphabets.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

const (
	DefaultWordStatus     = StatusApproved
	DefaultAlphabetStatus = StatusPending
)

// Valid reports whether s is one of the three known states.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}
