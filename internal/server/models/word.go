package models

// Word belongs to a language and optionally to one of its dialects.
// SuggestedBy points at the user who proposed it, if any.
type Word struct {
	ID          int64
	Word        string
	LanguageID  int64
	DialectID   *int64
	Root        string
	Suffixes    string
	Meaning     string
	Status      Status
	SuggestedBy *int64
	Etymology   string
}
