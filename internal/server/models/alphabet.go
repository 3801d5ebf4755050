package models

type Alphabet struct {
	ID          int64
	Name        string
	LanguageID  int64
	Status      Status
	Description string
}
