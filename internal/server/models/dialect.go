package models

type Dialect struct {
	ID         int64
	Name       string
	LanguageID int64
}
