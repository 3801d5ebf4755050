package models

// Language is referenced by dialects, words and alphabets.
type Language struct {
	ID        int64  `json:"id" yaml:"-"`
	Name      string `json:"name" yaml:"name"`
	Code      string `json:"code" yaml:"code"`
	WordCount int    `json:"word_count" yaml:"-"`
}
