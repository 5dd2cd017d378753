package models

// Theme groups posts by subject.
type Theme struct {
	ID          int    `json:"id"`
	Description string `json:"descricao"`
}
