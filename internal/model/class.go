package model

// Class represents a named group that students belong to and at most
// one teacher is assigned to.
type Class struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
