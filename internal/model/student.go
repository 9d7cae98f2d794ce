package model

// Student represents an enrolled student.
type Student struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	ClassID int    `json:"class_id"`
}

// StudentRow is a student joined with its class name for listings.
type StudentRow struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	ClassName string `json:"class"`
}

// RosterEntry is a student as it appears in a class roster.
type RosterEntry struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
