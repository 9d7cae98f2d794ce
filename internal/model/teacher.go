package model

// Teacher represents a teaching staff member. ClassID is nil for
// teachers with no assigned class.
type Teacher struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Subject string `json:"subject"`
	ClassID *int   `json:"class_id,omitempty"`
}

// TeacherRow is a teacher joined with its class name for listings.
// ClassName is empty when the teacher has no assigned class.
type TeacherRow struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Subject   string `json:"subject"`
	ClassName string `json:"class"`
}

// TeacherClassInfo is a teacher's resolved class assignment with the
// number of students enrolled in it.
type TeacherClassInfo struct {
	ClassID      int
	ClassName    string
	Subject      string
	StudentCount int
}
