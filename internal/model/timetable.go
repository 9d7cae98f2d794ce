package model

// PeriodsPerDay is the fixed number of display slots in a timetable day.
const PeriodsPerDay = 6

// TimetableEntry is a single scheduled subject for a class.
// (class_id, day, period) identifies an entry in practice.
type TimetableEntry struct {
	ClassID   int    `json:"class_id"`
	Day       string `json:"day"`
	Period    int    `json:"period"`
	Subject   string `json:"subject"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// TimetableDay is one day of the display grid: a fixed-length ordered
// sequence of subject names, empty string meaning a free period.
type TimetableDay struct {
	Day     string   `json:"day"`
	Periods []string `json:"periods"`
}
