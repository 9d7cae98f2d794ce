package service

import (
	"testing"

	"github.com/schoolhub/schoolhub-server/internal/model"
)

func entry(day string, period int, subject string) model.TimetableEntry {
	return model.TimetableEntry{
		ClassID: 1,
		Day:     day,
		Period:  period,
		Subject: subject,
		// Times do not participate in the grid.
		StartTime: "09:00",
		EndTime:   "09:45",
	}
}

func TestBuildGridPlacesPeriodsIntoSlots(t *testing.T) {
	grid := buildGrid([]model.TimetableEntry{
		entry("Monday", 2, "Math"),
		entry("Wednesday", 5, "Art"),
	})

	if len(grid) != 2 {
		t.Fatalf("expected 2 days, got %d", len(grid))
	}

	if grid[0].Day != "Monday" {
		t.Fatalf("expected Monday first, got %s", grid[0].Day)
	}
	wantMonday := []string{"", "Math", "", "", "", ""}
	for i, subject := range wantMonday {
		if grid[0].Periods[i] != subject {
			t.Fatalf("Monday period %d: expected %q, got %q", i+1, subject, grid[0].Periods[i])
		}
	}

	if grid[1].Day != "Wednesday" {
		t.Fatalf("expected Wednesday second, got %s", grid[1].Day)
	}
	wantWednesday := []string{"", "", "", "", "Art", ""}
	for i, subject := range wantWednesday {
		if grid[1].Periods[i] != subject {
			t.Fatalf("Wednesday period %d: expected %q, got %q", i+1, subject, grid[1].Periods[i])
		}
	}
}

func TestBuildGridEmitsSixSlotsPerDay(t *testing.T) {
	grid := buildGrid([]model.TimetableEntry{entry("Friday", 1, "Science")})

	if len(grid) != 1 {
		t.Fatalf("expected 1 day, got %d", len(grid))
	}
	if len(grid[0].Periods) != model.PeriodsPerDay {
		t.Fatalf("expected %d periods, got %d", model.PeriodsPerDay, len(grid[0].Periods))
	}
}

func TestBuildGridDropsOutOfRangePeriods(t *testing.T) {
	grid := buildGrid([]model.TimetableEntry{
		entry("Monday", 7, "Phantom"),
		entry("Monday", 0, "Phantom"),
		entry("Monday", 3, "English"),
	})

	if len(grid) != 1 {
		t.Fatalf("expected 1 day, got %d", len(grid))
	}
	for i, subject := range grid[0].Periods {
		switch i {
		case 2:
			if subject != "English" {
				t.Fatalf("period 3: expected English, got %q", subject)
			}
		default:
			if subject != "" {
				t.Fatalf("period %d: expected empty, got %q", i+1, subject)
			}
		}
	}
}

func TestBuildGridDayWithOnlyInvalidPeriodsStillAppears(t *testing.T) {
	grid := buildGrid([]model.TimetableEntry{entry("Tuesday", 9, "Phantom")})

	if len(grid) != 1 {
		t.Fatalf("expected the day to appear, got %d days", len(grid))
	}
	for i, subject := range grid[0].Periods {
		if subject != "" {
			t.Fatalf("period %d: expected empty, got %q", i+1, subject)
		}
	}
}

func TestBuildGridSortsDaysAlphabetically(t *testing.T) {
	grid := buildGrid([]model.TimetableEntry{
		entry("Monday", 1, "a"),
		entry("Tuesday", 1, "b"),
		entry("Wednesday", 1, "c"),
		entry("Thursday", 1, "d"),
		entry("Friday", 1, "e"),
	})

	// Lexical, not weekday, order is the contract.
	want := []string{"Friday", "Monday", "Thursday", "Tuesday", "Wednesday"}
	if len(grid) != len(want) {
		t.Fatalf("expected %d days, got %d", len(want), len(grid))
	}
	for i, day := range want {
		if grid[i].Day != day {
			t.Fatalf("position %d: expected %s, got %s", i, day, grid[i].Day)
		}
	}
}

func TestBuildGridEmptyInput(t *testing.T) {
	grid := buildGrid(nil)
	if len(grid) != 0 {
		t.Fatalf("expected empty grid, got %d days", len(grid))
	}
}
