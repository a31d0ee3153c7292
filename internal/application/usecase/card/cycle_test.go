package card

import (
	"errors"
	"testing"
	"time"

	domainerror "github.com/controle-financeiro/backend/internal/domain/error"
)

func date(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

func TestComputeCycle(t *testing.T) {
	tests := []struct {
		name            string
		today           time.Time
		closingDay      int
		dueDay          int
		refMonth        int
		refYear         int
		wantClosing     time.Time
		wantDue         time.Time
		wantPrevClosing time.Time
	}{
		{
			name:            "after closing day rolls to next month",
			today:           date(2024, 3, 15),
			closingDay:      10,
			dueDay:          5,
			wantClosing:     date(2024, 4, 10),
			wantDue:         date(2024, 5, 5),
			wantPrevClosing: date(2024, 3, 10),
		},
		{
			name:            "before closing day stays in current month",
			today:           date(2024, 3, 8),
			closingDay:      10,
			dueDay:          5,
			wantClosing:     date(2024, 3, 10),
			wantDue:         date(2024, 4, 5),
			wantPrevClosing: date(2024, 2, 10),
		},
		{
			name:            "on closing day stays in current month",
			today:           date(2024, 3, 10),
			closingDay:      10,
			dueDay:          5,
			wantClosing:     date(2024, 3, 10),
			wantDue:         date(2024, 4, 5),
			wantPrevClosing: date(2024, 2, 10),
		},
		{
			name:            "due day after closing day stays in closing month",
			today:           date(2024, 3, 5),
			closingDay:      10,
			dueDay:          20,
			wantClosing:     date(2024, 3, 10),
			wantDue:         date(2024, 3, 20),
			wantPrevClosing: date(2024, 2, 10),
		},
		{
			name:            "due day equal to closing day stays in closing month",
			today:           date(2024, 3, 5),
			closingDay:      10,
			dueDay:          10,
			wantClosing:     date(2024, 3, 10),
			wantDue:         date(2024, 3, 10),
			wantPrevClosing: date(2024, 2, 10),
		},
		{
			name:            "rollover across year boundary",
			today:           date(2024, 12, 28),
			closingDay:      20,
			dueDay:          10,
			wantClosing:     date(2025, 1, 20),
			wantDue:         date(2025, 2, 10),
			wantPrevClosing: date(2024, 12, 20),
		},
		{
			name:            "previous closing across year boundary",
			today:           date(2024, 1, 5),
			closingDay:      10,
			dueDay:          20,
			wantClosing:     date(2024, 1, 10),
			wantDue:         date(2024, 1, 20),
			wantPrevClosing: date(2023, 12, 10),
		},
		{
			name:            "explicit reference month overrides today",
			today:           date(2024, 3, 5),
			closingDay:      10,
			dueDay:          5,
			refMonth:        6,
			refYear:         2024,
			wantClosing:     date(2024, 6, 10),
			wantDue:         date(2024, 7, 5),
			wantPrevClosing: date(2024, 5, 10),
		},
		{
			name:            "explicit reference month ignores today's closing rollover",
			today:           date(2024, 3, 15),
			closingDay:      10,
			dueDay:          5,
			refMonth:        6,
			refYear:         2024,
			wantClosing:     date(2024, 6, 10),
			wantDue:         date(2024, 7, 5),
			wantPrevClosing: date(2024, 5, 10),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cycle, err := ComputeCycle(tt.today, tt.closingDay, tt.dueDay, tt.refMonth, tt.refYear)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !cycle.ClosingDate.Equal(tt.wantClosing) {
				t.Errorf("closing date: got %v, want %v", cycle.ClosingDate, tt.wantClosing)
			}
			if !cycle.DueDate.Equal(tt.wantDue) {
				t.Errorf("due date: got %v, want %v", cycle.DueDate, tt.wantDue)
			}
			if !cycle.PreviousClosingDate.Equal(tt.wantPrevClosing) {
				t.Errorf("previous closing date: got %v, want %v", cycle.PreviousClosingDate, tt.wantPrevClosing)
			}
		})
	}
}

func TestComputeCycleOrdering(t *testing.T) {
	today := date(2024, 5, 17)
	for closingDay := 1; closingDay <= 28; closingDay++ {
		for dueDay := 1; dueDay <= 28; dueDay++ {
			cycle, err := ComputeCycle(today, closingDay, dueDay, 0, 0)
			if err != nil {
				t.Fatalf("closing %d due %d: unexpected error: %v", closingDay, dueDay, err)
			}
			if !cycle.PreviousClosingDate.Before(cycle.ClosingDate) {
				t.Errorf("closing %d due %d: previous closing %v not before closing %v",
					closingDay, dueDay, cycle.PreviousClosingDate, cycle.ClosingDate)
			}
			if cycle.DueDate.Before(cycle.ClosingDate) {
				t.Errorf("closing %d due %d: due %v before closing %v",
					closingDay, dueDay, cycle.DueDate, cycle.ClosingDate)
			}
		}
	}
}

func TestComputeCycleInvalidDays(t *testing.T) {
	tests := []struct {
		name       string
		closingDay int
		dueDay     int
		wantErr    error
	}{
		{name: "closing day zero", closingDay: 0, dueDay: 10, wantErr: domainerror.ErrInvalidCycleDay},
		{name: "closing day above 31", closingDay: 32, dueDay: 10, wantErr: domainerror.ErrInvalidCycleDay},
		{name: "due day negative", closingDay: 10, dueDay: -1, wantErr: domainerror.ErrInvalidCycleDay},
		{name: "closing day 31 in short month", closingDay: 31, dueDay: 10, wantErr: domainerror.ErrCycleDayOutOfMonth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ComputeCycle(date(2024, 4, 5), tt.closingDay, tt.dueDay, 0, 0)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("got error %v, want %v", err, tt.wantErr)
			}
			var cardErr *domainerror.CardError
			if !errors.As(err, &cardErr) {
				t.Errorf("expected *CardError, got %T", err)
			}
		})
	}
}

func TestNextCycles(t *testing.T) {
	cycles, err := NextCycles(date(2024, 11, 25), 20, 10, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cycles) != 3 {
		t.Fatalf("expected 3 cycles, got %d", len(cycles))
	}

	wantClosings := []time.Time{date(2024, 12, 20), date(2025, 1, 20), date(2025, 2, 20)}
	wantDues := []time.Time{date(2025, 1, 10), date(2025, 2, 10), date(2025, 3, 10)}
	for i, cycle := range cycles {
		if !cycle.ClosingDate.Equal(wantClosings[i]) {
			t.Errorf("cycle %d closing: got %v, want %v", i, cycle.ClosingDate, wantClosings[i])
		}
		if !cycle.DueDate.Equal(wantDues[i]) {
			t.Errorf("cycle %d due: got %v, want %v", i, cycle.DueDate, wantDues[i])
		}
	}

	// Consecutive windows must tile with no gap or overlap.
	for i := 1; i < len(cycles); i++ {
		if !cycles[i].PreviousClosingDate.Equal(cycles[i-1].ClosingDate) {
			t.Errorf("cycle %d window does not start where cycle %d closed", i, i-1)
		}
	}
}

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		month int
		year  int
		want  int
	}{
		{month: 1, year: 2024, want: 31},
		{month: 2, year: 2024, want: 29},
		{month: 2, year: 2023, want: 28},
		{month: 4, year: 2024, want: 30},
		{month: 12, year: 2024, want: 31},
	}

	for _, tt := range tests {
		if got := daysInMonth(tt.month, tt.year); got != tt.want {
			t.Errorf("daysInMonth(%d, %d) = %d, want %d", tt.month, tt.year, got, tt.want)
		}
	}
}
