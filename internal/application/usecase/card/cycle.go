// Package card contains card-related use cases, including the invoice
// billing-cycle calculator.
package card

import (
	"fmt"
	"time"

	domainerror "github.com/controle-financeiro/backend/internal/domain/error"
)

// Cycle represents one invoice billing cycle of a card: the window of
// purchases (PreviousClosingDate, ClosingDate] and the date the invoice
// falls due.
type Cycle struct {
	Month               int
	Year                int
	ClosingDate         time.Time
	DueDate             time.Time
	PreviousClosingDate time.Time
}

// MinCycleDay and MaxCycleDay bound the configurable closing/due days.
const (
	MinCycleDay = 1
	MaxCycleDay = 31
)

// ValidateCycleDay checks that a closing or due day is a plausible month day.
func ValidateCycleDay(day int) error {
	if day < MinCycleDay || day > MaxCycleDay {
		return domainerror.NewCardError(
			domainerror.ErrCodeInvalidCycleDay,
			fmt.Sprintf("day must be between %d and %d", MinCycleDay, MaxCycleDay),
			domainerror.ErrInvalidCycleDay,
		)
	}
	return nil
}

// ComputeCycle computes the billing cycle of a card for the given reference
// month and year. When refMonth is zero, today's month and year are used,
// and if today's day-of-month has already passed the closing day the cycle
// advances one month: the invoice currently open is the next one. An
// explicit reference month is taken as-is.
func ComputeCycle(today time.Time, closingDay, dueDay, refMonth, refYear int) (*Cycle, error) {
	if err := ValidateCycleDay(closingDay); err != nil {
		return nil, err
	}
	if err := ValidateCycleDay(dueDay); err != nil {
		return nil, err
	}

	month := refMonth
	year := refYear
	if year == 0 {
		year = today.Year()
	}
	if month == 0 {
		month = int(today.Month())
		if today.Day() > closingDay {
			month, year = advanceMonth(month, year)
		}
	}

	return cycleAt(closingDay, dueDay, month, year)
}

// NextCycles returns count consecutive cycles starting from the cycle
// currently open as of today. Used for forward-looking projections without
// materializing any records.
func NextCycles(today time.Time, closingDay, dueDay, count int) ([]*Cycle, error) {
	if err := ValidateCycleDay(closingDay); err != nil {
		return nil, err
	}
	if err := ValidateCycleDay(dueDay); err != nil {
		return nil, err
	}

	month := int(today.Month())
	year := today.Year()
	if today.Day() > closingDay {
		month, year = advanceMonth(month, year)
	}

	cycles := make([]*Cycle, 0, count)
	for i := 0; i < count; i++ {
		cycle, err := cycleAt(closingDay, dueDay, month, year)
		if err != nil {
			return nil, err
		}
		cycles = append(cycles, cycle)
		month, year = advanceMonth(month, year)
	}
	return cycles, nil
}

// cycleAt computes the cycle closing in the given month/year, with no
// rollover applied. Every day is validated against the real length of the
// month it lands in before the date is built.
func cycleAt(closingDay, dueDay, month, year int) (*Cycle, error) {
	if err := validateDayInMonth(closingDay, month, year); err != nil {
		return nil, err
	}
	closingDate := dateAt(year, month, closingDay)

	prevMonth, prevYear := retreatMonth(month, year)
	if err := validateDayInMonth(closingDay, prevMonth, prevYear); err != nil {
		return nil, err
	}
	previousClosingDate := dateAt(prevYear, prevMonth, closingDay)

	// Issuers bill after the statement closes: a due day earlier in the
	// month than the closing day belongs to the following month.
	dueMonth, dueYear := month, year
	if dueDay < closingDay {
		dueMonth, dueYear = advanceMonth(dueMonth, dueYear)
	}
	if err := validateDayInMonth(dueDay, dueMonth, dueYear); err != nil {
		return nil, err
	}
	dueDate := dateAt(dueYear, dueMonth, dueDay)

	return &Cycle{
		Month:               month,
		Year:                year,
		ClosingDate:         closingDate,
		DueDate:             dueDate,
		PreviousClosingDate: previousClosingDate,
	}, nil
}

func validateDayInMonth(day, month, year int) error {
	if day > daysInMonth(month, year) {
		return domainerror.NewCardError(
			domainerror.ErrCodeCycleDayOutOfMonth,
			fmt.Sprintf("day %d does not exist in %04d-%02d", day, year, month),
			domainerror.ErrCycleDayOutOfMonth,
		)
	}
	return nil
}

// daysInMonth returns the number of days in the given month.
func daysInMonth(month, year int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func dateAt(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

func advanceMonth(month, year int) (int, int) {
	month++
	if month > 12 {
		month = 1
		year++
	}
	return month, year
}

func retreatMonth(month, year int) (int, int) {
	month--
	if month < 1 {
		month = 12
		year--
	}
	return month, year
}
