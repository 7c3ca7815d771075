package report

import (
	"time"

	"fintrack/internal/models"
)

// Window names a predefined time filter over expenses.
type Window string

const (
	WindowAll       Window = "all"
	WindowToday     Window = "today"
	WindowYesterday Window = "yesterday"
	WindowThisWeek  Window = "thisWeek"
	WindowThisMonth Window = "thisMonth"
	WindowCustom    Window = "custom"
)

// Windows lists every supported window.
var Windows = []Window{WindowAll, WindowToday, WindowYesterday, WindowThisWeek, WindowThisMonth, WindowCustom}

// ParseWindow resolves a window name. An empty name means WindowAll.
func ParseWindow(s string) (Window, bool) {
	if s == "" {
		return WindowAll, true
	}
	for _, w := range Windows {
		if string(w) == s {
			return w, true
		}
	}
	return "", false
}

// DateRange bounds a custom window. Both ends are inclusive whole days; a
// zero bound leaves the window unfiltered.
type DateRange struct {
	Start models.Date
	End   models.Date
}

// Complete reports whether both bounds are set.
func (r DateRange) Complete() bool {
	return !r.Start.IsZero() && !r.End.IsZero()
}

// Field selects which expense timestamp a window is applied to.
type Field int

const (
	// ByCreatedAt filters on the insertion time of the record.
	ByCreatedAt Field = iota
	// ByExpenseDate filters on the user-entered expense date.
	ByExpenseDate
)

// WeekStart is the first day of a "this week" window.
const WeekStart = time.Sunday

// StartOfWeek returns midnight of the most recent WeekStart at or before now.
func StartOfWeek(now time.Time) time.Time {
	day := startOfDay(now)
	offset := (int(day.Weekday()) - int(WeekStart) + 7) % 7
	return day.AddDate(0, 0, -offset)
}

// FilterExpenses applies window to expenses using their creation time, with
// now as the reference clock. Expenses without a creation time always pass.
// WindowAll, unknown windows and incomplete custom ranges return expenses
// unchanged.
func FilterExpenses(expenses []models.Expense, window Window, custom DateRange, now time.Time) []models.Expense {
	return FilterExpensesBy(ByCreatedAt, expenses, window, custom, now)
}

// FilterExpensesBy is FilterExpenses with an explicit timestamp field.
func FilterExpensesBy(field Field, expenses []models.Expense, window Window, custom DateRange, now time.Time) []models.Expense {
	match := matcher(window, custom, now)
	if match == nil {
		return expenses
	}

	out := make([]models.Expense, 0, len(expenses))
	for _, e := range expenses {
		ts, ok := timestamp(field, e, now.Location())
		if !ok || match(ts) {
			out = append(out, e)
		}
	}
	return out
}

func timestamp(field Field, e models.Expense, loc *time.Location) (time.Time, bool) {
	if field == ByExpenseDate {
		if e.Date.IsZero() {
			return time.Time{}, false
		}
		return e.Date.In(loc), true
	}
	if e.CreatedAt.IsZero() {
		return time.Time{}, false
	}
	return e.CreatedAt, true
}

// matcher returns nil when the window does not filter anything.
func matcher(window Window, custom DateRange, now time.Time) func(time.Time) bool {
	today := startOfDay(now)

	switch window {
	case WindowToday:
		return within(today, today.AddDate(0, 0, 1))
	case WindowYesterday:
		yesterday := today.AddDate(0, 0, -1)
		return within(yesterday, today)
	case WindowThisWeek:
		return notBefore(StartOfWeek(now))
	case WindowThisMonth:
		return notBefore(time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()))
	case WindowCustom:
		if !custom.Complete() {
			return nil
		}
		loc := now.Location()
		return within(custom.Start.In(loc), custom.End.In(loc).AddDate(0, 0, 1))
	}
	return nil
}

// within matches the half-open interval [from, to).
func within(from, to time.Time) func(time.Time) bool {
	return func(t time.Time) bool {
		return !t.Before(from) && t.Before(to)
	}
}

func notBefore(from time.Time) func(time.Time) bool {
	return func(t time.Time) bool {
		return !t.Before(from)
	}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
