// Package schedule models one month of shift availability: date keys, per-day
// entries with up to two time windows, the display grid for a month, and the
// projection of time windows onto the visible day axis.
package schedule

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateKey identifies one calendar date. Its String form is zero padded
// ("2025-03-02") so lexicographic order matches calendar order.
type DateKey struct {
	Year  int
	Month time.Month
	Day   int
}

// KeyFor returns the DateKey for t in its own location.
func KeyFor(t time.Time) DateKey {
	return DateKey{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// ParseDateKey reads a "year-month-day" key. Both the padded canonical form
// and the unpadded legacy form ("2025-3-2") are accepted.
func ParseDateKey(s string) (DateKey, error) {
	parts := strings.Split(strings.TrimSpace(s), "-")
	if len(parts) != 3 {
		return DateKey{}, fmt.Errorf("schedule: bad date key %q", s)
	}
	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return DateKey{}, fmt.Errorf("schedule: bad date key %q", s)
		}
		nums[i] = n
	}
	k := DateKey{Year: nums[0], Month: time.Month(nums[1]), Day: nums[2]}
	if k.Month < time.January || k.Month > time.December || k.Day < 1 || k.Day > 31 {
		return DateKey{}, fmt.Errorf("schedule: bad date key %q", s)
	}
	return k, nil
}

func (k DateKey) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", k.Year, int(k.Month), k.Day)
}

// Legacy renders the unpadded form used by the original storage and sheet
// backend ("2025-3-2").
func (k DateKey) Legacy() string {
	return fmt.Sprintf("%d-%d-%d", k.Year, int(k.Month), k.Day)
}

// Time returns midnight local time on the keyed date.
func (k DateKey) Time() time.Time {
	return time.Date(k.Year, k.Month, k.Day, 0, 0, 0, 0, time.Local)
}

// Weekday returns the day of week, Sunday == 0.
func (k DateKey) Weekday() time.Weekday {
	return k.Time().Weekday()
}

// SameMonth reports whether k falls in the given year and month.
func (k DateKey) SameMonth(year int, month time.Month) bool {
	return k.Year == year && k.Month == month
}

// MarshalText makes DateKey usable as a JSON map key.
func (k DateKey) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText accepts padded and legacy forms.
func (k *DateKey) UnmarshalText(b []byte) error {
	parsed, err := ParseDateKey(string(b))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// ResolveDay turns a command-line date argument into a key within the given
// month. A bare number is a day of that month; a full date key is accepted as
// long as it falls in the month.
func ResolveDay(year int, month time.Month, arg string) (DateKey, error) {
	arg = strings.TrimSpace(arg)
	if day, err := strconv.Atoi(arg); err == nil {
		if day < 1 || day > DaysIn(year, month) {
			return DateKey{}, fmt.Errorf("schedule: day %d is not in %s %d", day, month, year)
		}
		return DateKey{Year: year, Month: month, Day: day}, nil
	}

	k, err := ParseDateKey(arg)
	if err != nil {
		return DateKey{}, err
	}
	if !k.SameMonth(year, month) {
		return DateKey{}, fmt.Errorf("schedule: %s is not in %s %d", k, month, year)
	}
	if k.Day > DaysIn(year, month) {
		return DateKey{}, fmt.Errorf("schedule: %s is not a real date", k)
	}
	return k, nil
}

// WeekKeys returns the seven keys of the Monday-anchored week containing k.
func WeekKeys(k DateKey) []DateKey {
	monOffset := (int(k.Weekday()) + 6) % 7
	mon := k.Time().AddDate(0, 0, -monOffset)
	keys := make([]DateKey, 0, 7)
	for i := 0; i < 7; i++ {
		keys = append(keys, KeyFor(mon.AddDate(0, 0, i)))
	}
	return keys
}
