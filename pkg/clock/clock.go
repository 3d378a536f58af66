// Package clock converts between wall-clock strings and minute offsets.
package clock

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const (
	// RangeStart is the earliest selectable time of day, 7:00 in minutes.
	RangeStart = 7 * 60
	// RangeEnd is the latest selectable time of day, 23:00 in minutes.
	RangeEnd = 23 * 60
)

// ErrInvalid reports a clock string that does not describe a time inside the
// selectable range.
var ErrInvalid = errors.New("clock: invalid time")

// TimeOfDay is a minute offset from midnight or the unspecified marker.
// The zero value is unspecified.
type TimeOfDay struct {
	minutes int
	known   bool
}

// Unspecified is the "no bound given" marker.
var Unspecified = TimeOfDay{}

// Minutes returns a concrete time of day at m minutes past midnight.
func Minutes(m int) TimeOfDay {
	return TimeOfDay{minutes: m, known: true}
}

// Known reports whether t carries a concrete time.
func (t TimeOfDay) Known() bool {
	return t.known
}

// Minutes returns the minute offset. Only meaningful when Known is true.
func (t TimeOfDay) Minutes() int {
	return t.minutes
}

// String renders "H:MM" with an unpadded hour, or "" when unspecified.
func (t TimeOfDay) String() string {
	if !t.known {
		return ""
	}
	return FormatMinutes(t.minutes)
}

// FormatMinutes renders a minute offset as "H:MM".
func FormatMinutes(minutes int) string {
	return fmt.Sprintf("%d:%02d", minutes/60, minutes%60)
}

// legacyAny is how the original storage format spells "unspecified".
const legacyAny = -1

// MarshalJSON encodes the unspecified marker as -1 to stay readable by the
// original sheet backend.
func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	if !t.known {
		return []byte(strconv.Itoa(legacyAny)), nil
	}
	return []byte(strconv.Itoa(t.minutes)), nil
}

// UnmarshalJSON accepts null, -1, or a minute offset.
func (t *TimeOfDay) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		*t = Unspecified
		return nil
	}
	var m int
	if err := json.Unmarshal(b, &m); err != nil {
		return err
	}
	if m == legacyAny {
		*t = Unspecified
		return nil
	}
	*t = Minutes(m)
	return nil
}

var clockPattern = regexp.MustCompile(`^(\d{1,2}):(\d{1,2})$`)

// Parse reads "H:MM" or "HH:MM" into a TimeOfDay. Leading and trailing
// whitespace is ignored. An empty string or the "--:--" placeholder parses to
// Unspecified. Hours outside 7..23 or minutes outside 0..59 return ErrInvalid.
func Parse(text string) (TimeOfDay, error) {
	t := strings.TrimSpace(text)
	if t == "" || t == "--:--" {
		return Unspecified, nil
	}
	m := clockPattern.FindStringSubmatch(t)
	if m == nil {
		return Unspecified, ErrInvalid
	}
	hour, _ := strconv.Atoi(m[1])
	min, _ := strconv.Atoi(m[2])
	if hour < 7 || hour > 23 || min < 0 || min > 59 {
		return Unspecified, ErrInvalid
	}
	return Minutes(hour*60 + min), nil
}

// NormalizeWidth maps full-width digits and the full-width colon to their
// ASCII equivalents so Parse only ever sees half-width input. Everything else
// passes through unchanged.
func NormalizeWidth(text string) string {
	if text == "" {
		return ""
	}
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch {
		case r >= '０' && r <= '９':
			r = r - '０' + '0'
		case r == '：':
			r = ':'
		}
		b.WriteRune(r)
	}
	return b.String()
}

// AutoColon progressively formats free-typed time input: once more than two
// digits are present without a colon, a colon is inserted after the second
// digit; when a colon already exists each side is capped at two digits. This
// is display shaping only, not validation.
func AutoColon(raw string) string {
	colon := strings.IndexByte(raw, ':')
	if colon == -1 {
		digits := digitsOnly(raw)
		if len(digits) <= 2 {
			return digits
		}
		if len(digits) > 4 {
			digits = digits[:4]
		}
		return digits[:2] + ":" + digits[2:]
	}
	before := digitsOnly(raw[:colon])
	after := digitsOnly(raw[colon+1:])
	if len(before) > 2 {
		before = before[:2]
	}
	if len(after) > 2 {
		after = after[:2]
	}
	if after == "" {
		return before
	}
	return before + ":" + after
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
