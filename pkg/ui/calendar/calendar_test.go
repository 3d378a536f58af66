package calendar

import (
	"strings"
	"testing"
	"time"

	"tableflip.dev/shifthope/pkg/schedule"
)

func TestRenderFebruary2025(t *testing.T) {
	key := schedule.DateKey{Year: 2025, Month: time.February, Day: 1}
	info := map[schedule.DateKey]DayInfo{
		key: {HasEntry: true, Summary: "9:00-12:00"},
	}

	out := Render(2025, time.February, info, Options{
		CellWidth:     5,
		ShowHeader:    true,
		ShowSummaries: true,
	})
	lines := strings.Split(out, "\n")

	// Header, then 5 weeks of number+summary pairs.
	if want := 1 + 5*2; len(lines) != want {
		t.Fatalf("line count = %d, want %d\n%s", len(lines), want, out)
	}
	if !strings.HasPrefix(lines[0], "Su") {
		t.Errorf("header = %q, want Su first", lines[0])
	}
	// The first row is padded with the tail of January.
	if !strings.HasPrefix(lines[1], "26") {
		t.Errorf("first row = %q, want it to start with 26", lines[1])
	}
	if !strings.Contains(lines[1], " 1*") {
		t.Errorf("first row = %q, want entry marker on the 1st", lines[1])
	}
	if !strings.Contains(lines[2], "9:00-") {
		t.Errorf("summary row = %q, want truncated slot label", lines[2])
	}
}

func TestRenderNoSummariesNoHeader(t *testing.T) {
	out := Render(2025, time.March, nil, Options{CellWidth: 4})
	lines := strings.Split(out, "\n")

	// March 2025 spans six Sunday-first weeks.
	if len(lines) != 6 {
		t.Fatalf("line count = %d, want 6\n%s", len(lines), out)
	}
	for i, line := range lines {
		if strings.HasSuffix(line, " ") {
			t.Errorf("line %d has trailing spaces: %q", i, line)
		}
	}
}

func TestRenderSummarySkipsAdjacentMonths(t *testing.T) {
	// Jan 26 pads the front of February's grid; its summary must not leak in.
	key := schedule.DateKey{Year: 2025, Month: time.January, Day: 26}
	info := map[schedule.DateKey]DayInfo{
		key: {HasEntry: true, Summary: "all day"},
	}

	out := Render(2025, time.February, info, Options{CellWidth: 8, ShowSummaries: true})
	if strings.Contains(out, "all day") {
		t.Errorf("adjacent-month summary leaked into output:\n%s", out)
	}
}

func TestPad(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"ab", 4, "ab  "},
		{"abcd", 4, "abcd"},
		{"abcdef", 4, "abcd"},
		{"a…", 4, "a…  "},
	}
	for _, tc := range tests {
		if got := pad(tc.in, tc.width); got != tc.want {
			t.Errorf("pad(%q, %d) = %q, want %q", tc.in, tc.width, got, tc.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"9:00-12:00", 10, "9:00-12:00"},
		{"9:00-12:00", 6, "9:00-…"},
		{"all day", 7, "all day"},
	}
	for _, tc := range tests {
		if got := truncate(tc.in, tc.width); got != tc.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tc.in, tc.width, got, tc.want)
		}
	}
}
