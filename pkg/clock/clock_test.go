package clock

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestParseValid(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"7:00", 420},
		{"07:05", 425},
		{"9:5", 545},
		{"23:00", 1380},
		{"23:59", 1439},
		{"  10:30  ", 630},
	}
	for _, tc := range cases {
		got, err := Parse(tc.in)
		if err != nil {
			t.Fatalf("Parse(%q) unexpected error: %v", tc.in, err)
		}
		if !got.Known() || got.Minutes() != tc.want {
			t.Fatalf("Parse(%q) = %v, want %d", tc.in, got, tc.want)
		}
	}
}

func TestParseUnspecified(t *testing.T) {
	for _, in := range []string{"", "--:--", "  ", " --:-- "} {
		got, err := Parse(in)
		if err != nil {
			t.Fatalf("Parse(%q) unexpected error: %v", in, err)
		}
		if got.Known() {
			t.Fatalf("Parse(%q) = %v, want unspecified", in, got)
		}
	}
}

func TestParseInvalid(t *testing.T) {
	for _, in := range []string{"25:00", "6:59", "24:00", "7:61", "abc", "7:5:3", "7", ":30", "7:", "-7:30"} {
		if _, err := Parse(in); !errors.Is(err, ErrInvalid) {
			t.Fatalf("Parse(%q) error = %v, want ErrInvalid", in, err)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	for m := RangeStart; m <= RangeEnd; m++ {
		got, err := Parse(FormatMinutes(m))
		if err != nil {
			t.Fatalf("round trip %d: %v", m, err)
		}
		if got.Minutes() != m {
			t.Fatalf("round trip %d: got %d", m, got.Minutes())
		}
	}
}

func TestFormatMinutes(t *testing.T) {
	if got := FormatMinutes(420); got != "7:00" {
		t.Fatalf("FormatMinutes(420) = %q", got)
	}
	if got := FormatMinutes(1385); got != "23:05" {
		t.Fatalf("FormatMinutes(1385) = %q", got)
	}
}

func TestNormalizeWidth(t *testing.T) {
	cases := []struct{ in, want string }{
		{"１０：３０", "10:30"},
		{"10:30", "10:30"},
		{"９:０5", "9:05"},
		{"", ""},
		{"abc", "abc"},
	}
	for _, tc := range cases {
		if got := NormalizeWidth(tc.in); got != tc.want {
			t.Fatalf("NormalizeWidth(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestAutoColon(t *testing.T) {
	cases := []struct{ in, want string }{
		{"1", "1"},
		{"10", "10"},
		{"103", "10:3"},
		{"1030", "10:30"},
		{"10305", "10:30"},
		{"10:3", "10:3"},
		{"10:305", "10:30"},
		{"103:05", "10:05"},
		{"10:", "10"},
		{"a1b0", "10"},
	}
	for _, tc := range cases {
		if got := AutoColon(tc.in); got != tc.want {
			t.Fatalf("AutoColon(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestTimeOfDayJSON(t *testing.T) {
	b, err := json.Marshal(Minutes(540))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != "540" {
		t.Fatalf("marshal concrete = %s", b)
	}
	b, err = json.Marshal(Unspecified)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != "-1" {
		t.Fatalf("marshal unspecified = %s", b)
	}

	var got TimeOfDay
	if err := json.Unmarshal([]byte("-1"), &got); err != nil {
		t.Fatalf("unmarshal -1: %v", err)
	}
	if got.Known() {
		t.Fatalf("unmarshal -1: want unspecified")
	}
	if err := json.Unmarshal([]byte("null"), &got); err != nil {
		t.Fatalf("unmarshal null: %v", err)
	}
	if got.Known() {
		t.Fatalf("unmarshal null: want unspecified")
	}
	if err := json.Unmarshal([]byte("615"), &got); err != nil {
		t.Fatalf("unmarshal 615: %v", err)
	}
	if got.Minutes() != 615 {
		t.Fatalf("unmarshal 615: got %d", got.Minutes())
	}
}
