package copy

import (
	"reflect"
	"testing"
)

func TestParseDates(t *testing.T) {
	tests := []struct {
		input string
		want  []int
		ok    bool
	}{
		{"10,17,24", []int{10, 17, 24}, true},
		{" 3 , 7 ", []int{3, 7}, true},
		{"5,", []int{5}, true},
		{"", nil, false},
		{"0", nil, false},
		{"32", nil, false},
		{"ten", nil, false},
	}
	for _, tc := range tests {
		got, err := parseDates(tc.input, 31)
		if tc.ok {
			if err != nil || !reflect.DeepEqual(got, tc.want) {
				t.Errorf("parseDates(%q) = %v, %v; want %v", tc.input, got, err, tc.want)
			}
			continue
		}
		if err == nil {
			t.Errorf("parseDates(%q) = %v, want error", tc.input, got)
		}
	}

	if _, err := parseDates("30", 28); err == nil {
		t.Error("parseDates should respect the month length")
	}
}
