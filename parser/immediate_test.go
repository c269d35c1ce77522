package parser

import "testing"

func TestParseImmediate(t *testing.T) {
	cases := []struct {
		in   string
		want int32
	}{
		{"10", 10},
		{"-10", -10},
		{"0", 0},
		{"0x1F", 31},
		{"0X1f", 31},
		{"0b1010", 10},
		{"0o17", 15},
		{"-0x800", -2048},
		{"2047", 2047},
		{"0xFFFFFFFF", -1},
		{"0x80000000", -2147483648},
	}
	for _, c := range cases {
		got, err := ParseImmediate(c.in)
		if err != nil {
			t.Fatalf("ParseImmediate(%q) returned error: %v", c.in, err)
		}
		if got != c.want {
			t.Errorf("ParseImmediate(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestParseImmediateErrors(t *testing.T) {
	for _, in := range []string{"", "notanumber", "0xZZ", "0x1FFFFFFFFF"} {
		if _, err := ParseImmediate(in); err == nil {
			t.Errorf("ParseImmediate(%q) expected error, got none", in)
		}
	}
}
