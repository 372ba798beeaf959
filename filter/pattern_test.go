package filter

import "testing"

func TestMatch(t *testing.T) {
	cases := []struct {
		line string
		want bool
	}{
		{"0000000000C2", true},
		{"0000000000001C2main", true},
		{"0000000000C2foo", true},
		{"0000000000abcC2", true},
		{"0000000000C2 trailing text", true},
		{"00000000000000C2", true},
		{"000000000C2foo", false},
		{"0000000000", false},
		{"0000000000C3foo", false},
		{"0000000000c2foo", false},
		{" 0000000000C2", false},
		{"x0000000000C2", false},
		{"hello world", false},
		{"", false},
	}
	for _, c := range cases {
		if got := Match(c.line); got != c.want {
			t.Errorf("Match(%q) = %v, want %v", c.line, got, c.want)
		}
	}
}
