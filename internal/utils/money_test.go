package utils

import "testing"

func TestFormatCOP(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "$0"},
		{4000, "$4.000"},
		{16000, "$16.000"},
		{1234567, "$1.234.567"},
		{-4000, "-$4.000"},
	}
	for _, c := range cases {
		if got := FormatCOP(c.in); got != c.want {
			t.Fatalf("FormatCOP(%d) = %q, want %q", c.in, got, c.want)
		}
	}
}
