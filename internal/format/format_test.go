package format

import "testing"

func TestPrice(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "$0.00"},
		{9.5, "$9.50"},
		{12, "$12.00"},
		{1234.5, "$1,234.50"},
		{1234567.89, "$1,234,567.89"},
		{2.999, "$3.00"},
		{-4.25, "-$4.25"},
	}
	for _, c := range cases {
		if got := Price(c.in); got != c.want {
			t.Errorf("Price(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestSlug(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Midnight Truffle", "midnight-truffle"},
		{"  Alpine   White  ", "alpine-white"},
		{"85% Cacao Bar!", "85-cacao-bar"},
		{"---", ""},
		{"Crème Brûlée", "cr-me-br-l-e"},
	}
	for _, c := range cases {
		if got := Slug(c.in); got != c.want {
			t.Errorf("Slug(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
