package numfmt

import "testing"

func TestSanitize_DigitMode(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{in: "", want: ""},
		{in: "abc", want: ""},
		{in: "1,234", want: "1234"},
		{in: "12.5", want: "125"},
		{in: " 0 0 7 ", want: "007"},
		{in: "-42", want: "42"},
		{in: "٣4", want: "4"},
		{in: "฿1,500,000", want: "1500000"},
	}
	for _, tc := range cases {
		if got := Sanitize(tc.in, false); got != tc.want {
			t.Fatalf("Sanitize(%q, false): got %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSanitize_DecimalMode_KeepsFirstPoint(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{in: "12..5", want: "12.5"},
		{in: "1.2.3", want: "1.23"},
		{in: ".", want: "."},
		{in: "..", want: "."},
		{in: "1,234.", want: "1234."},
		{in: "a.b.c1", want: ".1"},
	}
	for _, tc := range cases {
		if got := Sanitize(tc.in, true); got != tc.want {
			t.Fatalf("Sanitize(%q, true): got %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestStripSeparators(t *testing.T) {
	if got, want := StripSeparators("1,234,567.8"), "1234567.8"; got != want {
		t.Fatalf("strip: got %q, want %q", got, want)
	}
	if got, want := StripSeparators("12"), "12"; got != want {
		t.Fatalf("strip without separators: got %q, want %q", got, want)
	}
}
