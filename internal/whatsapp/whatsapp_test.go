package whatsapp

import (
	"strings"
	"testing"

	"servicevale/internal/domain/entities"
)

func TestDigits(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"9876543210", "9876543210"},
		{"+91 98765-43210", "919876543210"},
		{"(987) 654 3210", "9876543210"},
		{"", ""},
	}
	for _, c := range cases {
		if got := Digits(c.in); got != c.want {
			t.Fatalf("Digits(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestLink(t *testing.T) {
	got := Link("+91 98765-43210", "hello there")
	want := "whatsapp://send?phone=919876543210&text=hello+there"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestOrderLink(t *testing.T) {
	o := entities.ServiceOrder{
		ClientName:     "Asha Patel",
		ServiceboyName: "Ramesh",
		ServiceType:    "AC Repair",
		PhoneNumber:    "98765 43210",
		ServiceDate:    "2024-03-10",
		ServiceTime:    "14:30",
	}

	got := OrderLink(o)
	if !strings.HasPrefix(got, "whatsapp://send?phone=9876543210&text=") {
		t.Fatalf("unexpected link prefix: %q", got)
	}
	for _, frag := range []string{"Asha+Patel", "Ramesh", "AC+Repair", "10%2F03%2F2024", "2%3A30+PM"} {
		if !strings.Contains(got, frag) {
			t.Fatalf("link missing %q: %q", frag, got)
		}
	}
}
