package uiutil

import (
	"testing"
	"time"
)

func TestFormatMoney(t *testing.T) {
	cases := map[float64]string{
		0:         "0.00",
		12.5:      "12.50",
		1250:      "1,250.00",
		1234567.8: "1,234,567.80",
		-999.999:  "-1,000.00",
	}
	for in, want := range cases {
		if got := FormatMoney(in); got != want {
			t.Errorf("FormatMoney(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestTruncateWithEllipsis(t *testing.T) {
	if got := TruncateWithEllipsis("Leather tote", 20); got != "Leather tote" {
		t.Fatalf("unexpected truncation: %q", got)
	}
	if got := TruncateWithEllipsis("Leather tote with strap", 8); got != "Leather…" {
		t.Fatalf("got %q", got)
	}
	if got := TruncateWithEllipsis("abc", 1); got != "…" {
		t.Fatalf("got %q", got)
	}
}

func TestFormatFriendlyDateTime(t *testing.T) {
	if FormatFriendlyDateTime(time.Time{}) != "" {
		t.Fatal("zero time should render empty")
	}
	ts := time.Date(2024, 3, 9, 15, 4, 0, 0, time.Local)
	if got := FormatFriendlyDateTime(ts); got != "Mar 9, 2024 3:04 PM" {
		t.Fatalf("got %q", got)
	}
}
