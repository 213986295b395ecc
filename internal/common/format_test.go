package common

import (
	"strings"
	"testing"
)

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		value float64
		want  string
	}{
		{1234.56, "$1,234.56"},
		{0, "$0.00"},
		{-500.00, "-$500.00"},
		{1000000.99, "$1,000,000.99"},
		{2500, "$2,500.00"},
		{-1234.5, "-$1,234.50"},
	}

	for _, tt := range tests {
		got := FormatMoney(tt.value)
		if got != tt.want {
			t.Errorf("FormatMoney(%.2f) = %q, want %q", tt.value, got, tt.want)
		}
	}
}

func TestFormatPrice_GroupsThousands(t *testing.T) {
	got := FormatPrice(50123.456)
	if !strings.HasPrefix(got, "50,123.4") {
		t.Errorf("FormatPrice(50123.456) = %q, want 50,123.46", got)
	}
	if strings.Count(got, ".") != 1 {
		t.Errorf("expected a single decimal point in %q", got)
	}
}

func TestFormatSignedPct(t *testing.T) {
	if got := FormatSignedPct(2.5); got != "+2.50%" {
		t.Errorf("expected +2.50%%, got %s", got)
	}
	if got := FormatSignedPct(-1.234); got != "-1.23%" {
		t.Errorf("expected -1.23%%, got %s", got)
	}
}

func TestFormatBillions(t *testing.T) {
	if got := FormatBillions(812.34e9, 1); got != "$812.3B" {
		t.Errorf("expected $812.3B, got %s", got)
	}
	if got := FormatBillions(1.5e9, 2); got != "$1.50B" {
		t.Errorf("expected $1.50B, got %s", got)
	}
}

func TestExcerpt(t *testing.T) {
	if got := Excerpt("short", 80); got != "short..." {
		t.Errorf("expected short..., got %q", got)
	}
	long := strings.Repeat("a", 100)
	got := Excerpt(long, 80)
	if len(got) != 83 {
		t.Errorf("expected 83 chars, got %d", len(got))
	}
}
