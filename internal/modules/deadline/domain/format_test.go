package domain_test

import (
	"testing"

	"shelfcontrol/internal/modules/deadline/domain"
)

func TestFormatQuantityAudio(t *testing.T) {
	t.Parallel()
	cases := []struct {
		value float64
		want  string
	}{
		{0, "0m"},
		{45, "45m"},
		{120, "2h"},
		{90, "1h 30m"},
		{125.4, "2h 5m"},
	}
	for _, tc := range cases {
		if got := domain.FormatQuantity(domain.FormatAudio, tc.value); got != tc.want {
			t.Fatalf("FormatQuantity(audio, %.1f) = %q, want %q", tc.value, got, tc.want)
		}
	}
}

func TestFormatQuantityPages(t *testing.T) {
	t.Parallel()
	if got := domain.FormatQuantity(domain.FormatPhysical, 50.7); got != "51 pages" {
		t.Fatalf("expected rounded page count, got %q", got)
	}
	if got := domain.FormatQuantity(domain.FormatEBook, 200); got != "200 pages" {
		t.Fatalf("expected page count, got %q", got)
	}
	// Unknown formats default to page semantics.
	if got := domain.FormatQuantity(domain.Format(""), 12); got != "12 pages" {
		t.Fatalf("expected page fallback, got %q", got)
	}
}

func TestUnitLabel(t *testing.T) {
	t.Parallel()
	if got := domain.UnitLabel(domain.FormatAudio); got != "minutes" {
		t.Fatalf("audio unit should be minutes, got %q", got)
	}
	if got := domain.UnitLabel(domain.FormatPhysical); got != "pages" {
		t.Fatalf("physical unit should be pages, got %q", got)
	}
	if got := domain.UnitLabel(domain.Format("scroll")); got != "pages" {
		t.Fatalf("unknown format should default to pages, got %q", got)
	}
}
