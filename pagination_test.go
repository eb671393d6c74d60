package docgen

import (
	"errors"
	"testing"
)

func TestRomanNumeral(t *testing.T) {
	cases := []struct {
		n    int
		want string
	}{
		{1, "I"},
		{2, "II"},
		{3, "III"},
		{4, "IV"},
		{9, "IX"},
		{14, "XIV"},
		{40, "XL"},
		{90, "XC"},
		{400, "CD"},
		{900, "CM"},
		{1994, "MCMXCIV"},
		{2024, "MMXXIV"},
		{3999, "MMMCMXCIX"},
		// outside classical notation: fall back to arabic digits
		{0, "0"},
		{-5, "-5"},
		{4000, "4000"},
	}
	for _, c := range cases {
		if got := RomanNumeral(c.n); got != c.want {
			t.Errorf("RomanNumeral(%d) = %q, want %q", c.n, got, c.want)
		}
	}
}

func TestDefaultPaginationFormat(t *testing.T) {
	got := DefaultPagination().Format(1, 3)
	if got != "1 - 3" {
		t.Errorf("Format(1, 3) = %q, want %q", got, "1 - 3")
	}
}

func TestRomanPaginationFormat(t *testing.T) {
	if got := RomanPagination("").Format(4, 9); got != "IV - IX" {
		t.Errorf("empty template: got %q, want %q", got, "IV - IX")
	}
	if got := RomanPagination("page %s of %s").Format(2, 3); got != "page II of III" {
		t.Errorf("custom template: got %q", got)
	}
}

func TestCustomFormatPagination(t *testing.T) {
	hex := NumberFormatterFunc(func(n int) (string, error) {
		return "0x" + string(rune('0'+n)), nil
	})
	if got := CustomFormatPagination("%s/%s", hex).Format(1, 2); got != "0x1/0x2" {
		t.Errorf("got %q, want %q", got, "0x1/0x2")
	}
}

func TestCustomFormatPaginationFailureDegrades(t *testing.T) {
	failing := NumberFormatterFunc(func(n int) (string, error) {
		return "", errors.New("cannot represent")
	})
	if got := CustomFormatPagination("%s - %s", failing).Format(1, 2); got != "? - ?" {
		t.Errorf("failing formatter: got %q, want %q", got, "? - ?")
	}
	if got := CustomFormatPagination("%s - %s", nil).Format(1, 2); got != "? - ?" {
		t.Errorf("nil formatter: got %q, want %q", got, "? - ?")
	}
}

func TestClosurePagination(t *testing.T) {
	style := ClosurePagination(func(page, total int) string {
		if page == total {
			return "last page"
		}
		return "more to come"
	})
	if got := style.Format(3, 3); got != "last page" {
		t.Errorf("got %q", got)
	}
}

func TestClosurePaginationNeverPanics(t *testing.T) {
	style := ClosurePagination(func(page, total int) string {
		panic("formatter bug")
	})
	if got := style.Format(1, 1); got != "?" {
		t.Errorf("panicking closure: got %q, want %q", got, "?")
	}
	if got := ClosurePagination(nil).Format(1, 1); got != "?" {
		t.Errorf("nil closure: got %q, want %q", got, "?")
	}
}

func TestPaginationVisibility(t *testing.T) {
	cfg := PaginationConfig{Start: 2, End: 4, Exclude: []int{3}}
	want := map[int]bool{1: false, 2: true, 3: false, 4: true, 5: false}
	for page, visible := range want {
		if got := cfg.visible(page); got != visible {
			t.Errorf("visible(%d) = %v, want %v", page, got, visible)
		}
	}
}

func TestPaginationVisibilityDefaults(t *testing.T) {
	cfg := PaginationConfig{}
	for _, page := range []int{1, 2, 100} {
		if !cfg.visible(page) {
			t.Errorf("zero config should show page %d", page)
		}
	}
}
