package catalog

import (
	"errors"
	"testing"
)

func TestNewProductRejectsBlankName(t *testing.T) {
	for _, name := range []string{"", "   ", "\t\n"} {
		_, err := NewProduct(Candidate{Name: name, Price: "5"})
		if !errors.Is(err, ErrEmptyName) {
			t.Fatalf("name %q: expected ErrEmptyName, got %v", name, err)
		}
	}
}

func TestNewProductCoercesInvalidPriceToZero(t *testing.T) {
	p, err := NewProduct(Candidate{Name: "Pecan Swirl", Price: "abc"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Price != 0 {
		t.Fatalf("expected price 0 for invalid input, got %v", p.Price)
	}
}

func TestNewProductClampsNegativePrice(t *testing.T) {
	p, err := NewProduct(Candidate{Name: "Pecan Swirl", Price: "-3"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Price != 0 {
		t.Fatalf("expected negative price clamped to 0, got %v", p.Price)
	}
}

func TestNewProductDefaultsCategory(t *testing.T) {
	p, err := NewProduct(Candidate{Name: "Pecan Swirl"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Category != DefaultCategory {
		t.Fatalf("expected category %q, got %q", DefaultCategory, p.Category)
	}
}

func TestNewProductTrimsAndAssignsID(t *testing.T) {
	p, err := NewProduct(Candidate{Name: "  Pecan Swirl  ", Desc: " swirl ", Price: "4.25", Category: " Nutty "})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Name != "Pecan Swirl" || p.Desc != "swirl" || p.Category != "Nutty" {
		t.Fatalf("expected trimmed fields, got %+v", p)
	}
	if p.Price != 4.25 {
		t.Fatalf("expected price 4.25, got %v", p.Price)
	}
	if p.ID == "" {
		t.Fatalf("expected generated id")
	}
}
