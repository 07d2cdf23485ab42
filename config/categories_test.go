package config

import (
	"strings"
	"testing"
)

func TestLoadCategories(t *testing.T) {
	cats, err := LoadCategories()
	if err != nil {
		t.Fatalf("load categories: %v", err)
	}
	if len(cats.All()) != 7 {
		t.Fatalf("expected 7 categories, got %d", len(cats.All()))
	}

	health, ok := cats.ByValue("health")
	if !ok {
		t.Fatal("expected health category")
	}
	if health.Slug == "" || strings.ContainsAny(health.Slug, " &") {
		t.Fatalf("unexpected slug %q", health.Slug)
	}
	if got, ok := cats.BySlug(health.Slug); !ok || got.Value != "health" {
		t.Fatalf("slug lookup failed: %+v", got)
	}
	if cats.Valid("space_travel") {
		t.Fatal("unknown category must not be valid")
	}
}

func TestParseCategoriesRejectsDuplicates(t *testing.T) {
	data := []byte(`
- value: health
  name: Health
- value: health
  name: Health Again
`)
	if _, err := ParseCategories(data); err == nil {
		t.Fatal("expected duplicate error")
	}
}

func TestParseCategoriesRequiresName(t *testing.T) {
	if _, err := ParseCategories([]byte("- value: health\n")); err == nil {
		t.Fatal("expected missing name error")
	}
}
