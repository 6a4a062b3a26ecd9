package minnow

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var bookSchema = Schema{"title": FieldString, "year": FieldNumber, "published": FieldBoolean}

func TestDocumentValidate(t *testing.T) {
	t.Run("valid with int coercion", func(t *testing.T) {
		doc := Document{"title": "The Great Gatsby", "year": 1925, "published": true}
		got, err := doc.validate(bookSchema)
		if err != nil {
			t.Fatal(err)
		}
		want := Document{"title": "The Great Gatsby", "year": float64(1925), "published": true}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("Diff: (-want +got)\n%s", diff)
		}
	})

	t.Run("missing field", func(t *testing.T) {
		doc := Document{"title": "The Great Gatsby", "year": 1925}
		if _, err := doc.validate(bookSchema); err == nil {
			t.Fatal("want error")
		} else {
			var valErr *ValidationError
			if !errors.As(err, &valErr) {
				t.Errorf("error %v is not a ValidationError", err)
			}
		}
	})

	t.Run("wrong type", func(t *testing.T) {
		doc := Document{"title": "The Great Gatsby", "year": "1925", "published": true}
		if _, err := doc.validate(bookSchema); err == nil {
			t.Fatal("want error")
		}
	})

	t.Run("undeclared field", func(t *testing.T) {
		doc := Document{"title": "x", "year": 1, "published": false, "author": "fitzgerald"}
		if _, err := doc.validate(bookSchema); err == nil {
			t.Fatal("want error")
		}
	})
}

func TestDocumentEqual(t *testing.T) {
	a := Document{"title": "x", "year": float64(1925)}
	b := Document{"year": float64(1925), "title": "x"}
	if !a.Equal(b) {
		t.Error("structurally equal documents reported unequal")
	}
	c := Document{"title": "x", "year": float64(1861)}
	if a.Equal(c) {
		t.Error("different documents reported equal")
	}
	d := Document{"title": "x"}
	if a.Equal(d) {
		t.Error("different key sets reported equal")
	}
}

func TestDocumentKey(t *testing.T) {
	a := Document{"title": "x", "year": float64(1925)}
	b := Document{"year": float64(1925), "title": "x"}
	if a.key() != b.key() {
		t.Errorf("canonical keys differ: %q vs %q", a.key(), b.key())
	}
	c := Document{"title": "x", "year": float64(1861)}
	if a.key() == c.key() {
		t.Error("different documents share a canonical key")
	}
}

// Values containing would-be separator characters must not make distinct
// documents serialize identically.
func TestDocumentKeySeparatorValues(t *testing.T) {
	a := Document{"a": "1;b=2", "b": "3"}
	b := Document{"a": "1", "b": "2;b=3"}
	if a.Equal(b) {
		t.Fatal("fixture documents are structurally equal")
	}
	if a.key() == b.key() {
		t.Errorf("distinct documents share key %q", a.key())
	}
}
