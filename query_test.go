package minnow

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestValidateWhere(t *testing.T) {
	tests := []struct {
		name    string
		where   Where
		wantErr any // pointer to the expected error type, nil for success
	}{
		{name: "nil clause", where: nil},
		{name: "numeric range", where: Where{"year": Condition{"gte": 1900}}},
		{name: "numeric between", where: Where{"year": Condition{"bt": []int{1900, 1950}}}},
		{name: "string containment", where: Where{"title": Condition{"inc": "Great"}}},
		{name: "boolean literal", where: Where{"published": true}},
		{
			name:    "unknown field",
			where:   Where{"author": Condition{"eq": "fitzgerald"}},
			wantErr: &ParameterError{},
		},
		{
			name:    "unknown condition key",
			where:   Where{"year": Condition{"like": 1900}},
			wantErr: &ParameterError{},
		},
		{
			name:    "boolean condition must be a literal",
			where:   Where{"published": Condition{"eq": true}},
			wantErr: &TypeMismatchError{},
		},
		{
			name:    "inc on a number field",
			where:   Where{"year": Condition{"inc": "19"}},
			wantErr: &ParameterError{},
		},
		{
			name:    "inc with non-string operand",
			where:   Where{"title": Condition{"inc": 5}},
			wantErr: &TypeMismatchError{},
		},
		{
			name:    "numeric condition with string operand",
			where:   Where{"year": Condition{"eq": "1925"}},
			wantErr: &TypeMismatchError{},
		},
		{
			name:    "bt needs two elements",
			where:   Where{"year": Condition{"bt": []int{1900}}},
			wantErr: &ParameterError{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateWhere(bookSchema, tt.where)
			switch tt.wantErr.(type) {
			case nil:
				if err != nil {
					t.Errorf("validateWhere() = %v, want nil", err)
				}
			case *ParameterError:
				var got *ParameterError
				if !errors.As(err, &got) {
					t.Errorf("validateWhere() = %v, want ParameterError", err)
				}
			case *TypeMismatchError:
				var got *TypeMismatchError
				if !errors.As(err, &got) {
					t.Errorf("validateWhere() = %v, want TypeMismatchError", err)
				}
			}
		})
	}
}

func TestMatchWhere(t *testing.T) {
	doc := Document{"title": "The Great Gatsby", "year": float64(1925), "published": true}
	tests := []struct {
		name  string
		where Where
		want  bool
	}{
		{name: "gte hit", where: Where{"year": Condition{"gte": 1900}}, want: true},
		{name: "gte miss", where: Where{"year": Condition{"gte": 1950}}, want: false},
		{name: "gt boundary", where: Where{"year": Condition{"gt": 1925}}, want: false},
		{name: "lte boundary", where: Where{"year": Condition{"lte": 1925}}, want: true},
		{name: "between inclusive", where: Where{"year": Condition{"bt": []int{1900, 1925}}}, want: true},
		{name: "between miss", where: Where{"year": Condition{"bt": []int{1800, 1900}}}, want: false},
		{name: "eq number", where: Where{"year": Condition{"eq": 1925}}, want: true},
		{name: "inc substring", where: Where{"title": Condition{"inc": "Great"}}, want: true},
		{name: "inc miss", where: Where{"title": Condition{"inc": "Expectations"}}, want: false},
		{name: "string eq", where: Where{"title": Condition{"eq": "The Great Gatsby"}}, want: true},
		{name: "bool literal hit", where: Where{"published": true}, want: true},
		{name: "bool literal miss", where: Where{"published": false}, want: false},
		{
			name:  "all conditions must hold",
			where: Where{"year": Condition{"gte": 1900}, "published": false},
			want:  false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := validateWhere(bookSchema, tt.where); err != nil {
				t.Fatal(err)
			}
			if got := matchWhere(doc, bookSchema, tt.where); got != tt.want {
				t.Errorf("matchWhere() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFilterHitsByScore(t *testing.T) {
	hs := []Hit{
		{Score: 0.9, Document: Document{"title": "a"}},
		{Score: 0.5, Document: Document{"title": "b"}},
		{Score: 0.2, Document: Document{"title": "c"}},
	}

	t.Run("gt", func(t *testing.T) {
		got, err := FilterHitsByScore(hs, ScoreFilter{"gt": 0.4})
		if err != nil {
			t.Fatal(err)
		}
		want := []Hit{hs[0], hs[1]}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("Diff: (-want +got)\n%s", diff)
		}
	})

	t.Run("lt and gt combined", func(t *testing.T) {
		got, err := FilterHitsByScore(hs, ScoreFilter{"gt": 0.3, "lt": 0.8})
		if err != nil {
			t.Fatal(err)
		}
		want := []Hit{hs[1]}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("Diff: (-want +got)\n%s", diff)
		}
	})

	t.Run("eq", func(t *testing.T) {
		got, err := FilterHitsByScore(hs, ScoreFilter{"eq": 0.5})
		if err != nil {
			t.Fatal(err)
		}
		if len(got) != 1 || got[0].Score != 0.5 {
			t.Errorf("got %v, want the 0.5 hit only", got)
		}
	})

	t.Run("threshold outside open interval", func(t *testing.T) {
		for _, v := range []float64{1.5, 0, 1, -0.1} {
			_, err := FilterHitsByScore(hs, ScoreFilter{"gt": v})
			var paramErr *ParameterError
			if !errors.As(err, &paramErr) {
				t.Errorf("threshold %v: error = %v, want ParameterError", v, err)
			}
		}
	})

	t.Run("unknown condition key", func(t *testing.T) {
		_, err := FilterHitsByScore(hs, ScoreFilter{"gte": 0.5})
		var paramErr *ParameterError
		if !errors.As(err, &paramErr) {
			t.Errorf("error = %v, want ParameterError", err)
		}
	})
}
