package sample

import (
	"errors"
	"reflect"
	"testing"
)

func TestParse_ValidInputs(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		opts  ParseOptions
		want  []int64
	}{
		{
			name: "comma separated",
			raw:  "13,9,14",
			opts: DefaultParseOptions(),
			want: []int64{13, 9, 14},
		},
		{
			name: "space separated",
			raw:  "13 9 14",
			opts: DefaultParseOptions(),
			want: []int64{13, 9, 14},
		},
		{
			name: "semicolon separated",
			raw:  "13;9;14",
			opts: DefaultParseOptions(),
			want: []int64{13, 9, 14},
		},
		{
			name: "mixed delimiters with runs and newlines",
			raw:  " ,,13;\n 9\t,;14, ",
			opts: DefaultParseOptions(),
			want: []int64{13, 9, 14},
		},
		{
			name: "signed values",
			raw:  "+7, -2, 0",
			opts: DefaultParseOptions(),
			want: []int64{7, -2, 0},
		},
		{
			name: "duplicates preserved in input order",
			raw:  "5,3,5,3,5",
			opts: DefaultParseOptions(),
			want: []int64{5, 3, 5, 3, 5},
		},
		{
			name: "negative filter keeps positives",
			raw:  "-1, 5, -3, 8",
			opts: ParseOptions{AllowNegative: false},
			want: []int64{5, 8},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.raw, tt.opts)
			if err != nil {
				t.Fatalf("Parse(%q) returned error: %v", tt.raw, err)
			}
			if !reflect.DeepEqual(got.Values(), tt.want) {
				t.Errorf("Parse(%q) = %v, want %v", tt.raw, got.Values(), tt.want)
			}
		})
	}
}

func TestParse_Failures(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		opts    ParseOptions
		wantErr error
	}{
		{name: "empty string", raw: "", opts: DefaultParseOptions(), wantErr: ErrEmptyInput},
		{name: "whitespace only", raw: "  \n\t ", opts: DefaultParseOptions(), wantErr: ErrEmptyInput},
		{name: "delimiters only", raw: ",;,", opts: DefaultParseOptions(), wantErr: ErrNoTokens},
		{name: "decimal token", raw: "1, 3.0, 5", opts: DefaultParseOptions(), wantErr: ErrInvalidTokens},
		{name: "alphanumeric token", raw: "3abc", opts: DefaultParseOptions(), wantErr: ErrInvalidTokens},
		{name: "bare sign", raw: "1 + 2", opts: DefaultParseOptions(), wantErr: ErrInvalidTokens},
		{name: "all negatives filtered", raw: "-1;-2;-3", opts: ParseOptions{AllowNegative: false}, wantErr: ErrNoValidTokens},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.raw, tt.opts)
			if err == nil {
				t.Fatalf("Parse(%q) succeeded, want %v", tt.raw, tt.wantErr)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Parse(%q) error = %v, want %v", tt.raw, err, tt.wantErr)
			}
		})
	}
}

func TestParse_ReportsAllInvalidTokens(t *testing.T) {
	_, err := Parse("x, 3, a, 5, 9z", DefaultParseOptions())

	var invalidErr *InvalidTokensError
	if !errors.As(err, &invalidErr) {
		t.Fatalf("expected InvalidTokensError, got %v", err)
	}
	want := []string{"x", "a", "9z"}
	if !reflect.DeepEqual(invalidErr.Tokens, want) {
		t.Errorf("offending tokens = %v, want %v (input order)", invalidErr.Tokens, want)
	}
}

func TestParse_RejectionSetFromReference(t *testing.T) {
	_, err := Parse("3, a, 5", DefaultParseOptions())

	var invalidErr *InvalidTokensError
	if !errors.As(err, &invalidErr) {
		t.Fatalf("expected InvalidTokensError, got %v", err)
	}
	if len(invalidErr.Tokens) != 1 || invalidErr.Tokens[0] != "a" {
		t.Errorf("offending tokens = %v, want [a]", invalidErr.Tokens)
	}
}

func TestValidatedSample_Immutability(t *testing.T) {
	s, err := Parse("1,2,3", DefaultParseOptions())
	if err != nil {
		t.Fatal(err)
	}

	values := s.Values()
	values[0] = 99
	if s.Values()[0] != 1 {
		t.Error("mutating the returned slice must not affect the sample")
	}
}

func TestNew_RejectsEmpty(t *testing.T) {
	if _, err := New(nil); !errors.Is(err, ErrNoValidTokens) {
		t.Errorf("New(nil) error = %v, want %v", err, ErrNoValidTokens)
	}
}
