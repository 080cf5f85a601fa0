package glossary

import "testing"

func TestPairValid(t *testing.T) {
	tests := []struct {
		name string
		pair Pair
		want bool
	}{
		{
			name: "ordinary pair",
			pair: Pair{Term: "Bond", Definition: "A debt security."},
			want: true,
		},
		{
			name: "single-letter term",
			pair: Pair{Term: "A", Definition: "A long enough definition."},
			want: false,
		},
		{
			name: "single-rune accented term",
			pair: Pair{Term: "É", Definition: "A long enough definition."},
			want: false,
		},
		{
			name: "two-rune accented term",
			pair: Pair{Term: "Ém", Definition: "A long enough definition."},
			want: true,
		},
		{
			name: "five-rune accented definition",
			pair: Pair{Term: "Carry", Definition: "héllo"},
			want: false,
		},
		{
			name: "six-rune accented definition",
			pair: Pair{Term: "Carry", Definition: "héllos"},
			want: true,
		},
		{
			name: "empty definition",
			pair: Pair{Term: "Bond", Definition: ""},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.pair.Valid(); got != tt.want {
				t.Errorf("Valid() = %v, want %v for %+v", got, tt.want, tt.pair)
			}
		})
	}
}

func TestNormalizeSpace(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"  Bond  ", "Bond"},
		{"a\tdebt\n security", "a debt security"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := NormalizeSpace(tt.input); got != tt.want {
			t.Errorf("NormalizeSpace(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
