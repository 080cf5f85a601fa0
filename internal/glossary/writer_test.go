package glossary

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestWrite(t *testing.T) {
	t.Run("record format", func(t *testing.T) {
		pairs := []Pair{
			{"Asset", "Anything of value owned by a person."},
			{"Bond", "A debt security issued by a government."},
		}

		var buf bytes.Buffer
		if err := Write(&buf, pairs); err != nil {
			t.Fatalf("Write failed: %v", err)
		}

		want := "Asset: Anything of value owned by a person.\n\n" +
			"Bond: A debt security issued by a government.\n\n"
		if buf.String() != want {
			t.Errorf("got %q, want %q", buf.String(), want)
		}
	})

	t.Run("zero pairs writes warning", func(t *testing.T) {
		var buf bytes.Buffer
		if err := Write(&buf, nil); err != nil {
			t.Fatalf("Write failed: %v", err)
		}
		if buf.String() != NoPairsWarning {
			t.Errorf("got %q, want warning line", buf.String())
		}
	})
}

func TestWriteParseRoundTrip(t *testing.T) {
	pairs := []Pair{
		{"Amortization", "The process of spreading out a loan into fixed payments."},
		{"Yield Curve", "A graph of interest rates across maturities."},
	}

	var buf bytes.Buffer
	if err := Write(&buf, pairs); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	got, err := Parse(&buf)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if !reflect.DeepEqual(got, pairs) {
		t.Errorf("round trip mismatch: got %v, want %v", got, pairs)
	}
}

func TestParse(t *testing.T) {
	t.Run("legacy two-line format", func(t *testing.T) {
		input := "Term: Escrow\nDefinition: An account held by a third party.\n\n" +
			"Term: Lien\nDefinition: A legal claim against property.\n\n"

		got, err := Parse(strings.NewReader(input))
		if err != nil {
			t.Fatalf("Parse failed: %v", err)
		}

		want := []Pair{
			{"Escrow", "An account held by a third party."},
			{"Lien", "A legal claim against property."},
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("combined file with separators", func(t *testing.T) {
		input := "Asset: Anything of value owned by a person.\n\n" +
			"\n" + strings.Repeat("=", 80) + "\n\n" +
			"Bond: A debt security issued by a government.\n\n"

		got, err := Parse(strings.NewReader(input))
		if err != nil {
			t.Fatalf("Parse failed: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("expected 2 pairs, got %d: %v", len(got), got)
		}
	})

	t.Run("warning line and malformed records skipped", func(t *testing.T) {
		input := NoPairsWarning + "\nno colon in this record\n\nA: short\n\n"

		got, err := Parse(strings.NewReader(input))
		if err != nil {
			t.Fatalf("Parse failed: %v", err)
		}
		if len(got) != 0 {
			t.Errorf("expected no pairs, got %v", got)
		}
	})
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")

	if err := WriteFile(path, []Pair{{"Asset", "Anything of value owned."}}); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if !strings.HasPrefix(string(data), "Asset: ") {
		t.Errorf("unexpected content: %q", data)
	}
}
