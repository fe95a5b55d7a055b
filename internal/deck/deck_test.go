package deck

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   Deck
		wantOK bool
	}{
		{"empty", "", nil, false},
		{"only newlines", "\n\n", nil, false},
		{"single field", "hello", Deck{{"hello"}}, true},
		{"two rows", "A\tB\nC\tD", Deck{{"A", "B"}, {"C", "D"}}, true},
		{"blank lines dropped", "\nA\tB\n\n\nC\tD\n", Deck{{"A", "B"}, {"C", "D"}}, true},
		{"no trimming", " Hugo Lloris\tGoalkeeper\t France ", Deck{{" Hugo Lloris", "Goalkeeper", " France "}}, true},
		{"numbers stay strings", "1\t2.50\t-3", Deck{{"1", "2.50", "-3"}}, true},
		{"uneven rows", "a\tb\tc\nd", Deck{{"a", "b", "c"}, {"d"}}, true},
		{"empty fields kept", "\ta\t\t", Deck{{"", "a", "", ""}}, true},
		{"whitespace-only line kept", " \nx", Deck{{" "}, {"x"}}, true},
		{"crlf kept as typed", "a\tb\r\nc", Deck{{"a", "b\r"}, {"c"}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Parse(tt.input)
			if ok != tt.wantOK {
				t.Errorf("Parse(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Parse(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestParseLengthMatchesNonEmptyLines(t *testing.T) {
	input := "x\ty\n\nz\n\n\nw\tv\tu\n"
	got, ok := Parse(input)
	if !ok {
		t.Fatal("Parse returned ok=false for non-empty input")
	}
	if got.Len() != 3 {
		t.Errorf("Len() = %d, want 3", got.Len())
	}
}

func TestPlaceholder(t *testing.T) {
	p := Placeholder()
	if p.Len() != 1 {
		t.Fatalf("Placeholder().Len() = %d, want 1", p.Len())
	}
	if len(p[0]) != 0 {
		t.Errorf("placeholder row has %d fields, want 0", len(p[0]))
	}
}

func TestClone(t *testing.T) {
	orig := Deck{{"a", "b"}, {"c"}}
	cp := orig.Clone()
	cp[0][0] = "changed"
	cp[1] = Row{"replaced"}

	if orig[0][0] != "a" || orig[1][0] != "c" {
		t.Errorf("Clone shares storage with original: %v", orig)
	}
	if Deck(nil).Clone() != nil {
		t.Error("Clone of nil deck should be nil")
	}
}

func TestDeckStringRoundTrip(t *testing.T) {
	raw := "A\tB\nC\tD"
	d, _ := Parse(raw)
	if got := d.String(); got != raw {
		t.Errorf("String() = %q, want %q", got, raw)
	}
}

func TestFingerprint(t *testing.T) {
	a := Deck{{"A", "B"}, {"C", "D"}}
	b := Deck{{"A", "B"}, {"C", "D"}}
	swapped := Deck{{"C", "D"}, {"A", "B"}}

	if Fingerprint(a) != Fingerprint(b) {
		t.Error("equal decks produced different fingerprints")
	}
	if Fingerprint(a) == Fingerprint(swapped) {
		t.Error("reordered deck produced the same fingerprint")
	}
	if got := len(Fingerprint(a)); got != 16 {
		t.Errorf("fingerprint length = %d, want 16", got)
	}
}
