// Package deck turns pasted tabular text into shuffled rows of cards.
package deck

import "strings"

const (
	lineSep  = "\n"
	fieldSep = "\t"
)

// Row is one parsed line: its tab-separated fields in typed order.
type Row []string

// Lines returns the fields as they should be stacked on a card.
func (r Row) Lines() []string {
	return []string(r)
}

// Deck is the ordered collection of rows produced by one submission.
type Deck []Row

func (d Deck) Len() int {
	return len(d)
}

// Clone copies the deck and every row so callers may shuffle freely.
func (d Deck) Clone() Deck {
	if d == nil {
		return nil
	}
	out := make(Deck, len(d))
	for i, row := range d {
		out[i] = append(Row(nil), row...)
	}
	return out
}

// String renders the deck back into tab/newline form.
func (d Deck) String() string {
	var b strings.Builder
	for i, row := range d {
		if i > 0 {
			b.WriteString(lineSep)
		}
		b.WriteString(strings.Join(row, fieldSep))
	}
	return b.String()
}

// Parse splits raw into rows. Empty lines are dropped; fields are kept
// exactly as typed. ok is false when no row survived.
func Parse(raw string) (d Deck, ok bool) {
	for _, line := range strings.Split(raw, lineSep) {
		if line == "" {
			continue
		}
		d = append(d, Row(strings.Split(line, fieldSep)))
	}
	return d, len(d) > 0
}

// Placeholder is the deck substituted when a submission parses to nothing.
func Placeholder() Deck {
	return Deck{Row{}}
}
