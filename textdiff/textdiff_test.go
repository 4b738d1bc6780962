package textdiff_test

import (
	"testing"

	"github.com/signadot/reprint/change"
	"github.com/signadot/reprint/splice"
	"github.com/signadot/reprint/textdiff"
)

func TestChangesRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		from string
		to   string
	}{
		{name: "word replacement", from: "Hello, world!", to: "Hello, Rust!"},
		{name: "equal content", from: "same", to: "same"},
		{name: "from empty", from: "", to: "anything at all"},
		{name: "to empty", from: "anything at all", to: ""},
		{name: "both empty", from: "", to: ""},
		{
			name: "multiple edits",
			from: "the quick brown fox jumps over the lazy dog",
			to:   "a quick red fox leaps over a lazy cat",
		},
		{
			name: "multiline",
			from: "line one\nline two\nline three\n",
			to:   "line one\nline 2\nline three\nline four\n",
		},
		{name: "multibyte", from: "héllo wörld", to: "héllo, wörld!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := textdiff.Changes([]byte(tt.from), []byte(tt.to))

			// the computed set must already be sorted and disjoint
			verified, err := change.Verify(set)
			if err != nil {
				t.Fatalf("Changes() produced an invalid set: %v", err)
			}

			got, err := splice.Apply([]byte(tt.from), verified)
			if err != nil {
				t.Fatalf("Apply() error = %v", err)
			}
			if string(got) != tt.to {
				t.Errorf("Apply(Changes()) = %q, want %q", got, tt.to)
			}

			// and the inverse restores the original
			inv := textdiff.Changes([]byte(tt.to), []byte(tt.from))
			back, err := splice.Apply([]byte(tt.to), inv)
			if err != nil {
				t.Fatalf("Apply() inverse error = %v", err)
			}
			if string(back) != tt.from {
				t.Errorf("inverse round trip = %q, want %q", back, tt.from)
			}
		})
	}
}

func TestChangesEqualContentIsEmpty(t *testing.T) {
	if set := textdiff.Changes([]byte("same"), []byte("same")); len(set) != 0 {
		t.Errorf("Changes() = %v, want empty set", set)
	}
}

func TestChangesCoalesces(t *testing.T) {
	// A deletion directly followed by an insertion is one replacement
	// change, not two.
	set := textdiff.Changes([]byte("Hello, world!"), []byte("Hello, Rust!"))
	if len(set) != 1 {
		t.Fatalf("Changes() = %v, want a single change", set)
	}
	c := set[0]
	if c.Start != 7 || c.End != 12 || c.Text != "Rust" {
		t.Errorf("Changes()[0] = %+v, want {7 12 Rust}", c)
	}
}
