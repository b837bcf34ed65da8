package zenledger

import "testing"

func TestIDRegistry(t *testing.T) {
	r := NewIDRegistry()
	steps := []struct {
		id      string
		want    string
		renamed bool
	}{
		{"a", "a", false},
		{"b", "b", false},
		{"a", "a-2", true},
		{"a", "a-3", true},
		// an id that looks like a renamed one is taken as is when free
		{"b-2", "b-2", false},
		// and renaming skips it
		{"b", "b-3", true},
		{"a-2", "a-2-2", true},
	}
	for _, s := range steps {
		got, renamed := r.Claim(s.id)
		if got != s.want || renamed != s.renamed {
			t.Errorf("Claim(%q) = %q, %v, want %q, %v", s.id, got, renamed, s.want, s.renamed)
		}
	}
	if got := r.Len(); got != len(steps) {
		t.Errorf("Len() = %d, want %d", got, len(steps))
	}
}
