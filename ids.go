package zenledger

import "fmt"

// IDRegistry keeps track of the unique ids emitted during a conversion.
type IDRegistry struct {
	seen map[string]int // id -> last numeric suffix tried
}

// NewIDRegistry returns an empty registry.
func NewIDRegistry() *IDRegistry {
	return &IDRegistry{seen: make(map[string]int)}
}

// Claim registers 'id'. The first claim gets 'id' back; later claims get the
// first free "<id>-N" with N starting at 2, and renamed is true.
func (r *IDRegistry) Claim(id string) (claimed string, renamed bool) {
	n, taken := r.seen[id]
	if !taken {
		r.seen[id] = 1
		return id, false
	}
	for n++; ; n++ {
		candidate := fmt.Sprintf("%s-%d", id, n)
		if _, taken := r.seen[candidate]; !taken {
			r.seen[id] = n
			r.seen[candidate] = 1
			return candidate, true
		}
	}
}

// Len returns the number of ids claimed so far.
func (r *IDRegistry) Len() int { return len(r.seen) }
