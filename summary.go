package zenledger

// Summary accounts for everything a conversion did, so that skipped records
// are never silently lost.
type Summary struct {
	Records int                  // records read
	Skipped int                  // records that produced no entry because of an error
	Entries map[Stream]int       // entries written per stream
	Issues  map[ErrorKind]int    // problems met, by kind
	Samples map[ErrorKind]string // first message of each kind
}

func newSummary() *Summary {
	return &Summary{
		Entries: make(map[Stream]int),
		Issues:  make(map[ErrorKind]int),
		Samples: make(map[ErrorKind]string),
	}
}

// record accounts for a record error.
func (s *Summary) record(err *RecordError) {
	s.Issues[err.Kind]++
	if _, ok := s.Samples[err.Kind]; !ok {
		s.Samples[err.Kind] = err.Error()
	}
	if err.Kind.Skips() {
		s.Skipped++
	}
}

// Total returns the number of entries written in all streams.
func (s *Summary) Total() int {
	total := 0
	for _, n := range s.Entries {
		total += n
	}
	return total
}

// Clean reports whether the conversion met no problem at all.
func (s *Summary) Clean() bool {
	for _, n := range s.Issues {
		if n > 0 {
			return false
		}
	}
	return true
}
