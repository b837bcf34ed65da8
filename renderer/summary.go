package renderer

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/etnz/zenledger"
	md "github.com/nao1215/markdown"
)

// SummaryMarkdown renders the outcome of a conversion. 'files' names the
// destination of each stream, it can be nil.
func SummaryMarkdown(s *zenledger.Summary, files map[zenledger.Stream]string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Conversion Summary")
	doc.PlainText(fmt.Sprintf("Records read: %d, skipped: %d, entries written: %d", s.Records, s.Skipped, s.Total()))

	doc.H2("Entries")
	entries := md.TableSet{Header: []string{"Stream", "File", "Entries"}}
	for _, stream := range []zenledger.Stream{zenledger.StreamInbound, zenledger.StreamOutbound, zenledger.StreamIntra} {
		entries.Rows = append(entries.Rows, []string{stream.String(), files[stream], strconv.Itoa(s.Entries[stream])})
	}
	doc.Table(entries)

	if s.Clean() {
		doc.PlainText("No issue found.")
		return doc.String()
	}

	doc.H2("Issues")
	issues := md.TableSet{Header: []string{"Issue", "Count", "Record Kept", "First Occurrence"}}
	for _, kind := range zenledger.Kinds {
		n := s.Issues[kind]
		if n == 0 {
			continue
		}
		kept := "yes"
		if kind.Skips() {
			kept = "no"
		}
		issues.Rows = append(issues.Rows, []string{kind.String(), strconv.Itoa(n), kept, s.Samples[kind]})
	}
	doc.Table(issues)

	return doc.String()
}
