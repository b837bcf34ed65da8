package zenledger

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/PaesslerAG/jsonpath"
)

// this file contains the readers of the export formats.

// RecordReader reads export records one at a time. Read returns io.EOF after
// the last record.
type RecordReader interface {
	Read() (RawRecord, error)
}

// CSVReader reads a CSV export whose first line is the header.
//
// Rows may have fewer fields than the header: the missing columns are reported
// by the decomposition of that row only. Quotes inside unquoted fields are
// kept as text, and a row the CSV parser still rejects is returned as a
// *RecordError so that reading can go on with the next row.
type CSVReader struct {
	r      *csv.Reader
	header []string
	row    int
}

// NewCSVReader reads the header of a CSV export from 'r'.
func NewCSVReader(r io.Reader) (*CSVReader, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.LazyQuotes = true
	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("cannot read CSV header: empty file")
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read CSV header: %w", err)
	}
	for i, h := range header {
		header[i] = strings.TrimSpace(h)
	}
	// spreadsheet tools like to start files with a byte order mark
	header[0] = strings.TrimPrefix(header[0], "\ufeff")
	return &CSVReader{r: cr, header: header}, nil
}

// Header returns the column names found in the file.
func (c *CSVReader) Header() []string { return c.header }

func (c *CSVReader) Read() (RawRecord, error) {
	fields, err := c.r.Read()
	var perr *csv.ParseError
	if errors.As(err, &perr) {
		c.row++
		rec := RawRecord{Row: c.row}
		return rec, rec.fail(KindParse, err)
	}
	if err != nil {
		if err != io.EOF {
			err = fmt.Errorf("cannot read CSV record %d: %w", c.row+1, err)
		}
		return RawRecord{}, err
	}
	c.row++
	values := make(map[string]string, len(c.header))
	for i, name := range c.header {
		if i < len(fields) {
			values[name] = fields[i]
		}
	}
	return NewRawRecord(c.row, values), nil
}

// JSONReader reads records from a JSON export.
//
// Records are JSON objects whose properties are the export column names; the
// array holding them is selected by a JSONPath expression.
type JSONReader struct {
	records []map[string]string
	row     int
}

// NewJSONReader decodes a JSON document from 'r' and selects the records array
// with the JSONPath expression 'path' ("$" when empty, for a top level array).
func NewJSONReader(r io.Reader, path string) (*JSONReader, error) {
	if path == "" {
		path = "$"
	}
	var doc any
	dec := json.NewDecoder(r)
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("cannot parse JSON export: %w", err)
	}
	jval, err := jsonpath.Get(path, doc)
	if err != nil {
		return nil, fmt.Errorf("cannot select records with %q: %w", path, err)
	}
	jlist, ok := jval.([]any)
	if !ok {
		return nil, fmt.Errorf("records selected by %q are not an array but %T", path, jval)
	}
	// because jsonpath is never clear about whether it returns the array itself or
	// a list holding it, unwrap single element lists of arrays.
	if len(jlist) == 1 {
		if inner, ok := jlist[0].([]any); ok {
			jlist = inner
		}
	}

	records := make([]map[string]string, 0, len(jlist))
	for i, item := range jlist {
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("record %d selected by %q is not an object but %T", i+1, path, item)
		}
		values := make(map[string]string, len(obj))
		for k, v := range obj {
			values[k] = scalar(v)
		}
		records = append(records, values)
	}
	return &JSONReader{records: records}, nil
}

func (j *JSONReader) Read() (RawRecord, error) {
	if j.row >= len(j.records) {
		return RawRecord{}, io.EOF
	}
	values := j.records[j.row]
	j.row++
	return NewRawRecord(j.row, values), nil
}

// scalar renders a JSON value as the text of a CSV column.
func scalar(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case json.Number:
		return t.String()
	case bool:
		return strconv.FormatBool(t)
	default:
		b, _ := json.Marshal(t)
		return string(b)
	}
}
