package zenledger

import (
	"log"
	"testing"
)

// testWriter forwards log lines to the test log.
type testWriter struct{ t *testing.T }

func (w testWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

func testLogger(t *testing.T) *log.Logger { return log.New(testWriter{t}, "", 0) }
