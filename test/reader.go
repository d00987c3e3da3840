package aistest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// LoadJSON loads a JSON fixture from a package's testdata directory into target.
func LoadJSON(t *testing.T, filename string, target interface{}) {
	b := loadBytes(t, fmt.Sprintf("testdata/%v", filename), 2)
	if err := json.Unmarshal(b, &target); err != nil {
		t.Fatal(fmt.Errorf("aistest.LoadJSON failure: %w", err))
	}
}

// LoadBytes loads raw bytes from a package's testdata directory, for
// example a captured AIVDM sentence log used as a decode fixture.
func LoadBytes(t *testing.T, name string) []byte {
	return loadBytes(t, fmt.Sprintf("testdata/%v", name), 2)
}

func loadBytes(t *testing.T, name string, callDepth int) []byte {
	_, b, _, _ := runtime.Caller(callDepth)
	basepath := filepath.Dir(b)

	path := filepath.Join(basepath, name)
	bytes, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return bytes
}

// ReadResult is one scripted Read call outcome for MockReaderWriter.
type ReadResult struct {
	Read []byte
	Err  error
}

// WriteResult is one scripted Write call outcome for MockReaderWriter.
type WriteResult struct {
	N   int
	Err error
}

// MockReaderWriter scripts a sequence of Read/Write outcomes, used to
// exercise aissource.SerialSource-like consumers without a real device.
type MockReaderWriter struct {
	Reads      []ReadResult
	Writes     []WriteResult
	readIndex  int
	writeIndex int
}

func (m *MockReaderWriter) Read(p []byte) (n int, err error) {
	r := m.Reads[m.readIndex]
	m.readIndex++
	if r.Err != nil {
		return len(r.Read), r.Err
	}
	n = copy(p, r.Read)
	return n, nil
}

func (m *MockReaderWriter) Write(p []byte) (n int, err error) {
	w := m.Writes[m.writeIndex]
	m.writeIndex++
	return w.N, w.Err
}
