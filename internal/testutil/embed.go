package testutil

import (
	"embed"
	"fmt"
	"io/fs"
	"testing"
)

// TestdataFS holds the grammars shared by the tests of several packages.
//
//go:embed testdata
var TestdataFS embed.FS

// ReadTestData reads and returns the content of an embedded test file.
func ReadTestData(name string) ([]byte, error) {
	data, err := fs.ReadFile(TestdataFS, "testdata/"+name)
	if err != nil {
		return nil, fmt.Errorf("read test data %q: %w", name, err)
	}
	return data, nil
}

// Grammar returns the embedded grammar name, failing tb when it is missing.
func Grammar(tb testing.TB, name string) []byte {
	tb.Helper()
	data, err := ReadTestData(name)
	if err != nil {
		tb.Fatal(err)
	}
	return data
}
