// Package testutil locates the shared trip fixtures under testdata/.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// GetTestDataPath returns absolute path to testdata/
func GetTestDataPath() string {
	wd, _ := os.Getwd()
	for {
		testdataPath := filepath.Join(wd, "testdata")
		if _, err := os.Stat(testdataPath); err == nil {
			return testdataPath
		}
		parent := filepath.Dir(wd)
		if parent == wd {
			panic("Could not find testdata directory")
		}
		wd = parent
	}
}

// FixturePath returns the path of a file in testdata/ and fails the test if
// it does not exist.
func FixturePath(t *testing.T, filename string) string {
	t.Helper()
	path := filepath.Join(GetTestDataPath(), filename)
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("Missing fixture %s: %v", filename, err)
	}
	return path
}

// CityFiles maps the fixture cities to their files. New York City has no
// fixture on purpose.
func CityFiles(t *testing.T) map[string]string {
	t.Helper()
	return map[string]string{
		"Chicago":    FixturePath(t, "chicago.csv"),
		"Washington": FixturePath(t, "washington.csv"),
	}
}
