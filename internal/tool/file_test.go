package tool

import (
	"os"
	"path/filepath"
	"testing"
)

func TestIsFileExists(t *testing.T) {
	dir := t.TempDir()
	present := filepath.Join(dir, "present.yaml")
	if err := os.WriteFile(present, []byte("modes: []\n"), 0660); err != nil {
		t.Fatal(err)
	}

	for _, tc := range []struct {
		name     string
		filename string
		want     bool
	}{
		{name: "present", filename: present, want: true},
		{name: "missing", filename: filepath.Join(dir, "missing.yaml"), want: false},
		{name: "directory", filename: dir, want: true},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got, err := IsFileExists(tc.filename)
			if err != nil {
				t.Fatalf("IsFileExists(%q) failed: %v", tc.filename, err)
			}
			if got != tc.want {
				t.Errorf("IsFileExists(%q) = %v, want %v", tc.filename, got, tc.want)
			}
		})
	}
}
