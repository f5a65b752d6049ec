package fonts

import (
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func TestLoadEmbedded(t *testing.T) {
	faces, err := Load("", 15, 20)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	label := faces.Label.Metrics().Height
	mode := faces.Mode.Metrics().Height
	if label <= 0 || mode <= label {
		t.Errorf("line heights label=%v mode=%v, want 0 < label < mode", label, mode)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	for _, name := range []string{"Font.ttf", "Font.ttc", "FONT.TTC"} {
		t.Run(name, func(t *testing.T) {
			filename := filepath.Join(dir, name)
			if err := os.WriteFile(filename, goregular.TTF, 0660); err != nil {
				t.Fatal(err)
			}
			faces, err := Load(filename, 15, 20)
			if err != nil {
				t.Fatalf("Load(%q) failed: %v", filename, err)
			}
			if faces.Label.Metrics().Ascent <= 0 {
				t.Errorf("label ascent = %v, want positive", faces.Label.Metrics().Ascent)
			}
		})
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	garbage := filepath.Join(dir, "garbage.ttf")
	if err := os.WriteFile(garbage, []byte("not a font"), 0660); err != nil {
		t.Fatal(err)
	}
	garbageCollection := filepath.Join(dir, "garbage.ttc")
	if err := os.WriteFile(garbageCollection, []byte("not a font"), 0660); err != nil {
		t.Fatal(err)
	}

	for _, filename := range []string{
		filepath.Join(dir, "missing.ttf"),
		garbage,
		garbageCollection,
	} {
		if _, err := Load(filename, 15, 20); err == nil {
			t.Errorf("Load(%q) succeeded, want error", filename)
		}
	}
}
