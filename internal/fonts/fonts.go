// Package fonts loads the single panel font at the two sizes the layout uses.
package fonts

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/golang/freetype/truetype"
	"github.com/sirupsen/logrus"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Sizes are in points at 72 DPI, so one point is one panel pixel.
const dpi = 72

type Faces struct {
	Label font.Face
	Mode  font.Face
}

// Load opens filename and builds the label and mode faces. An empty filename
// selects the embedded Go Regular font. ".ttc" and ".otc" collections use
// their first font.
func Load(filename string, labelSize, modeSize float64) (*Faces, error) {
	if filename == "" {
		logrus.Debugf("Use embedded font")
		return parseTrueType(goregular.TTF, labelSize, modeSize)
	}

	logrus.Debugf("Load font file: %s", filename)
	raw, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("unable to read font file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".ttc", ".otc":
		return parseCollection(raw, labelSize, modeSize)
	default:
		return parseTrueType(raw, labelSize, modeSize)
	}
}

func parseTrueType(raw []byte, labelSize, modeSize float64) (*Faces, error) {
	f, err := truetype.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("unable to parse font: %w", err)
	}
	return &Faces{
		Label: truetype.NewFace(f, &truetype.Options{Size: labelSize, DPI: dpi}),
		Mode:  truetype.NewFace(f, &truetype.Options{Size: modeSize, DPI: dpi}),
	}, nil
}

func parseCollection(raw []byte, labelSize, modeSize float64) (*Faces, error) {
	collection, err := opentype.ParseCollection(raw)
	if err != nil {
		return nil, fmt.Errorf("unable to parse font collection: %w", err)
	}
	if collection.NumFonts() == 0 {
		return nil, fmt.Errorf("font collection is empty")
	}
	f, err := collection.Font(0)
	if err != nil {
		return nil, fmt.Errorf("unable to read first font of collection: %w", err)
	}

	label, err := opentype.NewFace(f, &opentype.FaceOptions{Size: labelSize, DPI: dpi, Hinting: font.HintingFull})
	if err != nil {
		return nil, err
	}
	mode, err := opentype.NewFace(f, &opentype.FaceOptions{Size: modeSize, DPI: dpi, Hinting: font.HintingFull})
	if err != nil {
		return nil, err
	}
	return &Faces{Label: label, Mode: mode}, nil
}
