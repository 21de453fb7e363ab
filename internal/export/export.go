// Package export writes composed figures to files: JSON and CSV for the data,
// SVG and PNG for the charts.
package export

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/san-kum/mechviz/internal/figure"
)

var ErrUnknownFormat = errors.New("export: unknown format")

type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
	FormatSVG  Format = "svg"
	FormatPNG  Format = "png"
)

func Formats() []Format {
	return []Format{FormatJSON, FormatCSV, FormatSVG, FormatPNG}
}

// ParseFormat accepts a format name; an empty name is inferred from path's extension.
func ParseFormat(name, path string) (Format, error) {
	if name == "" {
		name = strings.TrimPrefix(filepath.Ext(path), ".")
	}
	f := Format(strings.ToLower(name))
	for _, known := range Formats() {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// Options controls the raster and vector layouts.
type Options struct {
	// Width of every panel in pixels.
	Width int
	// Scale multiplies the spec height to get the panel height in pixels.
	Scale float64
}

var DefaultOptions = Options{Width: 640, Scale: 1}

func (o Options) normalized() Options {
	if o.Width <= 0 {
		o.Width = DefaultOptions.Width
	}
	if o.Scale <= 0 {
		o.Scale = DefaultOptions.Scale
	}
	return o
}

// ToFile writes fig to path in the given format.
func ToFile(path string, format Format, fig figure.Figure, opts Options) error {
	if format == FormatPNG {
		return PNG(path, fig, opts)
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	switch format {
	case FormatJSON:
		err = JSON(file, fig)
	case FormatCSV:
		err = CSV(file, fig)
	case FormatSVG:
		err = SVG(file, fig, opts)
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return err
	}
	return file.Close()
}
