package rendering

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/RMahshie/vibronomogram/internal/storage"
	"github.com/RMahshie/vibronomogram/pkg/models"
	"github.com/RMahshie/vibronomogram/pkg/nomogram"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ErrInvalidSpec wraps every error caused by the content of a chart spec
var ErrInvalidSpec = errors.New("invalid chart spec")

const zoneAlpha = 77

// Defaults fill in the parts of a spec that were left out
type Defaults struct {
	Format   string
	WidthIn  float64
	HeightIn float64
}

// DefaultSettings is used when no configuration is available
var DefaultSettings = Defaults{Format: "png", WidthIn: 8, HeightIn: 6}

// Image is a rendered chart
type Image struct {
	Data        []byte
	Format      string
	ContentType string
}

// ContentType maps a chart format to its MIME type
func ContentType(format string) (string, error) {
	switch strings.ToLower(format) {
	case "png":
		return storage.ContentTypePNG, nil
	case "svg":
		return storage.ContentTypeSVG, nil
	case "pdf":
		return storage.ContentTypePDF, nil
	}
	return "", fmt.Errorf("%w: unsupported format %q", ErrInvalidSpec, format)
}

// ObjectKey is where the image of a chart is stored
func ObjectKey(id, format string) string {
	return fmt.Sprintf("charts/%s.%s", id, strings.ToLower(format))
}

// FormatOf returns the image format of spec, falling back to d
func (d Defaults) FormatOf(spec *models.ChartSpec) string {
	if spec.Format != "" {
		return strings.ToLower(spec.Format)
	}
	if d.Format != "" {
		return strings.ToLower(d.Format)
	}
	return DefaultSettings.Format
}

func (d Defaults) size(spec *models.ChartSpec) (w, h vg.Length) {
	wi, hi := spec.WidthIn, spec.HeightIn
	if wi <= 0 {
		wi = d.WidthIn
	}
	if wi <= 0 {
		wi = DefaultSettings.WidthIn
	}
	if hi <= 0 {
		hi = d.HeightIn
	}
	if hi <= 0 {
		hi = DefaultSettings.HeightIn
	}
	return vg.Length(wi) * vg.Inch, vg.Length(hi) * vg.Inch
}

// Build creates the axes described by spec and draws its series and zones
func Build(spec *models.ChartSpec) (nomogram.Axes, error) {
	axes, err := build(spec)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSpec, err)
	}
	return axes, nil
}

func build(spec *models.ChartSpec) (nomogram.Axes, error) {
	name := spec.Projection
	if name == "" {
		name = nomogram.FrequencySpaceName
	}
	axes, err := nomogram.New(name, nomogram.Options{
		Title:               spec.Title,
		UseGravityFormatter: spec.UseGravityFormatter,
	})
	if err != nil {
		return nil, err
	}

	if spec.FrequencyLimits != nil {
		if len(spec.FrequencyLimits) != 2 {
			return nil, fmt.Errorf("frequency limits need 2 values, got %d", len(spec.FrequencyLimits))
		}
		if err := axes.SetXLim(spec.FrequencyLimits[0], spec.FrequencyLimits[1]); err != nil {
			return nil, err
		}
	}
	if spec.VelocityLimits != nil {
		if len(spec.VelocityLimits) != 2 {
			return nil, fmt.Errorf("velocity limits need 2 values, got %d", len(spec.VelocityLimits))
		}
		if err := axes.SetYLim(spec.VelocityLimits[0], spec.VelocityLimits[1]); err != nil {
			return nil, err
		}
	}

	if spec.Grid != nil {
		if spec.Grid.Major {
			opts, err := gridOptions(spec.Grid.MajorStyle)
			if err != nil {
				return nil, fmt.Errorf("major grid: %w", err)
			}
			axes.Grid(true, nomogram.Major, nomogram.AxisBoth, opts...)
		}
		if spec.Grid.Minor {
			opts, err := gridOptions(spec.Grid.MinorStyle)
			if err != nil {
				return nil, fmt.Errorf("minor grid: %w", err)
			}
			axes.Grid(true, nomogram.Minor, nomogram.AxisBoth, opts...)
		}
	}

	for i, s := range spec.Series {
		xys := make(plotter.XYs, len(s.Points))
		for j, p := range s.Points {
			xys[j].X, xys[j].Y = p.Frequency, p.Value
		}
		var style *draw.LineStyle
		if s.Color != "" {
			c, err := ParseColor(s.Color)
			if err != nil {
				return nil, fmt.Errorf("series %d: %w", i, err)
			}
			style = &draw.LineStyle{Color: c, Width: vg.Points(1.5)}
		}
		if _, err := axes.PlotOn(nomogram.Quantity(s.Quantity), s.Name, xys, style); err != nil {
			return nil, fmt.Errorf("series %d: %w", i, err)
		}
	}

	for i, z := range spec.Zones {
		var c color.Color
		if z.Color != "" {
			n, err := ParseColor(z.Color)
			if err != nil {
				return nil, fmt.Errorf("zone %d: %w", i, err)
			}
			n.A = zoneAlpha
			c = n
		}
		if err := axes.FillAbove(nomogram.Quantity(z.Quantity), z.Above, c); err != nil {
			return nil, fmt.Errorf("zone %d: %w", i, err)
		}
	}

	return axes, nil
}

func gridOptions(style *models.LineStyle) ([]nomogram.GridOption, error) {
	if style == nil {
		return nil, nil
	}
	var opts []nomogram.GridOption
	if style.Color != "" {
		c, err := ParseColor(style.Color)
		if err != nil {
			return nil, err
		}
		opts = append(opts, nomogram.WithColor(c))
	}
	if style.Width < 0 {
		return nil, fmt.Errorf("line width %g is negative", style.Width)
	}
	if style.Width > 0 {
		opts = append(opts, nomogram.WithLineWidth(vg.Points(style.Width)))
	}
	if len(style.Dashes) > 0 {
		dashes := make([]vg.Length, len(style.Dashes))
		for i, d := range style.Dashes {
			if d <= 0 {
				return nil, fmt.Errorf("dash length %g is not positive", d)
			}
			dashes[i] = vg.Points(d)
		}
		opts = append(opts, nomogram.WithDashes(dashes...))
	}
	if style.Alpha < 0 || style.Alpha > 1 {
		return nil, fmt.Errorf("alpha %g is outside [0, 1]", style.Alpha)
	}
	if style.Alpha > 0 {
		opts = append(opts, nomogram.WithAlpha(style.Alpha))
	}
	return opts, nil
}

// Render draws spec into an image, using d for anything spec leaves out
func Render(spec *models.ChartSpec, d Defaults) (*Image, error) {
	format := d.FormatOf(spec)
	contentType, err := ContentType(format)
	if err != nil {
		return nil, err
	}

	axes, err := Build(spec)
	if err != nil {
		return nil, err
	}

	w, h := d.size(spec)
	wt, err := axes.WriterTo(w, h, format)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s writer: %w", format, err)
	}

	var buf bytes.Buffer
	if _, err := wt.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to render chart: %w", err)
	}

	return &Image{Data: buf.Bytes(), Format: format, ContentType: contentType}, nil
}

// ParseColor parses a #rrggbb colour
func ParseColor(s string) (color.NRGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return color.NRGBA{}, fmt.Errorf("invalid colour %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid colour %q", s)
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}
