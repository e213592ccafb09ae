package rendering

import (
	"testing"

	"github.com/RMahshie/vibronomogram/pkg/nomogram"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/vg"
)

func TestDemoNames(t *testing.T) {
	assert.Equal(t, []string{"simple", "srs"}, DemoNames())
}

func TestDemos_Render(t *testing.T) {
	for _, name := range DemoNames() {
		t.Run(name, func(t *testing.T) {
			spec, err := Demo(name)
			require.NoError(t, err)

			img, err := Render(spec, DefaultSettings)
			require.NoError(t, err)
			assert.NotEmpty(t, img.Data)
		})
	}
}

func TestDemo_SimpleSeriesCoincide(t *testing.T) {
	spec, err := Demo("simple")
	require.NoError(t, err)

	axes, err := Build(spec)
	require.NoError(t, err)

	// Both series describe the same 1 mm displacement, so the data range is
	// that of a single line: 2π·1e-3 at 1 Hz up to 2π at 1 kHz.
	p := axes.Plot()
	assert.InEpsilon(t, 6.283e-3, p.Y.Min, 1e-3)
	assert.InEpsilon(t, 6.283, p.Y.Max, 1e-3)
}

func TestDemo_SRSLimits(t *testing.T) {
	spec, err := Demo("srs")
	require.NoError(t, err)

	axes, err := Build(spec)
	require.NoError(t, err)
	assert.InDelta(t, 10, axes.XLim().Min, 1e-9)
	assert.InDelta(t, 2000, axes.XLim().Max, 1e-9)
	assert.InDelta(t, 0.01, axes.YLim().Min, 1e-12)
	assert.InDelta(t, 10, axes.YLim().Max, 1e-12)
}

func TestDemo_SRSGridStyle(t *testing.T) {
	spec, err := Demo("srs")
	require.NoError(t, err)
	require.NotNil(t, spec.Grid)
	assert.Equal(t, 0.4, spec.Grid.MajorStyle.Alpha)
	assert.Equal(t, 0.2, spec.Grid.MinorStyle.Alpha)

	axes, err := Build(spec)
	require.NoError(t, err)
	fs := axes.(*nomogram.FrequencySpace)
	assert.Equal(t, vg.Points(0.8), fs.IAxis.GridInfo(nomogram.Major).Style.Width)
	assert.Equal(t, vg.Points(0.5), fs.IAxis.GridInfo(nomogram.Minor).Style.Width)
}

func TestDemo_Unknown(t *testing.T) {
	_, err := Demo("sweep")
	assert.Error(t, err)
}
