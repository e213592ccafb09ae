// Package nomogram extends gonum.org/v1/plot with a frequency-space
// projection for vibration analysis.
//
// A FrequencySpace plots velocity against frequency on log-log axes and
// overlays two families of straight iso-lines: constant displacement
// (v = s·2πf) and constant acceleration (v = a/2πf). Each derived quantity
// is related to velocity by
//
//	Y = v / (2πf)^order
//
// with order +1 for displacement and -1 for acceleration, so in log10 space
// every iso-line is a straight line of slope order.
//
// All quantities are SI: Hz, m/s, m and m/s².
//
// The projection is registered under the name "frequency_space":
//
//	ax, err := nomogram.New(nomogram.FrequencySpaceName, nomogram.Options{})
//	ax.SetXLim(1, 1000)
//	ax.SetYLim(1e-4, 1)
//	ax.Grid(true, nomogram.Major, nomogram.AxisBoth)
//	err = ax.Save(8*vg.Inch, 6*vg.Inch, "nomogram.png")
package nomogram
