package plot

import (
	"fmt"
	"math"

	"github.com/notargets/flamestab/curve"
)

// PeninsulaPeMax clips the peninsula chart on the Peclet axis
const PeninsulaPeMax = 1500.

// PeninsulaChart draws wavenumber against Pe(n) for each case, one color per
// equivalence ratio. Samples outside [0, PeninsulaPeMax] are dropped.
func PeninsulaChart(pens []curve.Peninsula) (ls *LineSet) {
	ls = NewLineSet()
	for i, pen := range pens {
		pe := make([]float64, len(pen.Pe))
		for j, v := range pen.Pe {
			if v < 0 || v > PeninsulaPeMax {
				v = math.NaN()
			}
			pe[j] = v
		}
		ls.AddPolyline(pe, pen.N, GetColor(i))
	}
	for i, pen := range pens {
		ls.AddLabel(Label{
			Color: GetColor(i),
			Text:  fmt.Sprintf("phi=%.1f", pen.Phi),
			Pitch: 18,
			X:     ls.XMax,
			Y:     ls.YMax - float32(i)*0.05*(ls.YMax-ls.YMin),
		})
	}
	return
}

// CriticalCharts draws Pe_crit and n_crit against equivalence ratio. Failed
// points leave a gap.
func CriticalCharts(points []curve.Point) (pe, n *LineSet) {
	var (
		phi = make([]float64, len(points))
		peC = make([]float64, len(points))
		nC  = make([]float64, len(points))
		col = GetColor(0)
	)
	for i, p := range points {
		phi[i] = p.Phi
		if p.Err != nil {
			peC[i], nC[i] = math.NaN(), math.NaN()
			continue
		}
		peC[i], nC[i] = p.Critical.Pe, p.Critical.N
	}
	pe, n = NewLineSet(), NewLineSet()
	pe.AddPolyline(phi, peC, col)
	pe.AddMarkers(phi, peC, col, 0.01)
	pe.AddLabel(Label{Color: col, Text: "Critical Peclet number vs equivalence ratio", Pitch: 18, X: pe.XMin, Y: pe.YMax})
	n.AddPolyline(phi, nC, col)
	n.AddMarkers(phi, nC, col, 0.01)
	n.AddLabel(Label{Color: col, Text: "Critical wavenumber vs equivalence ratio", Pitch: 18, X: n.XMin, Y: n.YMax})
	return
}
