package plot

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/notargets/flamestab/curve"
	"github.com/notargets/flamestab/stability"
)

func TestLineSet(t *testing.T) {
	ls := NewLineSet()
	assert.True(t, ls.Empty())
	col := GetColor(0)
	assert.Equal(t, col, GetColor(len(palette)))

	ls.AddPolyline([]float64{0, 1, 2, 3, 4}, []float64{1, 2, math.NaN(), 4, 5}, col)
	assert.False(t, ls.Empty())
	// the NaN drops the two segments touching it
	assert.Equal(t, []float32{0, 1, 1, 2, 3, 4, 4, 5}, ls.Lines[col])
	assert.Equal(t, float32(0), ls.XMin)
	assert.Equal(t, float32(4), ls.XMax)
	assert.Equal(t, float32(1), ls.YMin)
	assert.Equal(t, float32(5), ls.YMax)

	xMin, xMax, yMin, yMax := ls.Bounds(0.25)
	assert.Equal(t, float32(-1), xMin)
	assert.Equal(t, float32(5), xMax)
	assert.Equal(t, float32(0), yMin)
	assert.Equal(t, float32(6), yMax)

	ls.AddMarkers([]float64{2}, []float64{3}, GetColor(1), 0.25)
	assert.Equal(t, []float32{1, 3, 3, 3, 2, 2, 2, 4}, ls.Lines[GetColor(1)])
}

func TestStabilityCharts(t *testing.T) {
	points := []curve.Point{
		{Case: curve.Case{Phi: 0.8}, Critical: stability.CriticalPoint{N: 15.5, Pe: 2993}},
		{Case: curve.Case{Phi: 0.9}, Err: errors.New("failed")},
		{Case: curve.Case{Phi: 1.0}, Critical: stability.CriticalPoint{N: 16.1, Pe: 2661}},
		{Case: curve.Case{Phi: 1.1}, Critical: stability.CriticalPoint{N: 15.9, Pe: 2140}},
	}
	pe, n := CriticalCharts(points)
	// one segment survives the gap, plus two crosses per plotted point
	assert.Len(t, pe.Lines[GetColor(0)], 4+3*8)
	assert.Equal(t, float32(2140), pe.YMin)
	assert.Equal(t, float32(2661), pe.YMax)
	assert.Equal(t, float32(16.1), n.YMax)
	assert.Len(t, pe.Labels, 1)

	pens := []curve.Peninsula{
		{Case: curve.Case{Phi: 1}, N: []float64{7, 10, 14, 20}, Pe: []float64{52798, 3428, 1400, 1450}},
		{Case: curve.Case{Phi: 1.5}, N: []float64{7, 10, 14, 20}, Pe: []float64{900, 800, 740, 760}},
	}
	ls := PeninsulaChart(pens)
	assert.Len(t, ls.Lines[GetColor(0)], 4)
	assert.Len(t, ls.Lines[GetColor(1)], 12)
	assert.LessOrEqual(t, ls.XMax, float32(PeninsulaPeMax))
	assert.Len(t, ls.Labels, 2)
	assert.Equal(t, "phi=1.5", ls.Labels[1].Text)
}
