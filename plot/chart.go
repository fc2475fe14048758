package plot

import (
	"image/color"
	"math"
	"time"

	"github.com/notargets/avs/assets"
	"github.com/notargets/avs/chart2d"
	utils2 "github.com/notargets/avs/utils"

	"github.com/notargets/flamestab/utils"
)

var palette = []color.RGBA{
	{R: 50, G: 0, B: 255, A: 255},
	{R: 255, G: 0, B: 50, A: 255},
	{R: 25, G: 160, B: 25, A: 255},
	{R: 230, G: 140, B: 0, A: 255},
	{R: 140, G: 0, B: 200, A: 255},
	{R: 0, G: 170, B: 170, A: 255},
	{R: 120, G: 80, B: 40, A: 255},
	{R: 255, G: 0, B: 200, A: 255},
	{R: 90, G: 90, B: 90, A: 255},
}

// GetColor cycles through a fixed palette, one color per series
func GetColor(series int) color.RGBA {
	return palette[series%len(palette)]
}

type Label struct {
	Color color.RGBA
	Text  string
	Pitch uint32
	X, Y  float32
}

// LineSet collects line segments per color as consecutive (x1, y1, x2, y2)
// quadruples, the layout chart2d.AddLine draws.
type LineSet struct {
	Lines                  map[color.RGBA][]float32
	Labels                 []Label
	XMin, XMax, YMin, YMax float32
	empty                  bool
}

func NewLineSet() *LineSet {
	return &LineSet{
		Lines: make(map[color.RGBA][]float32),
		XMin:  math.MaxFloat32,
		XMax:  -math.MaxFloat32,
		YMin:  math.MaxFloat32,
		YMax:  -math.MaxFloat32,
		empty: true,
	}
}

// AddPolyline joins consecutive points of (x, y). A non-finite point breaks
// the polyline.
func (ls *LineSet) AddPolyline(x, y []float64, col color.RGBA) {
	finite := utils.IsFinite
	for i := 1; i < len(x) && i < len(y); i++ {
		if !finite(x[i-1]) || !finite(y[i-1]) || !finite(x[i]) || !finite(y[i]) {
			continue
		}
		ls.Lines[col] = append(ls.Lines[col],
			float32(x[i-1]), float32(y[i-1]),
			float32(x[i]), float32(y[i]),
		)
		ls.extend(float32(x[i-1]), float32(y[i-1]))
		ls.extend(float32(x[i]), float32(y[i]))
	}
}

// AddMarkers draws a small cross at each point, sized relative to the current
// extent.
func (ls *LineSet) AddMarkers(x, y []float64, col color.RGBA, size float32) {
	for i := range x {
		if i >= len(y) || !utils.IsFinite(x[i]) || !utils.IsFinite(y[i]) {
			continue
		}
		xx, yy := float32(x[i]), float32(y[i])
		dx, dy := size*(ls.XMax-ls.XMin), size*(ls.YMax-ls.YMin)
		ls.Lines[col] = append(ls.Lines[col],
			xx-dx, yy, xx+dx, yy,
			xx, yy-dy, xx, yy+dy,
		)
	}
}

func (ls *LineSet) AddLabel(lb Label) {
	ls.Labels = append(ls.Labels, lb)
}

func (ls *LineSet) extend(x, y float32) {
	ls.empty = false
	if x < ls.XMin {
		ls.XMin = x
	}
	if x > ls.XMax {
		ls.XMax = x
	}
	if y < ls.YMin {
		ls.YMin = y
	}
	if y > ls.YMax {
		ls.YMax = y
	}
}

func (ls *LineSet) Empty() bool { return ls.empty }

// Bounds pads the extent by a fraction of its size on every side.
func (ls *LineSet) Bounds(pad float32) (xMin, xMax, yMin, yMax float32) {
	dx, dy := ls.XMax-ls.XMin, ls.YMax-ls.YMin
	if dx == 0 {
		dx = 1
	}
	if dy == 0 {
		dy = 1
	}
	return ls.XMin - pad*dx, ls.XMax + pad*dx, ls.YMin - pad*dy, ls.YMax + pad*dy
}

// Render opens a chart window with the line set. It returns immediately; the
// caller keeps the process alive with Wait.
func (ls *LineSet) Render(width, height int) {
	xMin, xMax, yMin, yMax := ls.Bounds(0.05)
	ch := chart2d.NewChart2D(xMin, xMax, yMin, yMax,
		width, height, utils2.WHITE, utils2.BLACK)
	for col, line := range ls.Lines {
		ch.AddLine(line, col)
	}
	for _, lb := range ls.Labels {
		tf := assets.NewTextFormatter("NotoSans", "Regular", lb.Pitch,
			lb.Color, true, false)
		ch.Printf(tf, lb.X, lb.Y, "%s", lb.Text)
	}
}

// Wait blocks while the chart windows stay open
func Wait() {
	for {
		time.Sleep(time.Second)
	}
}
