package chart

import (
	"io"
	"unicode/utf8"

	svg "github.com/ajstarks/svgo"
)

// SVGOptions sizes the SVG canvas. Zero values fall back to a 1000x600
// canvas that grows vertically with the number of bars.
type SVGOptions struct {
	Width  int
	Height int
}

const (
	defaultSVGWidth  = 1000
	defaultSVGHeight = 600

	svgTopMargin    = 70
	svgBottomMargin = 130
	svgRightMargin  = 70
	svgMinRowHeight = 28
	svgMaxTicks     = 10

	// Bars fill this share of their row.
	barThickness = 0.6

	barFill   = "#3498db"
	barEdge   = "#000000"
	fontStack = "font-family:DejaVu Sans,Helvetica,Arial,sans-serif"
)

// errWriter remembers the first write error; svgo itself ignores them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}

// WriteSVG renders the layout as a standalone SVG document.
func WriteSVG(w io.Writer, l Layout, opts SVGOptions) error {
	width := opts.Width
	if width <= 0 {
		width = defaultSVGWidth
	}
	height := opts.Height
	if height <= 0 {
		height = max(defaultSVGHeight, svgTopMargin+svgBottomMargin+len(l.Bars)*svgMinRowHeight)
	}

	longest := 0
	for _, bar := range l.Bars {
		longest = max(longest, utf8.RuneCountInString(bar.Label))
	}
	left := min(30+7*longest, width/3)

	plotW := max(width-left-svgRightMargin, 1)
	plotH := max(height-svgTopMargin-svgBottomMargin, 1)
	top := svgTopMargin
	bottom := top + plotH
	span := max(l.SpanDays(), 1)

	x := func(days int) int {
		return left + days*plotW/span
	}

	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Start(width, height)
	canvas.Title(l.Title)
	canvas.Rect(0, 0, width, height, "fill:#ffffff")
	canvas.Text(width/2, top/2+6, l.Title, fontStack+";font-size:18px;font-weight:bold;text-anchor:middle")

	ticks := l.Ticks(svgMaxTicks)
	for _, tick := range ticks {
		tx := x(l.Offset(tick.Date))
		canvas.Line(tx, top, tx, bottom, "stroke:#808080;stroke-opacity:0.5;stroke-dasharray:5,4")
	}

	if n := len(l.Bars); n > 0 {
		rowH := plotH / n
		barH := int(float64(rowH) * barThickness)
		for _, bar := range l.Bars {
			cy := bottom - bar.Y*rowH - rowH/2
			x0 := x(l.Offset(bar.Start))
			x1 := x(l.Offset(bar.End()))
			canvas.Rect(x0, cy-barH/2, max(x1-x0, 1), barH,
				"fill:"+barFill+";stroke:"+barEdge+";stroke-width:1")
			canvas.Text(x1+4, cy, bar.DurationLabel(),
				fontStack+";font-size:12px;font-weight:bold;dominant-baseline:middle")
			canvas.Text(left-8, cy, bar.Label,
				fontStack+";font-size:12px;text-anchor:end;dominant-baseline:middle")
		}
	}

	canvas.Line(left, top, left, bottom, "stroke:#000000")
	canvas.Line(left, bottom, left+plotW, bottom, "stroke:#000000")

	for _, tick := range ticks {
		tx := x(l.Offset(tick.Date))
		canvas.Line(tx, bottom, tx, bottom+5, "stroke:#000000")
		canvas.TranslateRotate(tx, bottom+10, -45)
		canvas.Text(0, 0, tick.Label, fontStack+";font-size:11px;text-anchor:end;dominant-baseline:hanging")
		canvas.Gend()
	}

	canvas.Text(left+plotW/2, height-18, l.XLabel, fontStack+";font-size:14px;text-anchor:middle")
	canvas.End()

	return ew.err
}
