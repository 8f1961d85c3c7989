// Package export renders trajectories as standalone SVG documents.
package export

import (
	"fmt"
	"os"
	"strings"

	"github.com/san-kum/lvsim/internal/analysis"
)

type SVGOptions struct {
	Width, Height int
	Stroke        string
	// Marker is drawn as a small cross, typically the equilibrium.
	Marker *analysis.Point
	Title  string
}

func DefaultSVGOptions() SVGOptions {
	return SVGOptions{Width: 640, Height: 480, Stroke: "#00ff88"}
}

type frame struct {
	minX, minY, rangeX, rangeY float64
	w, h                       float64
}

func newFrame(points []analysis.Point, marker *analysis.Point, w, h int) frame {
	minX, maxX := points[0].X, points[0].X
	minY, maxY := points[0].Y, points[0].Y
	grow := func(p analysis.Point) {
		minX, maxX = min(minX, p.X), max(maxX, p.X)
		minY, maxY = min(minY, p.Y), max(maxY, p.Y)
	}
	for _, p := range points {
		grow(p)
	}
	if marker != nil {
		grow(*marker)
	}

	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX -= rangeX * 0.1
	minY -= rangeY * 0.1
	return frame{
		minX: minX, minY: minY,
		rangeX: rangeX * 1.2, rangeY: rangeY * 1.2,
		w: float64(w), h: float64(h),
	}
}

func (f frame) project(p analysis.Point) (float64, float64) {
	x := (p.X - f.minX) / f.rangeX * f.w
	y := f.h - (p.Y-f.minY)/f.rangeY*f.h
	return x, y
}

// TrajectoryToSVG draws points as a single polyline. Fewer than two points
// give an empty string.
func TrajectoryToSVG(points []analysis.Point, opts SVGOptions) string {
	if len(points) < 2 {
		return ""
	}
	f := newFrame(points, opts.Marker, opts.Width, opts.Height)

	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, opts.Width, opts.Height, opts.Width, opts.Height)

	if opts.Title != "" {
		fmt.Fprintf(&sb, `<text x="8" y="16" fill="#cccccc" font-family="monospace" font-size="12">%s</text>
`, escape(opts.Title))
	}

	fmt.Fprintf(&sb, `<path fill="none" stroke="%s" stroke-width="1.5" d="M`, opts.Stroke)
	for i, p := range points {
		x, y := f.project(p)
		if i == 0 {
			fmt.Fprintf(&sb, "%.1f,%.1f", x, y)
		} else {
			fmt.Fprintf(&sb, " L%.1f,%.1f", x, y)
		}
	}
	sb.WriteString("\"/>\n")

	if opts.Marker != nil {
		x, y := f.project(*opts.Marker)
		fmt.Fprintf(&sb, `<path stroke="#ff4444" stroke-width="2" d="M%.1f,%.1f L%.1f,%.1f M%.1f,%.1f L%.1f,%.1f"/>
`, x-5, y, x+5, y, x, y-5, x, y+5)
	}

	sb.WriteString("</svg>")
	return sb.String()
}

func WriteSVG(path string, points []analysis.Point, opts SVGOptions) error {
	svg := TrajectoryToSVG(points, opts)
	if svg == "" {
		return fmt.Errorf("export: need at least 2 points, got %d", len(points))
	}
	return os.WriteFile(path, []byte(svg), 0644)
}

func escape(s string) string {
	return strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;").Replace(s)
}
