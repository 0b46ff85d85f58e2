package notify

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"

	"github.com/hamyar-edu/advising_bot/internal/model"
)

// Grid layout constants.
const (
	gridLeftLabelsWidth = 70
	gridHeaderHeight    = 48
	gridCellWidth       = 96
	gridCellHeight      = 26
	gridCellPadding     = 2
)

// Grid colors.
var (
	gridBgColor       = color.RGBA{245, 246, 248, 255}
	gridTextColor     = color.RGBA{80, 85, 90, 255}
	gridLineColor     = color.RGBA{210, 212, 215, 255}
	gridOpenColor     = color.RGBA{133, 193, 85, 220}
	gridClosedColor   = color.RGBA{228, 229, 231, 255}
	gridOpenTextColor = color.RGBA{20, 24, 28, 230}
)

// RenderAvailabilityGrid draws the advisor's weekly availability as a PNG:
// one column per weekday (Saturday-first catalog order, numbered 1..7 in the
// header since the bitmap font has no Persian glyphs), one row per slot
// label, open slots filled. The raster goes out alongside the saved
// confirmation so the advisor sees exactly what was stored.
func RenderAvailabilityGrid(availability model.Availability, weekdays, slots []string) ([]byte, error) {
	width := gridLeftLabelsWidth + len(weekdays)*gridCellWidth
	height := gridHeaderHeight + len(slots)*gridCellHeight

	dc := gg.NewContext(width, height)
	dc.SetFontFace(basicfont.Face7x13)
	dc.SetColor(gridBgColor)
	dc.Clear()

	// Header: day columns, numbered in catalog order.
	for i := range weekdays {
		x := float64(gridLeftLabelsWidth + i*gridCellWidth + gridCellWidth/2)
		dc.SetColor(gridTextColor)
		dc.DrawStringAnchored(fmt.Sprintf("day %d", i+1), x, gridHeaderHeight/2, 0.5, 0.5)
	}

	// Left rail: slot labels.
	for j, slot := range slots {
		y := float64(gridHeaderHeight + j*gridCellHeight + gridCellHeight/2)
		dc.SetColor(gridTextColor)
		dc.DrawStringAnchored(slot, gridLeftLabelsWidth/2, y, 0.5, 0.5)
	}

	// Cells.
	for i, day := range weekdays {
		open := make(map[string]struct{}, len(availability[day]))
		for _, s := range availability[day] {
			open[s] = struct{}{}
		}
		for j, slot := range slots {
			x := float64(gridLeftLabelsWidth + i*gridCellWidth + gridCellPadding)
			y := float64(gridHeaderHeight + j*gridCellHeight + gridCellPadding)
			w := float64(gridCellWidth - 2*gridCellPadding)
			h := float64(gridCellHeight - 2*gridCellPadding)

			if _, ok := open[slot]; ok {
				dc.SetColor(gridOpenColor)
				dc.DrawRectangle(x, y, w, h)
				dc.Fill()
				dc.SetColor(gridOpenTextColor)
				dc.DrawStringAnchored(slot, x+w/2, y+h/2, 0.5, 0.5)
			} else {
				dc.SetColor(gridClosedColor)
				dc.DrawRectangle(x, y, w, h)
				dc.Fill()
			}
		}
	}

	// Grid lines.
	dc.SetColor(gridLineColor)
	for i := 0; i <= len(weekdays); i++ {
		x := float64(gridLeftLabelsWidth + i*gridCellWidth)
		dc.DrawLine(x, 0, x, float64(height))
	}
	for j := 0; j <= len(slots); j++ {
		y := float64(gridHeaderHeight + j*gridCellHeight)
		dc.DrawLine(0, y, float64(width), y)
	}
	dc.Stroke()

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode availability grid: %w", err)
	}
	return buf.Bytes(), nil
}
