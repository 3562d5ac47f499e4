package ranking

import (
	"fmt"

	"github.com/wcharczuk/go-chart/v2/drawing"
)

const fillBlue = 65

// FillColour смешивает красный и зелёный по нормированной доле t:
// 0 - красный, 1 - зелёный. t вне [0,1] обрезается.
func FillColour(t float64) drawing.Color {
	t = clamp(t)
	return drawing.Color{
		R: uint8(255 - 255*t),
		G: uint8(255 * t),
		B: fillBlue,
		A: 255,
	}
}

// Hex форматирует цвет как #rrggbb
func Hex(c drawing.Color) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
