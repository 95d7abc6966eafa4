package particle

import "image/color"

// Surface is the 2D raster the field renders onto.
type Surface interface {
	Clear()
	FillCircle(x, y, r float64, clr color.Color)
	Line(x0, y0, x1, y1, width float64, clr color.Color)
}
