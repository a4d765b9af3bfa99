package viz

import (
	"fmt"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/sciunits/pkg/converter"
	"github.com/san-kum/sciunits/pkg/quantity"
	"github.com/san-kum/sciunits/pkg/scientific"
)

// Sweep evaluates c with a fixed left operand while the right operand ramps
// linearly from `from` to `to`. Results are expressed in the unit of the
// first result.
func Sweep(c *converter.Converter, left, from, to scientific.Value, points int) ([]float64, quantity.Unit, error) {
	if points < 2 {
		return nil, quantity.Unit{}, fmt.Errorf("sweep needs at least 2 points, got %d", points)
	}
	end, err := to.ToUnit(from.Unit())
	if err != nil {
		return nil, quantity.Unit{}, fmt.Errorf("sweep bounds: %w", err)
	}

	ys := make([]float64, points)
	var unit quantity.Unit
	step := (end.Magnitude() - from.Magnitude()) / float64(points-1)

	for i := 0; i < points; i++ {
		right := scientific.New(from.Magnitude()+step*float64(i), from.Unit())
		v, err := c.Compute(left, right)
		if err != nil {
			return nil, quantity.Unit{}, err
		}
		if i == 0 {
			unit = v.Unit()
		}
		v, err = v.ToUnit(unit)
		if err != nil {
			return nil, quantity.Unit{}, err
		}
		ys[i] = v.Magnitude()
	}
	return ys, unit, nil
}

func Plot(data []float64, caption string, width, height int) string {
	return asciigraph.Plot(data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
	)
}
