package quantity

import (
	"strconv"
	"strings"
)

// Dimension holds the exponents of the seven SI base dimensions.
type Dimension struct {
	Length      int8
	Mass        int8
	Time        int8
	Current     int8
	Temperature int8
	Amount      int8
	Luminosity  int8
}

// Mul returns the dimension of a product.
func (d Dimension) Mul(o Dimension) Dimension {
	return Dimension{
		Length:      d.Length + o.Length,
		Mass:        d.Mass + o.Mass,
		Time:        d.Time + o.Time,
		Current:     d.Current + o.Current,
		Temperature: d.Temperature + o.Temperature,
		Amount:      d.Amount + o.Amount,
		Luminosity:  d.Luminosity + o.Luminosity,
	}
}

// Div returns the dimension of a quotient.
func (d Dimension) Div(o Dimension) Dimension {
	return Dimension{
		Length:      d.Length - o.Length,
		Mass:        d.Mass - o.Mass,
		Time:        d.Time - o.Time,
		Current:     d.Current - o.Current,
		Temperature: d.Temperature - o.Temperature,
		Amount:      d.Amount - o.Amount,
		Luminosity:  d.Luminosity - o.Luminosity,
	}
}

func (d Dimension) IsDimensionless() bool {
	return d == Dimension{}
}

// String renders the dimension in SI base symbols, e.g. "m^2 kg s^-2".
func (d Dimension) String() string {
	if d.IsDimensionless() {
		return "1"
	}

	parts := []struct {
		sym string
		exp int8
	}{
		{"m", d.Length},
		{"kg", d.Mass},
		{"s", d.Time},
		{"A", d.Current},
		{"K", d.Temperature},
		{"mol", d.Amount},
		{"cd", d.Luminosity},
	}

	var sb strings.Builder
	for _, p := range parts {
		if p.exp == 0 {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(p.sym)
		if p.exp != 1 {
			sb.WriteByte('^')
			sb.WriteString(strconv.Itoa(int(p.exp)))
		}
	}
	return sb.String()
}
