package viz

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/sciunits/pkg/converter"
	"github.com/san-kum/sciunits/pkg/quantity"
	"github.com/san-kum/sciunits/pkg/scientific"
)

// Renderer formats engine values for the terminal
type Renderer struct {
	styles    Styles
	precision int
}

func NewRenderer(theme Theme, precision int) *Renderer {
	if precision <= 0 {
		precision = 6
	}
	return &Renderer{styles: NewStyles(theme), precision: precision}
}

// FormatMagnitude prints x with the given significant digits
func FormatMagnitude(x float64, precision int) string {
	return strconv.FormatFloat(x, 'g', precision, 64)
}

func (r *Renderer) Value(v scientific.Value) string {
	return r.styles.Value.Render(FormatMagnitude(v.Magnitude(), r.precision)) + " " + v.Unit().Symbol()
}

func (r *Renderer) Error(err error) string {
	return r.styles.Error.Render("error: ") + err.Error()
}

func (r *Renderer) Quantities(qs []quantity.Quantity) string {
	rows := [][]string{{"QUANTITY", "SI UNIT", "DIMENSION", "UNITS"}}
	for _, q := range qs {
		rows = append(rows, []string{
			q.String(),
			q.SIUnit().Symbol(),
			q.Dimension().String(),
			strconv.Itoa(len(q.Units())),
		})
	}
	return r.table(rows)
}

func (r *Renderer) Units(q quantity.Quantity) string {
	rows := [][]string{{"SYMBOL", "NAME", "1 UNIT IN " + q.SIUnit().Symbol()}}
	for _, u := range q.Units() {
		rows = append(rows, []string{u.Symbol(), u.Name(), FormatMagnitude(u.ToCanonical(1), r.precision)})
	}
	return r.styles.Title.Render(q.String()) + "\n" + r.table(rows)
}

func (r *Renderer) Converters(q quantity.Quantity, convs []*converter.Converter) string {
	var sb strings.Builder
	sb.WriteString(r.styles.Title.Render(q.String()))
	sb.WriteString(r.styles.Muted.Render(" [" + q.Dimension().String() + "]"))
	sb.WriteByte('\n')

	if len(convs) == 0 {
		sb.WriteString(r.styles.Muted.Render("no converters"))
		return sb.String()
	}

	for i, c := range convs {
		sb.WriteString(r.styles.Muted.Render(strconv.Itoa(i+1) + ". "))
		sb.WriteString(r.styles.Label.Render(c.Label()))
		sb.WriteString("  ")
		sb.WriteString(r.styles.Muted.Render(c.Quantity().String()))
		sb.WriteString(" " + r.styles.Operator.Render(c.Operator().Symbol()) + " ")
		sb.WriteString(r.styles.Muted.Render(c.Partner().String()))
		if i < len(convs)-1 {
			sb.WriteByte('\n')
		}
	}
	return r.styles.Panel.Render(sb.String())
}

// Computation renders "left op right = result" inside a titled panel
func (r *Renderer) Computation(c *converter.Converter, left, right, result scientific.Value) string {
	line := r.Value(left) + " " + r.styles.Operator.Render(c.Operator().Symbol()) + " " +
		r.Value(right) + " = " + r.Value(result)
	return r.styles.Panel.Render(r.styles.Title.Render(c.Label()) + "\n" + line)
}

// Sections joins rendered blocks with a separator as wide as the widest block.
func (r *Renderer) Sections(blocks []string) string {
	width := 0
	for _, b := range blocks {
		if w := lipgloss.Width(b); w > width {
			width = w
		}
	}
	return strings.Join(blocks, "\n"+r.styles.Separator(width)+"\n")
}

func (r *Renderer) table(rows [][]string) string {
	widths := make([]int, len(rows[0]))
	for _, row := range rows {
		for i, cell := range row {
			if w := lipgloss.Width(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	lines := make([]string, len(rows))
	for ri, row := range rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			style := r.styles.Label
			if ri == 0 {
				style = r.styles.Header
			}
			cells[i] = style.Width(widths[i] + 2).Render(cell)
		}
		lines[ri] = lipgloss.JoinHorizontal(lipgloss.Top, cells...)
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
