package bars

import (
	"strconv"

	"coplot/internal/dataset"
	"coplot/internal/figure"
	"coplot/internal/render"
)

// Millions is the value scale of the population sample.
const Millions = 1e6

// Builder composes a bar figure from a table whose first column holds the
// category positions and whose remaining columns hold one series each.
type Builder struct {
	// Stacked draws each series on the accumulated height of the ones
	// before it instead of beside them.
	Stacked bool

	Title  string
	YLabel string

	// Scale divides every value before plotting. The sample counts people
	// and plots millions.
	Scale float64
}

// NewGrouped returns the side-by-side builder with the sample labels.
func NewGrouped() *Builder {
	return &Builder{
		Title:  "Population of London",
		YLabel: "population (millions)",
		Scale:  Millions,
	}
}

// NewStacked returns the accumulating builder with the sample labels.
func NewStacked() *Builder {
	b := NewGrouped()
	b.Stacked = true
	return b
}

func (b *Builder) Info() figure.Info {
	info := figure.Info{
		Name:        "bars",
		Title:       b.Title,
		Description: "one bar per series at each category, grouped around the category centre",
		Width:       6,
		Height:      4,
	}
	if b.Stacked {
		info.Name = "stack"
		info.Title = b.Title + ", stacked"
		info.Description = "one bar per series at each category, stacked to the running total"
	}
	return info
}

// DefaultTable returns the census sample without its precomputed total
// column; the stacked figure accumulates inner and outer itself.
func (b *Builder) DefaultTable() figure.Table {
	london := dataset.London()
	year, _ := london.Column("year")
	inner, _ := london.Column("inner")
	outer, _ := london.Column("outer")
	return figure.Table{
		Name:    london.Name,
		Columns: []figure.Column{year, inner, outer},
	}
}

// Build plots every series of the table against the first column's
// categories.
func (b *Builder) Build(t figure.Table) (figure.Renderable, error) {
	x, series, err := split(t)
	if err != nil {
		return nil, err
	}
	return render.NewBarGroup(render.BarsConfig{
		Title:      b.Title,
		XLabel:     x.Name,
		YLabel:     b.YLabel,
		Categories: categories(x),
		Stacked:    b.Stacked,
	}, b.scaled(series))
}

// Sketch describes the bars for the terminal preview. Stacked sketches
// carry cumulative heights so the preview shows the same silhouette as the
// rendered figure.
func (b *Builder) Sketch(t figure.Table) (figure.Sketch, error) {
	x, series, err := split(t)
	if err != nil {
		return figure.Sketch{}, err
	}
	sk := figure.Sketch{
		Title:  b.Info().Title,
		XLabel: x.Name,
		YLabel: b.YLabel,
	}
	prev := make([]float64, t.Len())
	for _, s := range b.scaled(series) {
		y := s.Values
		if b.Stacked {
			top := make([]float64, len(y))
			for j, v := range y {
				top[j] = prev[j] + v
			}
			prev, y = top, top
		}
		sk.Series = append(sk.Series, figure.SketchSeries{Label: s.Label, X: x.Values, Y: y, Bars: true})
	}
	return sk, nil
}

func split(t figure.Table) (figure.Column, []figure.Column, error) {
	if err := t.Validate(); err != nil {
		return figure.Column{}, nil, err
	}
	x, _ := t.X()
	return x, t.Series(), nil
}

// scaled divides every series by the builder scale and pairs it with its
// column name for the legend.
func (b *Builder) scaled(series []figure.Column) []render.BarSeries {
	scale := b.Scale
	if scale == 0 {
		scale = 1
	}
	out := make([]render.BarSeries, len(series))
	for i, s := range series {
		vals := make([]float64, len(s.Values))
		for j, v := range s.Values {
			vals[j] = v / scale
		}
		out[i] = render.BarSeries{Label: s.Name, Values: vals}
	}
	return out
}

// categories formats the x positions as tick labels; whole values print
// without a fraction, so census years read as years.
func categories(x figure.Column) []string {
	out := make([]string, len(x.Values))
	for i, v := range x.Values {
		out[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return out
}

// Compile-time assertion that Builder satisfies the figure contract.
var _ figure.Builder = (*Builder)(nil)
