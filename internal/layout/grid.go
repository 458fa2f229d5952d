package layout

import "fmt"

// GridSpec is the input of a layout pass.
type GridSpec struct {
	CellWidth      int
	CellHeight     int
	ViewportWidth  int
	ViewportHeight int
}

// NewGridSpec builds a GridSpec from a cell size and a viewport size.
func NewGridSpec(cell, viewport Size) GridSpec {
	return GridSpec{
		CellWidth:      cell.Width,
		CellHeight:     cell.Height,
		ViewportWidth:  viewport.Width,
		ViewportHeight: viewport.Height,
	}
}

// Cell returns the cell size.
func (s GridSpec) Cell() Size {
	return Size{Width: s.CellWidth, Height: s.CellHeight}
}

// Viewport returns the viewport size.
func (s GridSpec) Viewport() Size {
	return Size{Width: s.ViewportWidth, Height: s.ViewportHeight}
}

// Validate checks that every dimension is positive and that at least one full
// cell fits the viewport.
func (s GridSpec) Validate() error {
	if s.CellWidth <= 0 || s.CellHeight <= 0 {
		return fmt.Errorf("%w: cell size %s must be positive", ErrInvalidGridSpec, s.Cell())
	}
	if s.ViewportWidth <= 0 || s.ViewportHeight <= 0 {
		return fmt.Errorf("%w: viewport size %s must be positive", ErrInvalidGridSpec, s.Viewport())
	}
	if s.CellWidth > s.ViewportWidth || s.CellHeight > s.ViewportHeight {
		return fmt.Errorf("%w: cell %s does not fit viewport %s", ErrInvalidGridSpec, s.Cell(), s.Viewport())
	}
	return nil
}

// Position locates an item inside the paged content.
type Position struct {
	Page   int
	Column int
	Row    int
}

// Attributes are the computed layout attributes of one item.
type Attributes struct {
	Index    int
	Position Position
	Frame    Rect
}

// PageGrid places items column-first-within-row across fixed-size pages.
// Pages are laid out left to right; the content never grows vertically past
// one page, extra items roll over to the next page instead.
type PageGrid struct {
	spec      GridSpec
	itemCount int

	columns int
	rows    int
	perPage int
	pages   int
}

// New runs a layout pass for itemCount items under spec.
func New(spec GridSpec, itemCount int) (PageGrid, error) {
	if err := spec.Validate(); err != nil {
		return PageGrid{}, err
	}
	if itemCount < 0 {
		return PageGrid{}, fmt.Errorf("%w: %d", ErrInvalidItemCount, itemCount)
	}

	g := PageGrid{
		spec:      spec,
		itemCount: itemCount,
		columns:   spec.ViewportWidth / spec.CellWidth,
		rows:      spec.ViewportHeight / spec.CellHeight,
	}
	g.perPage = g.columns * g.rows
	g.pages = (itemCount + g.perPage - 1) / g.perPage
	return g, nil
}

// WithItemCount runs a new pass with the same spec and a different item count.
func (g PageGrid) WithItemCount(itemCount int) (PageGrid, error) {
	return New(g.spec, itemCount)
}

// WithSpec runs a new pass with the same item count and a different spec.
func (g PageGrid) WithSpec(spec GridSpec) (PageGrid, error) {
	return New(spec, g.itemCount)
}

// Spec returns the spec of this pass.
func (g PageGrid) Spec() GridSpec { return g.spec }

// ItemCount returns the item count of this pass.
func (g PageGrid) ItemCount() int { return g.itemCount }

// ColumnsPerPage returns the number of whole cells that fit horizontally.
func (g PageGrid) ColumnsPerPage() int { return g.columns }

// RowsPerPage returns the number of whole cells that fit vertically.
func (g PageGrid) RowsPerPage() int { return g.rows }

// ItemsPerPage returns ColumnsPerPage * RowsPerPage.
func (g PageGrid) ItemsPerPage() int { return g.perPage }

// PageCount returns ceil(itemCount / itemsPerPage).
func (g PageGrid) PageCount() int { return g.pages }

// ContentSize returns the scrollable content size. An empty grid collapses to
// the viewport size.
func (g PageGrid) ContentSize() Size {
	if g.pages == 0 {
		return g.spec.Viewport()
	}
	return Size{Width: g.pages * g.spec.ViewportWidth, Height: g.spec.ViewportHeight}
}

// PositionFor returns the page, column and row of item index.
func (g PageGrid) PositionFor(index int) (Position, error) {
	if err := g.checkIndex(index); err != nil {
		return Position{}, err
	}
	return g.position(index), nil
}

// AttributesFor returns the attributes of item index.
func (g PageGrid) AttributesFor(index int) (Attributes, error) {
	if err := g.checkIndex(index); err != nil {
		return Attributes{}, err
	}
	return g.attributes(index), nil
}

// AttributesForVisible returns, in index order, the attributes of every item
// whose frame intersects rect.
func (g PageGrid) AttributesForVisible(rect Rect) []Attributes {
	if g.pages == 0 || rect.Empty() {
		return nil
	}

	vw := g.spec.ViewportWidth
	first := floorDiv(rect.X, vw)
	last := floorDiv(rect.MaxX()-1, vw)
	if first < 0 {
		first = 0
	}
	if last >= g.pages {
		last = g.pages - 1
	}

	var out []Attributes
	for page := first; page <= last; page++ {
		start := page * g.perPage
		end := start + g.perPage
		if end > g.itemCount {
			end = g.itemCount
		}
		for i := start; i < end; i++ {
			attr := g.attributes(i)
			if attr.Frame.Intersects(rect) {
				out = append(out, attr)
			}
		}
	}
	return out
}

// IndexAt returns the item whose frame contains p.
func (g PageGrid) IndexAt(p Point) (int, bool) {
	if p.X < 0 || p.Y < 0 || g.pages == 0 {
		return 0, false
	}
	page := p.X / g.spec.ViewportWidth
	column := (p.X - page*g.spec.ViewportWidth) / g.spec.CellWidth
	row := p.Y / g.spec.CellHeight
	if page >= g.pages || column >= g.columns || row >= g.rows {
		return 0, false
	}
	index := page*g.perPage + row*g.columns + column
	if index >= g.itemCount {
		return 0, false
	}
	return index, true
}

// PageRect returns the viewport-sized slot of page.
func (g PageGrid) PageRect(page int) Rect {
	return Rect{
		X:      page * g.spec.ViewportWidth,
		Width:  g.spec.ViewportWidth,
		Height: g.spec.ViewportHeight,
	}
}

// PageOffset returns the content offset that shows page.
func (g PageGrid) PageOffset(page int) Point {
	return g.ClampOffset(Point{X: page * g.spec.ViewportWidth})
}

// PageAt returns the page whose slot contains content column x, clamped to
// the existing pages.
func (g PageGrid) PageAt(x int) int {
	return g.clampPage(floorDiv(x, g.spec.ViewportWidth))
}

// NearestPage returns the page whose origin is closest to offset x.
func (g PageGrid) NearestPage(x int) int {
	vw := g.spec.ViewportWidth
	return g.clampPage(floorDiv(x+vw/2, vw))
}

// ClampOffset keeps an offset within the scrollable range. The content never
// scrolls vertically.
func (g PageGrid) ClampOffset(p Point) Point {
	maxX := g.ContentSize().Width - g.spec.ViewportWidth
	if p.X > maxX {
		p.X = maxX
	}
	if p.X < 0 {
		p.X = 0
	}
	p.Y = 0
	return p
}

func (g PageGrid) clampPage(page int) int {
	if page >= g.pages {
		page = g.pages - 1
	}
	if page < 0 {
		page = 0
	}
	return page
}

func (g PageGrid) checkIndex(index int) error {
	if index < 0 || index >= g.itemCount {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrItemIndexOutOfRange, index, g.itemCount)
	}
	return nil
}

func (g PageGrid) position(index int) Position {
	return Position{
		Page:   index / g.perPage,
		Column: index % g.columns,
		Row:    (index / g.columns) % g.rows,
	}
}

func (g PageGrid) attributes(index int) Attributes {
	pos := g.position(index)
	return Attributes{
		Index:    index,
		Position: pos,
		Frame: Rect{
			X:      pos.Page*g.spec.ViewportWidth + pos.Column*g.spec.CellWidth,
			Y:      pos.Row * g.spec.CellHeight,
			Width:  g.spec.CellWidth,
			Height: g.spec.CellHeight,
		},
	}
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
