package effects

// FilterAll matches every category.
const FilterAll = "all"

// Artwork is a gallery entry.
type Artwork struct {
	Title       string
	Description string
	Category    string
}

// Gallery keeps the artwork list, the active category filter and the lightbox.
type Gallery struct {
	items  []Artwork
	filter string

	open    bool
	current int
}

func NewGallery(items []Artwork) *Gallery {
	return &Gallery{items: items, filter: FilterAll}
}

func (g *Gallery) Len() int { return len(g.items) }

func (g *Gallery) Item(i int) Artwork { return g.items[i] }

// SetFilter selects a category; FilterAll or "" shows everything.
func (g *Gallery) SetFilter(category string) {
	if category == "" {
		category = FilterAll
	}
	g.filter = category
}

func (g *Gallery) Filter() string { return g.filter }

// Visible returns indices of items matching the filter, in order.
func (g *Gallery) Visible() []int {
	out := make([]int, 0, len(g.items))
	for i, it := range g.items {
		if g.filter == FilterAll || it.Category == g.filter {
			out = append(out, i)
		}
	}
	return out
}

// Categories lists the distinct categories in first-seen order.
func (g *Gallery) Categories() []string {
	seen := map[string]bool{}
	var out []string
	for _, it := range g.items {
		if !seen[it.Category] {
			seen[it.Category] = true
			out = append(out, it.Category)
		}
	}
	return out
}

// Open shows item i in the lightbox. Out-of-range indices are ignored.
func (g *Gallery) Open(i int) {
	if i < 0 || i >= len(g.items) {
		return
	}
	g.current = i
	g.open = true
}

func (g *Gallery) Close()       { g.open = false }
func (g *Gallery) IsOpen() bool { return g.open }

// Navigate moves the lightbox by dir items, wrapping at both ends.
// It does nothing while the lightbox is closed.
func (g *Gallery) Navigate(dir int) {
	if !g.open || len(g.items) == 0 {
		return
	}
	g.current += dir
	if g.current >= len(g.items) {
		g.current = 0
	}
	if g.current < 0 {
		g.current = len(g.items) - 1
	}
}

// Current returns the item shown in the lightbox.
func (g *Gallery) Current() (Artwork, bool) {
	if !g.open {
		return Artwork{}, false
	}
	return g.items[g.current], true
}

func (g *Gallery) Index() int { return g.current }
