package ui

// Base stores the size a component was laid out with. Components embed it.
type Base struct {
	width, height int
}

func (b *Base) SetSize(width, height int) {
	b.width, b.height = width, height
}

func (b Base) Size() (width, height int) { return b.width, b.height }

func (b Base) Width() int { return b.width }

func (b Base) Height() int { return b.height }
