package slides

// Pager holds the current slide index, bounded by the slide count.
// The zero value is an empty pager.
type Pager struct {
	count int
	index int
}

// NewPager starts at the first slide.
func NewPager(count int) Pager {
	if count < 0 {
		count = 0
	}
	return Pager{count: count}
}

// At returns a pager positioned at index, clamped into range.
func At(count, index int) Pager {
	p := NewPager(count)
	p.index = p.clamp(index)
	return p
}

func (p Pager) Index() int { return p.index }
func (p Pager) Count() int { return p.count }

// Next moves forward one slide; a no-op on the last slide.
func (p Pager) Next() Pager {
	p.index = p.clamp(p.index + 1)
	return p
}

// Previous moves back one slide; a no-op on the first slide.
func (p Pager) Previous() Pager {
	p.index = p.clamp(p.index - 1)
	return p
}

func (p Pager) HasNext() bool     { return p.index < p.count-1 }
func (p Pager) HasPrevious() bool { return p.index > 0 }

// ShowControls is false when there is nothing to page through.
func (p Pager) ShowControls() bool { return p.count > 1 }

func (p Pager) clamp(i int) int {
	if i > p.count-1 {
		i = p.count - 1
	}
	if i < 0 {
		i = 0
	}
	return i
}
