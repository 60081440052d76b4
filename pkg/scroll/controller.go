package scroll

// Controller observes and commands scroll positions.
//
// A controller may be shared by the embedding before any position exists;
// positions attach themselves on construction. Observers are notified after
// every offset change of any attached position, mirroring the
// did-scroll callback of a platform scroll view.
type Controller struct {
	// InitialOffset seeds the offset of positions attached later.
	InitialOffset float64

	positions      []*Position
	viewport       float64
	observers      map[int]func()
	nextObserverID int
}

// Offset returns the offset of the first attached position, or
// InitialOffset when none is attached.
func (c *Controller) Offset() float64 {
	if len(c.positions) > 0 {
		return c.positions[0].Offset()
	}
	return c.InitialOffset
}

// ViewportExtent returns the viewport dimension reported by the attached
// positions.
func (c *Controller) ViewportExtent() float64 {
	return c.viewport
}

// AddObserver registers a callback for scroll changes and returns a
// function that removes it.
func (c *Controller) AddObserver(observer func()) func() {
	if observer == nil {
		return func() {}
	}
	if c.observers == nil {
		c.observers = make(map[int]func())
	}
	id := c.nextObserverID
	c.nextObserverID++
	c.observers[id] = observer
	return func() {
		delete(c.observers, id)
	}
}

// JumpTo moves all attached positions to a new offset without animation.
func (c *Controller) JumpTo(offset float64) {
	c.InitialOffset = offset
	if len(c.positions) == 0 {
		c.notifyObservers()
		return
	}
	for _, position := range c.positions {
		position.JumpTo(offset)
	}
}

// AnimateTo springs all attached positions toward a new offset.
func (c *Controller) AnimateTo(offset float64) {
	if len(c.positions) == 0 {
		c.InitialOffset = offset
		c.notifyObservers()
		return
	}
	for _, position := range c.positions {
		position.AnimateTo(offset)
	}
}

// ScrollToTop springs all attached positions back to their minimum offset.
func (c *Controller) ScrollToTop() {
	for _, position := range c.positions {
		position.AnimateTo(position.MinOffset())
	}
}

func (c *Controller) attach(position *Position) {
	for _, existing := range c.positions {
		if existing == position {
			return
		}
	}
	c.positions = append(c.positions, position)
}

// Detach removes a position from the controller.
func (c *Controller) Detach(position *Position) {
	for i, existing := range c.positions {
		if existing == position {
			c.positions = append(c.positions[:i], c.positions[i+1:]...)
			position.controller = nil
			return
		}
	}
}

func (c *Controller) setViewportExtent(extent float64) {
	if extent == c.viewport {
		return
	}
	c.viewport = extent
	c.notifyObservers()
}

func (c *Controller) notifyObservers() {
	for _, observer := range c.observers {
		observer()
	}
}
