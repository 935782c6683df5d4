package list

// Cursor tracks a selected index over a list of count items and the
// window of rows visible around it.
type Cursor struct {
	index int
	count int
}

// SetCount updates the item count and clamps the selection into range.
func (c *Cursor) SetCount(count int) {
	c.count = max(count, 0)
	switch {
	case c.count == 0:
		c.index = 0
	case c.index >= c.count:
		c.index = c.count - 1
	}
}

// Count returns the item count.
func (c *Cursor) Count() int {
	return c.count
}

// Index returns the selected index, or -1 when the list is empty.
func (c *Cursor) Index() int {
	if c.count == 0 {
		return -1
	}
	return c.index
}

// Set selects index if it is in range.
func (c *Cursor) Set(index int) {
	if index >= 0 && index < c.count {
		c.index = index
	}
}

// Up moves the selection up.
func (c *Cursor) Up() {
	if c.index > 0 {
		c.index--
	}
}

// Down moves the selection down.
func (c *Cursor) Down() {
	if c.index < c.count-1 {
		c.index++
	}
}

// Handle applies a navigation key and reports whether it was one.
func (c *Cursor) Handle(key string) bool {
	switch key {
	case "up", "k":
		c.Up()
	case "down", "j":
		c.Down()
	case "home", "g":
		c.index = 0
	case "end", "G":
		c.index = max(c.count-1, 0)
	default:
		return false
	}
	return true
}

// Window returns the [start, end) range of at most visible items that
// keeps the selection on screen.
func (c *Cursor) Window(visible int) (int, int) {
	if visible < 1 {
		visible = 1
	}
	start := 0
	if c.index >= visible {
		start = c.index - visible + 1
	}
	return start, min(start+visible, c.count)
}
