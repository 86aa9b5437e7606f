package container

import (
	"fmt"
	"io"
	"strings"

	"github.com/shinji-kodama/color-pour/internal/model"
)

// Container is a bounded ordered sequence of elements.
// The zero value is an empty container ready to use.
type Container struct {
	// elements is ordered bottom to top; the last entry is the top.
	elements []model.Element
}

// New creates an empty Container with room for model.MaxElements elements.
func New() *Container {
	return &Container{
		elements: make([]model.Element, 0, model.MaxElements),
	}
}

// Add appends e at the back of the container.
// If the container is full, e is discarded and model.ErrContainerFull
// is returned.
func (c *Container) Add(e model.Element) error {
	if c.IsFull() {
		return model.ErrContainerFull
	}
	c.push(e)
	return nil
}

// IsFull reports whether the container holds model.MaxElements elements.
func (c *Container) IsFull() bool {
	return len(c.elements) >= model.MaxElements
}

// IsEmpty reports whether the container holds no elements.
func (c *Container) IsEmpty() bool {
	return len(c.elements) == 0
}

// Len returns the number of elements currently held.
func (c *Container) Len() int {
	return len(c.elements)
}

// Top returns the most recently added element.
// The second return value is false when the container is empty.
func (c *Container) Top() (model.Element, bool) {
	if c.IsEmpty() {
		return model.Element{}, false
	}
	return c.elements[len(c.elements)-1], true
}

// Colors returns the color labels of the contents, ordered bottom to top.
func (c *Container) Colors() []string {
	colors := make([]string, 0, len(c.elements))
	for _, e := range c.elements {
		colors = append(colors, e.String())
	}
	return colors
}

// String returns a human-readable representation of the contents.
//
// Format: "Container [Red Green] (2/3)"
func (c *Container) String() string {
	return fmt.Sprintf("Container [%s] (%d/%d)",
		strings.Join(c.Colors(), " "), len(c.elements), model.MaxElements)
}

// Display writes String() followed by a newline to w.
func (c *Container) Display(w io.Writer) error {
	_, err := fmt.Fprintln(w, c.String())
	return err
}

func (c *Container) push(e model.Element) {
	c.elements = append(c.elements, e)
}

// pop removes and returns the top element. Callers check IsEmpty first.
func (c *Container) pop() model.Element {
	last := len(c.elements) - 1
	e := c.elements[last]
	c.elements = c.elements[:last]
	return e
}
