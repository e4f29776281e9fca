package input

import (
	"filmlog/internal/ui/services/navigation"
	"filmlog/internal/ui/services/query"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	Rows      *query.Service
	Navigator *navigation.Service

	Sort        string
	Sorts       []string
	More        bool
	Control     string
	CanLoadMore bool
}

// CurrentIndex returns the current selected index
func (c *ModelContext) CurrentIndex() int {
	return c.Navigator.GetCursor()
}

// TotalItems returns the number of rows on screen
func (c *ModelContext) TotalItems() int {
	return c.Rows.Len()
}

// IsOnGroup returns true if the cursor is on a group header
func (c *ModelContext) IsOnGroup() bool {
	row, ok := c.Rows.RowAt(c.CurrentIndex())
	return ok && row.Kind == query.RowGroup
}

// IsOnShowMore returns true if the cursor is on the show-more row
func (c *ModelContext) IsOnShowMore() bool {
	row, ok := c.Rows.RowAt(c.CurrentIndex())
	return ok && row.Kind == query.RowShowMore
}

// CurrentGroupName returns the group of the row under the cursor
func (c *ModelContext) CurrentGroupName() string {
	return c.Rows.GroupAt(c.CurrentIndex())
}

func (c *ModelContext) HasMore() bool {
	return c.More
}

func (c *ModelContext) CurrentSort() string {
	return c.Sort
}

func (c *ModelContext) SortValues() []string {
	return c.Sorts
}

func (c *ModelContext) FocusedControl() string {
	return c.Control
}

func (c *ModelContext) SearchCanLoadMore() bool {
	return c.CanLoadMore
}
