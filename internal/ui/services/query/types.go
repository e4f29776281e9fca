package query

// RowKind represents what type of row is at an index
type RowKind int

const (
	RowGroup RowKind = iota
	RowItem
	RowShowMore
)

// Item is the rendered form of one list value
type Item struct {
	Label  string
	Detail string
	Badge  string // short right-aligned marker such as a grade
}

// Row is one selectable line of a list
type Row struct {
	Kind  RowKind
	Group string // group name for headers and grouped items
	Count int    // items in the group, or remaining items for the show-more row
	Index int    // position in the list's visible values, items only
	Item  Item
}

// RowsChangedEvent is published when a list's rows are rebuilt
type RowsChangedEvent struct {
	List  string
	Count int
}
