package sorting

import "filmlog/internal/ui/lists"

// State holds the sort selector of one list
type State struct {
	Options []lists.SortOption
	Index   int
}

// Event types
type SortChangedEvent struct {
	List     string
	OldValue string
	NewValue string
}
