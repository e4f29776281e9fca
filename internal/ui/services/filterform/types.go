package filterform

import (
	"filmlog/internal/ui/lists"
	"filmlog/internal/ui/logic"
)

// Field is one drawer control with its options and pending value
type Field struct {
	Key     logic.FilterKey
	Label   string
	Kind    lists.ControlKind
	Options []string
	Counts  map[string]int    // per-option result counts, nil when not shown
	Value   logic.FilterValue // pending value, nil when unset
}

// Slot is one focus stop. Range fields have two, one per bound.
type Slot struct {
	Field int
	Bound int // 0 from, 1 to
}

// Bound labels for range slots
var boundLabels = [2]string{"from", "to"}
