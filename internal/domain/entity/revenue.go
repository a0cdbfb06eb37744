package entity

// Revenue is a read-only reporting aggregate, one row per month label.
// There is no mutation path for this table.
type Revenue struct {
	Month   string
	Revenue int64
}
