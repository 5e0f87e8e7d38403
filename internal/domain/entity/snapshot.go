package entity

import "time"

// Snapshot сохранённые значения всех ползунков доски
type Snapshot struct {
	Label   string
	Values  map[string]int
	SavedAt time.Time
}
