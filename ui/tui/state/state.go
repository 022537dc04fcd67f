package state

import (
	"time"

	"graphlens/internal/loader"
)

type Page int

const (
	PageMenu      Page = iota
	PageGraphForm      // Neo4j settings
	PageSQLForm        // Relational settings
	PageResult         // Last load result
	PageConsole        // Log scrollback
)

// AppState holds what the views render: the last load outcome and the
// console log ring.
type AppState struct {
	Result      *loader.Result
	LastLoad    time.Time
	Err         error
	ConsoleLogs []string
	CurrentPage Page
}
