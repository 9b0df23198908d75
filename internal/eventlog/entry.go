package eventlog

import (
	"fmt"
	"time"
)

// Level classifies the severity of a recorded event.
type Level string

const (
	LevelInfo    Level = "INFO"
	LevelWarning Level = "WARNING"
	LevelError   Level = "ERROR"
)

// Entry is one immutable record in the event log. Entries are owned by the
// sink that recorded them and are never mutated after creation.
type Entry struct {
	ID          int64     `json:"id"`
	Timestamp   time.Time `json:"timestamp"`
	Level       Level     `json:"level"`
	Description string    `json:"description"`
}

// String renders the entry in the console audit format.
func (e Entry) String() string {
	return fmt.Sprintf("[%s] [%s] (ID:%d) %s",
		e.Timestamp.Format(time.RFC3339), e.Level, e.ID, e.Description)
}
