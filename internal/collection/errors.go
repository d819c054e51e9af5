package collection

import (
	"errors"
	"fmt"
)

// UpdateFlag is the command-line flag that allows an add to replace an
// existing monitor.
const UpdateFlag = "--update-monitor"

// ErrMonitorNotFound is returned when a monitor to remove is in none of the
// collection's files.
var ErrMonitorNotFound = errors.New("monitor not found")

// DuplicateMonitorError reports two monitors sharing one identity in a
// collection.
type DuplicateMonitorError struct {
	// Monitor is the duplicated identity.
	Monitor string
	// Collection is the collection name.
	Collection string
	// Flag, when set, is the flag that allows replacing the monitor.
	Flag string
}

func (e *DuplicateMonitorError) Error() string {
	if e.Flag == "" {
		return fmt.Sprintf("monitor identifiers must be unique in the collection %s: %s is declared more than once",
			e.Collection, e.Monitor)
	}

	return fmt.Sprintf("monitor %s already exists in collection %s.\nIf you want to replace it, use the %s flag.",
		e.Monitor, e.Collection, e.Flag)
}
