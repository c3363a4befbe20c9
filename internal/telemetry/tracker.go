package telemetry

import (
	"fmt"
	"strings"
)

// Tracker tracks events
type Tracker interface {
	Track(event event)
}

type noopTracker struct{}

func (tracker *noopTracker) Track(event event) {}

type stdoutTracker struct{}

func (tracker *stdoutTracker) Track(event event) {
	data := make([]string, 0, len(event.data))
	for _, d := range event.data {
		data = append(data, fmt.Sprintf("%s=%v", d.Key, d.Value))
	}

	fmt.Printf("%s: %s[%s]: %s %s\n",
		event.time.Format("15:04:05"),
		event.command,
		event.executionID,
		event.eventType,
		strings.Join(data, " "),
	)
}
