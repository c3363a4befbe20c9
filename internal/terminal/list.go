package terminal

import (
	"fmt"
	"strings"
)

var (
	listFields = []string{logFieldMessage, logFieldData}
)

type list struct {
	message string
	data    []string
	width   int
}

func newList(message string, data []interface{}) list {
	var l list

	l.message = message
	l.data = make([]string, 0, len(data))

	for _, item := range data {
		parsed := parseValue(item)
		l.data = append(l.data, parsed)
		if width := len(parsed); width > l.width {
			l.width = width
		}
	}
	return l
}

func (l list) Message() (string, error) {
	rows := make([]string, len(l.data))
	for i, row := range l.data {
		rows[i] = Indent + row
	}
	return fmt.Sprintf("%s\n%s", l.message, strings.Join(rows, "\n")), nil
}

func (l list) Payload() ([]string, map[string]interface{}, error) {
	return listFields, map[string]interface{}{
		logFieldMessage: l.message,
		logFieldData:    l.data,
	}, nil
}
