package terminal

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"
)

const (
	logFieldHeaders = "headers"
	logFieldData    = "data"
)

// set of exported spacing options
const (
	Indent = "  "
	Gutter = "  "
)

var tableFields = []string{logFieldMessage, logFieldData, logFieldHeaders}

// table lays out rows by the ordered header columns. Column widths grow
// to the widest cell.
type table struct {
	message string
	headers []string
	widths  []int
	rows    [][]string
}

func newTable(message string, headers []string, data []map[string]interface{}) table {
	t := table{message: message, headers: headers}
	if len(headers) == 0 {
		return t
	}

	t.widths = make([]int, len(headers))
	for i, header := range headers {
		t.widths[i] = len(header)
	}

	t.rows = make([][]string, 0, len(data))
	for _, row := range data {
		if len(row) == 0 {
			continue
		}
		cells := make([]string, len(headers))
		for i, header := range headers {
			cell := parseValue(row[header])
			if len(cell) > t.widths[i] {
				t.widths[i] = len(cell)
			}
			cells[i] = cell
		}
		t.rows = append(t.rows, cells)
	}
	return t
}

func (t table) Message() (string, error) {
	if err := t.validate(); err != nil {
		return "", err
	}

	bold := color.New(color.Bold).SprintFunc()

	headers := make([]string, len(t.headers))
	dividers := make([]string, len(t.headers))
	for i, header := range t.headers {
		headers[i] = bold(header) + t.padding(i, header)
		dividers[i] = strings.Repeat("-", t.widths[i])
	}

	lines := make([]string, 0, len(t.rows)+2)
	lines = append(lines, strings.Join(headers, Gutter), strings.Join(dividers, Gutter))

	for _, row := range t.rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = cell + t.padding(i, cell)
		}
		lines = append(lines, strings.Join(cells, Gutter))
	}

	return t.message + "\n" + Indent + strings.Join(lines, "\n"+Indent), nil
}

func (t table) Payload() ([]string, map[string]interface{}, error) {
	if err := t.validate(); err != nil {
		return nil, nil, err
	}

	data := make([]map[string]string, len(t.rows))
	for i, row := range t.rows {
		data[i] = make(map[string]string, len(t.headers))
		for j, header := range t.headers {
			data[i][header] = row[j]
		}
	}

	return tableFields, map[string]interface{}{
		logFieldMessage: t.message,
		logFieldHeaders: t.headers,
		logFieldData:    data,
	}, nil
}

func (t table) validate() error {
	if len(t.headers) == 0 {
		return errors.New("cannot create a table without headers")
	}
	return nil
}

func (t table) padding(i int, cell string) string {
	return strings.Repeat(" ", t.widths[i]-len(cell))
}

func parseValue(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprintf("%+v", v)
	}
}
