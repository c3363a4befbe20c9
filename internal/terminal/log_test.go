package terminal

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/hypecli/hype-cli/internal/utils/test/assert"
)

func TestLogPrint(t *testing.T) {
	staticTime := time.Date(2026, 8, 31, 1, 2, 3, 0, time.UTC)

	t.Run("as text", func(t *testing.T) {
		for _, tc := range []struct {
			description string
			log         Log
			expected    string
		}{
			{
				description: "should print a text log",
				log:         NewTextLog("hello %s", "world"),
				expected:    "01:02:03 UTC INFO  hello world",
			},
			{
				description: "should print a warning log",
				log:         NewWarningLog("look out"),
				expected:    "01:02:03 UTC WARN  look out",
			},
			{
				description: "should print an error log",
				log:         NewErrorLog(errors.New("something bad happened")),
				expected:    "01:02:03 UTC ERROR something bad happened",
			},
			{
				description: "should print a list log",
				log:         NewListLog("items", "one", "two"),
				expected: fmt.Sprintf(`01:02:03 UTC INFO  items
%sone
%stwo`, Indent, Indent),
			},
		} {
			t.Run(tc.description, func(t *testing.T) {
				tc.log.Time = staticTime

				output, err := tc.log.Print(OutputFormatText)
				assert.Nil(t, err)
				assert.Equal(t, tc.expected, output)
			})
		}
	})

	t.Run("as json should keep the field order", func(t *testing.T) {
		l := NewTextLog("hello world")
		l.Time = staticTime

		output, err := l.Print(OutputFormatJSON)
		assert.Nil(t, err)
		assert.Equal(t, `{"time":"2026-08-31T01:02:03Z","level":"info","message":"hello world"}`, output)
	})

	t.Run("should error on an unsupported output format", func(t *testing.T) {
		_, err := NewTextLog("hello world").Print(OutputFormat("xml"))
		assert.NotNil(t, err)
	})
}

func TestTableLog(t *testing.T) {
	t.Run("should align columns to the widest cell", func(t *testing.T) {
		l := NewTableLog(
			"found things",
			[]string{"Name", "Amount"},
			map[string]interface{}{"Name": "coffee", "Amount": "-1.20"},
			map[string]interface{}{"Name": "salary", "Amount": "1500.00"},
		)
		l.Time = time.Date(2026, 8, 31, 1, 2, 3, 0, time.UTC)

		output, err := l.Print(OutputFormatText)
		assert.Nil(t, err)
		assert.Equal(t, `01:02:03 UTC INFO  found things
  Name    Amount
  ------  -------
  coffee  -1.20
  salary  1500.00`, output)
	})

	t.Run("should render non-string and missing cells", func(t *testing.T) {
		l := NewTableLog(
			"found things",
			[]string{"Name", "Count"},
			map[string]interface{}{"Name": "movements", "Count": 42},
			map[string]interface{}{"Name": "snapshots"},
		)

		output, err := l.Print(OutputFormatText)
		assert.Nil(t, err)
		assert.True(t, strings.Contains(output, "42"), "numeric cells should be formatted")
		assert.True(t, strings.Contains(output, "snapshots"), "rows with missing cells should still render")
	})

	t.Run("should error without headers", func(t *testing.T) {
		_, err := NewTableLog("found nothing", nil).Print(OutputFormatText)
		assert.NotNil(t, err)
	})
}
