package goargs

import (
	"fmt"
	"strings"

	"github.com/napalu/goargs/util"
)

const (
	columnCount = 3
	// columnGutter separates the long option column from the help column.
	columnGutter = 4
)

// usageWriter renders grammar entries as a three column table: abbreviation, long option and
// help. The help column is wrapped when a line length is set.
type usageWriter struct {
	entries    []entry
	lineLength int

	buffer        strings.Builder
	columnWidths  [columnCount - 1]int
	currentColumn int
	// newlinesNeeded counts line breaks owed before the next write.
	newlinesNeeded int
	// numHelpLines counts consecutive lines written to the help column.
	numHelpLines int
}

func newUsageWriter(entries []entry, lineLength int) *usageWriter {
	return &usageWriter{entries: entries, lineLength: lineLength}
}

func (w *usageWriter) generate() string {
	w.calculateColumnWidths()

	for _, e := range w.entries {
		if e.option == nil {
			w.writeSeparator(e.separator)
			continue
		}
		if e.option.hide {
			continue
		}
		w.writeOption(e.option)
	}

	return w.buffer.String()
}

func (w *usageWriter) writeOption(option *Option) {
	w.write(0, abbreviationColumn(option))
	w.write(1, longOptionColumn(option)+mandatoryColumn(option))

	if option.help != "" {
		w.write(2, option.help)
	}

	switch {
	case option.allowedHelp != nil:
		w.newline()
		for _, value := range option.sortedAllowedHelpKeys() {
			w.write(1, allowedTitle(option, value))
			w.write(2, option.allowedHelp[value])
		}
		w.newline()
	case option.allowed != nil:
		w.write(2, allowedList(option))
	case option.IsFlag():
		if option.defaultFlag {
			w.write(2, "(defaults to on)")
		}
	case option.IsMultiple():
		if len(option.defaultValues) > 0 {
			quoted := make([]string, len(option.defaultValues))
			for i, v := range option.defaultValues {
				quoted[i] = "\"" + v + "\""
			}
			w.write(2, fmt.Sprintf("(defaults to %s)", strings.Join(quoted, ", ")))
		}
	case option.hasDefault:
		w.write(2, fmt.Sprintf("(defaults to \"%s\")", option.defaultValue))
	}

	// Options whose help spans several lines are followed by a blank line.
	if w.numHelpLines > 1 {
		w.newline()
	}
}

func (w *usageWriter) writeSeparator(separator string) {
	if w.buffer.Len() > 0 {
		w.buffer.WriteString("\n\n")
	}
	w.buffer.WriteString(separator)
	w.newlinesNeeded = 1
	w.currentColumn = 0
	w.numHelpLines = 0
}

func (w *usageWriter) calculateColumnWidths() {
	abbr, title := 0, 0
	for _, e := range w.entries {
		if e.option == nil || e.option.hide {
			continue
		}
		option := e.option
		abbr = util.Max(abbr, util.DisplayWidth(abbreviationColumn(option)))
		title = util.Max(title, util.DisplayWidth(longOptionColumn(option)+mandatoryColumn(option)))
		for value := range option.allowedHelp {
			title = util.Max(title, util.DisplayWidth(allowedTitle(option, value)))
		}
	}

	w.columnWidths = [columnCount - 1]int{abbr, title + columnGutter}
}

func (w *usageWriter) newline() {
	w.newlinesNeeded++
	w.currentColumn = 0
	w.numHelpLines = 0
}

func (w *usageWriter) write(column int, text string) {
	lines := strings.Split(text, "\n")
	if column == len(w.columnWidths) && w.lineLength > 0 {
		start := 0
		for _, width := range w.columnWidths {
			start += width
		}
		var wrapped []string
		for _, line := range lines {
			wrapped = append(wrapped, util.WrapTextAsLines(line, start, w.lineLength)...)
		}
		lines = wrapped
	}

	for len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}

	for _, line := range lines {
		w.writeLine(column, line)
	}
}

func (w *usageWriter) writeLine(column int, text string) {
	for ; w.newlinesNeeded > 0; w.newlinesNeeded-- {
		w.buffer.WriteByte('\n')
	}

	// Advance to the requested column, wrapping to the next line when it lies behind us.
	for w.currentColumn != column {
		if w.currentColumn < columnCount-1 {
			w.buffer.WriteString(strings.Repeat(" ", w.columnWidths[w.currentColumn]))
		} else {
			w.buffer.WriteByte('\n')
		}
		w.currentColumn = (w.currentColumn + 1) % columnCount
	}

	if column < len(w.columnWidths) {
		w.buffer.WriteString(util.PadRight(text, w.columnWidths[column]))
	} else {
		w.buffer.WriteString(text)
	}

	w.currentColumn = (w.currentColumn + 1) % columnCount
	if column == columnCount-1 {
		w.newlinesNeeded++
		w.numHelpLines++
	} else {
		w.numHelpLines = 0
	}
}

func abbreviationColumn(option *Option) string {
	if option.abbr == "" {
		return ""
	}

	return "-" + option.abbr + ", "
}

func longOptionColumn(option *Option) string {
	var result string
	if option.Negatable() {
		result = "--[no-]" + option.name
	} else {
		result = "--" + option.name
	}
	if option.valueHelp != "" {
		result += "=<" + option.valueHelp + ">"
	}

	return result
}

func mandatoryColumn(option *Option) string {
	if option.mandatory {
		return " (mandatory)"
	}

	return ""
}

func allowedTitle(option *Option, value string) string {
	title := "      [" + value + "]"
	if option.isDefault(value) {
		title += " (default)"
	}

	return title
}

func allowedList(option *Option) string {
	values := make([]string, len(option.allowed))
	for i, value := range option.allowed {
		if option.isDefault(value) {
			value += " (default)"
		}
		values[i] = value
	}

	return "[" + strings.Join(values, ", ") + "]"
}
