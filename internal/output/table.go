package output

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// NoResources is printed instead of a table when there are no rows
const NoResources = "(no resources found)"

const (
	cellSeparator   = " | "
	headerSeparator = "-+-"
)

// Header writes title boxed between two lines of '=' as long as the title
func Header(w io.Writer, title string) error {
	rule := strings.Repeat("=", utf8.RuneCountInString(title))
	_, err := fmt.Fprintf(w, "%s\n%s\n%s\n", rule, title, rule)
	return err
}

// Render writes the titled section header followed by an aligned table of rows.
// Rows and headers are not modified. Cells beyond len(headers) are ignored and
// missing cells render empty.
func Render(w io.Writer, title string, rows [][]string, headers []string) error {
	if err := Header(w, title); err != nil {
		return err
	}

	if len(rows) == 0 {
		_, err := fmt.Fprintln(w, NoResources)
		return err
	}

	widths := ColumnWidths(rows, headers)

	if _, err := fmt.Fprintln(w, formatLine(headers, widths)); err != nil {
		return err
	}

	dashes := make([]string, len(widths))
	for i, width := range widths {
		dashes[i] = strings.Repeat("-", width)
	}
	if _, err := fmt.Fprintln(w, strings.Join(dashes, headerSeparator)); err != nil {
		return err
	}

	for _, row := range rows {
		if _, err := fmt.Fprintln(w, formatLine(row, widths)); err != nil {
			return err
		}
	}
	return nil
}

// ColumnWidths returns, per header, the max of the header length and every cell length in that column
func ColumnWidths(rows [][]string, headers []string) []int {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = utf8.RuneCountInString(h)
	}
	for _, row := range rows {
		for i := 0; i < len(widths) && i < len(row); i++ {
			if n := utf8.RuneCountInString(row[i]); n > widths[i] {
				widths[i] = n
			}
		}
	}
	return widths
}

func formatLine(cells []string, widths []int) string {
	padded := make([]string, len(widths))
	for i, width := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		padded[i] = leftJustify(cell, width)
	}
	return strings.Join(padded, cellSeparator)
}

func leftJustify(s string, width int) string {
	if n := utf8.RuneCountInString(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}
