package console

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	gRepo "hotel/shared/repository"
)

// PrintTable writes res as aligned columns and returns the number of rows.
// Nothing is written for an empty result.
func PrintTable(w io.Writer, res gRepo.Result) int {
	if res.Empty() {
		return 0
	}

	widths := make([]int, len(res.Columns))
	for idx, col := range res.Columns {
		widths[idx] = utf8.RuneCountInString(col)
	}

	for _, row := range res.Rows {
		for idx := range widths {
			if idx >= len(row) {
				continue
			}

			if width := utf8.RuneCountInString(row[idx]); width > widths[idx] {
				widths[idx] = width
			}
		}
	}

	total := 1
	for _, width := range widths {
		total += width + 3
	}

	rule := strings.Repeat("-", total)

	fmt.Fprintln(w, rule)
	writeRow(w, widths, res.Columns)
	fmt.Fprintln(w, rule)

	for _, row := range res.Rows {
		writeRow(w, widths, row)
	}

	fmt.Fprintln(w, rule)

	return res.Len()
}

func writeRow(w io.Writer, widths []int, values []string) {
	var sb strings.Builder

	sb.WriteString("|")

	for idx, width := range widths {
		value := ""
		if idx < len(values) {
			value = values[idx]
		}

		fmt.Fprintf(&sb, " %-*s |", width, value)
	}

	fmt.Fprintln(w, sb.String())
}

// PrintTableWithCount is PrintTable followed by the row count line.
func PrintTableWithCount(w io.Writer, res gRepo.Result) int {
	count := PrintTable(w, res)

	fmt.Fprintf(w, "Total row(s): %d\n", count)

	return count
}
