// Package mdtable parses and generates the pipe-delimited table blobs that
// back the portal's record stores. The format is the markdown-table dialect
// the original portal persisted: a header line, a separator line, then one
// row per line with fields joined by "|".
package mdtable

import "strings"

// Delimiter separates fields within a row.
const Delimiter = "|"

// Parse extracts rows from a table blob. Only lines containing the delimiter
// are considered; the first two of those (header and separator) are
// discarded. One leading and one trailing delimiter are stripped per line
// before splitting, and every field is trimmed of surrounding whitespace.
// Rows with fewer than minFields fields are silently dropped: malformed rows
// are tolerated, not rejected.
//
// Parsing the same text always yields the same rows.
func Parse(text string, minFields int) [][]string {
	var lines []string
	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		if strings.Contains(line, Delimiter) {
			lines = append(lines, line)
		}
	}
	if len(lines) <= 2 {
		return nil
	}

	rows := make([][]string, 0, len(lines)-2)
	for _, line := range lines[2:] {
		fields := SplitRow(line)
		if len(fields) < minFields {
			continue
		}
		rows = append(rows, fields)
	}
	return rows
}

// Header returns the column names of the first delimiter-bearing line,
// or nil if the blob has none. Used to detect schema drift across stored
// versions.
func Header(text string) []string {
	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		if strings.Contains(line, Delimiter) {
			return SplitRow(line)
		}
	}
	return nil
}

// SplitRow splits one table line into trimmed fields.
func SplitRow(line string) []string {
	line = strings.TrimSpace(line)
	line = strings.TrimPrefix(line, Delimiter)
	line = strings.TrimSuffix(line, Delimiter)

	parts := strings.Split(line, Delimiter)
	fields := make([]string, len(parts))
	for i, part := range parts {
		fields[i] = strings.TrimSpace(part)
	}
	return fields
}

// Generate renders a table blob: the header line, the separator line, then
// one line per row. Field values are not escaped; a value containing the
// delimiter character will not survive a round trip.
func Generate(header []string, rows [][]string) string {
	var b strings.Builder
	b.WriteString(FormatRow(header))
	b.WriteString("\n")
	b.WriteString(separator(len(header)))
	for _, row := range rows {
		b.WriteString("\n")
		b.WriteString(FormatRow(row))
	}
	return b.String()
}

// FormatRow renders one table line, fields padded with a single surrounding
// space for readability.
func FormatRow(fields []string) string {
	return Delimiter + " " + strings.Join(fields, " "+Delimiter+" ") + " " + Delimiter
}

func separator(n int) string {
	return Delimiter + strings.Repeat("---"+Delimiter, n)
}
