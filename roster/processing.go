// processing.go
package roster

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// Encoding of a CSV roster.
type Encoding string

const (
	UTF8        Encoding = "utf-8"
	Windows1251 Encoding = "windows-1251"
)

// ParseEncoding accepts the usual spellings of the supported encodings.
func ParseEncoding(s string) (Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "utf8", "utf-8":
		return UTF8, nil
	case "cp1251", "windows-1251", "windows1251":
		return Windows1251, nil
	default:
		return "", fmt.Errorf("unsupported encoding %q: %w", s, ErrInvalidInput)
	}
}

var coursePattern = regexp.MustCompile(`^(\d+)-й$`)

var requiredColumns = []string{ColFullName, ColFaculty, ColCourse, ColGroup, ColID, ColGPA}

// ReadCSV loads a roster from CSV with a header row.
func ReadCSV(r io.Reader, enc Encoding) (Roster, error) {
	if enc == Windows1251 {
		r = transform.NewReader(r, charmap.Windows1251.NewDecoder())
	}
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("empty CSV: %w", ErrMalformedRecord)
	}
	return FromRows(rows[0], rows[1:])
}

// ReadExcel loads a roster from the first sheet of an XLSX workbook.
func ReadExcel(r io.Reader) (Roster, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()
	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("no sheets: %w", ErrMalformedRecord)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("empty Excel: %w", ErrMalformedRecord)
	}
	return FromRows(rows[0], rows[1:])
}

// FromRows builds a roster from a header and raw string rows. It stops at
// the first malformed row.
func FromRows(header []string, rows [][]string) (Roster, error) {
	idx, err := columnIndex(header)
	if err != nil {
		return nil, err
	}
	out := make(Roster, 0, len(rows))
	for i, row := range rows {
		if isBlank(row) {
			continue
		}
		s, err := parseRecord(i+1, row, idx)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

func columnIndex(header []string) (map[string]int, error) {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		if _, dup := idx[h]; !dup {
			idx[h] = i
		}
	}
	for _, col := range requiredColumns {
		if _, ok := idx[col]; !ok {
			return nil, &RecordError{Column: col, Reason: "missing column"}
		}
	}
	return idx, nil
}

func parseRecord(n int, row []string, idx map[string]int) (Student, error) {
	cell := func(col string) string {
		i := idx[col]
		if i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}
	bad := func(col, reason string) error {
		return &RecordError{Row: n, Column: col, Value: cell(col), Reason: reason}
	}

	s := Student{
		FullName: cell(ColFullName),
		Faculty:  cell(ColFaculty),
		Course:   cell(ColCourse),
		Group:    cell(ColGroup),
	}
	if len(strings.Fields(s.FullName)) < 2 {
		return s, bad(ColFullName, "expected at least surname and given name")
	}
	if s.Faculty == "" {
		return s, bad(ColFaculty, "empty faculty")
	}
	if s.Group == "" {
		return s, bad(ColGroup, "empty group")
	}
	if !coursePattern.MatchString(s.Course) {
		return s, bad(ColCourse, `expected "<digit>-й"`)
	}

	id, err := parseID(cell(ColID))
	if err != nil {
		return s, bad(ColID, err.Error())
	}
	s.ID = id

	if v := cell(ColGPA); v != "" {
		gpa, err := strconv.ParseFloat(strings.Replace(v, ",", ".", 1), 64)
		if err != nil {
			return s, bad(ColGPA, "not a number")
		}
		s.GPA, s.HasGPA = gpa, true
	}
	return s, nil
}

// parseID accepts "311121" as well as spreadsheet renderings like "311121.0".
func parseID(v string) (int, error) {
	if id, err := strconv.Atoi(v); err == nil {
		return id, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f != float64(int(f)) {
		return 0, fmt.Errorf("not an integer")
	}
	return int(f), nil
}

func isBlank(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
