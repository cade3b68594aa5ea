package detect

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// tableFromCells builds a typed Table from a raw cell grid. The first
// row supplies column labels; remaining rows are typed per column.
func tableFromCells(page int, cells [][]string) Table {
	t := Table{Page: page}
	if len(cells) == 0 {
		return t
	}

	t.Labels = deriveLabels(cells[0])

	data := cells[1:]
	t.Rows = make([][]any, len(data))
	if len(data) == 0 {
		return t
	}

	cols := make([][]any, len(t.Labels))
	for j := range t.Labels {
		raw := make([]string, len(data))
		for i, row := range data {
			if j < len(row) {
				raw[i] = strings.TrimSpace(row[j])
			}
		}
		cols[j] = inferColumn(raw)
	}

	for i := range data {
		t.Rows[i] = make([]any, len(t.Labels))
		for j := range t.Labels {
			t.Rows[i][j] = cols[j][i]
		}
	}
	return t
}

// deriveLabels turns a header row into unique column labels. Blank
// headers become "Unnamed: N" by column position; repeated headers get
// ".1", ".2" suffixes.
func deriveLabels(header []string) []string {
	labels := make([]string, len(header))
	counts := make(map[string]int)

	for j, h := range header {
		label := strings.TrimSpace(h)
		if label == "" {
			label = fmt.Sprintf("Unnamed: %d", j)
		}
		if c, dup := counts[label]; dup {
			base := label
			for {
				c++
				label = fmt.Sprintf("%s.%d", base, c)
				if _, taken := counts[label]; !taken {
					counts[base] = c
					break
				}
			}
		}
		counts[label] = 0
		labels[j] = label
	}

	return labels
}

type colKind int

const (
	kindString colKind = iota
	kindInt
	kindFloat
	kindBool
)

// inferColumn parses a column of raw cell text into the narrowest type
// every present cell fits: int64, float64, bool, then string. Empty
// cells are missing values and come back as NaN.
func inferColumn(raw []string) []any {
	kind := columnKind(raw)

	out := make([]any, len(raw))
	for i, s := range raw {
		if s == "" {
			out[i] = math.NaN()
			continue
		}
		switch kind {
		case kindInt:
			v, _ := strconv.ParseInt(s, 10, 64)
			out[i] = v
		case kindFloat:
			v, _ := strconv.ParseFloat(s, 64)
			out[i] = v
		case kindBool:
			out[i] = strings.EqualFold(s, "true")
		default:
			out[i] = s
		}
	}
	return out
}

// columnKind inspects every present cell in a column. A missing cell
// widens an integer column to floating point, so the NaN marker has a
// numeric home.
func columnKind(raw []string) colKind {
	isInt, isFloat, isBool := true, true, true
	present := 0
	missing := false

	for _, s := range raw {
		if s == "" {
			missing = true
			continue
		}
		present++
		if _, err := strconv.ParseInt(s, 10, 64); err != nil {
			isInt = false
		}
		if _, err := strconv.ParseFloat(s, 64); err != nil {
			isFloat = false
		}
		if !strings.EqualFold(s, "true") && !strings.EqualFold(s, "false") {
			isBool = false
		}
	}

	switch {
	case present == 0:
		return kindFloat
	case isInt && !missing:
		return kindInt
	case isInt || isFloat:
		return kindFloat
	case isBool:
		return kindBool
	default:
		return kindString
	}
}
