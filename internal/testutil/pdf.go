// Package testutil builds small PDF documents in memory for tests.
package testutil

import (
	"fmt"
	"strings"
)

// TextPDF builds a single-page PDF containing the given text lines,
// one per line from the top of the page down.
func TextPDF(lines ...string) []byte {
	var ops strings.Builder
	for i, line := range lines {
		y := 720 - 40*i
		fmt.Fprintf(&ops, "BT\n/F1 12 Tf\n72 %d Td\n(%s) Tj\nET\n", y, escapeText(line))
	}
	return buildPDF(ops.String())
}

// GridTablePDF builds a single-page PDF with a fully ruled two-column
// table. Each entry of rows is one table row, the first being the
// header. Cells are 200x100 points with text placed well inside cell
// bounds so fragment width estimation cannot push it into a neighbor.
func GridTablePDF(rows [][2]string) []byte {
	var ops strings.Builder
	ops.WriteString("1 w\n")

	top := 700
	bottom := top - 100*len(rows)
	for i := 0; i <= len(rows); i++ {
		y := top - 100*i
		fmt.Fprintf(&ops, "100 %d m 500 %d l S\n", y, y)
	}
	for _, x := range []int{100, 300, 500} {
		fmt.Fprintf(&ops, "%d %d m %d %d l S\n", x, bottom, x, top)
	}

	for i, row := range rows {
		y := top - 100*i - 60
		for col, x := range []int{150, 350} {
			if row[col] == "" {
				continue
			}
			fmt.Fprintf(&ops, "BT\n/F1 12 Tf\n%d %d Td\n(%s) Tj\nET\n", x, y, escapeText(row[col]))
		}
	}

	return buildPDF(ops.String())
}

// EmptyPagePDF builds a valid single-page PDF whose page carries no
// content stream at all.
func EmptyPagePDF() []byte {
	var b strings.Builder
	b.WriteString("%PDF-1.4\n")

	offsets := make([]int, 4)

	offsets[1] = b.Len()
	b.WriteString("1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n")

	offsets[2] = b.Len()
	b.WriteString("2 0 obj\n<< /Type /Pages /Kids [3 0 R] /Count 1 >>\nendobj\n")

	offsets[3] = b.Len()
	b.WriteString("3 0 obj\n<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] >>\nendobj\n")

	xrefOffset := b.Len()
	b.WriteString("xref\n0 4\n0000000000 65535 f \n")
	for i := 1; i <= 3; i++ {
		fmt.Fprintf(&b, "%010d 00000 n \n", offsets[i])
	}
	fmt.Fprintf(&b, "trailer\n<< /Size 4 /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", xrefOffset)

	return []byte(b.String())
}

// CorruptPDF returns bytes that do not form a PDF document.
func CorruptPDF() []byte {
	return []byte("this is not a portable document\n")
}

// buildPDF wraps a content stream in a minimal one-page document with
// correct xref offsets and a Helvetica font resource.
func buildPDF(content string) []byte {
	var b strings.Builder
	b.WriteString("%PDF-1.4\n")

	offsets := make([]int, 6)

	offsets[1] = b.Len()
	b.WriteString("1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n")

	offsets[2] = b.Len()
	b.WriteString("2 0 obj\n<< /Type /Pages /Kids [3 0 R] /Count 1 >>\nendobj\n")

	offsets[3] = b.Len()
	b.WriteString("3 0 obj\n<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Contents 4 0 R /Resources << /Font << /F1 5 0 R >> >> >>\nendobj\n")

	offsets[4] = b.Len()
	fmt.Fprintf(&b, "4 0 obj\n<< /Length %d >>\nstream\n%s\nendstream\nendobj\n", len(content), content)

	offsets[5] = b.Len()
	b.WriteString("5 0 obj\n<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>\nendobj\n")

	xrefOffset := b.Len()
	b.WriteString("xref\n0 6\n0000000000 65535 f \n")
	for i := 1; i <= 5; i++ {
		fmt.Fprintf(&b, "%010d 00000 n \n", offsets[i])
	}
	fmt.Fprintf(&b, "trailer\n<< /Size 6 /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", xrefOffset)

	return []byte(b.String())
}

func escapeText(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "(", `\(`)
	s = strings.ReplaceAll(s, ")", `\)`)
	return s
}
