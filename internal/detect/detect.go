// Package detect provides the table detection capability the extraction
// driver delegates to. Detection runs in one of two modes: lattice for
// tables delimited by visible ruling lines, stream for tables inferred
// from whitespace and text alignment.
package detect

import "context"

// Mode selects a detection strategy.
type Mode string

const (
	// ModeLattice finds tables delimited by visible ruling lines.
	ModeLattice Mode = "lattice"

	// ModeStream infers tables from whitespace and column alignment.
	ModeStream Mode = "stream"
)

// Request describes one detection attempt over a document.
type Request struct {
	// Path is the filesystem path of the PDF.
	Path string

	// Pages selects pages: "all", a single page ("3"), a range ("2-5"),
	// or a comma-separated combination.
	Pages string

	// Mode is the detection strategy for this attempt.
	Mode Mode

	// MultipleTables returns distinct tables per page. When false, every
	// detected grid is concatenated into a single table.
	MultipleTables bool
}

// Table is one detected tabular region: derived column labels plus
// typed row cells. A cell value is int64, float64 (NaN when the cell is
// missing), bool, or string.
type Table struct {
	Page   int // 1-indexed source page
	Labels []string
	Rows   [][]any
}

// Detector is the table detection capability consumed by the driver.
type Detector interface {
	Detect(ctx context.Context, req Request) ([]Table, error)
}
