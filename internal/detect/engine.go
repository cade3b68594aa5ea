package detect

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/tsawler/tabula/graphicsstate"
	"github.com/tsawler/tabula/model"
	"github.com/tsawler/tabula/pages"
	"github.com/tsawler/tabula/reader"
	"github.com/tsawler/tabula/tables"

	"github.com/rusperres/tablex/internal/config"
)

// Engine runs table detection over a PDF document using the tabula
// parsing toolkit.
type Engine struct {
	cfg    config.DetectCfg
	logger *slog.Logger
}

// NewEngine creates an engine with the given tuning and logger.
func NewEngine(cfg config.DetectCfg, logger *slog.Logger) *Engine {
	return &Engine{cfg: cfg, logger: logger}
}

// rawTable is a detected cell grid before labeling and typing.
type rawTable struct {
	page  int
	cells [][]string
}

// Detect runs one detection attempt and returns the tables found, in
// page and discovery order. A document with no tables yields an empty
// result and no error.
func (e *Engine) Detect(ctx context.Context, req Request) ([]Table, error) {
	switch req.Mode {
	case ModeLattice, ModeStream:
	default:
		return nil, fmt.Errorf("unknown detection mode: %q", req.Mode)
	}

	if err := e.preflight(req.Path); err != nil {
		return nil, err
	}

	r, err := reader.Open(req.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer r.Close()

	pageCount, err := r.PageCount()
	if err != nil {
		return nil, fmt.Errorf("failed to read page count: %w", err)
	}

	pageNums, err := ResolvePages(req.Pages, pageCount)
	if err != nil {
		return nil, err
	}

	var raws []rawTable
	for _, n := range pageNums {
		pageRaws, err := e.detectPage(r, n, req.Mode)
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", n, err)
		}
		raws = append(raws, pageRaws...)
	}

	e.logger.Debug("detection attempt finished",
		"mode", string(req.Mode),
		"pages", len(pageNums),
		"tables", len(raws))

	if !req.MultipleTables && len(raws) > 1 {
		raws = []rawTable{mergeRaw(raws)}
	}

	found := make([]Table, 0, len(raws))
	for _, rt := range raws {
		found = append(found, tableFromCells(rt.page, rt.cells))
	}
	return found, nil
}

// preflight validates the document structure with pdfcpu before the
// table parser touches it.
func (e *Engine) preflight(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	count, err := api.PageCount(f, nil)
	if err != nil {
		return fmt.Errorf("invalid PDF document: %w", err)
	}
	if count == 0 {
		return fmt.Errorf("PDF document has no pages")
	}
	return nil
}

// detectPage runs one mode's detection on a single 1-indexed page.
func (e *Engine) detectPage(r *reader.Reader, n int, mode Mode) ([]rawTable, error) {
	page, err := r.GetPage(n - 1)
	if err != nil {
		return nil, fmt.Errorf("failed to load page: %w", err)
	}

	fragments, err := r.ExtractTextFragments(page)
	if err != nil {
		return nil, fmt.Errorf("failed to extract text: %w", err)
	}

	modelFrags := make([]model.TextFragment, len(fragments))
	for i, f := range fragments {
		modelFrags[i] = model.TextFragment{
			Text:     f.Text,
			BBox:     model.BBox{X: f.X, Y: f.Y, Width: f.Width, Height: f.Height},
			FontSize: f.FontSize,
			FontName: f.FontName,
		}
	}

	if mode == ModeLattice {
		return e.detectLattice(page, modelFrags, n)
	}
	return e.detectStream(page, modelFrags, n)
}

// detectLattice finds ruled tables by extracting drawn lines from the
// page's content streams and fitting a grid to them.
func (e *Engine) detectLattice(page *pages.Page, fragments []model.TextFragment, n int) ([]rawTable, error) {
	content, err := pageContent(page)
	if err != nil {
		return nil, err
	}
	if len(content) == 0 {
		return nil, nil
	}

	extractor := graphicsstate.NewGraphicsExtractor()
	if err := extractor.ExtractFromBytes(content); err != nil {
		return nil, fmt.Errorf("failed to extract graphics: %w", err)
	}

	detector := tables.NewGridDetector()
	hypotheses := detector.DetectFromExtractor(extractor)

	var raws []rawTable
	for _, h := range hypotheses {
		if h.Rows < e.cfg.MinRows || h.Cols < e.cfg.MinCols || h.Confidence < e.cfg.MinConfidence {
			e.logger.Debug("discarding grid hypothesis",
				"page", n,
				"rows", h.Rows,
				"cols", h.Cols,
				"confidence", h.Confidence)
			continue
		}
		raws = append(raws, rawTable{page: n, cells: fillGrid(h, fragments)})
	}
	return raws, nil
}

// detectStream finds unruled tables from whitespace and text alignment.
func (e *Engine) detectStream(page *pages.Page, fragments []model.TextFragment, n int) ([]rawTable, error) {
	if len(fragments) == 0 {
		return nil, nil
	}

	width, err := page.Width()
	if err != nil {
		return nil, fmt.Errorf("failed to read page width: %w", err)
	}
	height, err := page.Height()
	if err != nil {
		return nil, fmt.Errorf("failed to read page height: %w", err)
	}

	mp := model.NewPage(width, height)
	mp.Number = n
	mp.RawText = fragments

	detector := tables.NewGeometricDetector()
	if err := detector.Configure(tables.Config{
		MinRows:            e.cfg.MinRows,
		MinCols:            e.cfg.MinCols,
		MinConfidence:      e.cfg.MinConfidence,
		UseLines:           false,
		UseWhitespace:      true,
		MaxCellGap:         e.cfg.MaxCellGap,
		AlignmentTolerance: e.cfg.AlignmentTolerance,
		DetectMergedCells:  false,
	}); err != nil {
		return nil, fmt.Errorf("failed to configure detector: %w", err)
	}

	detected, err := detector.Detect(mp)
	if err != nil {
		return nil, fmt.Errorf("geometric detection failed: %w", err)
	}

	var raws []rawTable
	for _, t := range detected {
		cells := make([][]string, t.RowCount())
		for i := range cells {
			row := make([]string, t.ColCount())
			for j := range row {
				if c := t.GetCell(i, j); c != nil {
					row[j] = c.Text
				}
			}
			cells[i] = row
		}
		raws = append(raws, rawTable{page: n, cells: cells})
	}
	return raws, nil
}

// mergeRaw concatenates raw grids into a single grid, padding narrow
// rows to the widest. The first grid's header row leads; later header
// rows surface as data rows.
func mergeRaw(raws []rawTable) rawTable {
	width := 0
	for _, rt := range raws {
		for _, row := range rt.cells {
			if len(row) > width {
				width = len(row)
			}
		}
	}

	merged := rawTable{page: raws[0].page}
	for _, rt := range raws {
		for _, row := range rt.cells {
			padded := make([]string, width)
			copy(padded, row)
			merged.cells = append(merged.cells, padded)
		}
	}
	return merged
}
