package detect

import (
	"fmt"

	"github.com/tsawler/tabula/core"
	"github.com/tsawler/tabula/model"
	"github.com/tsawler/tabula/pages"
	"github.com/tsawler/tabula/tables"
)

// pageContent decodes and concatenates a page's content streams.
func pageContent(page *pages.Page) ([]byte, error) {
	contents, err := page.Contents()
	if err != nil {
		return nil, fmt.Errorf("failed to get contents: %w", err)
	}

	var data []byte
	for _, obj := range contents {
		stream, ok := obj.(*core.Stream)
		if !ok {
			continue
		}
		decoded, err := stream.Decode()
		if err != nil {
			return nil, fmt.Errorf("failed to decode content stream: %w", err)
		}
		data = append(data, decoded...)
	}
	return data, nil
}

// fillGrid assigns text fragments to the cells of a detected line grid
// by fragment center position. Fragments landing in the same cell are
// joined with a space, in extraction order.
func fillGrid(h *tables.GridHypothesis, fragments []model.TextFragment) [][]string {
	cells := make([][]string, h.Rows)
	for i := range cells {
		cells[i] = make([]string, h.Cols)
	}

	for _, frag := range fragments {
		row, col := gridCell(h, frag.BBox.Center())
		if row < 0 || col < 0 {
			continue
		}
		if cells[row][col] != "" {
			cells[row][col] += " "
		}
		cells[row][col] += frag.Text
	}

	return cells
}

// gridCell returns the row and column containing the point, or -1 for
// both if the point falls outside the grid. HorizontalLines are sorted
// descending, VerticalLines ascending.
func gridCell(h *tables.GridHypothesis, p model.Point) (row, col int) {
	row = -1
	col = -1

	for i := 0; i < h.Rows; i++ {
		if p.Y <= h.HorizontalLines[i] && p.Y >= h.HorizontalLines[i+1] {
			row = i
			break
		}
	}

	for i := 0; i < h.Cols; i++ {
		if p.X >= h.VerticalLines[i] && p.X <= h.VerticalLines[i+1] {
			col = i
			break
		}
	}

	return row, col
}
