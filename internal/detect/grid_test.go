package detect

import (
	"reflect"
	"testing"

	"github.com/tsawler/tabula/model"
	"github.com/tsawler/tabula/tables"
)

// twoByTwoGrid covers X 100-500 and Y 500-700 with 200x100 point cells.
func twoByTwoGrid() *tables.GridHypothesis {
	return &tables.GridHypothesis{
		HorizontalLines: []float64{700, 600, 500},
		VerticalLines:   []float64{100, 300, 500},
		Rows:            2,
		Cols:            2,
	}
}

func TestGridCell(t *testing.T) {
	h := twoByTwoGrid()

	tests := []struct {
		name    string
		p       model.Point
		wantRow int
		wantCol int
	}{
		{"top left", model.Point{X: 150, Y: 650}, 0, 0},
		{"bottom right", model.Point{X: 350, Y: 550}, 1, 1},
		{"on shared line goes to first row", model.Point{X: 150, Y: 600}, 0, 0},
		{"left of grid", model.Point{X: 50, Y: 650}, 0, -1},
		{"above grid", model.Point{X: 150, Y: 750}, -1, 0},
		{"fully outside", model.Point{X: 50, Y: 750}, -1, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row, col := gridCell(h, tt.p)
			if row != tt.wantRow || col != tt.wantCol {
				t.Errorf("gridCell(%v) = (%d, %d), want (%d, %d)", tt.p, row, col, tt.wantRow, tt.wantCol)
			}
		})
	}
}

func TestFillGrid(t *testing.T) {
	h := twoByTwoGrid()

	frags := []model.TextFragment{
		{Text: "Name", BBox: model.BBox{X: 150, Y: 650}},
		{Text: "Score", BBox: model.BBox{X: 350, Y: 650}},
		{Text: "hello", BBox: model.BBox{X: 140, Y: 550}},
		{Text: "world", BBox: model.BBox{X: 180, Y: 550}},
		{Text: "footer", BBox: model.BBox{X: 150, Y: 80}},
	}

	got := fillGrid(h, frags)

	want := [][]string{
		{"Name", "Score"},
		{"hello world", ""},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("fillGrid = %v, want %v", got, want)
	}
}

func TestFillGrid_CenterDecides(t *testing.T) {
	h := twoByTwoGrid()

	// The fragment starts left of the grid but its center is inside
	// the first column.
	frags := []model.TextFragment{
		{Text: "shifted", BBox: model.BBox{X: 90, Y: 640, Width: 40, Height: 12}},
	}

	got := fillGrid(h, frags)

	if got[0][0] != "shifted" {
		t.Errorf("cell (0,0) = %q, want %q", got[0][0], "shifted")
	}
}
