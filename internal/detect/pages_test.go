package detect

import (
	"reflect"
	"strings"
	"testing"
)

func TestResolvePages(t *testing.T) {
	tests := []struct {
		name      string
		selection string
		pageCount int
		want      []int
	}{
		{"all keyword", "all", 3, []int{1, 2, 3}},
		{"empty means all", "", 2, []int{1, 2}},
		{"case insensitive", "ALL", 2, []int{1, 2}},
		{"single page", "2", 3, []int{2}},
		{"range", "2-4", 5, []int{2, 3, 4}},
		{"comma list", "1,3", 3, []int{1, 3}},
		{"list with range", "3,1-2", 3, []int{3, 1, 2}},
		{"duplicates collapse", "2,2,1-2", 3, []int{2, 1}},
		{"whitespace tolerated", " 1 , 2 ", 2, []int{1, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolvePages(tt.selection, tt.pageCount)
			if err != nil {
				t.Fatalf("ResolvePages(%q, %d): %v", tt.selection, tt.pageCount, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ResolvePages(%q, %d) = %v, want %v", tt.selection, tt.pageCount, got, tt.want)
			}
		})
	}
}

func TestResolvePages_Errors(t *testing.T) {
	tests := []struct {
		name      string
		selection string
		pageCount int
		wantMsg   string
	}{
		{"page out of range", "4", 3, "out of range"},
		{"zero page", "0", 3, "out of range"},
		{"range end out of range", "2-9", 3, "out of range"},
		{"end before start", "3-1", 3, "end before start"},
		{"not a number", "two", 3, "invalid page"},
		{"garbage range", "1-b", 3, "invalid page range"},
		{"negative", "-2", 3, "invalid page"},
		{"dangling comma", "1,", 3, "invalid page"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ResolvePages(tt.selection, tt.pageCount)
			if err == nil {
				t.Fatalf("ResolvePages(%q, %d): expected error", tt.selection, tt.pageCount)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error = %q, want it to mention %q", err.Error(), tt.wantMsg)
			}
		})
	}
}
