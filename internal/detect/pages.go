package detect

import (
	"fmt"
	"strconv"
	"strings"
)

// ResolvePages expands a page selection against the document's page
// count. It accepts "all", single pages ("3"), ranges ("2-5"), and
// comma-separated combinations ("1,3-4"). Returned numbers are
// 1-indexed, deduplicated, in selection order.
func ResolvePages(sel string, pageCount int) ([]int, error) {
	sel = strings.TrimSpace(strings.ToLower(sel))
	if sel == "" || sel == "all" {
		nums := make([]int, pageCount)
		for i := range nums {
			nums[i] = i + 1
		}
		return nums, nil
	}

	var nums []int
	seen := make(map[int]bool)

	add := func(n int) error {
		if n < 1 || n > pageCount {
			return fmt.Errorf("page %d out of range: document has %d pages", n, pageCount)
		}
		if !seen[n] {
			seen[n] = true
			nums = append(nums, n)
		}
		return nil
	}

	for _, part := range strings.Split(sel, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			return nil, fmt.Errorf("invalid page selection %q", sel)
		}

		if lo, hi, isRange := strings.Cut(part, "-"); isRange {
			start, err := strconv.Atoi(strings.TrimSpace(lo))
			if err != nil {
				return nil, fmt.Errorf("invalid page range %q", part)
			}
			end, err := strconv.Atoi(strings.TrimSpace(hi))
			if err != nil {
				return nil, fmt.Errorf("invalid page range %q", part)
			}
			if end < start {
				return nil, fmt.Errorf("invalid page range %q: end before start", part)
			}
			for n := start; n <= end; n++ {
				if err := add(n); err != nil {
					return nil, err
				}
			}
			continue
		}

		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid page number %q", part)
		}
		if err := add(n); err != nil {
			return nil, err
		}
	}

	return nums, nil
}
