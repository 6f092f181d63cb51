// SPDX-License-Identifier: MIT
package fracindex

import "fmt"

// NBetween — bulk insert-position generation
//
// Description:
//
//	NBetween returns n consecutive positions that all sort strictly between
//	before and after, in ascending order. Either bound may be empty,
//	meaning an open end, under the same contract as Between.
//
// Why not n calls to Between:
//
//	Repeatedly bisecting an ever-narrowing gap grows key length with the
//	batch size. NBetween computes only the first position by bisection
//	against the true anchors, then extends each subsequent position from
//	the previous one via Append — falling back to bisection only when the
//	appended value would not stay below the upper anchor. Per-batch growth
//	stays a small constant instead of compounding.
//
// Complexity: O(n · len(key)) time.
//
// Errors:
//   - ErrBadCount  — n < 0.
//   - ErrUnordered — both bounds present and before >= after.
func NBetween(before, after string, n int) ([]string, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadCount, n)
	}
	if n == 0 {
		return []string{}, nil
	}

	first, err := Between(before, after)
	if err != nil {
		return nil, err
	}

	out := make([]string, 0, n)
	out = append(out, first)
	prev := first
	for k := 1; k < n; k++ {
		next := Append(prev)
		if after != "" && next >= after {
			// Appending overshot the upper anchor; bisect the remaining gap.
			// prev < after always holds here, so this cannot fail.
			next, _ = Between(prev, after)
		}
		out = append(out, next)
		prev = next
	}
	return out, nil
}
