package fracindex

import (
	"fmt"
	"strings"
)

// Append — append-position generation
//
// Description:
//
//	Append returns a position that sorts strictly after last, without
//	touching any other position in the sequence. An empty last means the
//	sequence is empty and yields Start.
//
// Algorithm Outline:
//  1. last == ""            → return Start (the alphabet midpoint, "V").
//  2. last digit < maximal  → replace the final symbol with its successor
//     (same length, a plain "increment last digit").
//  3. last digit == maximal → the string cannot be incremented in place;
//     append the midpoint symbol. A longer string sharing last as a strict
//     prefix always sorts after last, and landing mid-table reserves
//     symmetric room before and after the new tail.
//
// Growth:
//
//	Consecutive appends from empty consume 31 one-symbol values, then 31
//	two-symbol values led by the maximal symbol, then 31 three-symbol
//	values, and so on — length grows by one symbol roughly every 31 calls.
//
// Complexity: O(len(last)) time, one string allocation.
func Append(last string) string {
	if last == "" {
		return Start
	}
	n := len(last)
	i := indexOf(last[n-1])
	if i < radix-1 {
		return last[:n-1] + string(symbolAt(i+1))
	}
	// Final digit is already maximal: extend mid-table instead.
	return last + string(midSymbol)
}

// Between — insert-position generation
//
// Description:
//
//	Between returns a position that sorts strictly between before and after.
//	Either bound may be empty, meaning the corresponding end of the sequence
//	is open.
//
// Cases:
//  1. both empty    → Start (same as appending to an empty sequence).
//  2. before empty  → synthesize a value below after (see generateBefore).
//  3. after empty   → delegate to Append(before).
//  4. both present  → lexicographic midpoint (see midpoint); before must
//     sort strictly before after or the call fails.
//
// Complexity: O(len(before) + len(after)) time.
//
// Errors:
//   - ErrUnordered — both bounds present and before >= after. A caller bug,
//     never retried internally.
func Between(before, after string) (string, error) {
	switch {
	case before == "" && after == "":
		return Start, nil
	case before == "":
		return generateBefore(after), nil
	case after == "":
		return Append(before), nil
	}
	if before >= after {
		return "", fmt.Errorf("%w: %q >= %q", ErrUnordered, before, after)
	}
	return midpoint(before, after), nil
}

// generateBefore synthesizes a position strictly below after when no lower
// bound exists, so "insert before everything" never runs out of room.
//
// It prefers to stop at the first digit offering a real gap (index > 1):
// half that index becomes a new single leading symbol. With no gap at the
// current digit (index 0 or 1) it pins the minimal symbol and recurses into
// the remainder of after; an exhausted remainder extends with the midpoint
// symbol. Recursion depth is bounded by len(after).
func generateBefore(after string) string {
	i := indexOf(after[0])
	if i > 1 {
		return string(symbolAt(i / 2))
	}
	if len(after) > 1 {
		return string(minSymbol) + generateBefore(after[1:])
	}
	return string(minSymbol) + string(midSymbol)
}

// midpoint returns a position strictly between before and after.
// Precondition (enforced by Between): both non-empty and before < after.
//
// When after has before as a strict prefix, the gap lives entirely in
// after's suffix; padding the shorter string and scanning would silently
// produce a wrong answer here, so the suffix is handled by generateBefore
// and glued onto before.
//
// Otherwise both strings are padded with the minimal symbol to equal length
// and scanned for the first differing digit pair (b, a):
//   - a-b > 1: the floor midpoint (a+b)/2 is a valid replacement digit;
//     the result is truncated at that digit.
//   - a-b == 1 (adjacent, no room at this digit): extend with the midpoint
//     symbol. If before has digits beyond the differing position the
//     extension must go on before itself, or the result could sort at or
//     below it; otherwise the truncated prefix is extended.
func midpoint(before, after string) string {
	if strings.HasPrefix(after, before) {
		return before + generateBefore(after[len(before):])
	}

	n := len(before)
	if len(after) > n {
		n = len(after)
	}
	pb, pa := pad(before, n), pad(after, n)

	p := 0
	for pb[p] == pa[p] {
		p++
	}
	b, a := indexOf(pb[p]), indexOf(pa[p])

	if a-b > 1 {
		return pb[:p] + string(symbolAt((a+b)/2))
	}
	if len(before) > p+1 {
		return before + string(midSymbol)
	}
	return pb[:p+1] + string(midSymbol)
}

// pad right-pads s to length n with the minimal symbol.
func pad(s string, n int) string {
	if len(s) >= n {
		return s
	}
	return s + strings.Repeat(string(minSymbol), n-len(s))
}

// Compare reports the byte-order relation between two positions:
// -1 if a sorts before b, 0 if equal, +1 if a sorts after b.
//
// It is exactly strings.Compare; it exists so call sites state the ordering
// contract explicitly instead of reaching for a locale-aware comparison.
func Compare(a, b string) int {
	return strings.Compare(a, b)
}
