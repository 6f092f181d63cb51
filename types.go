// SPDX-License-Identifier: MIT
// Package fracindex declares the alphabet table, derived symbol constants,
// and sentinel errors for position generation.
//
// Errors:
//
//	ErrUnordered - Between/NBetween called with before >= after.
//	ErrBadCount  - NBetween called with a negative count.
package fracindex

import "errors"

// Alphabet is the fixed 62-symbol table positions are written in, indexed
// 0..61. It is constructed so that byte order already matches numeral order:
// digits, then uppercase, then lowercase. Changing it breaks every
// previously persisted position.
const Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// Start is the position assigned to the first item of an empty sequence:
// the alphabet's midpoint symbol. Starting mid-table rather than at "0"
// leaves inserts before the first item as much room as inserts after it.
const Start = "V"

// radix is the alphabet size; valid symbol indices are 0..radix-1.
const radix = len(Alphabet)

const (
	// minSymbol is the smallest alphabet symbol (Alphabet[0]), used to pad
	// the shorter bound during midpoint scans.
	minSymbol byte = '0'

	// midSymbol is the alphabet's midpoint symbol (Alphabet[radix/2]), used
	// to extend a position when no numeric room remains at the current digit.
	midSymbol byte = 'V'
)

// Sentinel errors for position generation.
var (
	// ErrUnordered is returned when both bounds are present and before does
	// not sort strictly before after. This signals a caller bug (typically a
	// stale neighbor read), not a recoverable condition.
	ErrUnordered = errors.New("fracindex: before must sort strictly before after")

	// ErrBadCount is returned when NBetween is asked for a negative number
	// of positions.
	ErrBadCount = errors.New("fracindex: count must be non-negative")
)

// symbolIndex maps a byte to its alphabet index, or -1 for non-members.
// Built once at package init; read-only afterwards.
var symbolIndex = buildSymbolIndex()

func buildSymbolIndex() [256]int8 {
	var tbl [256]int8
	for i := range tbl {
		tbl[i] = -1
	}
	for i := 0; i < radix; i++ {
		tbl[Alphabet[i]] = int8(i)
	}
	return tbl
}

// indexOf returns the alphabet index of c (0..61), or -1 when c is not an
// alphabet symbol. Generation code only ever calls it on bytes of valid
// positions; Valid is the guard for externally supplied data.
func indexOf(c byte) int {
	return int(symbolIndex[c])
}

// symbolAt returns the alphabet symbol at index i. i must be in 0..61.
func symbolAt(i int) byte {
	return Alphabet[i]
}
