// Package scanner provides position-keeping primitives over a
// classified input: skip whitespace, match a word, match braces, match
// a numeric literal, match a variable name, match an operator. Every
// primitive advances the cursor on success and leaves it untouched on
// failure, with one exception: a word-form MatchOperator miss leaves
// the cursor past the consumed word (see MatchOperator). Callers that
// need to try several alternatives snapshot the cursor themselves with
// Mark/Reset.
package scanner

import (
	"github.com/aledsdavies/pncompile/catalogue"
	"github.com/aledsdavies/pncompile/classify"
	"github.com/aledsdavies/pncompile/node"
)

// Cursor indexes into a classified input and allocates the leaf nodes
// scan primitives produce via the given arena.
type Cursor struct {
	table      *classify.Table
	at         int
	arena      *node.Arena
	catalogue  *catalogue.Catalogue
	decimalSep rune
}

// New returns a cursor positioned at the start of input.
func New(input string, arena *node.Arena, cat *catalogue.Catalogue, decimalSep rune) *Cursor {
	return &Cursor{
		table:      classify.New(input),
		arena:      arena,
		catalogue:  cat,
		decimalSep: decimalSep,
	}
}

// Mark snapshots the current position for later backtracking.
func (c *Cursor) Mark() int {
	return c.at
}

// Reset restores a previously marked position.
func (c *Cursor) Reset(mark int) {
	c.at = mark
}

// AtEnd reports whether the cursor has consumed the entire input.
func (c *Cursor) AtEnd() bool {
	c.SkipWhitespace()
	return c.at >= c.table.Len()
}

// Offset returns the cursor's current rune offset, for error reporting.
func (c *Cursor) Offset() int {
	return c.at
}

// SkipWhitespace advances while the current rune classifies as
// whitespace. Bounded by table.Len(): Table.At reports Whitespace past
// the end of input too, so an unbounded loop here would never stop.
func (c *Cursor) SkipWhitespace() {
	for c.at < c.table.Len() && c.table.At(c.at) == classify.Whitespace {
		c.at++
	}
}

// MatchWord requires the current rune to be a letter, then consumes a
// maximal run of {letter, digit}. Returns the consumed text and whether
// anything was consumed. Whitespace is skipped first; on success,
// trailing whitespace is skipped too.
func (c *Cursor) MatchWord() (string, bool) {
	mark := c.at
	c.SkipWhitespace()
	start := c.at
	if c.table.At(c.at) != classify.Letter {
		c.at = mark
		return "", false
	}
	for c.table.At(c.at) == classify.Letter || c.table.At(c.at) == classify.Digit {
		c.at++
	}
	word := c.table.Slice(start, c.at)
	c.SkipWhitespace()
	return word, true
}

// MatchOpeningBrace consumes a single '(' with surrounding whitespace.
func (c *Cursor) MatchOpeningBrace() bool {
	return c.matchRune('(')
}

// MatchClosingBrace consumes a single ')' with surrounding whitespace.
func (c *Cursor) MatchClosingBrace() bool {
	return c.matchRune(')')
}

func (c *Cursor) matchRune(want rune) bool {
	mark := c.at
	c.SkipWhitespace()
	if c.at >= c.table.Len() || c.table.Rune(c.at) != want {
		c.at = mark
		return false
	}
	c.at++
	c.SkipWhitespace()
	return true
}

// MatchNumber requires the current rune to be a digit, then consumes a
// maximal run of digits that may contain at most one decimal separator.
// On success it returns a fresh Number node owned by the cursor's arena.
func (c *Cursor) MatchNumber() (*node.Node, bool) {
	mark := c.at
	c.SkipWhitespace()
	start := c.at
	if c.table.At(c.at) != classify.Digit {
		c.at = mark
		return nil, false
	}
	sawSeparator := false
	for {
		if c.table.At(c.at) == classify.Digit {
			c.at++
			continue
		}
		if c.at < c.table.Len() && c.table.Rune(c.at) == c.decimalSep && !sawSeparator {
			// A separator must be followed by at least one digit to be
			// part of this number; otherwise it belongs to whatever
			// comes next (e.g. a trailing statement separator).
			if c.table.At(c.at+1) != classify.Digit {
				break
			}
			sawSeparator = true
			c.at++
			continue
		}
		break
	}
	lexeme := c.table.Slice(start, c.at)
	n := c.arena.New(node.Item{Kind: node.KindNumber, Lexeme: lexeme, Offset: start})
	c.SkipWhitespace()
	return n, true
}

// MatchVariableName consumes a word and rejects it, restoring the
// cursor, if the word matches any known operator name in any category.
// On success it returns a fresh Variable node.
func (c *Cursor) MatchVariableName() (*node.Node, bool) {
	mark := c.Mark()
	word, ok := c.MatchWord()
	if !ok {
		return nil, false
	}
	if c.catalogue.IsKnown(word) {
		c.Reset(mark)
		return nil, false
	}
	n := c.arena.New(node.Item{Kind: node.KindVariable, Lexeme: word, Offset: c.wordOffsetBefore(mark)})
	return n, true
}

// wordOffsetBefore recomputes where a word starting the scan at `from`
// actually began, by skipping the same leading whitespace MatchWord
// would have skipped. This avoids MatchVariableName having to thread
// the post-whitespace start position through Reset/retry.
func (c *Cursor) wordOffsetBefore(from int) int {
	at := from
	for c.table.At(at) == classify.Whitespace {
		at++
	}
	return at
}

// MatchOperator attempts to match an operator of the given category at
// the cursor, returning a fresh operator-reference node on success.
//
// For a word-form candidate (current rune is a letter), it tentatively
// consumes a whole word and looks it up in category. On a miss, the
// source behaviour (spec.md §9) is preserved: the word has already been
// consumed and the cursor is left past it — no node is produced, but
// the cursor is NOT restored. Callers relying on backtracking after a
// word-form miss must snapshot before calling MatchOperator themselves.
//
// Otherwise (symbolic), it tries the longest symbolic name in category
// first, shrinking one rune at a time until a catalogue hit or length 0.
func (c *Cursor) MatchOperator(category catalogue.Category) (*node.Node, bool) {
	mark := c.at
	c.SkipWhitespace()
	start := c.at

	if c.table.At(c.at) == classify.Letter {
		word, ok := c.MatchWord()
		if !ok {
			return nil, false
		}
		info, found := c.catalogue.Find(word, category)
		if !found {
			// Bug-compatible: word stays consumed, cursor stays advanced.
			return nil, false
		}
		n := c.arena.New(node.Item{Kind: node.KindOperatorRef, Operator: info, Offset: start})
		return n, true
	}

	maxLen := c.catalogue.LongestSymbolic(category)
	remaining := c.table.Len() - c.at
	if remaining < maxLen {
		maxLen = remaining
	}
	for length := maxLen; length >= 1; length-- {
		candidate := c.table.Slice(c.at, c.at+length)
		if info, found := c.catalogue.Find(candidate, category); found {
			c.at += length
			c.SkipWhitespace()
			n := c.arena.New(node.Item{Kind: node.KindOperatorRef, Operator: info, Offset: start})
			return n, true
		}
	}
	c.at = mark
	return nil, false
}
