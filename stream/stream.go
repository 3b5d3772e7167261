// Package stream is the prefix token stream the parser's core
// produces, plus the import/export (tokenise/emit) pair spec.md §1
// explicitly scopes out of the core as a "near-trivial" collaborator.
// It lives in its own package so the core parser never needs to import
// it.
package stream

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/aledsdavies/pncompile/catalogue"
	"github.com/aledsdavies/pncompile/node"
)

// Item is the unit carried by a Stream: a copy of a node's tagged
// value, independent of the arena that originally allocated its node.
type Item = node.Item

// Stream is an ordered, prefix-preorder sequence of items — the
// parser's sole product. Consumers iterate front to back; no random
// access is required.
type Stream []Item

// Canonical renders s as the `op#arg#arg` notation used throughout
// spec.md §8: every item's textual form (operator name, number lexeme,
// or variable lexeme), in stream order, joined by "#". This is a flat
// join of the preorder sequence, not a recursive arity-aware rendering
// — see DESIGN.md ("Open Question decisions") for why.
func (s Stream) Canonical() string {
	parts := make([]string, len(s))
	for i, item := range s {
		parts[i] = text(item)
	}
	return strings.Join(parts, "#")
}

func text(item Item) string {
	if item.Kind == node.KindOperatorRef {
		return item.Operator.Name
	}
	return item.Lexeme
}

// ImportError reports a malformed canonical string passed to Parse.
type ImportError struct {
	Token   string
	Message string
}

func (e *ImportError) Error() string {
	return fmt.Sprintf("stream: %q: %s", e.Token, e.Message)
}

// Parse decodes a canonical `op#arg#arg` string back into a Stream
// against cat, the inverse of Canonical. Operator names that exist in
// both categories (spec.md §4.1: "the same textual name may exist in
// both prefix and infix categories") are disambiguated by trying infix
// first — it needs two well-formed sub-expressions to follow — and
// falling back to prefix if that fails; this mirrors the parser's own
// "disambiguation is by parse context" note, applied to the flat token
// list instead of a character cursor.
func Parse(s string, cat *catalogue.Catalogue) (Stream, error) {
	if s == "" {
		return nil, &ImportError{Token: s, Message: "empty input"}
	}
	tokens := strings.Split(s, "#")
	for _, tok := range tokens {
		if tok == "" {
			return nil, &ImportError{Token: s, Message: "empty token (double separator or leading/trailing separator)"}
		}
	}

	idx := 0
	out, err := decodeAt(tokens, &idx, cat)
	if err != nil {
		return nil, err
	}
	if idx != len(tokens) {
		return nil, &ImportError{Token: s, Message: "trailing tokens after a complete expression"}
	}
	return out, nil
}

func decodeAt(tokens []string, idx *int, cat *catalogue.Catalogue) (Stream, error) {
	if *idx >= len(tokens) {
		return nil, &ImportError{Message: "unexpected end of token list"}
	}
	tok := tokens[*idx]

	if isNumberLexeme(tok) {
		*idx++
		return Stream{{Kind: node.KindNumber, Lexeme: tok}}, nil
	}

	infixInfo, isInfix := cat.Find(tok, catalogue.Infix)
	prefixInfo, isPrefix := cat.Find(tok, catalogue.Prefix)

	if isInfix {
		saved := *idx
		*idx++
		left, err := decodeAt(tokens, idx, cat)
		if err == nil {
			var right Stream
			right, err = decodeAt(tokens, idx, cat)
			if err == nil {
				out := Stream{{Kind: node.KindOperatorRef, Operator: infixInfo}}
				out = append(out, left...)
				out = append(out, right...)
				return out, nil
			}
		}
		*idx = saved // infix reading failed structurally; try prefix below
	}

	if isPrefix {
		*idx++
		arg, err := decodeAt(tokens, idx, cat)
		if err != nil {
			return nil, err
		}
		out := Stream{{Kind: node.KindOperatorRef, Operator: prefixInfo}}
		out = append(out, arg...)
		return out, nil
	}

	if isInfix {
		return nil, &ImportError{Token: tok, Message: "infix operator missing one or both operands"}
	}

	if !isIdentifierLexeme(tok) {
		return nil, &ImportError{Token: tok, Message: "not a number, variable, or known operator"}
	}
	*idx++
	return Stream{{Kind: node.KindVariable, Lexeme: tok}}, nil
}

func isNumberLexeme(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if unicode.IsDigit(r) {
			continue
		}
		if r == '.' && i > 0 {
			continue
		}
		return false
	}
	return unicode.IsDigit(rune(s[0]))
}

func isIdentifierLexeme(s string) bool {
	for i, r := range s {
		if unicode.IsLetter(r) || r == '_' {
			continue
		}
		if unicode.IsDigit(r) && i > 0 {
			continue
		}
		return false
	}
	return s != ""
}
