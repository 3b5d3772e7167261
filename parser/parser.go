// Package parser implements the recursive-descent, backtracking parser
// that turns an infix arithmetic expression into a flat prefix token
// stream: Parse is the grammar engine (operation / block / operand,
// with precedence fix-up rotations), ParseVariable a restricted entry
// point accepting a single variable name.
package parser

import (
	"errors"

	"github.com/aledsdavies/pncompile/catalogue"
	"github.com/aledsdavies/pncompile/node"
	"github.com/aledsdavies/pncompile/scanner"
	"github.com/aledsdavies/pncompile/stream"
)

// errNoMatch is an internal sentinel meaning "this grammar alternative
// did not match" — distinct from a structural *ParseError, which must
// propagate past every enclosing alternative instead of triggering a
// backtrack. It never escapes this package.
var errNoMatch = errors.New("parser: no match")

// Config holds the knobs a parse run is sensitive to: the operator
// catalogue to consult, and the decimal separator rune (spec.md §9
// leaves this open; fixed to '.' by default, but a caller wiring a
// different locale can override it).
type Config struct {
	Catalogue        *catalogue.Catalogue
	DecimalSeparator rune
}

// DefaultConfig returns the standard arithmetic catalogue with '.' as
// the decimal separator.
func DefaultConfig() Config {
	return Config{Catalogue: catalogue.Default(), DecimalSeparator: '.'}
}

// flags control which grammar alternatives parseStatement may try, and
// whether it requires the cursor to reach end-of-input.
type flags uint8

const (
	flagFull flags = 1 << iota
	flagNotOperation
)

// parseContext carries the per-call state a parse needs: the cursor,
// the arena it allocates through, and the original input (kept around
// only for error snippets). None of this is package-level state — two
// concurrent Parse calls build two independent contexts (spec.md §5,
// §9 "Process-wide parser state").
type parseContext struct {
	cursor *scanner.Cursor
	arena  *node.Arena
	input  string
}

// Parse parses a complete infix expression using the default catalogue
// and decimal separator.
func Parse(input string) (stream.Stream, error) {
	return ParseWithConfig(input, DefaultConfig())
}

// ParseWithConfig parses a complete infix expression under cfg.
func ParseWithConfig(input string, cfg Config) (stream.Stream, error) {
	arena := node.NewArena()
	defer arena.Release()

	pc := &parseContext{
		cursor: scanner.New(input, arena, cfg.Catalogue, cfg.DecimalSeparator),
		arena:  arena,
		input:  input,
	}

	root, err := pc.parseStatement(flagFull)
	if err != nil {
		if err == errNoMatch {
			return nil, newError(ErrParsingFailed, "input is not a valid expression", pc.cursor.Offset(), input)
		}
		return nil, err
	}
	return linearise(root), nil
}

// ParseVariable accepts only a single variable name: the whole input
// must be one identifier that does not collide with a known operator
// name.
func ParseVariable(input string) (string, error) {
	return ParseVariableWithConfig(input, DefaultConfig())
}

// ParseVariableWithConfig is ParseVariable under an explicit Config.
func ParseVariableWithConfig(input string, cfg Config) (string, error) {
	arena := node.NewArena()
	defer arena.Release()

	cur := scanner.New(input, arena, cfg.Catalogue, cfg.DecimalSeparator)
	n, ok := cur.MatchVariableName()
	if !ok || !cur.AtEnd() {
		return "", newError(ErrInvalidVariableName, "expected a single variable name", cur.Offset(), input)
	}
	return n.Item.Lexeme, nil
}

// parseStatement implements:
//
//	statement = operation | block | operand
//
// trying operation (unless flagNotOperation is set), then block, then
// operand; the first alternative to both match and (if flagFull is
// set) consume the whole input wins. A structural error raised deep
// inside a block (spec.md §4.6) is never treated as a backtrackable
// failure — it propagates straight out, skipping every remaining
// alternative at every enclosing level.
func (pc *parseContext) parseStatement(f flags) (*node.Node, error) {
	mark := pc.cursor.Mark()

	if f&flagNotOperation == 0 {
		if n, ok, err := pc.tryAlternative(f, pc.parseOperation); err != nil {
			return nil, err
		} else if ok {
			return n, nil
		}
		pc.cursor.Reset(mark)
	}

	if n, ok, err := pc.tryAlternative(f, pc.parseBlock); err != nil {
		return nil, err
	} else if ok {
		return n, nil
	}
	pc.cursor.Reset(mark)

	if n, ok, err := pc.tryAlternative(f, pc.parseOperand); err != nil {
		return nil, err
	} else if ok {
		return n, nil
	}
	pc.cursor.Reset(mark)

	// No alternative matched: this is a soft failure, not a structural
	// one — a caller trying statement as one shape among several (an
	// operation's lhs/rhs, a block's contents) must be free to try a
	// different shape instead. Only the top-level entry point turns a
	// total statement-match failure into a *ParseError.
	return nil, errNoMatch
}

// tryAlternative runs one grammar alternative and applies the flagFull
// requirement uniformly: a match that doesn't reach end-of-input when
// full is required is treated exactly like a non-match, so the caller
// tries the next alternative instead.
func (pc *parseContext) tryAlternative(f flags, alt func() (*node.Node, error)) (*node.Node, bool, error) {
	n, err := alt()
	if err != nil {
		if err == errNoMatch {
			return nil, false, nil
		}
		return nil, false, err // structural error: propagate, do not backtrack
	}
	if f&flagFull != 0 && !pc.cursor.AtEnd() {
		return nil, false, nil
	}
	return n, true, nil
}

// parseOperation implements:
//
//	operation = (prefix_op statement) | (statement[¬operation] infix_op statement)
func (pc *parseContext) parseOperation() (*node.Node, error) {
	mark := pc.cursor.Mark()

	if op, ok := pc.cursor.MatchOperator(catalogue.Prefix); ok {
		rhs, err := pc.parseStatement(0)
		if err == nil {
			op.Right = rhs
			return fixUp(op, rhs, true), nil
		}
		if err != errNoMatch {
			return nil, err
		}
		pc.cursor.Reset(mark)
	}

	// MatchOperator leaves the cursor advanced past a consumed word even
	// on a miss (scanner.Cursor.MatchOperator's documented word-form
	// quirk); reset unconditionally before trying lhs as its own
	// statement, since a mismatched prefix attempt must not leave the
	// cursor anywhere but where this production started.
	pc.cursor.Reset(mark)

	lhs, err := pc.parseStatement(flagNotOperation)
	if err == nil {
		if op, ok := pc.cursor.MatchOperator(catalogue.Infix); ok {
			rhs, err2 := pc.parseStatement(0)
			if err2 == nil {
				op.Left = lhs
				op.Right = rhs
				return fixUp(op, rhs, false), nil
			}
			if err2 != errNoMatch {
				return nil, err2
			}
		}
	} else if err != errNoMatch {
		return nil, err
	}

	pc.cursor.Reset(mark)
	return nil, errNoMatch
}

// parseBlock implements:
//
//	block = '(' statement ')'
//
// Once the opening brace is consumed, failure is no longer
// recoverable: a missing statement is InvalidStatement, a missing
// closing brace is UnmatchedBraces (spec.md §4.6, §7).
func (pc *parseContext) parseBlock() (*node.Node, error) {
	if !pc.cursor.MatchOpeningBrace() {
		return nil, errNoMatch
	}

	inner, err := pc.parseStatement(0)
	if err != nil {
		if err == errNoMatch {
			return nil, newError(ErrInvalidStatement, "expected a statement inside parentheses", pc.cursor.Offset(), pc.input)
		}
		return nil, err
	}

	if !pc.cursor.MatchClosingBrace() {
		return nil, newError(ErrUnmatchedBraces, "expected a closing ')'", pc.cursor.Offset(), pc.input)
	}

	inner.Grouped = true
	return inner, nil
}

// parseOperand implements:
//
//	operand = number | variable
func (pc *parseContext) parseOperand() (*node.Node, error) {
	if n, ok := pc.cursor.MatchNumber(); ok {
		return n, nil
	}
	if n, ok := pc.cursor.MatchVariableName(); ok {
		return n, nil
	}
	return nil, errNoMatch
}

// linearise walks root in preorder (node, then left, then right) and
// copies each node's Item into a fresh Stream — independent of the
// arena, which is released once Parse returns.
func linearise(root *node.Node) stream.Stream {
	var out stream.Stream
	node.Walk(root, func(n *node.Node) {
		out = append(out, n.Item)
	})
	return out
}
