// Package eval implements the stack interpreter spec.md §1 says the
// prefix token stream is "suitable for" — it is the evaluator spec.md
// explicitly names but scopes out of the core (§1: "the evaluator that
// consumes the prefix stream... the operator table's concrete
// arithmetic semantics").
package eval

import (
	"fmt"
	"strconv"

	"github.com/aledsdavies/pncompile/node"
	"github.com/aledsdavies/pncompile/stream"
)

// Handlers maps an operator name to the arithmetic function that
// implements it. A handler receives exactly as many arguments as the
// operator's catalogue arity, in left-to-right order.
type Handlers map[string]func(args ...float64) (float64, error)

// DefaultHandlers implements the arithmetic semantics for the default
// catalogue (catalogue.Default): "-" is overloaded on argument count so
// the single registered name serves both its prefix (negation) and
// infix (subtraction) catalogue entries.
func DefaultHandlers() Handlers {
	return Handlers{
		"+": func(args ...float64) (float64, error) { return args[0] + args[1], nil },
		"-": func(args ...float64) (float64, error) {
			if len(args) == 1 {
				return -args[0], nil
			}
			return args[0] - args[1], nil
		},
		"neg": func(args ...float64) (float64, error) { return -args[0], nil },
		"*":   func(args ...float64) (float64, error) { return args[0] * args[1], nil },
		"/": func(args ...float64) (float64, error) {
			if args[1] == 0 {
				return 0, fmt.Errorf("division by zero")
			}
			return args[0] / args[1], nil
		},
		"mod": func(args ...float64) (float64, error) {
			if args[1] == 0 {
				return 0, fmt.Errorf("modulo by zero")
			}
			r := args[0] - args[1]*float64(int64(args[0]/args[1]))
			return r, nil
		},
	}
}

// EvalError reports a failure to evaluate a stream.
type EvalError struct {
	Kind    ErrorKind
	Message string
}

func (e *EvalError) Error() string {
	return fmt.Sprintf("eval: %s: %s", e.Kind, e.Message)
}

// ErrorKind classifies an EvalError.
type ErrorKind int

const (
	ErrUnknownVariable ErrorKind = iota
	ErrUnknownOperator
	ErrStackUnderflow
	ErrTrailingOperands
	ErrMalformedNumber
)

func (k ErrorKind) String() string {
	switch k {
	case ErrUnknownVariable:
		return "unknown variable"
	case ErrUnknownOperator:
		return "unknown operator"
	case ErrStackUnderflow:
		return "stack underflow"
	case ErrTrailingOperands:
		return "trailing operands"
	case ErrMalformedNumber:
		return "malformed number literal"
	default:
		return "eval error"
	}
}

// Eval evaluates s, a prefix token stream, against vars using handlers
// for arithmetic semantics. It scans s right to left with an operand
// stack: a literal or variable pushes its value; an operator pops
// exactly its arity worth of operands (which land on the stack in
// left-to-right order because the scan direction is reversed) and
// pushes the handler's result.
func Eval(s stream.Stream, vars map[string]float64, handlers Handlers) (float64, error) {
	var stack []float64

	pop := func() (float64, error) {
		if len(stack) == 0 {
			return 0, &EvalError{Kind: ErrStackUnderflow, Message: "operator has no operand to consume"}
		}
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return v, nil
	}

	for i := len(s) - 1; i >= 0; i-- {
		item := s[i]
		switch item.Kind {
		case node.KindNumber:
			v, err := strconv.ParseFloat(item.Lexeme, 64)
			if err != nil {
				return 0, &EvalError{Kind: ErrMalformedNumber, Message: item.Lexeme}
			}
			stack = append(stack, v)
		case node.KindVariable:
			v, ok := vars[item.Lexeme]
			if !ok {
				return 0, &EvalError{Kind: ErrUnknownVariable, Message: item.Lexeme}
			}
			stack = append(stack, v)
		case node.KindOperatorRef:
			handler, ok := handlers[item.Operator.Name]
			if !ok {
				return 0, &EvalError{Kind: ErrUnknownOperator, Message: item.Operator.Name}
			}
			arity := item.Operator.Arity()
			args := make([]float64, arity)
			for a := 0; a < arity; a++ {
				v, err := pop()
				if err != nil {
					return 0, err
				}
				args[a] = v
			}
			result, err := handler(args...)
			if err != nil {
				return 0, &EvalError{Kind: ErrUnknownOperator, Message: err.Error()}
			}
			stack = append(stack, result)
		}
	}

	if len(stack) != 1 {
		return 0, &EvalError{Kind: ErrTrailingOperands, Message: fmt.Sprintf("%d operand(s) left on the stack", len(stack))}
	}
	return stack[0], nil
}
