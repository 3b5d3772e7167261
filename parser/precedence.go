package parser

import "github.com/aledsdavies/pncompile/node"

// lowerPriorityThan is spec.md §4.5's "lower-priority-than(compare,
// against)": compare is a non-null, not-grouped operator node whose
// priority does not exceed against's. The non-strict comparison is
// what yields left-associativity at equal priority.
func lowerPriorityThan(compare, against *node.Node) bool {
	return compare.IsOperator() && !compare.Grouped && compare.Item.Operator.Priority <= against.Item.Operator.Priority
}

// leftGrouped is spec.md §4.5's "left-grouped(compare)": compare is a
// non-null, not-grouped operator node whose left child is grouped.
func leftGrouped(compare *node.Node) bool {
	return compare.IsOperator() && !compare.Grouped && compare.Left != nil && compare.Left.Grouped
}

// fixUp is the precedence fix-up rotation of spec.md §4.5. op already
// has op.Right = rhs set by the caller; isPrefix distinguishes the
// prefix-form trigger/descend rules from the infix-form ones. It
// returns the root of the resulting subtree: op itself when no rotation
// applies, otherwise rhs, with op pushed down into rhs's left spine.
// Callers return that node as the parsed operation.
func fixUp(op, rhs *node.Node, isPrefix bool) *node.Node {
	var trigger bool
	if isPrefix {
		trigger = leftGrouped(rhs) || (lowerPriorityThan(rhs, op) && rhs.Left != nil)
	} else {
		trigger = lowerPriorityThan(rhs, op) && rhs.Left != nil
	}
	if !trigger {
		return op
	}

	target := rhs
	for lowerPriorityThan(target.Left, op) && (!isPrefix || target.Left.Left != nil) {
		target = target.Left
	}

	pivot := target.Left
	op.Right = pivot
	target.Left = op
	return rhs
}
