package node

import (
	"testing"

	"github.com/aledsdavies/pncompile/catalogue"
)

func TestArenaNewAndRelease(t *testing.T) {
	a := NewArena()
	a.New(Item{Kind: KindNumber, Lexeme: "1"})
	a.New(Item{Kind: KindNumber, Lexeme: "2"})
	if a.Count() != 2 {
		t.Fatalf("Count() = %d, want 2", a.Count())
	}
	a.Release()
	if a.Count() != 0 {
		t.Fatalf("Count() after Release() = %d, want 0", a.Count())
	}
}

func TestArenaReleaseIdempotent(t *testing.T) {
	a := NewArena()
	a.New(Item{Kind: KindNumber, Lexeme: "1"})
	a.Release()
	a.Release() // must not panic on a second call
	if a.Count() != 0 {
		t.Fatalf("Count() = %d, want 0", a.Count())
	}
}

func TestNodePriority(t *testing.T) {
	var nilNode *Node
	if got := nilNode.Priority(); got != -1 {
		t.Errorf("nil.Priority() = %d, want -1", got)
	}

	leaf := &Node{Item: Item{Kind: KindNumber, Lexeme: "1"}}
	if got := leaf.Priority(); got != -1 {
		t.Errorf("leaf.Priority() = %d, want -1", got)
	}

	op := &Node{Item: Item{Kind: KindOperatorRef, Operator: catalogue.Info{Priority: 2}}}
	if got := op.Priority(); got != 2 {
		t.Errorf("op.Priority() = %d, want 2", got)
	}
}

func TestNodeIsOperator(t *testing.T) {
	var nilNode *Node
	if nilNode.IsOperator() {
		t.Error("nil.IsOperator() = true, want false")
	}
	leaf := &Node{Item: Item{Kind: KindVariable, Lexeme: "x"}}
	if leaf.IsOperator() {
		t.Error("variable leaf.IsOperator() = true, want false")
	}
	op := &Node{Item: Item{Kind: KindOperatorRef}}
	if !op.IsOperator() {
		t.Error("operator node.IsOperator() = false, want true")
	}
}

func TestWalkPreorder(t *testing.T) {
	// Builds: +(a, *(b, c)) and checks preorder visitation order.
	leafA := &Node{Item: Item{Kind: KindVariable, Lexeme: "a"}}
	leafB := &Node{Item: Item{Kind: KindVariable, Lexeme: "b"}}
	leafC := &Node{Item: Item{Kind: KindVariable, Lexeme: "c"}}
	mul := &Node{Item: Item{Kind: KindOperatorRef, Operator: catalogue.Info{Name: "*"}}, Left: leafB, Right: leafC}
	add := &Node{Item: Item{Kind: KindOperatorRef, Operator: catalogue.Info{Name: "+"}}, Left: leafA, Right: mul}

	var order []string
	Walk(add, func(n *Node) {
		if n.Item.Kind == KindOperatorRef {
			order = append(order, n.Item.Operator.Name)
		} else {
			order = append(order, n.Item.Lexeme)
		}
	})

	want := []string{"+", "a", "*", "b", "c"}
	if len(order) != len(want) {
		t.Fatalf("Walk order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("Walk order[%d] = %q, want %q", i, order[i], want[i])
		}
	}
}

func TestWalkNil(t *testing.T) {
	called := false
	Walk(nil, func(*Node) { called = true })
	if called {
		t.Error("Walk(nil, ...) should never call visit")
	}
}
