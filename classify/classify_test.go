package classify

import "testing"

func TestOf(t *testing.T) {
	tests := []struct {
		name string
		r    rune
		want Class
	}{
		{"space", ' ', Whitespace},
		{"tab", '\t', Whitespace},
		{"underscore", '_', Letter},
		{"ascii letter", 'a', Letter},
		{"unicode letter", 'é', Letter},
		{"ascii digit", '5', Digit},
		{"unicode digit", '٥', Digit},
		{"plus", '+', Symbol},
		{"paren", '(', Symbol},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Of(tt.r); got != tt.want {
				t.Errorf("Of(%q) = %s, want %s", tt.r, got, tt.want)
			}
		})
	}
}

func TestTable(t *testing.T) {
	tbl := New("a+1")
	if tbl.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", tbl.Len())
	}
	if got := tbl.At(0); got != Letter {
		t.Errorf("At(0) = %s, want %s", got, Letter)
	}
	if got := tbl.At(1); got != Symbol {
		t.Errorf("At(1) = %s, want %s", got, Symbol)
	}
	if got := tbl.At(2); got != Digit {
		t.Errorf("At(2) = %s, want %s", got, Digit)
	}
	if got := tbl.At(99); got != Whitespace {
		t.Errorf("out-of-range At() = %s, want %s", got, Whitespace)
	}
	if got := tbl.At(-1); got != Whitespace {
		t.Errorf("negative At() = %s, want %s", got, Whitespace)
	}
	if got := tbl.Slice(0, 2); got != "a+" {
		t.Errorf("Slice(0,2) = %q, want %q", got, "a+")
	}
}

func TestTableUnicode(t *testing.T) {
	tbl := New("café")
	if tbl.Len() != 4 {
		t.Fatalf("Len() = %d, want 4 (rune count, not byte count)", tbl.Len())
	}
	if got := tbl.Rune(3); got != 'é' {
		t.Errorf("Rune(3) = %q, want %q", got, 'é')
	}
}
