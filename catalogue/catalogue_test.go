package catalogue

import "testing"

func TestDefault(t *testing.T) {
	c := Default()

	tests := []struct {
		name     string
		category Category
		wantInfo Info
	}{
		{"prefix minus", Prefix, Info{Name: "-", Category: Prefix, Priority: 3, Form: Symbolic}},
		{"word prefix neg", Prefix, Info{Name: "neg", Category: Prefix, Priority: 3, Form: Word}},
		{"infix plus", Infix, Info{Name: "+", Category: Infix, Priority: 1, Form: Symbolic}},
		{"infix minus", Infix, Info{Name: "-", Category: Infix, Priority: 1, Form: Symbolic}},
		{"infix times", Infix, Info{Name: "*", Category: Infix, Priority: 2, Form: Symbolic}},
		{"infix divide", Infix, Info{Name: "/", Category: Infix, Priority: 2, Form: Symbolic}},
		{"word infix mod", Infix, Info{Name: "mod", Category: Infix, Priority: 2, Form: Word}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := c.Find(tt.wantInfo.Name, tt.category)
			if !ok {
				t.Fatalf("Find(%q, %s) not found", tt.wantInfo.Name, tt.category)
			}
			if got != tt.wantInfo {
				t.Errorf("Find(%q, %s) = %+v, want %+v", tt.wantInfo.Name, tt.category, got, tt.wantInfo)
			}
		})
	}

	if c.LongestSymbolic(Infix) != 1 {
		t.Errorf("LongestSymbolic(Infix) = %d, want 1", c.LongestSymbolic(Infix))
	}
	if !c.IsKnown("mod") {
		t.Error("IsKnown(\"mod\") = false, want true")
	}
	if c.IsKnown("unknownthing") {
		t.Error("IsKnown(\"unknownthing\") = true, want false")
	}
}

func TestArity(t *testing.T) {
	if (Info{Category: Prefix}).Arity() != 1 {
		t.Error("prefix arity should be 1")
	}
	if (Info{Category: Infix}).Arity() != 2 {
		t.Error("infix arity should be 2")
	}
}

func TestRegisterRejectsDuplicate(t *testing.T) {
	c := Default()
	err := c.Register(Info{Name: "+", Category: Infix, Priority: 1, Form: Symbolic})
	if err == nil {
		t.Fatal("expected an error registering a duplicate name/category pair")
	}
}

func TestRegisterRejectsFormMismatch(t *testing.T) {
	c := New()
	tests := []Info{
		{Name: "sum", Category: Infix, Priority: 1, Form: Symbolic}, // word-shaped name, claims Symbolic
		{Name: "^^", Category: Infix, Priority: 1, Form: Word},      // symbol-shaped name, claims Word
	}
	for _, info := range tests {
		if err := c.Register(info); err == nil {
			t.Errorf("Register(%+v) succeeded, want form-mismatch error", info)
		}
	}
}

func TestRegisterRejectsEmptyName(t *testing.T) {
	c := New()
	if err := c.Register(Info{Name: "", Category: Infix}); err == nil {
		t.Fatal("expected an error registering an empty name")
	}
}

func TestRegisterExtendsLongestSymbolic(t *testing.T) {
	c := New()
	if err := c.Register(Info{Name: "**", Category: Infix, Priority: 4, Form: Symbolic}); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if got := c.LongestSymbolic(Infix); got != 2 {
		t.Errorf("LongestSymbolic(Infix) = %d, want 2", got)
	}
}

func TestNewIsEmpty(t *testing.T) {
	c := New()
	if c.IsKnown("+") {
		t.Error("a freshly-constructed catalogue should know no operators")
	}
}
