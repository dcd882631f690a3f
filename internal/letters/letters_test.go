package letters

import "testing"

func TestAlphabetIsComplete(t *testing.T) {
	ls := Alphabet()
	if len(ls) != 26 {
		t.Fatalf("len(Alphabet()) = %d, want 26", len(ls))
	}
	seen := make(map[string]bool)
	for i, l := range ls {
		want := string(rune('A' + i))
		if l.Symbol != want {
			t.Errorf("letter %d symbol = %q, want %q", i, l.Symbol, want)
		}
		if l.Word == "" || l.Emoji == "" {
			t.Errorf("letter %s missing word or emoji", l.Symbol)
		}
		if seen[l.Symbol] {
			t.Errorf("duplicate symbol %s", l.Symbol)
		}
		seen[l.Symbol] = true
	}
}

func TestAlphabetReturnsCopy(t *testing.T) {
	a := Alphabet()
	a[0].Word = "changed"
	if Alphabet()[0].Word != "apple" {
		t.Error("Alphabet() exposed package state")
	}
}

func TestPrompt(t *testing.T) {
	l := Letter{Symbol: "Q", Word: "queen"}
	if got := l.Prompt(false); got != "Q" {
		t.Errorf("Prompt(false) = %q, want Q", got)
	}
	if got := l.Prompt(true); got != "q" {
		t.Errorf("Prompt(true) = %q, want q", got)
	}
	if got := (Letter{Symbol: "q"}).Spoken(); got != "Q" {
		t.Errorf("Spoken() = %q, want Q", got)
	}
}

func TestIndexLookup(t *testing.T) {
	idx := NewIndex(Alphabet())
	if got := idx.Lookup("W").Word; got != "whale" {
		t.Errorf("Lookup(W).Word = %q, want whale", got)
	}
	unknown := idx.Lookup("?")
	if unknown.Symbol != "?" || unknown.Word != "" {
		t.Errorf("Lookup(?) = %+v, want bare symbol", unknown)
	}
}

func TestSymbolsAndPrompts(t *testing.T) {
	ls := []Letter{{Symbol: "A"}, {Symbol: "B"}}
	syms := Symbols(ls)
	if len(syms) != 2 || syms[0] != "A" || syms[1] != "B" {
		t.Errorf("Symbols = %v", syms)
	}
	ps := Prompts(ls, true)
	if ps[0] != "a" || ps[1] != "b" {
		t.Errorf("Prompts(lowercase) = %v", ps)
	}
}
