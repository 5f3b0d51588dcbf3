package logic

import (
	"fmt"
	"sort"
	"strings"
)

func (s Symbol) Evaluate(m Model) (bool, error) {
	v, ok := m[string(s)]
	if !ok {
		return false, fmt.Errorf("%w: %q", ErrUnknownSymbol, string(s))
	}
	return v, nil
}

func (s Symbol) Formula() string { return string(s) }

func (s Symbol) Symbols() []string { return []string{string(s)} }

func (n Not) Evaluate(m Model) (bool, error) {
	v, err := n.Operand.Evaluate(m)
	return !v, err
}

func (n Not) Formula() string { return "¬" + parenthesize(n.Operand) }

func (n Not) Symbols() []string { return union(n.Operand) }

// Evaluate short-circuits on the first false conjunct.
func (a And) Evaluate(m Model) (bool, error) {
	if len(a) == 0 {
		return false, fmt.Errorf("%w: and", ErrEmptyConnective)
	}
	for _, s := range a {
		v, err := s.Evaluate(m)
		if err != nil || !v {
			return false, err
		}
	}
	return true, nil
}

func (a And) Formula() string { return join(a, " ∧ ") }

func (a And) Symbols() []string { return union(a...) }

// Evaluate short-circuits on the first true disjunct.
func (o Or) Evaluate(m Model) (bool, error) {
	if len(o) == 0 {
		return false, fmt.Errorf("%w: or", ErrEmptyConnective)
	}
	for _, s := range o {
		v, err := s.Evaluate(m)
		if err != nil || v {
			return v, err
		}
	}
	return false, nil
}

func (o Or) Formula() string { return join(o, " ∨ ") }

func (o Or) Symbols() []string { return union(o...) }

func (i Implication) Evaluate(m Model) (bool, error) {
	a, err := i.Antecedent.Evaluate(m)
	if err != nil || !a {
		return true, err
	}
	return i.Consequent.Evaluate(m)
}

func (i Implication) Formula() string {
	return parenthesize(i.Antecedent) + " => " + parenthesize(i.Consequent)
}

func (i Implication) Symbols() []string { return union(i.Antecedent, i.Consequent) }

func (b Biconditional) Evaluate(m Model) (bool, error) {
	l, err := b.Left.Evaluate(m)
	if err != nil {
		return false, err
	}
	r, err := b.Right.Evaluate(m)
	if err != nil {
		return false, err
	}
	return l == r, nil
}

func (b Biconditional) Formula() string {
	return parenthesize(b.Left) + " <=> " + parenthesize(b.Right)
}

func (b Biconditional) Symbols() []string { return union(b.Left, b.Right) }

// parenthesize wraps every operand except a bare symbol or a negation.
func parenthesize(s Sentence) string {
	switch s.(type) {
	case Symbol, Not:
		return s.Formula()
	}
	return "(" + s.Formula() + ")"
}

func join(parts []Sentence, sep string) string {
	out := make([]string, len(parts))
	for i, p := range parts {
		out[i] = parenthesize(p)
	}
	return strings.Join(out, sep)
}

// union returns the sorted, de-duplicated symbols of all sentences.
func union(sentences ...Sentence) []string {
	set := make(map[string]struct{})
	for _, s := range sentences {
		for _, name := range s.Symbols() {
			set[name] = struct{}{}
		}
	}
	out := make([]string, 0, len(set))
	for name := range set {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
