package logic

import (
	"fmt"

	"github.com/go-air/gini"
	circ "github.com/go-air/gini/logic"
	"github.com/go-air/gini/z"
)

const (
	satisfiable   = 1
	unsatisfiable = -1
)

// circuit translates sentences into gini literals, one input per symbol.
type circuit struct {
	c    *circ.C
	lits map[string]z.Lit
}

func newCircuit() *circuit {
	return &circuit{c: circ.NewC(), lits: make(map[string]z.Lit)}
}

// lit returns the literal equivalent to s, adding gates as needed.
func (k *circuit) lit(s Sentence) (z.Lit, error) {
	switch s := s.(type) {
	case Symbol:
		m, ok := k.lits[string(s)]
		if !ok {
			m = k.c.Lit()
			k.lits[string(s)] = m
		}
		return m, nil
	case Not:
		m, err := k.lit(s.Operand)
		return m.Not(), err
	case And:
		return k.fold(s, "and", k.c.And)
	case Or:
		return k.fold(s, "or", k.c.Or)
	case Implication:
		a, err := k.lit(s.Antecedent)
		if err != nil {
			return z.LitNull, err
		}
		b, err := k.lit(s.Consequent)
		if err != nil {
			return z.LitNull, err
		}
		return k.c.Or(a.Not(), b), nil
	case Biconditional:
		a, err := k.lit(s.Left)
		if err != nil {
			return z.LitNull, err
		}
		b, err := k.lit(s.Right)
		if err != nil {
			return z.LitNull, err
		}
		return k.c.And(k.c.Or(a.Not(), b), k.c.Or(b.Not(), a)), nil
	}
	return z.LitNull, fmt.Errorf("logic: unsupported sentence %T", s)
}

func (k *circuit) fold(parts []Sentence, name string, gate func(a, b z.Lit) z.Lit) (z.Lit, error) {
	if len(parts) == 0 {
		return z.LitNull, fmt.Errorf("%w: %s", ErrEmptyConnective, name)
	}
	m, err := k.lit(parts[0])
	if err != nil {
		return z.LitNull, err
	}
	for _, p := range parts[1:] {
		next, err := k.lit(p)
		if err != nil {
			return z.LitNull, err
		}
		m = gate(m, next)
	}
	return m, nil
}

// Entails reports whether kb entails query by asking the SAT solver for a
// model of kb ∧ ¬query; there is none exactly when the entailment holds.
func Entails(kb, query Sentence) (bool, error) {
	k := newCircuit()
	kbLit, err := k.lit(kb)
	if err != nil {
		return false, err
	}
	queryLit, err := k.lit(query)
	if err != nil {
		return false, err
	}

	g := gini.New()
	k.c.ToCnf(g)
	g.Assume(kbLit, queryLit.Not())

	switch g.Solve() {
	case unsatisfiable:
		return true, nil
	case satisfiable:
		return false, nil
	}
	return false, fmt.Errorf("logic: solver gave up on %s", query.Formula())
}

// Decider answers whether kb entails query. ModelCheck and Entails are
// both Deciders.
type Decider func(kb, query Sentence) (bool, error)

// Infer classifies query against kb using Entails in both directions.
func Infer(kb, query Sentence) (Verdict, error) {
	return InferBy(Entails, kb, query)
}

// InferBy classifies query against kb with decide: True if kb entails query,
// False if it entails ¬query, Unknown otherwise.
func InferBy(decide Decider, kb, query Sentence) (Verdict, error) {
	yes, err := decide(kb, query)
	if err != nil {
		return Unknown, err
	}
	if yes {
		return True, nil
	}
	no, err := decide(kb, Not{Operand: query})
	if err != nil {
		return Unknown, err
	}
	if no {
		return False, nil
	}
	return Unknown, nil
}
