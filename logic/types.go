package logic

import (
	"errors"
)

// Sentinel errors for sentence evaluation.
var (
	// ErrUnknownSymbol is returned when a Model has no value for a symbol.
	ErrUnknownSymbol = errors.New("logic: unknown symbol")

	// ErrEmptyConnective is returned for an And or Or with no operands.
	ErrEmptyConnective = errors.New("logic: connective without operands")
)

// Model assigns a truth value to each symbol name.
type Model map[string]bool

// Sentence is a propositional formula.
type Sentence interface {
	// Evaluate returns the truth value of the sentence under m.
	Evaluate(m Model) (bool, error)
	// Formula returns a human-readable rendering, e.g. "rain ∧ ¬bbc".
	Formula() string
	// Symbols returns the distinct symbol names used, sorted.
	Symbols() []string
}

// Symbol is an atomic proposition identified by its name.
type Symbol string

// Not negates its operand.
type Not struct {
	Operand Sentence
}

// And holds when every conjunct holds.
type And []Sentence

// Or holds when at least one disjunct holds.
type Or []Sentence

// Implication holds unless Antecedent is true and Consequent false.
type Implication struct {
	Antecedent Sentence
	Consequent Sentence
}

// Biconditional holds when both sides have the same truth value.
type Biconditional struct {
	Left  Sentence
	Right Sentence
}

// Verdict is the outcome of Infer.
type Verdict string

const (
	// True: the knowledge base entails the query.
	True Verdict = "true"
	// False: the knowledge base entails the negation of the query.
	False Verdict = "false"
	// Unknown: neither the query nor its negation is entailed.
	Unknown Verdict = "unknown"
)

// compile-time interface checks
var (
	_ Sentence = Symbol("")
	_ Sentence = Not{}
	_ Sentence = And{}
	_ Sentence = Or{}
	_ Sentence = Implication{}
	_ Sentence = Biconditional{}
)
