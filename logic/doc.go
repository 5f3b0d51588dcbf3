// Package logic implements propositional sentences and two ways of deciding
// entailment over them.
//
// What:
//
//   - Sentences are built from Symbol, Not, And, Or, Implication and
//     Biconditional. Each evaluates against a Model (symbol → truth value),
//     prints itself with Formula and reports its Symbols in sorted order.
//   - ModelCheck decides KB ⊨ query by enumerating every assignment of the
//     symbols appearing in either sentence (truth-table method).
//   - Entails answers the same question with the gini SAT solver: the KB
//     entails the query iff KB ∧ ¬query is unsatisfiable.
//   - Infer combines both directions into a Verdict: True when the query is
//     entailed, False when its negation is, Unknown otherwise. InferBy does
//     the same with any Decider, e.g. ModelCheck.
//
// Complexity:
//
//   - ModelCheck: O(2ⁿ · |KB|) for n distinct symbols.
//   - Entails: circuit construction O(|KB| + |query|); solving is NP-complete
//     in general but instant for the small knowledge bases used here.
//
// Errors:
//
//   - ErrUnknownSymbol: a Model has no value for a symbol being evaluated.
//   - ErrEmptyConnective: an And or Or without operands.
//
// Example:
//
//	rain, bbc := logic.Symbol("rain"), logic.Symbol("bbc")
//	kb := logic.And{logic.Implication{Antecedent: logic.Not{Operand: rain}, Consequent: bbc}, logic.Not{Operand: bbc}}
//	ok, _ := logic.ModelCheck(kb, rain) // true
package logic
