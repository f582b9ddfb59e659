// Package expr implements the core representation for propositional
// formulas written in Reverse Polish Notation: the token alphabet, a
// stack-machine parser, the expression tree with its shared variable
// cells, the canonical printer and a Boolean evaluator.
//
// A formula is a string over '0', '1', 'A'..'Z', '!', '&', '|', '^',
// '>' and '='. Operators are postfix: "AB&" is A∧B, "AB&!" is ¬(A∧B).
package expr
