// Package rewrite transforms expression trees by equational rewriting:
// negation normal form, algebraic conjunctive normal form, and a
// constant-folding simplifier. Every function returns a freshly
// constructed tree and leaves its input untouched.
package rewrite
