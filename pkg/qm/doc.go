// Package qm minimizes formulas into a minimum-size conjunctive normal
// form. It runs the Quine–McCluskey algorithm over the rows where the
// formula is false, picks the essential prime implicants, and resolves
// the remaining cover with Petrick's method. Because the seed rows are
// the zero-rows, each surviving implicant maps to one CNF clause with
// inverted bit polarity.
package qm
