// Package truthtable enumerates formulas over every assignment of
// their variables. Assignments are totally ordered: row i binds the
// alphabetically first variable to the most significant bit of i and
// the last variable to the least significant bit. Every downstream
// consumer (the minimizer, the satisfiability tester, the renderer)
// relies on this order.
package truthtable
