// Package mathtext typesets plaintext math as LaTeX markup or Unicode text.
//
// The input syntax is intended to be the math you'd type in a chat or your
// notes: "2 / (sin mu + 1)" or "cos^2(A) + sin^2(B)". Parsing produces a
// structural tree with no evaluation semantics, where free variables and
// unknown words are as valid as numbers, and rendering typesets the tree
// with only the parentheses the grouping actually needs.
//
// Words like mu, inf, and +/- resolve to their notational symbols, so the
// examples above render as
//
//	\frac{ 2 }{ \sin\left(\mu\right) + 1 }
//	\cos^2\left(A\right) + \sin^2\left(B\right)
//
// in markup, or as 2 / (sin(μ) + 1) and cos²(A) + sin²(B) in plain text.
package mathtext
