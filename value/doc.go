// Package value defines the closed set of values a template can reference:
// booleans, text, floating-point numbers, unsigned integers, lists and
// string-keyed maps. Values compare structurally, report their truthiness
// for conditionals, and render to text for substitution.
//
// Vars maps variable names to values for one render call. The renderer
// writes loop variables into it, so callers must not share a Vars between
// concurrent renders.
package value
