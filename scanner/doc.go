// Package scanner locates directive tokens inside template text. A
// directive is "[[ ", a body drawn from [a-zA-Z0-9_.:\-!], and " ]]".
// Anything that looks like a directive but breaks these rules is left in
// place as literal text; Scan never fails.
package scanner
