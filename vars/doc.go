// Package vars builds value.Vars mappings from the sources the ryuji CLI
// accepts: JSON and YAML variable files, workspace status ("stamp")
// files, and NAME=VALUE assignments whose values may reference stamps
// with single-brace {KEY} placeholders.
package vars
