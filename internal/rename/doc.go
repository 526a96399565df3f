// Package rename replaces placeholder tokens in file and directory names.
//
// Tokens are handled one at a time in declaration order, each with a fresh walk
// of the tree, so a later token sees the names produced by earlier ones.
// Within a pass the deepest paths move first and an existing destination is
// never overwritten.
package rename
