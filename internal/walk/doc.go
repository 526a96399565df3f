// Package walk traverses a project tree for the initializer. It prunes
// version-control metadata and skips the initializer's own files, which must
// survive content substitution and renaming untouched.
package walk
