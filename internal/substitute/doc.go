// Package substitute rewrites placeholder tokens inside the text files of a
// project tree. All tokens are replaced in a single pass per file, so a value
// that happens to contain another token is never expanded a second time.
package substitute
