// Package initializer runs the project initialization pipeline: collect
// placeholder values, rewrite file contents, rename paths, trim the README,
// print the follow-up notice and remove the initializer. Steps run strictly in
// that order and the first failure stops the run; nothing is rolled back.
package initializer
