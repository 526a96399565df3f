// Package placeholder defines template placeholder tokens and the resolved
// token-to-value mapping. It derives a human-readable default for every token
// and collects overrides from the user, one line of input per token, in
// declaration order.
package placeholder
