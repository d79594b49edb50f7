// Package blend generates reference weight vectors for multi-reference
// mastering variations.
package blend
