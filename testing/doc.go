// Package testing provides test helpers for consumers of the assignment
// library.
package testing
