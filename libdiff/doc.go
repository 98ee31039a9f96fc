// Package libdiff compares decoded scripts.
package libdiff
