// Package format names the output formats a decoded script can be
// rendered in.
//
// # Related Packages
//
//   - github.com/fablekit/tng/encode - render documents in a Format
package format
