// Package encode renders decoded scripts for people and tools.
//
// Three formats are supported:
//
//   - tree: an indented outline of sections, things and instructions,
//     optionally colored
//   - json: the lossless typed form of package ir, which decodes back with
//     encoding/json
//   - yaml: a plain data view where values are bare scalars and calls are
//     {name, args} maps
//
// None of them is script syntax; scripts are only ever decoded.
//
// # Related Packages
//
//   - github.com/fablekit/tng/format - output formats
//   - github.com/fablekit/tng/parse - decode script text
package encode
