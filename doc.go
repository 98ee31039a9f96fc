// Package tng works on whole decoded Thing scripts: selecting things with
// queries, applying JSON patches and summarizing keys.
//
// Decoding itself lives in package parse and the tree types in package ir.
package tng
