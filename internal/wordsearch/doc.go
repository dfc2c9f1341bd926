// Package wordsearch implements the word-search puzzle core: a seeded grid
// generator that hides a word list in straight runs, and a selection state
// machine that turns a stream of touched cells into word matches.
//
// The package is UI-agnostic and deterministic for a given random source.
// Presentation layers drive a Session with raw cell coordinates and read back
// selection snapshots and match results.
package wordsearch
