// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the analysis lifecycle, decoupled from any
// specific entrypoint like a CLI.
//
// A run loads a tree (from a description file, or the built-in reference
// tree), assigns QH positions once, builds a report from the read-only
// queries, writes it, optionally exports the tree, and finally releases it.
package app
