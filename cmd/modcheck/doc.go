// Package main hosts the modcheck CLI entrypoint and command graph.
//
// The Cobra-based command tree wires the scan, classify, analyze,
// report, and cleanup stages together and owns the interactive
// confirmation step. Keep this package lean: add new functionality by
// extending the internal packages first, then surface it through
// dedicated commands or flags here.
package main
