// Package report renders the classified mod list and scan summary as a
// terminal table. Rendering is a pure function of its inputs: no state,
// no filesystem access, color only when stdout is a TTY.
package report
