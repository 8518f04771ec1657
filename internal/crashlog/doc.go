// Package crashlog extracts recent "Caused by" lines from Minecraft
// crash reports and game logs as advisory context for a scan.
package crashlog
