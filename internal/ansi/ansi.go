// Package ansi holds the escape sequences used by the truth-table
// renderer's color mode.
package ansi

const (
	Red   = "\x1b[31m"
	Green = "\x1b[32m"
	Blue  = "\x1b[34m"
	Reset = "\x1b[0m"
)
