// Package logging builds the process logger. Console output stays on the
// command's own writers; the logger carries diagnostics only.
package logging
