// Package settings holds the editable local copy of the backend's singleton
// configuration record. Edits mutate only the local copy; saving sends the
// whole copy and the server's response is authoritative.
package settings
