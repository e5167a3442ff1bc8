// Package views turns backend snapshots into terminal view models: badge
// styles, table rows, and detail sections. Everything here is a pure renderer
// of whatever the backend reported; no status transitions are ever computed
// client-side.
package views
