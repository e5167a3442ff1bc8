// Package refresh drives the fixed-interval auto-refresh used by watch-mode
// commands. Each view owns one loop; the loop owns its ticker and releases it
// deterministically when the command context ends.
package refresh
