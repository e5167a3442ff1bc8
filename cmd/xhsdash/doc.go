// Package main hosts the xhsdash CLI entrypoint and command graph.
//
// The Cobra-based command tree translates terminal invocations into REST
// calls against the pipeline backend: task inspection, settings edits, poll
// triggering, and health probes. It centralizes configuration resolution and
// client construction so subcommands can focus on rendering.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags here.
package main
