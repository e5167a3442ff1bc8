// Package api provides the typed HTTP client for the generation pipeline
// backend. It is the sole integration point with the REST API: every call is
// a direct pass-through with no caching, retries, or backoff, and failures
// surface to the caller as *Error values classified by kind.
package api
