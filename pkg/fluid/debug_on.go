//go:build fluiddebug

package fluid

// debugChecks turns solver invariant violations into panics.
const debugChecks = true
