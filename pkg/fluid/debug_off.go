//go:build !fluiddebug

package fluid

const debugChecks = false
