// meta/meta.go
package meta

// GO_ROUTINES defines the number of goroutines running playouts.
const GO_ROUTINES = 8

// MATCHES defines the number of matches of a playout run.
const MATCHES = 150

// MAX_PLIES defines the number of plies after which a match is cut off.
const MAX_PLIES = 300
