// Package logging defines the Logger interface used across numcalc and its
// two backends: zerolog for the binaries and the standard log package for
// embedding. Debug traces only appear when the global zerolog level allows
// them, which the entry points set from --verbose.
package logging
