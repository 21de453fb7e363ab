// Package mechanism evaluates the positive and negative mechanisms over a
// fixed domain sample and reveals their difference up to a limit.
//
// Everything here is a pure function of its arguments: the domain sample is
// regenerated on each call and nothing is cached.
package mechanism
