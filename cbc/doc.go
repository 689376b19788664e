// Package cbc holds compact-binary-coalescence utilities: the waveform
// parameter container consumed by generators, mass and antenna-response
// conversions, and the plumbing that turns generator polarizations into
// detector strain and spectra ready for the overlap products.
//
// Waveform generation itself lives behind the Generator interface; this
// package never implements an approximant.
package cbc
