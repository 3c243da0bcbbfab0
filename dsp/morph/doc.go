// Package morph hybridizes two audio signals in the spectral domain.
//
// Both inputs are decomposed into overlapping Hann-windowed half-spectrum
// frames, combined bin by bin under a selectable magnitude operator and
// phase policy, aligned onto a common frame timeline, and resynthesized via
// overlap-add with window-sum normalization and clip-safe output scaling.
//
// The engine operates on one channel per input and processes fully loaded
// signals in a single batch; it does not parse audio containers (see the
// wav package for the PCM boundary).
package morph
