// Package wav reads and writes uncompressed 16-bit PCM RIFF/WAVE streams.
//
// It is the container boundary of the engine: the spectral pipeline itself
// only ever sees raw sample slices.
package wav
