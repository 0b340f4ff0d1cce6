// Package wav reads, rewrites and writes canonical PCM WAV files held in
// memory.
//
// A file is the fixed 44-byte RIFF/WAVE header (a 16-byte fmt chunk and a
// data chunk header) followed by the raw sample data. WAV does not mark its
// byte order, Parse infers it from the RIFF chunk size and every numeric
// field and sample is then read and written in that order.
//
// The three steps are meant to be chained:
//
//	f, err := wav.Parse(b)
//	f, err = wav.Transform(f, 8)
//	out := f.Bytes()
//
// Transform changes the sample resolution. Reducing it truncates low bits,
// requesting a depth that is not a multiple of 8 keeps that precision but
// stores the samples in whole bytes.
package wav
