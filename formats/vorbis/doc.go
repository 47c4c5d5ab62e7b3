// SPDX-License-Identifier: EPL-2.0

// Package vorbis provides Ogg Vorbis decoding.
//
// This package uses github.com/jfreymuth/oggvorbis. The library yields
// float samples in [-1, 1]; they are clamped and scaled to signed 16-bit
// with utils.Float32ToInt16, so a vorbis source reports a BitDepth of 16.
//
//	src, err := vorbis.Decoder{}.Decode(file)
//	buf := make([]int16, 4096)
//	n, err := src.ReadSamples(buf)
//
// ReadSamples only hands out whole frames. A dst shorter than one frame
// reads nothing.
//
// Frames is the length announced by the stream, or 0 when the stream does
// not know it. A 0 length makes the renderer decode the whole file before
// scheduling blocks.
package vorbis
