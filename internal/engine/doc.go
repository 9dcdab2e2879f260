// Package engine is the boundary to the raster backends.
//
// Everything pixel-shaped lives here: decoding and encoding files
// (disintegration/imaging), rasterizing mask geometry (gogpu/gg's software
// renderer), alpha-band extraction and blend-mode arithmetic
// (anthonynsimon/bild). The compose and mask packages stay declarative and
// hand their output to this package to be turned into pixels.
package engine
