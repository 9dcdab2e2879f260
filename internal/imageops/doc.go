// Package imageops provides the thin image-manipulation conveniences the
// server exposes: resizing, cropping, rotation, colorspace transforms,
// effects, histograms, gradients, and measurement helpers. Every pixel
// transform delegates to an engine library (disintegration/imaging,
// anthonynsimon/bild, gogpu/gg); this package supplies argument validation,
// defaults, and JSON-shaped result types.
//
// # Coordinate System
//
// All pixel coordinates are 0-based with the origin at the top-left corner:
// X increases rightward and Y increases downward. Regions are inclusive at
// (x1, y1) and exclusive at (x2, y2).
//
// # Thread Safety
//
// Cache is safe for concurrent use. All other operations are stateless and
// may be called concurrently on different images.
package imageops
