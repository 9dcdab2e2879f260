// Package compose plans multi-image compositions.
//
// Given a base canvas extent and an ordered list of overlays, the planner
// resolves each overlay's placement rule into absolute pixel coordinates and
// a canonical blend mode. Placement rules may be absolute offsets, keywords
// relative to the canvas (left/center/right, top/middle/bottom), or offsets
// relative to the previously placed overlay measured from a baseline edge.
//
// The planner is pure: it performs no I/O, never inspects pixel data, and
// owns no state beyond the duration of a single Plan call, so it is safe for
// concurrent use. Its output is a plan; rasterizing the plan belongs to the
// engine package.
//
// # Resolution Order
//
// For each axis, rules are evaluated in a fixed order:
//
//  1. An absolute value is taken as the full answer. The relative delta and
//     baseline are ignored, even on the first overlay.
//  2. A keyword resolves against the canvas extent and the overlay's own
//     extent, with truncating integer division for center/middle.
//  3. An unset position resolves from the baseline edge of the previous
//     placement plus the relative delta. The fold is seeded with the canvas
//     itself at (0, 0), so the first overlay's relative offsets are measured
//     against the canvas.
//
// # Errors
//
// The first error encountered aborts planning: no partial layer list is
// produced and later overlays are never evaluated. Errors wrap the package
// sentinels (ErrInvalidPosition, ErrUnsupportedBlendMode,
// ErrInvalidDimensions, ErrMissingExtent) and carry the offending value and
// overlay index.
package compose
