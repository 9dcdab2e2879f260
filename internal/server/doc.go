// Package server implements the MCP (Model Context Protocol) server for image
// manipulation tools.
//
// This package provides a JSON-RPC 2.0 server that exposes image processing
// capabilities through the MCP protocol, enabling MCP-compatible clients to
// transform, compose, and inspect images.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Basic Image Information:
//   - image_info: Load image and get metadata
//   - image_dimensions: Get width and height
//
// Geometry Operations:
//   - image_resize, image_fit, image_thumbnail: Scaling
//   - image_crop, image_crop_anchor: Region extraction
//   - image_rotate, image_flip: Orientation
//
// Color Operations:
//   - image_grayscale, image_invert: Whole-image conversion
//   - image_sample_color: Get color at pixel
//   - image_gradient: Generate gradient images
//
// Effects and Analysis:
//   - image_blur, image_sharpen, image_edge_detect, image_emboss: Filters
//   - image_histogram: Per-channel color histogram
//
// Layout Helpers:
//   - image_grid_overlay: Add coordinate grid
//   - image_measure_distance: Measure between points
//   - image_check_alignment: Check point alignment
//
// Composition and Masking:
//   - image_mask: Generate or apply circle and rounded-rectangle masks
//   - image_compose_plan: Resolve overlay placement without rendering
//   - image_compose: Render a layered composition
//   - image_blend_modes: List supported blend modes
//
// OCR:
//   - image_ocr: Extract text with word bounding boxes
//
// # Image Caching
//
// The server maintains an in-memory cache of loaded images. Images are cached
// by path and reused across multiple tool calls, avoiding redundant disk I/O.
// Caching can be disabled in the configuration, in which case every call reads
// from disk.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// # Usage
//
// The server is typically started by an MCP client:
//
//	srv := server.New(config.Default(), nil)
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
