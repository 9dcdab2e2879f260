package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// pathProperty is the schema fragment shared by every tool that reads an
// image from disk.
func pathProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Absolute path to the image file",
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Basic Image Information
		{
			Name:        "image_info",
			Description: "Load an image file and return its dimensions and format. Caches the decoded image for subsequent operations.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_dimensions",
			Description: "Get the width and height of an image file.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},

		// Geometry Operations
		{
			Name:        "image_resize",
			Description: "Resize an image to exact dimensions and return it as base64-encoded PNG. Pass 0 for width or height to preserve aspect ratio.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"width": map[string]interface{}{
						"type":        "integer",
						"description": "Target width in pixels (0 to derive from height)",
					},
					"height": map[string]interface{}{
						"type":        "integer",
						"description": "Target height in pixels (0 to derive from width)",
					},
					"filter": map[string]interface{}{
						"type":        "string",
						"description": "Resampling filter: lanczos, catmullrom, mitchell, linear, box, nearest, gaussian. Default from server config.",
					},
				},
				"required": []string{"path", "width", "height"},
			},
		},
		{
			Name:        "image_fit",
			Description: "Scale an image down to fit within the given bounding box, preserving aspect ratio. Images already inside the box are returned unchanged.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"width": map[string]interface{}{
						"type":        "integer",
						"description": "Maximum width in pixels",
					},
					"height": map[string]interface{}{
						"type":        "integer",
						"description": "Maximum height in pixels",
					},
					"filter": map[string]interface{}{
						"type":        "string",
						"description": "Resampling filter name. Default from server config.",
					},
				},
				"required": []string{"path", "width", "height"},
			},
		},
		{
			Name:        "image_thumbnail",
			Description: "Produce a thumbnail of exactly the given dimensions by scaling and center-cropping.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"width": map[string]interface{}{
						"type":        "integer",
						"description": "Thumbnail width in pixels",
					},
					"height": map[string]interface{}{
						"type":        "integer",
						"description": "Thumbnail height in pixels",
					},
					"filter": map[string]interface{}{
						"type":        "string",
						"description": "Resampling filter name. Default from server config.",
					},
				},
				"required": []string{"path", "width", "height"},
			},
		},
		{
			Name:        "image_crop",
			Description: "Crop a rectangular region from an image and return it as base64-encoded PNG. Use this to zoom into areas that need detailed examination.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"x1": map[string]interface{}{
						"type":        "integer",
						"description": "Left edge X coordinate (0-based)",
					},
					"y1": map[string]interface{}{
						"type":        "integer",
						"description": "Top edge Y coordinate (0-based)",
					},
					"x2": map[string]interface{}{
						"type":        "integer",
						"description": "Right edge X coordinate (exclusive)",
					},
					"y2": map[string]interface{}{
						"type":        "integer",
						"description": "Bottom edge Y coordinate (exclusive)",
					},
					"scale": map[string]interface{}{
						"type":        "number",
						"description": "Optional scale factor (e.g., 2.0 to double size). Default 1.0",
						"default":     1.0,
					},
				},
				"required": []string{"path", "x1", "y1", "x2", "y2"},
			},
		},
		{
			Name:        "image_crop_anchor",
			Description: "Crop a region of the given size anchored to an edge, corner, or the center of the image.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"width": map[string]interface{}{
						"type":        "integer",
						"description": "Crop width in pixels",
					},
					"height": map[string]interface{}{
						"type":        "integer",
						"description": "Crop height in pixels",
					},
					"anchor": map[string]interface{}{
						"type":        "string",
						"description": "Anchor point: center, top, bottom, left, right, top_left, top_right, bottom_left, bottom_right. Default center.",
					},
				},
				"required": []string{"path", "width", "height"},
			},
		},
		{
			Name:        "image_rotate",
			Description: "Rotate an image counter-clockwise by the given angle in degrees. Right angles are lossless; arbitrary angles fill exposed corners with the background color.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"angle": map[string]interface{}{
						"type":        "number",
						"description": "Rotation angle in degrees, counter-clockwise",
					},
					"background": map[string]interface{}{
						"type":        "string",
						"description": "Background hex color for exposed corners (e.g., '#FFFFFF'). Default transparent.",
					},
				},
				"required": []string{"path", "angle"},
			},
		},
		{
			Name:        "image_flip",
			Description: "Mirror an image horizontally or vertically.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"direction": map[string]interface{}{
						"type":        "string",
						"description": "Flip direction: 'horizontal' or 'vertical'",
					},
				},
				"required": []string{"path", "direction"},
			},
		},

		// Color Operations
		{
			Name:        "image_grayscale",
			Description: "Convert an image to grayscale.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_invert",
			Description: "Invert the colors of an image (photographic negative).",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_sample_color",
			Description: "Get the color value at a specific pixel coordinate. Returns RGB, RGBA, HSL, and hex representations.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "X coordinate of the pixel to sample",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Y coordinate of the pixel to sample",
					},
				},
				"required": []string{"path", "x", "y"},
			},
		},
		{
			Name:        "image_gradient",
			Description: "Generate a linear gradient image between two colors, interpolated in Lab space for perceptual smoothness.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"width": map[string]interface{}{
						"type":        "integer",
						"description": "Gradient width in pixels",
					},
					"height": map[string]interface{}{
						"type":        "integer",
						"description": "Gradient height in pixels",
					},
					"from": map[string]interface{}{
						"type":        "string",
						"description": "Start hex color (e.g., '#FF0000')",
					},
					"to": map[string]interface{}{
						"type":        "string",
						"description": "End hex color (e.g., '#0000FF')",
					},
					"direction": map[string]interface{}{
						"type":        "string",
						"description": "'horizontal' or 'vertical'. Default horizontal.",
					},
				},
				"required": []string{"width", "height", "from", "to"},
			},
		},

		// Effects and Analysis
		{
			Name:        "image_blur",
			Description: "Apply a Gaussian blur to an image.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"sigma": map[string]interface{}{
						"type":        "number",
						"description": "Blur strength. Default 3.0",
						"default":     3.0,
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_sharpen",
			Description: "Sharpen an image using unsharp masking.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"sigma": map[string]interface{}{
						"type":        "number",
						"description": "Sharpening strength. Default 1.0",
						"default":     1.0,
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_edge_detect",
			Description: "Highlight edges in an image using convolution-based edge detection. Useful for examining layout structure.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"radius": map[string]interface{}{
						"type":        "number",
						"description": "Detection kernel radius. Default 1.0",
						"default":     1.0,
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_emboss",
			Description: "Apply an emboss effect that renders edges in relief.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_histogram",
			Description: "Compute the 256-bin per-channel color histogram of an image.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},

		// Layout Helpers
		{
			Name:        "image_grid_overlay",
			Description: "Overlay a coordinate grid on an image to help identify pixel positions. Returns the image with grid lines as base64-encoded PNG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"grid_spacing": map[string]interface{}{
						"type":        "integer",
						"description": "Spacing between grid lines in pixels. Default 50",
						"default":     50,
					},
					"grid_color": map[string]interface{}{
						"type":        "string",
						"description": "Grid line color as hex (e.g., '#FF0000' or '#FF000080' with alpha). Default semi-transparent red.",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_measure_distance",
			Description: "Measure the pixel distance between two points in an image. Returns horizontal, vertical, and euclidean distances.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"x1": map[string]interface{}{
						"type":        "integer",
						"description": "First point X coordinate",
					},
					"y1": map[string]interface{}{
						"type":        "integer",
						"description": "First point Y coordinate",
					},
					"x2": map[string]interface{}{
						"type":        "integer",
						"description": "Second point X coordinate",
					},
					"y2": map[string]interface{}{
						"type":        "integer",
						"description": "Second point Y coordinate",
					},
				},
				"required": []string{"path", "x1", "y1", "x2", "y2"},
			},
		},
		{
			Name:        "image_check_alignment",
			Description: "Check if a set of points are aligned horizontally or vertically within a tolerance. Useful for verifying UI element alignment.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"points": map[string]interface{}{
						"type":        "array",
						"description": "Array of {x, y} points to check",
						"items": map[string]interface{}{
							"type": "object",
							"properties": map[string]interface{}{
								"x": map[string]interface{}{"type": "integer"},
								"y": map[string]interface{}{"type": "integer"},
							},
							"required": []string{"x", "y"},
						},
					},
					"tolerance": map[string]interface{}{
						"type":        "integer",
						"description": "Maximum deviation in pixels to still count as aligned. Default 5",
						"default":     5,
					},
				},
				"required": []string{"points"},
			},
		},

		// Composition and Masking
		{
			Name:        "image_mask",
			Description: "Generate a shape mask, or apply it to an image to cut the image into that shape. Supported shapes: circle (square extents only) and rounded_rectangle.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"shape": map[string]interface{}{
						"type":        "string",
						"description": "Mask shape: 'circle' or 'rounded_rectangle'",
					},
					"width": map[string]interface{}{
						"type":        "integer",
						"description": "Mask width in pixels. Defaults to the image width when path is given.",
					},
					"height": map[string]interface{}{
						"type":        "integer",
						"description": "Mask height in pixels. Defaults to the image height when path is given.",
					},
					"radius": map[string]interface{}{
						"type":        "integer",
						"description": "Corner radius for rounded_rectangle. Default 50",
						"default":     50,
					},
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Optional image to apply the mask to. When omitted the mask itself is returned.",
					},
				},
				"required": []string{"shape"},
			},
		},
		{
			Name:        "image_compose_plan",
			Description: "Resolve overlay placement for a composition without rendering it. Returns the final (x, y) position and blend mode of every layer.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"base": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the base image (the canvas)",
					},
					"overlays": map[string]interface{}{
						"type":        "array",
						"description": "Overlays in paint order. Each entry is either a bare path string (centered placement) or an object with path, x, y, dx, dy, x_baseline, y_baseline, blend_mode. Positions are numbers (absolute), keywords ('left', 'center', 'right', 'top', 'middle', 'bottom'), or omitted (relative to the previous layer).",
						"items":       map[string]interface{}{},
					},
				},
				"required": []string{"base", "overlays"},
			},
		},
		{
			Name:        "image_compose",
			Description: "Layer overlay images onto a base image and return the composite as base64-encoded PNG. Placement and blend modes per overlay work as in image_compose_plan.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"base": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the base image (the canvas)",
					},
					"overlays": map[string]interface{}{
						"type":        "array",
						"description": "Overlays in paint order; same format as image_compose_plan.",
						"items":       map[string]interface{}{},
					},
					"output": map[string]interface{}{
						"type":        "string",
						"description": "Optional path to also write the composite to. Format follows the extension; JPEG quality comes from server config.",
					},
				},
				"required": []string{"base", "overlays"},
			},
		},
		{
			Name:        "image_blend_modes",
			Description: "List the blend modes accepted by image_compose.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{},
			},
		},

		// OCR
		{
			Name:        "image_ocr",
			Description: "Extract text from an image using Tesseract OCR. Returns the full text plus per-word bounding boxes and confidences.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"language": map[string]interface{}{
						"type":        "string",
						"description": "Tesseract language code (e.g., 'eng', 'deu'). Default 'eng'.",
					},
				},
				"required": []string{"path"},
			},
		},
	}
}
