package server

import (
	"encoding/json"
	"fmt"
	"image"

	"golang.org/x/sync/errgroup"

	"github.com/warmwaffles/image/internal/compose"
	"github.com/warmwaffles/image/internal/engine"
	"github.com/warmwaffles/image/internal/imageops"
	"github.com/warmwaffles/image/internal/mask"
	"github.com/warmwaffles/image/internal/ocr"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_resize", "image_compose").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified
// tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		s.logger.Debug("tool failed", "tool", params.Name, "error", err)
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
//
// Each tool handler:
//  1. Unmarshals arguments from JSON
//  2. Applies default values for optional parameters
//  3. Loads images as needed
//  4. Calls the appropriate imageops/engine/compose/ocr function
//  5. Returns the result or error
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Basic Image Information
	case "image_info":
		return s.handleImageInfo(args)
	case "image_dimensions":
		return s.handleImageDimensions(args)

	// Geometry Operations
	case "image_resize":
		return s.handleImageResize(args)
	case "image_fit":
		return s.handleImageFit(args)
	case "image_thumbnail":
		return s.handleImageThumbnail(args)
	case "image_crop":
		return s.handleImageCrop(args)
	case "image_crop_anchor":
		return s.handleImageCropAnchor(args)
	case "image_rotate":
		return s.handleImageRotate(args)
	case "image_flip":
		return s.handleImageFlip(args)

	// Color Operations
	case "image_grayscale":
		return s.handleImageGrayscale(args)
	case "image_invert":
		return s.handleImageInvert(args)
	case "image_sample_color":
		return s.handleImageSampleColor(args)
	case "image_gradient":
		return s.handleImageGradient(args)

	// Effects and Analysis
	case "image_blur":
		return s.handleImageBlur(args)
	case "image_sharpen":
		return s.handleImageSharpen(args)
	case "image_edge_detect":
		return s.handleImageEdgeDetect(args)
	case "image_emboss":
		return s.handleImageEmboss(args)
	case "image_histogram":
		return s.handleImageHistogram(args)

	// Layout Helpers
	case "image_grid_overlay":
		return s.handleImageGridOverlay(args)
	case "image_measure_distance":
		return s.handleImageMeasureDistance(args)
	case "image_check_alignment":
		return s.handleImageCheckAlignment(args)

	// Composition and Masking
	case "image_mask":
		return s.handleImageMask(args)
	case "image_compose_plan":
		return s.handleImageComposePlan(args)
	case "image_compose":
		return s.handleImageCompose(args)
	case "image_blend_modes":
		return s.handleImageBlendModes(args)

	// OCR
	case "image_ocr":
		return s.handleImageOCR(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// loadImage fetches an image through the cache, or straight from disk when
// caching is disabled.
func (s *Server) loadImage(path string) (image.Image, error) {
	if s.cfg.CacheEnabled {
		return s.cache.Load(path)
	}
	return engine.Open(path)
}

// === Basic Image Information Handlers ===

type imagePathArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageInfo(args json.RawMessage) (interface{}, error) {
	var a imagePathArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imageops.LoadInfo(s.cache, a.Path)
}

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	var a imagePathArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imageops.Dimensions(s.cache, a.Path)
}

// === Geometry Operation Handlers ===

type imageResizeArgs struct {
	Path   string `json:"path"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Filter string `json:"filter"`
}

func (s *Server) handleImageResize(args json.RawMessage) (interface{}, error) {
	var a imageResizeArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Filter == "" {
		a.Filter = s.cfg.ResizeFilter
	}
	img, err := s.loadImage(a.Path)
	if err != nil {
		return nil, err
	}
	return imageops.Resize(img, a.Width, a.Height, a.Filter)
}

func (s *Server) handleImageFit(args json.RawMessage) (interface{}, error) {
	var a imageResizeArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Filter == "" {
		a.Filter = s.cfg.ResizeFilter
	}
	img, err := s.loadImage(a.Path)
	if err != nil {
		return nil, err
	}
	return imageops.Fit(img, a.Width, a.Height, a.Filter)
}

func (s *Server) handleImageThumbnail(args json.RawMessage) (interface{}, error) {
	var a imageResizeArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Filter == "" {
		a.Filter = s.cfg.ResizeFilter
	}
	img, err := s.loadImage(a.Path)
	if err != nil {
		return nil, err
	}
	return imageops.Thumbnail(img, a.Width, a.Height, a.Filter)
}

type imageCropArgs struct {
	Path  string  `json:"path"`
	X1    int     `json:"x1"`
	Y1    int     `json:"y1"`
	X2    int     `json:"x2"`
	Y2    int     `json:"y2"`
	Scale float64 `json:"scale"`
}

func (s *Server) handleImageCrop(args json.RawMessage) (interface{}, error) {
	var a imageCropArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Scale == 0 {
		a.Scale = 1.0
	}
	img, err := s.loadImage(a.Path)
	if err != nil {
		return nil, err
	}
	return imageops.Crop(img, a.X1, a.Y1, a.X2, a.Y2, a.Scale)
}

type imageCropAnchorArgs struct {
	Path   string `json:"path"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Anchor string `json:"anchor"`
}

func (s *Server) handleImageCropAnchor(args json.RawMessage) (interface{}, error) {
	var a imageCropAnchorArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.loadImage(a.Path)
	if err != nil {
		return nil, err
	}
	return imageops.CropAnchor(img, a.Width, a.Height, a.Anchor)
}

type imageRotateArgs struct {
	Path       string  `json:"path"`
	Angle      float64 `json:"angle"`
	Background string  `json:"background"`
}

func (s *Server) handleImageRotate(args json.RawMessage) (interface{}, error) {
	var a imageRotateArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.loadImage(a.Path)
	if err != nil {
		return nil, err
	}
	return imageops.Rotate(img, a.Angle, a.Background)
}

type imageFlipArgs struct {
	Path      string `json:"path"`
	Direction string `json:"direction"`
}

func (s *Server) handleImageFlip(args json.RawMessage) (interface{}, error) {
	var a imageFlipArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.loadImage(a.Path)
	if err != nil {
		return nil, err
	}
	return imageops.Flip(img, a.Direction)
}

// === Color Operation Handlers ===

func (s *Server) handleImageGrayscale(args json.RawMessage) (interface{}, error) {
	var a imagePathArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.loadImage(a.Path)
	if err != nil {
		return nil, err
	}
	return imageops.Grayscale(img)
}

func (s *Server) handleImageInvert(args json.RawMessage) (interface{}, error) {
	var a imagePathArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.loadImage(a.Path)
	if err != nil {
		return nil, err
	}
	return imageops.Invert(img)
}

type imageSampleColorArgs struct {
	Path string `json:"path"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

func (s *Server) handleImageSampleColor(args json.RawMessage) (interface{}, error) {
	var a imageSampleColorArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.loadImage(a.Path)
	if err != nil {
		return nil, err
	}
	return imageops.SampleColor(img, a.X, a.Y)
}

type imageGradientArgs struct {
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	From      string `json:"from"`
	To        string `json:"to"`
	Direction string `json:"direction"`
}

func (s *Server) handleImageGradient(args json.RawMessage) (interface{}, error) {
	var a imageGradientArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imageops.Gradient(a.Width, a.Height, a.From, a.To, a.Direction)
}

// === Effects and Analysis Handlers ===

type imageSigmaArgs struct {
	Path  string  `json:"path"`
	Sigma float64 `json:"sigma"`
}

func (s *Server) handleImageBlur(args json.RawMessage) (interface{}, error) {
	var a imageSigmaArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Sigma == 0 {
		a.Sigma = 3.0
	}
	img, err := s.loadImage(a.Path)
	if err != nil {
		return nil, err
	}
	return imageops.Blur(img, a.Sigma)
}

func (s *Server) handleImageSharpen(args json.RawMessage) (interface{}, error) {
	var a imageSigmaArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Sigma == 0 {
		a.Sigma = 1.0
	}
	img, err := s.loadImage(a.Path)
	if err != nil {
		return nil, err
	}
	return imageops.Sharpen(img, a.Sigma)
}

type imageEdgeDetectArgs struct {
	Path   string  `json:"path"`
	Radius float64 `json:"radius"`
}

func (s *Server) handleImageEdgeDetect(args json.RawMessage) (interface{}, error) {
	var a imageEdgeDetectArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Radius == 0 {
		a.Radius = 1.0
	}
	img, err := s.loadImage(a.Path)
	if err != nil {
		return nil, err
	}
	return imageops.EdgeDetect(img, a.Radius)
}

func (s *Server) handleImageEmboss(args json.RawMessage) (interface{}, error) {
	var a imagePathArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.loadImage(a.Path)
	if err != nil {
		return nil, err
	}
	return imageops.Emboss(img)
}

func (s *Server) handleImageHistogram(args json.RawMessage) (interface{}, error) {
	var a imagePathArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.loadImage(a.Path)
	if err != nil {
		return nil, err
	}
	return imageops.Histogram(img)
}

// === Layout Helper Handlers ===

type imageGridOverlayArgs struct {
	Path        string `json:"path"`
	GridSpacing int    `json:"grid_spacing"`
	GridColor   string `json:"grid_color"`
}

func (s *Server) handleImageGridOverlay(args json.RawMessage) (interface{}, error) {
	var a imageGridOverlayArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.GridSpacing == 0 {
		a.GridSpacing = 50
	}
	if a.GridColor == "" {
		a.GridColor = "#FF000080"
	}
	img, err := s.loadImage(a.Path)
	if err != nil {
		return nil, err
	}
	return imageops.GridOverlay(img, a.GridSpacing, a.GridColor)
}

type imageMeasureDistanceArgs struct {
	Path string `json:"path"`
	X1   int    `json:"x1"`
	Y1   int    `json:"y1"`
	X2   int    `json:"x2"`
	Y2   int    `json:"y2"`
}

func (s *Server) handleImageMeasureDistance(args json.RawMessage) (interface{}, error) {
	var a imageMeasureDistanceArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.loadImage(a.Path)
	if err != nil {
		return nil, err
	}
	return imageops.MeasureDistance(img, a.X1, a.Y1, a.X2, a.Y2)
}

type imageCheckAlignmentArgs struct {
	Points []struct {
		X int `json:"x"`
		Y int `json:"y"`
	} `json:"points"`
	Tolerance int `json:"tolerance"`
}

func (s *Server) handleImageCheckAlignment(args json.RawMessage) (interface{}, error) {
	var a imageCheckAlignmentArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Tolerance == 0 {
		a.Tolerance = 5
	}

	points := make([]imageops.Point, len(a.Points))
	for i, p := range a.Points {
		points[i] = imageops.Point{X: p.X, Y: p.Y}
	}
	return imageops.CheckAlignment(points, a.Tolerance)
}

// === Composition and Masking Handlers ===

type imageMaskArgs struct {
	Shape  string `json:"shape"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Radius int    `json:"radius"`
	Path   string `json:"path"`
}

// maskDescriptor builds the geometry for a mask request. When a source
// image is named and no explicit size is given, the mask takes the image's
// extent.
func (s *Server) maskDescriptor(a *imageMaskArgs, img image.Image) (mask.Descriptor, error) {
	width, height := a.Width, a.Height
	if img != nil && width == 0 && height == 0 {
		w, h, err := engine.Extent(img)
		if err != nil {
			return mask.Descriptor{}, err
		}
		width, height = w, h
	}

	switch a.Shape {
	case "circle":
		return mask.NewCircle(width, height)
	case "rounded_rectangle":
		return mask.NewRoundedRectangle(width, height, a.Radius)
	}
	return mask.Descriptor{}, fmt.Errorf("unknown mask shape: %s", a.Shape)
}

func (s *Server) handleImageMask(args json.RawMessage) (interface{}, error) {
	var a imageMaskArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	// Without a source image the tool returns the mask band itself.
	if a.Path == "" {
		d, err := s.maskDescriptor(&a, nil)
		if err != nil {
			return nil, err
		}
		band, err := engine.MaskImage(d)
		if err != nil {
			return nil, err
		}
		return imageops.EncodeResult(band)
	}

	img, err := s.loadImage(a.Path)
	if err != nil {
		return nil, err
	}
	d, err := s.maskDescriptor(&a, img)
	if err != nil {
		return nil, err
	}
	masked, err := engine.ApplyMask(img, d)
	if err != nil {
		return nil, err
	}
	return imageops.EncodeResult(masked)
}

// overlaySpec is one entry of a composition request. It decodes either from
// a bare path string, which means centered placement, or from an object
// with the full positioning rule.
type overlaySpec struct {
	Path      string           `json:"path"`
	X         compose.Position `json:"x"`
	Y         compose.Position `json:"y"`
	DX        int              `json:"dx"`
	DY        int              `json:"dy"`
	XBaseline compose.Baseline `json:"x_baseline"`
	YBaseline compose.Baseline `json:"y_baseline"`
	BlendMode string           `json:"blend_mode"`

	centered bool
}

func (o *overlaySpec) UnmarshalJSON(data []byte) error {
	var path string
	if err := json.Unmarshal(data, &path); err == nil {
		*o = overlaySpec{Path: path, centered: true}
		return nil
	}

	type plain overlaySpec
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*o = overlaySpec(p)
	return nil
}

// overlay converts the entry plus its loaded image into a planner overlay.
func (o *overlaySpec) overlay(img image.Image) compose.Overlay {
	if o.centered {
		return compose.Centered(img)
	}
	return compose.Overlay{
		Image:     img,
		X:         o.X,
		Y:         o.Y,
		DX:        o.DX,
		DY:        o.DY,
		XBaseline: o.XBaseline,
		YBaseline: o.YBaseline,
		Blend:     o.BlendMode,
	}
}

// loadOverlays fetches every overlay source concurrently, bounded by the
// configured worker limit, preserving input order.
func (s *Server) loadOverlays(specs []overlaySpec) ([]compose.Overlay, error) {
	images := make([]image.Image, len(specs))

	g := new(errgroup.Group)
	g.SetLimit(s.cfg.Workers)
	for i := range specs {
		g.Go(func() error {
			img, err := s.loadImage(specs[i].Path)
			if err != nil {
				return fmt.Errorf("overlay %d: %w", i, err)
			}
			images[i] = img
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	overlays := make([]compose.Overlay, len(specs))
	for i := range specs {
		overlays[i] = specs[i].overlay(images[i])
	}
	return overlays, nil
}

type imageComposeArgs struct {
	Base     string        `json:"base"`
	Overlays []overlaySpec `json:"overlays"`
	Output   string        `json:"output"`
}

// plannedLayer is the JSON shape of one resolved layer in a plan response.
type plannedLayer struct {
	Index     int    `json:"index"`
	Path      string `json:"path"`
	X         int    `json:"x"`
	Y         int    `json:"y"`
	BlendMode string `json:"blend_mode"`
}

type composePlanResult struct {
	CanvasWidth  int            `json:"canvas_width"`
	CanvasHeight int            `json:"canvas_height"`
	Layers       []plannedLayer `json:"layers"`
}

func (s *Server) handleImageComposePlan(args json.RawMessage) (interface{}, error) {
	var a imageComposeArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	base, err := s.loadImage(a.Base)
	if err != nil {
		return nil, err
	}
	canvas, err := compose.CanvasFor(base)
	if err != nil {
		return nil, err
	}

	overlays, err := s.loadOverlays(a.Overlays)
	if err != nil {
		return nil, err
	}

	layers, err := compose.Plan(canvas, overlays)
	if err != nil {
		return nil, err
	}

	out := composePlanResult{
		CanvasWidth:  canvas.Width,
		CanvasHeight: canvas.Height,
		Layers:       make([]plannedLayer, len(layers)),
	}
	for i, l := range layers {
		out.Layers[i] = plannedLayer{
			Index:     i,
			Path:      a.Overlays[i].Path,
			X:         l.X,
			Y:         l.Y,
			BlendMode: l.Mode.String(),
		}
	}
	return &out, nil
}

func (s *Server) handleImageCompose(args json.RawMessage) (interface{}, error) {
	var a imageComposeArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	base, err := s.loadImage(a.Base)
	if err != nil {
		return nil, err
	}
	overlays, err := s.loadOverlays(a.Overlays)
	if err != nil {
		return nil, err
	}

	result, err := engine.Compose(base, overlays)
	if err != nil {
		return nil, err
	}

	if a.Output != "" {
		if err := engine.Save(result, a.Output, s.cfg.JPEGQuality); err != nil {
			return nil, err
		}
	}
	return imageops.EncodeResult(result)
}

func (s *Server) handleImageBlendModes(json.RawMessage) (interface{}, error) {
	return map[string]interface{}{
		"modes":   compose.BlendModes(),
		"default": "over",
	}, nil
}

// === OCR Handlers ===

type imageOCRArgs struct {
	Path     string `json:"path"`
	Language string `json:"language"`
}

func (s *Server) handleImageOCR(args json.RawMessage) (interface{}, error) {
	var a imageOCRArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return ocr.Recognize(a.Path, a.Language)
}
