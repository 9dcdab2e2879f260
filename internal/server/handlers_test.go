package server

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"os"
	"strings"
	"testing"

	"github.com/warmwaffles/image/internal/compose"
	"github.com/warmwaffles/image/internal/config"
	"github.com/warmwaffles/image/internal/imageops"
)

// createTestImageFile creates a test image file and returns its path
func createTestImageFile(t *testing.T, width, height int, c color.Color) string {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}

	tmpFile, err := os.CreateTemp(t.TempDir(), "handler-test-*.png")
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	defer tmpFile.Close()

	if err := png.Encode(tmpFile, img); err != nil {
		t.Fatalf("failed to encode image: %v", err)
	}

	return tmpFile.Name()
}

// callTool runs a tools/call request and returns the response.
func callTool(t *testing.T, s *Server, name string, args map[string]interface{}) *MCPResponse {
	t.Helper()

	params := map[string]interface{}{
		"name":      name,
		"arguments": args,
	}
	paramsJSON, err := json.Marshal(params)
	if err != nil {
		t.Fatalf("failed to marshal params: %v", err)
	}

	return s.handleToolsCall(&MCPRequest{
		JSONRPC: "2.0",
		ID:      1,
		Method:  "tools/call",
		Params:  paramsJSON,
	})
}

// resultText extracts the JSON payload from a successful tool response.
func resultText(t *testing.T, resp *MCPResponse) string {
	t.Helper()

	if resp.Error != nil {
		t.Fatalf("Unexpected error: %+v", resp.Error)
	}
	result, ok := resp.Result.(map[string]interface{})
	if !ok {
		t.Fatalf("Result is not a map: %T", resp.Result)
	}
	content, ok := result["content"].([]map[string]interface{})
	if !ok || len(content) == 0 {
		t.Fatalf("Result content has wrong shape: %#v", result["content"])
	}
	text, ok := content[0]["text"].(string)
	if !ok {
		t.Fatalf("Content text is not a string: %T", content[0]["text"])
	}
	return text
}

// decodeImageResult decodes the base64 PNG in a tool result.
func decodeImageResult(t *testing.T, text string) (imageops.ImageResult, image.Image) {
	t.Helper()

	var res imageops.ImageResult
	if err := json.Unmarshal([]byte(text), &res); err != nil {
		t.Fatalf("failed to unmarshal image result: %v", err)
	}
	raw, err := base64.StdEncoding.DecodeString(res.ImageBase64)
	if err != nil {
		t.Fatalf("failed to decode base64: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("failed to decode PNG: %v", err)
	}
	return res, img
}

func TestHandleToolsCall_ImageInfo(t *testing.T) {
	s := New(config.Default(), nil)
	imgPath := createTestImageFile(t, 100, 80, color.RGBA{255, 0, 0, 255})

	resp := callTool(t, s, "image_info", map[string]interface{}{"path": imgPath})
	text := resultText(t, resp)

	var info struct {
		Width  int    `json:"width"`
		Height int    `json:"height"`
		Format string `json:"format"`
	}
	if err := json.Unmarshal([]byte(text), &info); err != nil {
		t.Fatalf("failed to unmarshal info: %v", err)
	}
	if info.Width != 100 || info.Height != 80 {
		t.Errorf("dimensions: got %dx%d, want 100x80", info.Width, info.Height)
	}
}

func TestHandleToolsCall_ImageDimensions(t *testing.T) {
	s := New(config.Default(), nil)
	imgPath := createTestImageFile(t, 200, 150, color.RGBA{0, 255, 0, 255})

	resp := callTool(t, s, "image_dimensions", map[string]interface{}{"path": imgPath})
	text := resultText(t, resp)

	var dims struct {
		Width  int `json:"width"`
		Height int `json:"height"`
	}
	if err := json.Unmarshal([]byte(text), &dims); err != nil {
		t.Fatalf("failed to unmarshal dimensions: %v", err)
	}
	if dims.Width != 200 || dims.Height != 150 {
		t.Errorf("dimensions: got %dx%d, want 200x150", dims.Width, dims.Height)
	}
}

func TestHandleToolsCall_ImageResize(t *testing.T) {
	s := New(config.Default(), nil)
	imgPath := createTestImageFile(t, 100, 100, color.RGBA{0, 0, 255, 255})

	resp := callTool(t, s, "image_resize", map[string]interface{}{
		"path":   imgPath,
		"width":  50,
		"height": 50,
	})
	res, img := decodeImageResult(t, resultText(t, resp))

	if res.Width != 50 || res.Height != 50 {
		t.Errorf("result dimensions: got %dx%d, want 50x50", res.Width, res.Height)
	}
	if img.Bounds().Dx() != 50 || img.Bounds().Dy() != 50 {
		t.Errorf("decoded dimensions: got %dx%d, want 50x50", img.Bounds().Dx(), img.Bounds().Dy())
	}
}

func TestHandleToolsCall_ImageCrop_DefaultScale(t *testing.T) {
	s := New(config.Default(), nil)
	imgPath := createTestImageFile(t, 100, 100, color.RGBA{255, 255, 0, 255})

	resp := callTool(t, s, "image_crop", map[string]interface{}{
		"path": imgPath,
		"x1":   10, "y1": 20, "x2": 60, "y2": 50,
	})
	res, _ := decodeImageResult(t, resultText(t, resp))

	if res.Width != 50 || res.Height != 30 {
		t.Errorf("crop dimensions: got %dx%d, want 50x30", res.Width, res.Height)
	}
}

func TestHandleToolsCall_SampleColor(t *testing.T) {
	s := New(config.Default(), nil)
	imgPath := createTestImageFile(t, 10, 10, color.RGBA{255, 0, 0, 255})

	resp := callTool(t, s, "image_sample_color", map[string]interface{}{
		"path": imgPath,
		"x":    5, "y": 5,
	})
	text := resultText(t, resp)

	var sample struct {
		Hex string `json:"hex"`
	}
	if err := json.Unmarshal([]byte(text), &sample); err != nil {
		t.Fatalf("failed to unmarshal sample: %v", err)
	}
	if !strings.EqualFold(sample.Hex, "#FF0000") {
		t.Errorf("hex: got %s, want #FF0000", sample.Hex)
	}
}

func TestHandleToolsCall_Gradient(t *testing.T) {
	s := New(config.Default(), nil)

	resp := callTool(t, s, "image_gradient", map[string]interface{}{
		"width": 64, "height": 16,
		"from": "#000000", "to": "#FFFFFF",
	})
	res, _ := decodeImageResult(t, resultText(t, resp))

	if res.Width != 64 || res.Height != 16 {
		t.Errorf("gradient dimensions: got %dx%d, want 64x16", res.Width, res.Height)
	}
}

func TestHandleToolsCall_BlendModes(t *testing.T) {
	s := New(config.Default(), nil)

	resp := callTool(t, s, "image_blend_modes", map[string]interface{}{})
	text := resultText(t, resp)

	var out struct {
		Modes   []string `json:"modes"`
		Default string   `json:"default"`
	}
	if err := json.Unmarshal([]byte(text), &out); err != nil {
		t.Fatalf("failed to unmarshal modes: %v", err)
	}
	if out.Default != "over" {
		t.Errorf("default: got %s, want over", out.Default)
	}
	if len(out.Modes) != 16 {
		t.Errorf("modes: got %d, want 16", len(out.Modes))
	}
}

func TestHandleToolsCall_ComposePlan(t *testing.T) {
	s := New(config.Default(), nil)
	basePath := createTestImageFile(t, 200, 100, color.RGBA{255, 255, 255, 255})
	overlayPath := createTestImageFile(t, 40, 30, color.RGBA{255, 0, 0, 255})

	resp := callTool(t, s, "image_compose_plan", map[string]interface{}{
		"base": basePath,
		"overlays": []interface{}{
			map[string]interface{}{
				"path": overlayPath,
				"x":    10,
				"y":    "bottom",
			},
		},
	})
	text := resultText(t, resp)

	var plan composePlanResult
	if err := json.Unmarshal([]byte(text), &plan); err != nil {
		t.Fatalf("failed to unmarshal plan: %v", err)
	}
	if plan.CanvasWidth != 200 || plan.CanvasHeight != 100 {
		t.Errorf("canvas: got %dx%d, want 200x100", plan.CanvasWidth, plan.CanvasHeight)
	}
	if len(plan.Layers) != 1 {
		t.Fatalf("layers: got %d, want 1", len(plan.Layers))
	}
	l := plan.Layers[0]
	if l.X != 10 || l.Y != 70 {
		t.Errorf("layer position: got (%d, %d), want (10, 70)", l.X, l.Y)
	}
	if l.BlendMode != "over" {
		t.Errorf("blend mode: got %s, want over", l.BlendMode)
	}
}

func TestHandleToolsCall_ComposePlan_BareStringCentered(t *testing.T) {
	s := New(config.Default(), nil)
	basePath := createTestImageFile(t, 200, 100, color.RGBA{255, 255, 255, 255})
	overlayPath := createTestImageFile(t, 40, 30, color.RGBA{0, 255, 0, 255})

	resp := callTool(t, s, "image_compose_plan", map[string]interface{}{
		"base":     basePath,
		"overlays": []interface{}{overlayPath},
	})
	text := resultText(t, resp)

	var plan composePlanResult
	if err := json.Unmarshal([]byte(text), &plan); err != nil {
		t.Fatalf("failed to unmarshal plan: %v", err)
	}
	if len(plan.Layers) != 1 {
		t.Fatalf("layers: got %d, want 1", len(plan.Layers))
	}
	l := plan.Layers[0]
	if l.X != 80 || l.Y != 35 {
		t.Errorf("centered position: got (%d, %d), want (80, 35)", l.X, l.Y)
	}
}

func TestHandleToolsCall_ComposePlan_BadBlendMode(t *testing.T) {
	s := New(config.Default(), nil)
	basePath := createTestImageFile(t, 100, 100, color.RGBA{255, 255, 255, 255})
	overlayPath := createTestImageFile(t, 10, 10, color.RGBA{0, 0, 255, 255})

	resp := callTool(t, s, "image_compose_plan", map[string]interface{}{
		"base": basePath,
		"overlays": []interface{}{
			map[string]interface{}{
				"path":       overlayPath,
				"blend_mode": "definitely-not-a-mode",
			},
		},
	})

	if resp.Error == nil {
		t.Fatal("Expected error for bad blend mode")
	}
	if resp.Error.Code != -32000 {
		t.Errorf("Error code: got %d, want -32000", resp.Error.Code)
	}
	data, _ := resp.Error.Data.(string)
	if !strings.Contains(data, "overlay 0") {
		t.Errorf("Error data should name the overlay: %s", data)
	}
}

func TestHandleToolsCall_Compose(t *testing.T) {
	s := New(config.Default(), nil)
	basePath := createTestImageFile(t, 100, 100, color.RGBA{255, 255, 255, 255})
	overlayPath := createTestImageFile(t, 20, 20, color.RGBA{255, 0, 0, 255})

	resp := callTool(t, s, "image_compose", map[string]interface{}{
		"base": basePath,
		"overlays": []interface{}{
			map[string]interface{}{
				"path": overlayPath,
				"x":    0,
				"y":    0,
			},
		},
	})
	res, img := decodeImageResult(t, resultText(t, resp))

	if res.Width != 100 || res.Height != 100 {
		t.Errorf("composite dimensions: got %dx%d, want 100x100", res.Width, res.Height)
	}

	// Overlay covers the top-left corner.
	r, _, _, _ := img.At(5, 5).RGBA()
	if r>>8 != 255 {
		t.Errorf("top-left red channel: got %d, want 255", r>>8)
	}
	// Outside the overlay the base shows through.
	_, g, _, _ := img.At(50, 50).RGBA()
	if g>>8 != 255 {
		t.Errorf("center green channel: got %d, want 255", g>>8)
	}
}

func TestHandleToolsCall_Compose_WithOutput(t *testing.T) {
	s := New(config.Default(), nil)
	basePath := createTestImageFile(t, 50, 50, color.RGBA{255, 255, 255, 255})
	overlayPath := createTestImageFile(t, 10, 10, color.RGBA{255, 0, 0, 255})
	outPath := t.TempDir() + "/composite.png"

	resp := callTool(t, s, "image_compose", map[string]interface{}{
		"base":     basePath,
		"overlays": []interface{}{overlayPath},
		"output":   outPath,
	})
	resultText(t, resp)

	f, err := os.Open(outPath)
	if err != nil {
		t.Fatalf("composite was not written: %v", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("failed to decode written composite: %v", err)
	}
	if img.Bounds().Dx() != 50 || img.Bounds().Dy() != 50 {
		t.Errorf("written dimensions: got %dx%d, want 50x50", img.Bounds().Dx(), img.Bounds().Dy())
	}
}

func TestHandleToolsCall_Mask_Generate(t *testing.T) {
	s := New(config.Default(), nil)

	resp := callTool(t, s, "image_mask", map[string]interface{}{
		"shape": "circle",
		"width": 64, "height": 64,
	})
	res, _ := decodeImageResult(t, resultText(t, resp))

	if res.Width != 64 || res.Height != 64 {
		t.Errorf("mask dimensions: got %dx%d, want 64x64", res.Width, res.Height)
	}
}

func TestHandleToolsCall_Mask_Apply(t *testing.T) {
	s := New(config.Default(), nil)
	imgPath := createTestImageFile(t, 64, 64, color.RGBA{255, 0, 0, 255})

	resp := callTool(t, s, "image_mask", map[string]interface{}{
		"shape": "circle",
		"path":  imgPath,
	})
	res, img := decodeImageResult(t, resultText(t, resp))

	if res.Width != 64 || res.Height != 64 {
		t.Errorf("masked dimensions: got %dx%d, want 64x64", res.Width, res.Height)
	}
	// Corners fall outside the circle.
	_, _, _, a := img.At(0, 0).RGBA()
	if a != 0 {
		t.Errorf("corner alpha: got %d, want 0", a)
	}
	// The center stays opaque.
	_, _, _, a = img.At(32, 32).RGBA()
	if a>>8 != 255 {
		t.Errorf("center alpha: got %d, want 255", a>>8)
	}
}

func TestHandleToolsCall_Mask_UnknownShape(t *testing.T) {
	s := New(config.Default(), nil)

	resp := callTool(t, s, "image_mask", map[string]interface{}{
		"shape": "triangle",
		"width": 10, "height": 10,
	})

	if resp.Error == nil {
		t.Fatal("Expected error for unknown shape")
	}
}

func TestHandleToolsCall_CheckAlignment(t *testing.T) {
	s := New(config.Default(), nil)

	resp := callTool(t, s, "image_check_alignment", map[string]interface{}{
		"points": []interface{}{
			map[string]interface{}{"x": 10, "y": 50},
			map[string]interface{}{"x": 90, "y": 52},
		},
	})
	text := resultText(t, resp)

	var out struct {
		HorizontallyAligned bool `json:"horizontally_aligned"`
	}
	if err := json.Unmarshal([]byte(text), &out); err != nil {
		t.Fatalf("failed to unmarshal alignment: %v", err)
	}
	if !out.HorizontallyAligned {
		t.Error("points within tolerance should count as horizontally aligned")
	}
}

func TestHandleToolsCall_NonExistentFile(t *testing.T) {
	s := New(config.Default(), nil)

	resp := callTool(t, s, "image_info", map[string]interface{}{
		"path": "/nonexistent/image.png",
	})

	if resp.Error == nil {
		t.Fatal("Expected error for non-existent file")
	}
	if resp.Error.Code != -32000 {
		t.Errorf("Error code: got %d, want -32000", resp.Error.Code)
	}
}

func TestHandleToolsCall_UnknownTool(t *testing.T) {
	s := New(config.Default(), nil)

	resp := callTool(t, s, "image_levitate", map[string]interface{}{})

	if resp.Error == nil {
		t.Fatal("Expected error for unknown tool")
	}
	if resp.Error.Code != -32000 {
		t.Errorf("Error code: got %d, want -32000", resp.Error.Code)
	}
}

func TestHandleToolsCall_InvalidParams(t *testing.T) {
	s := New(config.Default(), nil)

	resp := s.handleToolsCall(&MCPRequest{
		JSONRPC: "2.0",
		ID:      1,
		Method:  "tools/call",
		Params:  json.RawMessage(`"not an object"`),
	})

	if resp.Error == nil {
		t.Fatal("Expected error for invalid params")
	}
	if resp.Error.Code != -32602 {
		t.Errorf("Error code: got %d, want -32602", resp.Error.Code)
	}
}

func TestOverlaySpec_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		json     string
		wantPath string
		centered bool
	}{
		{"bare string", `"/tmp/logo.png"`, "/tmp/logo.png", true},
		{"object", `{"path":"/tmp/logo.png","x":10,"y":"bottom","dx":5}`, "/tmp/logo.png", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var spec overlaySpec
			if err := json.Unmarshal([]byte(tt.json), &spec); err != nil {
				t.Fatalf("Failed to unmarshal: %v", err)
			}
			if spec.Path != tt.wantPath {
				t.Errorf("Path: got %s, want %s", spec.Path, tt.wantPath)
			}
			if spec.centered != tt.centered {
				t.Errorf("centered: got %v, want %v", spec.centered, tt.centered)
			}
		})
	}
}

func TestOverlaySpec_PositionKinds(t *testing.T) {
	raw := `{"path":"/tmp/a.png","x":25,"y":"middle"}`

	var spec overlaySpec
	if err := json.Unmarshal([]byte(raw), &spec); err != nil {
		t.Fatalf("Failed to unmarshal: %v", err)
	}

	if spec.X != compose.Abs(25) {
		t.Errorf("X: got %v, want absolute 25", spec.X)
	}
	if !spec.X.IsSet() {
		t.Error("X should be set")
	}
	if spec.Y != compose.At(compose.KeywordMiddle) {
		t.Errorf("Y: got %v, want keyword middle", spec.Y)
	}
	if !spec.Y.IsSet() {
		t.Error("Y keyword should count as set")
	}
}
