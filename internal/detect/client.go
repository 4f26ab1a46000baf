// Package detect is the HTTP client for the external clothing detection
// service. The contract is a single request/response pair with no retry:
// failures surface directly to the caller.
package detect

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/ainsleyw/drobe/internal/common"
)

// Detector is implemented by the HTTP client and test doubles.
type Detector interface {
	Health(ctx context.Context) error
	DetectBase64(ctx context.Context, image []byte) (*Result, error)
}

// Mask is a single detected garment region.
type Mask struct {
	ClassID     int     `json:"class_id"`
	ClassName   string  `json:"class_name,omitempty"`
	Confidence  float64 `json:"confidence"`
	MaskedImage string  `json:"masked_image,omitempty"`
}

// Result is the detection service's response for one photo.
type Result struct {
	Success    bool   `json:"success"`
	ImageShape []int  `json:"image_shape,omitempty"`
	Masks      []Mask `json:"masks,omitempty"`
	Error      string `json:"error,omitempty"`
}

// Client talks to the detection service over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a detection client for the given base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Health checks the service's /health endpoint. A failure is advisory; the
// caller decides whether to continue.
func (c *Client) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return fmt.Errorf("failed to create health request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrDetectionUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: health returned %d", common.ErrDetectionUnavailable, resp.StatusCode)
	}
	return nil
}

// DetectBase64 uploads a photo for garment segmentation. The image bytes are
// base64-encoded into the JSON body the service expects.
func (c *Client) DetectBase64(ctx context.Context, image []byte) (*Result, error) {
	if len(image) == 0 {
		return nil, fmt.Errorf("%w: empty image", common.ErrDetectionFailed)
	}

	body, err := json.Marshal(map[string]string{
		"image": base64.StdEncoding.EncodeToString(image),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/detect_base64", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	slog.Debug("uploading photo for detection", "bytes", len(image), "url", c.baseURL)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrDetectionUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: detection service returned %d - %s",
			common.ErrDetectionFailed, resp.StatusCode, string(respBody))
	}

	var result Result
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if !result.Success {
		msg := result.Error
		if msg == "" {
			msg = "unknown error"
		}
		return nil, fmt.Errorf("%w: %s", common.ErrDetectionFailed, msg)
	}

	slog.Debug("detection complete", "masks", len(result.Masks), "image_shape", result.ImageShape)
	return &result, nil
}
