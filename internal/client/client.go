// Package client submits a finished return to the backend and handles the
// returned label. A local mode covers client-only deployments with no
// backend round trip.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/myokyal/loopify/internal/label"
	"github.com/myokyal/loopify/internal/returns"
)

// Label is a generated label document ready to be saved.
type Label struct {
	Filename    string
	ContentType string
	Body        []byte
}

// Save writes the label into dir, the client-side "download".
func (l *Label) Save(dir string) (string, error) {
	path := filepath.Join(dir, l.Filename)
	if err := os.WriteFile(path, l.Body, 0o644); err != nil {
		return "", fmt.Errorf("save label: %w", err)
	}
	return path, nil
}

// Submitter sends a validated return and yields its label.
type Submitter interface {
	Submit(ctx context.Context, req returns.Request) (*Label, error)
}

// SubmitError carries the backend's error body.
type SubmitError struct {
	Status  int
	Message string
	Details string
}

func (e *SubmitError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("submit failed (%d): %s: %s", e.Status, e.Message, e.Details)
	}
	return fmt.Sprintf("submit failed (%d): %s", e.Status, e.Message)
}

// --- HTTP implementation ---

// HTTPClient talks to the return API over HTTP.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewHTTP creates a client for the backend at baseURL.
func NewHTTP(baseURL string) *HTTPClient {
	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// wirePayload mirrors the shape the frontend posts: the dropoff variant
// sends the "N/A" sentinel instead of an address.
type wirePayload struct {
	Selected returns.Selection `json:"selected"`
	Shipping interface{}       `json:"shipping"`
	Photo    string            `json:"photo,omitempty"`
}

// Submit serializes the request, performs the single POST, and returns
// the label document. One call per click; retry is manual.
func (c *HTTPClient) Submit(ctx context.Context, req returns.Request) (*Label, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	payload := wirePayload{
		Selected: req.Selection,
		Shipping: "N/A",
		Photo:    req.Photo,
	}
	if req.Shipping != nil {
		payload.Shipping = req.Shipping
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode return: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/return", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/pdf")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("submit return: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, decodeSubmitError(resp)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read label: %w", err)
	}

	return &Label{
		Filename:    filenameFromDisposition(resp.Header.Get("Content-Disposition")),
		ContentType: resp.Header.Get("Content-Type"),
		Body:        data,
	}, nil
}

func decodeSubmitError(resp *http.Response) error {
	subErr := &SubmitError{Status: resp.StatusCode, Message: "submission failed"}
	var body struct {
		Error   string `json:"error"`
		Details string `json:"details"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Error != "" {
		subErr.Message = body.Error
		subErr.Details = body.Details
	}
	return subErr
}

func filenameFromDisposition(disposition string) string {
	if disposition != "" {
		if _, params, err := mime.ParseMediaType(disposition); err == nil {
			if name := params["filename"]; name != "" {
				return name
			}
		}
	}
	return label.PDFFilename
}

// --- Local (client-only) implementation ---

// LocalClient synthesizes the label without a backend. The request is
// not persisted anywhere; the generated ID only feeds the label.
type LocalClient struct{}

// NewLocal creates a client-only submitter.
func NewLocal() *LocalClient {
	return &LocalClient{}
}

// Submit validates the request and renders the printable HTML label
// locally.
func (c *LocalClient) Submit(ctx context.Context, req returns.Request) (*Label, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	req.ID = uuid.New().String()
	d := label.FromRequest(&req)
	// Nothing is uploaded in local mode, so an attached photo counts as
	// present here.
	d.HasPhoto = req.Photo != ""
	body, err := label.HTML(d)
	if err != nil {
		return nil, err
	}
	return &Label{
		Filename:    label.HTMLFilename,
		ContentType: "text/html; charset=utf-8",
		Body:        body,
	}, nil
}
