package edit

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/zaqy-ramadhan/qoar-photo/internal/logging"
)

// Defaults for Client.
const (
	DefaultEndpoint   = "https://generativelanguage.googleapis.com/"
	DefaultAPIVersion = "v1beta"
	DefaultModel      = "gemini-2.5-flash-image"
	DefaultTimeout    = 2 * time.Minute
)

// Labels sent before each image so the model can tell them apart.
const (
	sourceLabel = "Source image to edit:"
	maskLabel   = "Mask image: white marks the region to change, black must stay untouched:"
	objectLabel = "Object image to place into the source image:"
)

// APIError is a non-2xx answer from the image API.
type APIError struct {
	StatusCode int
	Status     string
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("edit: api error: %d", e.StatusCode)
	}
	return fmt.Sprintf("edit: api error: %d %s: %s", e.StatusCode, e.Status, e.Message)
}

// Option configures a Client.
type Option func(*config)

type config struct {
	endpoint   string
	apiVersion string
	model      string
	apiKey     string
	http       *http.Client
}

// WithEndpoint sets the API base URL.
func WithEndpoint(endpoint string) Option {
	return func(c *config) {
		c.endpoint = endpoint
	}
}

// WithAPIVersion sets the API version path segment.
func WithAPIVersion(version string) Option {
	return func(c *config) {
		c.apiVersion = version
	}
}

// WithModel sets the model name.
func WithModel(model string) Option {
	return func(c *config) {
		c.model = model
	}
}

// WithAPIKey sets the API key sent with every request. When empty the
// GEMINI_API_KEY or GOOGLE_API_KEY environment variable is used.
func WithAPIKey(key string) Option {
	return func(c *config) {
		c.apiKey = key
	}
}

// WithHTTPClient sets the HTTP client. A nil client keeps the default.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *config) {
		if hc != nil {
			c.http = hc
		}
	}
}

// Client is an Editor backed by the Gemini generateContent API.
// It is safe for concurrent use.
type Client struct {
	model  string
	models *genai.Models
}

var _ Editor = (*Client)(nil)

// NewClient creates a client with the given options.
func NewClient(ctx context.Context, opts ...Option) (*Client, error) {
	cfg := config{
		endpoint:   DefaultEndpoint,
		apiVersion: DefaultAPIVersion,
		model:      DefaultModel,
		http:       &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	gc, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     cfg.apiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: cfg.http,
		HTTPOptions: genai.HTTPOptions{
			BaseURL:    cfg.endpoint,
			APIVersion: cfg.apiVersion,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("edit: create client: %w", err)
	}
	return &Client{model: cfg.model, models: gc.Models}, nil
}

func blobPart(b Blob) *genai.Part {
	return genai.NewPartFromBytes(b.Data, b.mime())
}

// buildContents lays out the parts: prompt, then each image after its label.
func buildContents(req Request) []*genai.Content {
	parts := []*genai.Part{
		genai.NewPartFromText(req.Prompt),
		genai.NewPartFromText(sourceLabel),
		blobPart(req.Image),
	}
	if !req.Mask.Empty() {
		parts = append(parts, genai.NewPartFromText(maskLabel), blobPart(req.Mask))
	}
	if !req.Object.Empty() {
		parts = append(parts, genai.NewPartFromText(objectLabel), blobPart(req.Object))
	}
	return []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}
}

// Edit sends req and returns the first image of the first candidate, together
// with all text parts of that candidate joined by newlines.
func (c *Client) Edit(ctx context.Context, req Request) (*Result, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	logging.Logger().Debug("edit: sending request",
		"model", c.model, "mask", !req.Mask.Empty(), "object", !req.Object.Empty())

	resp, err := c.models.GenerateContent(ctx, c.model, buildContents(req), &genai.GenerateContentConfig{
		ResponseModalities: []string{string(genai.ModalityText), string(genai.ModalityImage)},
	})
	if err != nil {
		var apiErr genai.APIError
		if errors.As(err, &apiErr) {
			return nil, fromAPIError(apiErr)
		}
		return nil, fmt.Errorf("edit: generate content: %w", err)
	}
	return resultFrom(resp)
}

func fromAPIError(e genai.APIError) *APIError {
	apiErr := &APIError{
		StatusCode: e.Code,
		Status:     e.Status,
		Message:    strings.TrimSpace(e.Message),
	}
	logging.Logger().Warn("edit: api error", "status", apiErr.StatusCode, "message", apiErr.Message)
	return apiErr
}

func resultFrom(resp *genai.GenerateContentResponse) (*Result, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, ErrNoImage
	}

	var (
		res   Result
		texts []string
	)
	for _, p := range resp.Candidates[0].Content.Parts {
		if p == nil || p.Thought {
			continue
		}
		if p.Text != "" {
			texts = append(texts, p.Text)
		}
		if p.InlineData == nil || len(p.InlineData.Data) == 0 || !res.Image.Empty() {
			continue
		}
		res.Image = Blob{Data: p.InlineData.Data, MIMEType: p.InlineData.MIMEType}
	}
	res.Text = strings.Join(texts, "\n")

	if res.Image.Empty() {
		if res.Text != "" {
			return nil, fmt.Errorf("%w: model replied %q", ErrNoImage, res.Text)
		}
		return nil, ErrNoImage
	}
	return &res, nil
}
