package facades

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/url"
	"time"

	"github.com/imagineapp/imagine-server/internal/logger"
)

const (
	defaultBaseURL      = "https://www.virustotal.com/api/v3"
	defaultPollInterval = 30 * time.Second
	defaultMaxAttempts  = 5
)

// VirusTotalClient uploads content to the VirusTotal files API and polls
// the analyses API for a verdict.
type VirusTotalClient struct {
	apiKey       string
	baseURL      string
	httpClient   *http.Client
	pollInterval time.Duration
	maxAttempts  int
}

// Option configures a VirusTotalClient.
type Option func(*VirusTotalClient)

// WithBaseURL overrides the API base URL.
func WithBaseURL(baseURL string) Option {
	return func(c *VirusTotalClient) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *VirusTotalClient) {
		c.httpClient = client
	}
}

// WithPollInterval overrides the fixed wait between polls.
func WithPollInterval(interval time.Duration) Option {
	return func(c *VirusTotalClient) {
		c.pollInterval = interval
	}
}

// WithMaxAttempts overrides the polling attempt budget.
func WithMaxAttempts(attempts int) Option {
	return func(c *VirusTotalClient) {
		c.maxAttempts = attempts
	}
}

// New creates a client authenticated with the given API key.
func New(apiKey string, opts ...Option) *VirusTotalClient {
	c := &VirusTotalClient{
		apiKey:       apiKey,
		baseURL:      defaultBaseURL,
		httpClient:   &http.Client{},
		pollInterval: defaultPollInterval,
		maxAttempts:  defaultMaxAttempts,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type uploadResponse struct {
	Data struct {
		ID string `json:"id"`
	} `json:"data"`
}

type analysisResponse struct {
	Data struct {
		Attributes struct {
			Status string `json:"status"`
			Stats  struct {
				Suspicious int `json:"suspicious"`
				Malicious  int `json:"malicious"`
			} `json:"stats"`
		} `json:"attributes"`
	} `json:"data"`
}

// Check uploads the content and polls for a verdict with a fixed wait
// between attempts. Each poll that reports the analysis as still queued
// consumes one attempt; when the budget runs out, pendingID carries the
// external analysis id for later reconciliation. A definitive verdict
// passes only when both the suspicious and malicious counts are zero.
func (c *VirusTotalClient) Check(ctx context.Context, content []byte) (bool, string, error) {
	analysisID, err := c.upload(ctx, content)
	if err != nil {
		return false, "", err
	}

	for attempt := 0; attempt < c.maxAttempts; attempt++ {
		select {
		case <-ctx.Done():
			return false, "", ctx.Err()
		case <-time.After(c.pollInterval):
		}

		analysis, err := c.fetchAnalysis(ctx, analysisID)
		if err != nil {
			return false, "", err
		}

		if analysis.Data.Attributes.Status == "queued" {
			continue
		}

		stats := analysis.Data.Attributes.Stats
		return stats.Suspicious == 0 && stats.Malicious == 0, "", nil
	}

	logger.Log.Infow("scan still processing after attempt budget", "analysis_id", analysisID)
	return false, analysisID, nil
}

// upload zip-wraps the content and posts it as a multipart form.
func (c *VirusTotalClient) upload(ctx context.Context, content []byte) (string, error) {
	zipped, err := zipContent(content)
	if err != nil {
		return "", err
	}

	var body bytes.Buffer
	form := multipart.NewWriter(&body)
	part, err := form.CreateFormFile("file", "file.zip")
	if err != nil {
		return "", err
	}
	if _, err := part.Write(zipped); err != nil {
		return "", err
	}
	if err := form.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/files", &body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", form.FormDataContentType())
	req.Header.Set("x-apikey", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("upload rejected with status %d", resp.StatusCode)
	}

	var upload uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&upload); err != nil {
		return "", err
	}
	if upload.Data.ID == "" {
		return "", fmt.Errorf("upload response missing analysis id")
	}
	return upload.Data.ID, nil
}

func (c *VirusTotalClient) fetchAnalysis(ctx context.Context, analysisID string) (*analysisResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/analyses/"+url.PathEscape(analysisID), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("x-apikey", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("analysis fetch rejected with status %d", resp.StatusCode)
	}

	var analysis analysisResponse
	if err := json.NewDecoder(resp.Body).Decode(&analysis); err != nil {
		return nil, err
	}
	return &analysis, nil
}

func zipContent(content []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	f, err := w.Create("file")
	if err != nil {
		return nil, err
	}
	if _, err := f.Write(content); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
