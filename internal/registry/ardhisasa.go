package registry

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	pkgerrors "agriplot.io/agriplot/internal/pkg/errors"
	"agriplot.io/agriplot/internal/pkg/logger"
)

// ArdhisasaClient talks to the Ardhisasa land-registry API.
type ArdhisasaClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewArdhisasaClient creates a client for the Ardhisasa platform.
// timeout bounds each individual API call.
func NewArdhisasaClient(baseURL, apiKey string, timeout time.Duration) *ArdhisasaClient {
	return &ArdhisasaClient{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *ArdhisasaClient) Platform() string { return "ardhisasa" }

func (c *ArdhisasaClient) SearchTitle(ctx context.Context, info SubjectInfo) (*Result, error) {
	return c.post(ctx, "/v1/title-search", info)
}

func (c *ArdhisasaClient) VerifyOwner(ctx context.Context, info SubjectInfo) (*Result, error) {
	return c.post(ctx, "/v1/owner-verification", info)
}

func (c *ArdhisasaClient) CheckEncumbrances(ctx context.Context, info SubjectInfo) (*Result, error) {
	return c.post(ctx, "/v1/encumbrance-check", info)
}

func (c *ArdhisasaClient) post(ctx context.Context, path string, info SubjectInfo) (*Result, error) {
	body, err := json.Marshal(info)
	if err != nil {
		return nil, fmt.Errorf("marshal registry request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build registry request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, pkgerrors.Wrap(err, pkgerrors.CodeRegistryUnavailable,
			"registry call failed", http.StatusBadGateway)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, pkgerrors.Wrap(err, pkgerrors.CodeRegistryUnavailable,
			"read registry response", http.StatusBadGateway)
	}

	if resp.StatusCode >= 500 {
		logger.Error("Registry returned server error",
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
		)
		return nil, pkgerrors.New(pkgerrors.CodeRegistryUnavailable,
			fmt.Sprintf("registry returned status %d", resp.StatusCode), http.StatusBadGateway)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, pkgerrors.New(pkgerrors.CodeExternalVerificationFailed,
			fmt.Sprintf("registry rejected request with status %d", resp.StatusCode),
			http.StatusUnprocessableEntity)
	}

	var result Result
	if err := json.Unmarshal(payload, &result); err != nil {
		return nil, pkgerrors.Wrap(err, pkgerrors.CodeRegistryUnavailable,
			"decode registry response", http.StatusBadGateway)
	}
	return &result, nil
}
