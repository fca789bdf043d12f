package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"slices"

	pkghttp "insight-srv/pkg/http"
)

func defaultHTTPClient() pkghttp.IClient {
	return pkghttp.NewClient(pkghttp.ClientConfig{
		Timeout:   DefaultTimeout,
		Retries:   DefaultRetries,
		RetryWait: DefaultRetryWait,
	})
}

// getJSON issues a GET for path and decodes the body into T.
func getJSON[T any](ctx context.Context, c *backendImpl, path string) (T, error) {
	var out T

	body, statusCode, err := c.httpClient.Get(ctx, c.baseURL+path, nil)
	if err != nil {
		return out, fmt.Errorf("backend: GET %s: %w", path, err)
	}
	if statusCode < 200 || statusCode > 299 {
		return out, &StatusError{Path: path, StatusCode: statusCode}
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return out, fmt.Errorf("backend: decode %s: %w", path, err)
	}
	return out, nil
}

func companyPath(base, companyID string) (string, error) {
	if companyID == "" {
		return "", ErrEmptyCompany
	}
	return base + "/" + url.PathEscape(companyID), nil
}

// GetCompanies lists the companies known to the backend.
func (c *backendImpl) GetCompanies(ctx context.Context) ([]Company, error) {
	return getJSON[[]Company](ctx, c, PathCompanies)
}

// GetSentiment returns the sentiment counts of a company.
func (c *backendImpl) GetSentiment(ctx context.Context, companyID string) (Sentiment, error) {
	path, err := companyPath(PathSentiment, companyID)
	if err != nil {
		return Sentiment{}, err
	}
	return getJSON[Sentiment](ctx, c, path)
}

// GetKeywords returns keyword counts of a company.
func (c *backendImpl) GetKeywords(ctx context.Context, companyID string) ([]Keyword, error) {
	path, err := companyPath(PathKeywords, companyID)
	if err != nil {
		return nil, err
	}
	return getJSON[[]Keyword](ctx, c, path)
}

// GetThemes returns the discussion themes of a company.
func (c *backendImpl) GetThemes(ctx context.Context, companyID string) ([]string, error) {
	path, err := companyPath(PathThemes, companyID)
	if err != nil {
		return nil, err
	}
	return getJSON[[]string](ctx, c, path)
}

// GetMentions returns raw mentions of a company from one source.
func (c *backendImpl) GetMentions(ctx context.Context, source, companyID string) ([]RawMention, error) {
	if !slices.Contains(Sources, source) {
		return nil, ErrUnknownSource
	}
	path, err := companyPath("/api/"+source, companyID)
	if err != nil {
		return nil, err
	}
	return getJSON[[]RawMention](ctx, c, path)
}

// Health returns nil when the backend answers its health endpoint with 2xx.
func (c *backendImpl) Health(ctx context.Context) error {
	_, err := getJSON[json.RawMessage](ctx, c, PathHealth)
	return err
}
