package rateapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	portsrepo "github.com/shivamgupta-zluri/onboarding-project/internal/core/ports/repositories"
)

const latestRatesPath = "/v6/%s/latest/INR"

// Client fetches conversion tables from exchangerate-api.com.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a new exchange-rate API client.
func NewClient(baseURL, apiKey string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: 10 * time.Second,
		}
	}

	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: httpClient,
	}
}

// Ensure implementation matches interface
var _ portsrepo.RateProvider = (*Client)(nil)

// latestResponse represents the response structure of the /latest endpoint.
type latestResponse struct {
	Result          string             `json:"result"`
	ErrorType       string             `json:"error-type"`
	BaseCode        string             `json:"base_code"`
	ConversionRates map[string]float64 `json:"conversion_rates"`
}

// FetchLatest retrieves the latest INR-based conversion table.
// Failures are returned as-is; the caller decides whether to retry.
func (c *Client) FetchLatest(ctx context.Context) (map[string]float64, error) {
	reqURL := c.baseURL + fmt.Sprintf(latestRatesPath, c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Add("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("rate provider returned status %d", resp.StatusCode)
	}

	var body latestResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode rate provider response: %w", err)
	}

	if body.Result != "success" {
		return nil, fmt.Errorf("rate provider returned result %q (%s)", body.Result, body.ErrorType)
	}
	if len(body.ConversionRates) == 0 {
		return nil, fmt.Errorf("rate provider returned no conversion rates")
	}

	return body.ConversionRates, nil
}
