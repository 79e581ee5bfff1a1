// Package arpansa fetches current UV index values from the ARPANSA
// real-time monitoring feed.
package arpansa

import (
	"context"
	"encoding/xml"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/couchcryptid/uv-advisory-service/internal/domain"
	"github.com/couchcryptid/uv-advisory-service/internal/observability"
)

// Client fetches UV index observations from the ARPANSA XML feed.
type Client struct {
	feedURL    string
	httpClient *http.Client
	metrics    *observability.Metrics
	logger     *slog.Logger
}

// NewClient creates a feed client for the given endpoint.
func NewClient(feedURL string, timeout time.Duration, metrics *observability.Metrics, logger *slog.Logger) *Client {
	return &Client{
		feedURL: feedURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		metrics: metrics,
		logger:  logger,
	}
}

// FetchIndex performs one GET of the feed and extracts the index for the
// given location. Request and status failures return a network-kind error;
// decode and lookup failures return a data-kind error.
func (c *Client) FetchIndex(ctx context.Context, location string) (domain.Observation, error) {
	start := time.Now()
	defer func() {
		c.metrics.FetchDuration.Observe(time.Since(start).Seconds())
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.feedURL, nil)
	if err != nil {
		return domain.Observation{}, domain.NewNetworkError(fmt.Errorf("create request: %w", err))
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.Observation{}, domain.NewNetworkError(fmt.Errorf("fetch feed: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return domain.Observation{}, domain.NewNetworkError(fmt.Errorf("feed returned status %d", resp.StatusCode))
	}

	var doc feedDocument
	if err := xml.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return domain.Observation{}, domain.NewDataError(fmt.Errorf("decode feed XML: %w", err))
	}

	for _, loc := range doc.Locations {
		if loc.ID == location {
			return domain.NewObservation(location, loc.Index)
		}
	}

	return domain.Observation{}, domain.NewDataError(fmt.Errorf("location %q not found in feed", location))
}

// Feed document types. The feed's root element name varies with publication
// format, so only the location children are matched.

type feedDocument struct {
	XMLName   xml.Name
	Locations []feedLocation `xml:"location"`
}

type feedLocation struct {
	ID    string `xml:"id,attr"`
	Index string `xml:"index"`
}
