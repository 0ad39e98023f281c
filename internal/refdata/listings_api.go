package refdata

import (
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"CraneAppraiser/internal/model"
)

// APIListingsSource fetches broker listings from an upstream aggregation
// API. Used instead of the workbook source when a listings feed URL is
// configured.
type APIListingsSource struct {
	client  *resty.Client
	baseURL string
	apiKey  string
}

// NewAPIListingsSource creates a source against the given feed URL.
func NewAPIListingsSource(baseURL, apiKey string) *APIListingsSource {
	client := resty.New()
	client.SetTimeout(30 * time.Second)
	client.SetRetryCount(2)

	return &APIListingsSource{
		client:  client,
		baseURL: baseURL,
		apiKey:  apiKey,
	}
}

func (s *APIListingsSource) Name() string { return "listings-api" }

type listingsResponse struct {
	Listings []model.BrokerListing `json:"listings"`
}

// FetchListings pulls the current listings feed.
func (s *APIListingsSource) FetchListings() ([]model.BrokerListing, error) {
	var out listingsResponse
	resp, err := s.client.R().
		SetHeader("Accept", "application/json").
		SetHeader("Authorization", "Bearer "+s.apiKey).
		SetResult(&out).
		Get(s.baseURL + "/v1/listings")
	if err != nil {
		return nil, fmt.Errorf("fetch listings: %w", err)
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("listings feed returned %d", resp.StatusCode())
	}

	// Drop rows the feed should never send but occasionally does.
	valid := out.Listings[:0]
	for _, l := range out.Listings {
		if l.Manufacturer == "" && l.Model == "" {
			continue
		}
		if l.Price < 0 || l.CapacityTons < 0 {
			continue
		}
		valid = append(valid, l)
	}
	return valid, nil
}
