// Copyright (c) 2026 The jfctl authors.
// SPDX-License-Identifier: Apache-2.0

package holidays

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/tidwall/gjson"

	"github.com/jfctl/jfctl/internal/log"
)

// DefaultBaseURL is the government calendar API. The per-year document at
// /jours-feries/{zone}/{year}.json is a JSON object mapping ISO dates
// (YYYY-MM-DD) to holiday descriptions.
const DefaultBaseURL = "https://calendrier.api.gouv.fr"

// Day is a single public holiday.
type Day struct {
	Date        string // YYYY-MM-DD
	Description string
}

// Year holds one year's holidays in the order the API returned them.
type Year struct {
	Year int
	Days []Day
}

// Get returns the description for an ISO date within the year, if present.
func (y Year) Get(date string) (string, bool) {
	for _, d := range y.Days {
		if d.Date == date {
			return d.Description, true
		}
	}
	return "", false
}

// Client fetches holiday documents. The zero HTTP client uses net/http
// defaults; there are no retries and no timeout override.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

// NewClient returns a Client against the public API.
func NewClient() *Client {
	return &Client{
		BaseURL: DefaultBaseURL,
		HTTP:    &http.Client{},
	}
}

// FetchRange fetches one Year per year in [p.Year, p.Year+p.Duration),
// strictly sequentially in ascending order. Any failure aborts the range;
// per-year results are never merged.
func (c *Client) FetchRange(ctx context.Context, p Params) ([]Year, error) {
	years := make([]Year, 0, p.Duration)
	for y := p.Year; y < p.Year+p.Duration; y++ {
		year, err := c.FetchYear(ctx, p.Zone, y)
		if err != nil {
			return nil, err
		}
		years = append(years, year)
	}
	return years, nil
}

// FetchYear GETs one year's document and parses it. The body is walked with
// gjson so the API's key order is preserved; encoding/json map decoding
// would lose it.
func (c *Client) FetchYear(ctx context.Context, zone string, year int) (Year, error) {
	url := fmt.Sprintf("%s/jours-feries/%s/%d.json", c.BaseURL, zone, year)
	log.Debugf("fetching holidays: url=%s", url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Year{}, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return Year{}, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	var doc bytes.Buffer
	if _, err := doc.ReadFrom(resp.Body); err != nil {
		return Year{}, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Year{}, fmt.Errorf("unexpected status %s fetching %s", resp.Status, url)
	}

	if !gjson.ValidBytes(doc.Bytes()) {
		return Year{}, fmt.Errorf("malformed JSON body from %s", url)
	}
	parsed := gjson.ParseBytes(doc.Bytes())
	if !parsed.IsObject() {
		return Year{}, fmt.Errorf("expected a JSON object from %s, got %s", url, parsed.Type)
	}

	result := Year{Year: year}
	parsed.ForEach(func(key, value gjson.Result) bool {
		result.Days = append(result.Days, Day{
			Date:        key.String(),
			Description: value.String(),
		})
		return true
	})

	log.Debugf("fetched holidays: year=%d count=%d", year, len(result.Days))
	return result, nil
}

// Description looks up a single ISO date. It re-fetches the date's whole year
// on every call; callers needing repeated lookups must cache externally.
func (c *Client) Description(ctx context.Context, zone string, date string) (string, bool, error) {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return "", false, fmt.Errorf("invalid date %q: %w", date, err)
	}

	year, err := c.FetchYear(ctx, zone, day.Year())
	if err != nil {
		return "", false, err
	}

	desc, ok := year.Get(day.Format("2006-01-02"))
	return desc, ok, nil
}

// IsHoliday reports whether the ISO date is a public holiday in the zone.
func (c *Client) IsHoliday(ctx context.Context, zone string, date string) (bool, error) {
	_, ok, err := c.Description(ctx, zone, date)
	return ok, err
}
