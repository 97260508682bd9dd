// Copyright (c) 2026 The jfctl authors.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package holidays

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestClient serves canned per-year documents for metropole and records
// the order of requested paths.
func newTestClient(t *testing.T, docs map[string]string, paths *[]string) *Client {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if paths != nil {
			*paths = append(*paths, r.URL.Path)
		}
		doc, ok := docs[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		fmt.Fprint(w, doc)
	}))
	t.Cleanup(server.Close)

	return &Client{BaseURL: server.URL, HTTP: server.Client()}
}

func TestFetchYear(t *testing.T) {
	client := newTestClient(t, map[string]string{
		"/jours-feries/metropole/2024.json": `{"2024-01-01":"Jour de l'an","2024-04-01":"Lundi de Pâques","2024-05-01":"Fête du Travail"}`,
	}, nil)

	year, err := client.FetchYear(context.Background(), "metropole", 2024)
	require.NoError(t, err)

	assert.Equal(t, 2024, year.Year)
	// Key order must match the document, not a re-sort.
	assert.Equal(t, []Day{
		{Date: "2024-01-01", Description: "Jour de l'an"},
		{Date: "2024-04-01", Description: "Lundi de Pâques"},
		{Date: "2024-05-01", Description: "Fête du Travail"},
	}, year.Days)
}

func TestFetchRange(t *testing.T) {
	var paths []string
	client := newTestClient(t, map[string]string{
		"/jours-feries/metropole/2024.json": `{"2024-01-01":"Jour de l'an"}`,
		"/jours-feries/metropole/2025.json": `{"2025-01-01":"Jour de l'an"}`,
		"/jours-feries/metropole/2026.json": `{"2026-01-01":"Jour de l'an"}`,
	}, &paths)

	years, err := client.FetchRange(context.Background(), Params{
		Zone:     "metropole",
		Year:     2024,
		Duration: 3,
	})
	require.NoError(t, err)

	// One mapping per requested year, ascending, never merged.
	require.Len(t, years, 3)
	for i, y := range years {
		assert.Equal(t, 2024+i, y.Year)
		require.Len(t, y.Days, 1)
		assert.NotEmpty(t, y.Days[0].Description)
	}
	assert.Equal(t, []string{
		"/jours-feries/metropole/2024.json",
		"/jours-feries/metropole/2025.json",
		"/jours-feries/metropole/2026.json",
	}, paths)
}

func TestFetchRangeAbortsOnFailure(t *testing.T) {
	var paths []string
	client := newTestClient(t, map[string]string{
		"/jours-feries/metropole/2024.json": `{"2024-01-01":"Jour de l'an"}`,
		// 2025 is missing: the server responds 404.
	}, &paths)

	years, err := client.FetchRange(context.Background(), Params{
		Zone:     "metropole",
		Year:     2024,
		Duration: 3,
	})
	assert.Error(t, err)
	assert.Nil(t, years)
	// The failure stops the range; 2026 is never requested.
	assert.Len(t, paths, 2)
}

func TestFetchYearErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{name: "malformed JSON", doc: `{"2024-01-01":`},
		{name: "not an object", doc: `["2024-01-01"]`},
		{name: "scalar body", doc: `42`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, map[string]string{
				"/jours-feries/metropole/2024.json": tt.doc,
			}, nil)

			_, err := client.FetchYear(context.Background(), "metropole", 2024)
			assert.Error(t, err)
		})
	}
}

func TestFetchYearHTTPStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	t.Cleanup(server.Close)

	client := &Client{BaseURL: server.URL, HTTP: server.Client()}
	_, err := client.FetchYear(context.Background(), "metropole", 2024)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}

func TestDescription(t *testing.T) {
	var paths []string
	client := newTestClient(t, map[string]string{
		"/jours-feries/metropole/2024.json": `{"2024-01-01":"Jour de l'an"}`,
	}, &paths)

	desc, ok, err := client.Description(context.Background(), "metropole", "2024-01-01")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Jour de l'an", desc)

	_, ok, err = client.Description(context.Background(), "metropole", "2024-01-02")
	require.NoError(t, err)
	assert.False(t, ok)

	// Each lookup re-fetches the whole year; there is no cache.
	assert.Len(t, paths, 2)
}

func TestDescriptionRejectsBadDate(t *testing.T) {
	client := newTestClient(t, nil, nil)

	_, _, err := client.Description(context.Background(), "metropole", "01/01/2024")
	assert.Error(t, err)
}

func TestIsHoliday(t *testing.T) {
	client := newTestClient(t, map[string]string{
		"/jours-feries/metropole/2024.json": `{"2024-01-01":"Jour de l'an"}`,
	}, nil)

	ok, err := client.IsHoliday(context.Background(), "metropole", "2024-01-01")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = client.IsHoliday(context.Background(), "metropole", "2024-06-15")
	require.NoError(t, err)
	assert.False(t, ok)
}
