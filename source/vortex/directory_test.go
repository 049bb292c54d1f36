package vortex

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vortex-source/model"
)

func TestParseSearchRequestDefaults(t *testing.T) {
	query := parseSearchRequest(model.DirectoryRequest{})

	assert.Equal(t, "sort=views", query.QueryString)
	assert.Equal(t, 30, query.Core.Limit)
	assert.Equal(t, 1, query.Core.Page)
	assert.Equal(t, "", query.Core.Q)
}

func TestParseSearchRequestSegmentOrder(t *testing.T) {
	request := model.DirectoryRequest{
		Query: "blade",
		Page:  3,
		Sort:  &model.SortSelection{ID: "rating"},
		Filters: &model.Filters{
			Completed:   true,
			ContentType: []string{"manhwa", "manga"},
			Demographic: []string{"shounen"},
			Genres: &model.GenreFilter{
				Included: []string{"action", "fantasy"},
				Excluded: []string{"romance"},
			},
		},
	}

	query := parseSearchRequest(request)

	assert.Equal(t,
		"sort=rating&completed=true&type=manhwa,manga&demographic=shounen&genres=action,fantasy&exclude_genres=romance",
		query.QueryString)
	assert.Equal(t, 3, query.Core.Page)
	assert.Equal(t, "blade", query.Core.Q)

	// Identical requests are byte-identical across calls.
	assert.Equal(t, query.QueryString, parseSearchRequest(request).QueryString)
}

func TestParseSearchRequestAbsentGroupsEmitNothing(t *testing.T) {
	query := parseSearchRequest(model.DirectoryRequest{
		Filters: &model.Filters{
			Genres: &model.GenreFilter{Excluded: []string{"horror"}},
		},
	})

	assert.Equal(t, "sort=views&exclude_genres=horror", query.QueryString)
	assert.NotContains(t, query.QueryString, "type=")
	assert.NotContains(t, query.QueryString, "demographic=")
	assert.NotContains(t, query.QueryString, "completed=")
}

const directoryFixture = `<html><body>
<div class="series-card">
	<a href="/series/blade-of-dawn"><img src="https://cdn.example/blade.jpg"></a>
	<div class="title">Blade of Dawn</div>
</div>
<div class="series-card">
	<a href="/series/moon-palace/"><img src="https://cdn.example/moon.jpg"></a>
	<div class="title">Moon Palace</div>
</div>
<div class="series-card">
	<a href="/series/no-cover"></a>
	<div class="title">No Cover</div>
</div>
<div class="series-card">
	<a href="/series/no-title"><img src="https://cdn.example/x.jpg"></a>
</div>
</body></html>`

func TestGetDirectory(t *testing.T) {
	var gotQuery string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		_, _ = w.Write([]byte(directoryFixture))
	}))
	defer ts.Close()

	src := New(WithBaseURL(ts.URL))
	result, err := src.GetDirectory(context.Background(), model.DirectoryRequest{Page: 7})
	require.NoError(t, err)

	assert.Equal(t, "sort=views", gotQuery)

	// Malformed cards are dropped, not fatal.
	require.Len(t, result.Results, 2)
	assert.Equal(t, "blade-of-dawn", result.Results[0].ID)
	assert.Equal(t, "Blade of Dawn", result.Results[0].Title)
	assert.Equal(t, "moon-palace", result.Results[1].ID)

	// No server-side pagination: always terminal, whatever the page.
	assert.True(t, result.IsLastPage)
}

func TestGetDirectoryAlwaysLastPage(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><body></body></html>`))
	}))
	defer ts.Close()

	src := New(WithBaseURL(ts.URL))
	for _, page := range []int{0, 1, 99} {
		result, err := src.GetDirectory(context.Background(), model.DirectoryRequest{Page: page})
		require.NoError(t, err)
		assert.True(t, result.IsLastPage)
		assert.Empty(t, result.Results)
	}
}

func TestGetDirectoryConfig(t *testing.T) {
	src := New()
	cfg, err := src.GetDirectoryConfig(context.Background())
	require.NoError(t, err)

	require.Len(t, cfg.Filters, 3)
	assert.Equal(t, "content_type", cfg.Filters[0].ID)
	assert.Equal(t, model.FilterMultiselect, cfg.Filters[0].Type)
	assert.Equal(t, "genres", cfg.Filters[2].ID)
	assert.Equal(t, model.FilterExcludableMultiselect, cfg.Filters[2].Type)

	assert.False(t, cfg.Sort.CanChangeOrder)
	assert.Equal(t, "views", cfg.Sort.Default.ID)
	assert.NotEmpty(t, cfg.Sort.Options)
}

func TestGetTags(t *testing.T) {
	src := New()
	tags, err := src.GetTags(context.Background())
	require.NoError(t, err)

	require.Len(t, tags, 3)
	seen := make(map[string]bool)
	for _, property := range tags {
		assert.False(t, seen[property.ID], "duplicate property id %q", property.ID)
		seen[property.ID] = true
		assert.NotEmpty(t, property.Tags)
	}
}
