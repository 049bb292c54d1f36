package vortex

import (
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog/log"

	"vortex-source/model"
)

type coreQuery struct {
	Limit int
	Page  int
	Q     string
}

type searchQuery struct {
	QueryString string
	Core        coreQuery
}

// parseSearchRequest turns a directory request into the query string
// the site understands. Segment order is fixed (sort, completed, type,
// demographic, genres, exclude_genres) and must stay byte-stable:
// consumers cache on the produced string. Multi-value groups join with
// commas; URL-encoding is the transport's job. Absent groups emit
// nothing.
func parseSearchRequest(request model.DirectoryRequest) searchQuery {
	sortID := defaultSortID
	if request.Sort != nil && request.Sort.ID != "" {
		sortID = request.Sort.ID
	}
	page := request.Page
	if page == 0 {
		page = 1
	}

	var sb strings.Builder
	sb.WriteString("sort=" + sortID)

	if f := request.Filters; f != nil {
		if f.Completed {
			sb.WriteString("&completed=true")
		}
		if len(f.ContentType) > 0 {
			sb.WriteString("&type=" + strings.Join(f.ContentType, ","))
		}
		if len(f.Demographic) > 0 {
			sb.WriteString("&demographic=" + strings.Join(f.Demographic, ","))
		}
		if f.Genres != nil {
			if len(f.Genres.Included) > 0 {
				sb.WriteString("&genres=" + strings.Join(f.Genres.Included, ","))
			}
			if len(f.Genres.Excluded) > 0 {
				sb.WriteString("&exclude_genres=" + strings.Join(f.Genres.Excluded, ","))
			}
		}
	}

	return searchQuery{
		QueryString: sb.String(),
		Core: coreQuery{
			Limit: pageSize,
			Page:  page,
			Q:     request.Query,
		},
	}
}

// GetDirectory fetches one listing page and extracts its cards. The
// site renders a single flat listing with no server-side pagination, so
// the result always reports the last page; do not probe further pages.
func (s *Source) GetDirectory(ctx context.Context, request model.DirectoryRequest) (*model.PagedResult, error) {
	query := parseSearchRequest(request)
	log.Debug().Str("query", query.Core.Q).Int("page", query.Core.Page).Msg("fetching directory")

	doc, err := s.fetchDocument(ctx, fmt.Sprintf("%v/series?%v", s.baseURL, query.QueryString))
	if err != nil {
		return nil, err
	}

	results := make([]model.Highlight, 0)
	doc.Find("div.series-card").Each(func(i int, sel *goquery.Selection) {
		link := sel.Find("a").First().AttrOr("href", "")
		segments := strings.Split(strings.TrimSuffix(link, "/"), "/")
		id := segments[len(segments)-1]
		title := strings.TrimSpace(sel.Find(".title").First().Text())
		cover := sel.Find("img").First().AttrOr("src", "")
		if id == "" || title == "" || cover == "" {
			// Partial card; drop it rather than abort the listing.
			return
		}
		results = append(results, mangaToHighlight(rawManga{ID: id, Title: title, Cover: cover}))
	})

	return &model.PagedResult{Results: results, IsLastPage: true}, nil
}

func (s *Source) GetDirectoryConfig(ctx context.Context) (*model.DirectoryConfig, error) {
	filters, err := s.GetSearchFilters(ctx)
	if err != nil {
		return nil, err
	}
	return &model.DirectoryConfig{
		Filters: filters,
		Sort: model.SortConfig{
			Options:        sortOptions,
			CanChangeOrder: false,
			Default:        model.SortSelection{ID: defaultSortID, Ascending: false},
		},
	}, nil
}

func (s *Source) GetSearchFilters(context.Context) ([]model.DirectoryFilter, error) {
	props := properties()
	return []model.DirectoryFilter{
		{
			ID:      "content_type",
			Title:   "Content Type",
			Type:    model.FilterMultiselect,
			Options: props[0].Tags,
		},
		{
			ID:      "demographic",
			Title:   "Demographic",
			Type:    model.FilterMultiselect,
			Options: props[1].Tags,
		},
		{
			ID:      "genres",
			Title:   "Genres",
			Type:    model.FilterExcludableMultiselect,
			Options: props[2].Tags,
		},
	}, nil
}

func (s *Source) GetTags(context.Context) ([]model.Property, error) {
	return properties(), nil
}
