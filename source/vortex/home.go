package vortex

import (
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"vortex-source/model"
	"vortex-source/source"
)

// homeSections is the fixed section list for the home page.
var homeSections = []model.PageSection{
	{ID: "popular", Title: "Popular Today"},
	{ID: "latest", Title: "Latest Update"},
	{ID: "trending", Title: "Trending"},
}

// sectionSelectors maps section ids to the heading selectors that
// anchor them on the home page. Closed dispatch table, not extensible
// routing.
var sectionSelectors = map[string]string{
	"popular":  "h1:contains('Popular Today')",
	"latest":   "h2:contains('Latest Update')",
	"trending": "h2:contains('Trending')",
}

// GetSectionsForPage serves the single recognized page identifier;
// anything else is a not-found condition.
func (s *Source) GetSectionsForPage(_ context.Context, link model.PageLink) ([]model.PageSection, error) {
	if link.ID != "home" {
		return nil, fmt.Errorf("%w: %v", source.ErrPageNotFound, link.ID)
	}
	return homeSections, nil
}

// ResolvePageSection locates a section's heading on the home page and
// walks the surrounding container for series cards. Cards missing id,
// title or cover are dropped.
func (s *Source) ResolvePageSection(ctx context.Context, _ model.PageLink, sectionID string) (*model.ResolvedPageSection, error) {
	selector, ok := sectionSelectors[sectionID]
	if !ok {
		return nil, fmt.Errorf("%w: %v", source.ErrUnknownSection, sectionID)
	}

	doc, err := s.fetchDocument(ctx, s.baseURL)
	if err != nil {
		return nil, err
	}

	items := make([]model.Highlight, 0)
	doc.Find(selector).First().Parent().Find("a[href*='/series/']").Each(func(i int, sel *goquery.Selection) {
		href := sel.AttrOr("href", "")
		id := strings.TrimPrefix(href, "/series/")
		title := strings.TrimSpace(sel.Find("h5").First().Text())
		cover := sel.Find("img").First().AttrOr("src", "")
		if id != "" && title != "" && cover != "" {
			items = append(items, model.Highlight{ID: id, Title: title, Cover: cover})
		}
	})

	return &model.ResolvedPageSection{Items: items}, nil
}
