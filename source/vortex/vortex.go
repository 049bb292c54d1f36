// Package vortex implements the VortexScans adapter. The site exposes
// rendered HTML only, so every operation is one GET plus selector-based
// extraction into the canonical model.
package vortex

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog/log"

	"vortex-source/model"
	"vortex-source/prefs"
	"vortex-source/utils"
)

type Source struct {
	baseURL string
	prefs   prefs.Store
}

type Option func(*Source)

// WithBaseURL overrides the remote origin, used by tests to point the
// adapter at a fixture server.
func WithBaseURL(url string) Option {
	return func(s *Source) {
		s.baseURL = strings.TrimSuffix(url, "/")
	}
}

// WithPreferenceStore swaps the backing preference store.
func WithPreferenceStore(store prefs.Store) Option {
	return func(s *Source) {
		s.prefs = store
	}
}

func New(opts ...Option) *Source {
	s := &Source{
		baseURL: baseURL,
		prefs:   prefs.NewMemoryStore(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Source) Info() model.RunnerInfo {
	return model.RunnerInfo{
		ID:                 "vortexscans",
		Name:               "VortexScans",
		Version:            0.59,
		Website:            baseURL,
		SupportedLanguages: []string{},
		Thumbnail:          "vortexscans.png",
		MinAppVersion:      "5.0",
	}
}

// fetchDocument performs the single outbound GET of an operation and
// loads the body into a queryable document. Transport failures
// propagate unmodified.
func (s *Source) fetchDocument(ctx context.Context, url string) (*goquery.Document, error) {
	resp, err := utils.Request().SetContext(ctx).Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to get page: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("failed to get page: %v", resp.Status())
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(resp.Body()))
	if err != nil {
		return nil, fmt.Errorf("failed to parse html: %w", err)
	}
	return doc, nil
}

func (s *Source) GetContent(ctx context.Context, contentID string) (*model.Content, error) {
	log.Debug().Str("contentId", contentID).Msg("fetching series detail")

	doc, err := s.fetchDocument(ctx, fmt.Sprintf("%v/series/%v", s.baseURL, contentID))
	if err != nil {
		return nil, err
	}

	genres := make([]string, 0)
	doc.Find("div.genres a").Each(func(i int, sel *goquery.Selection) {
		genres = append(genres, strings.TrimSpace(sel.Text()))
	})

	raw := rawManga{
		Title:       strings.TrimSpace(doc.Find("h1.title").First().Text()),
		Cover:       doc.Find("div.cover img").First().AttrOr("src", ""),
		Description: strings.TrimSpace(doc.Find("div.description").First().Text()),
		Status:      strings.TrimSpace(doc.Find("div.status").First().Text()),
		Type:        strings.TrimSpace(doc.Find("div.type").First().Text()),
		Demographic: strings.TrimSpace(doc.Find("div.demographic").First().Text()),
		Genres:      genres,
	}

	content := mangaToContent(raw, contentID)
	return &content, nil
}

func (s *Source) GetChapters(ctx context.Context, contentID string) ([]model.Chapter, error) {
	log.Debug().Str("contentId", contentID).Msg("fetching chapter list")

	doc, err := s.fetchDocument(ctx, fmt.Sprintf("%v/series/%v", s.baseURL, contentID))
	if err != nil {
		return nil, err
	}

	chapters := make([]model.Chapter, 0)
	doc.Find("div.chapter-list a").Each(func(index int, sel *goquery.Selection) {
		chapterID := chapterIDFromHref(sel.AttrOr("href", ""))
		chapters = append(chapters, chapterToChapter(rawChapter{
			ID:     chapterID,
			Number: parseChapterNumber(chapterID),
			Title:  strings.TrimSpace(sel.Find(".chapter-title").Text()),
			Date:   strings.TrimSpace(sel.Find(".chapter-date").Text()),
		}, index))
	})

	return chapters, nil
}

func (s *Source) GetChapterData(ctx context.Context, contentID, chapterID string) (*model.ChapterData, error) {
	log.Debug().Str("contentId", contentID).Str("chapterId", chapterID).Msg("fetching chapter pages")

	doc, err := s.fetchDocument(ctx, fmt.Sprintf("%v/series/%v/%v", s.baseURL, contentID, chapterID))
	if err != nil {
		return nil, err
	}

	pages := make([]model.Page, 0)
	doc.Find("div.reader-container img").Each(func(i int, sel *goquery.Selection) {
		pages = append(pages, model.Page{URL: sel.AttrOr("src", "")})
	})

	return &model.ChapterData{Pages: pages}, nil
}

// WillRequestImage attaches the referer the site demands for images;
// hot-linked fetches without it get rejected upstream.
func (s *Source) WillRequestImage(url string) model.NetworkRequest {
	return model.NetworkRequest{
		URL:     url,
		Headers: map[string]string{"referer": s.baseURL},
	}
}
