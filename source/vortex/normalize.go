package vortex

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"vortex-source/model"
)

// Raw wire shapes. Every tolerance for missing or oddly-typed fields
// lives in the conversion functions below; nothing outside this file
// touches the remote representation directly.

type rawLastChapter struct {
	ID     string  `json:"id"`
	Number float64 `json:"number"`
	Title  string  `json:"title"`
	Date   string  `json:"date"`
}

type rawManga struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Cover       string          `json:"cover"`
	Status      string          `json:"status"`
	Type        string          `json:"type"`
	Demographic string          `json:"demographic"`
	Genres      []string        `json:"genres"`
	Rating      *float64        `json:"rating"`
	Views       *float64        `json:"views"`
	Follows     *float64        `json:"follows"`
	LastChapter *rawLastChapter `json:"last_chapter"`
	CreatedAt   string          `json:"created_at"`
	UpdatedAt   string          `json:"updated_at"`
}

type rawChapter struct {
	ID       string  `json:"id"`
	Number   float64 `json:"number"`
	Title    string  `json:"title"`
	Date     string  `json:"date"`
	Language string  `json:"language"`
}

var chapterIDPattern = regexp.MustCompile(`chapter-(\d+(?:\.\d+)?)`)

// chapterIDFromHref pulls the "chapter-N" token out of a chapter link.
// Returns "" when the link carries no such token.
func chapterIDFromHref(href string) string {
	return chapterIDPattern.FindString(href)
}

// parseChapterNumber reads the numeric suffix of a chapter id. A
// missing or non-numeric suffix yields NaN: valid but unorderable,
// never an error.
func parseChapterNumber(chapterID string) float64 {
	suffix := strings.TrimPrefix(chapterID, "chapter-")
	if suffix == chapterID {
		return math.NaN()
	}
	number, err := strconv.ParseFloat(suffix, 64)
	if err != nil {
		return math.NaN()
	}
	return number
}

var dateLayouts = []string{
	time.RFC3339,
	"January 2, 2006",
}

// parseDate converts a raw date string to a timestamp. An unparseable
// value yields the zero time so the surrounding entity still
// normalizes; callers detect the condition with IsZero.
func parseDate(raw string) time.Time {
	raw = strings.TrimSpace(raw)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}
	return time.Time{}
}

func tagsFromStrings(values []string) []model.Tag {
	tags := make([]model.Tag, 0, len(values))
	for _, v := range values {
		tags = append(tags, model.Tag{ID: v, Title: v})
	}
	return tags
}

// buildProperties assembles the fixed three-group property set shared
// by the detail page and the wire normalizer. Group IDs are unique by
// construction; tag order follows source order and duplicates are kept.
func buildProperties(contentType, demographic string, genres []string) []model.Property {
	return []model.Property{
		{ID: "type", Title: "Type", Tags: []model.Tag{{ID: contentType, Title: contentType}}},
		{ID: "demographic", Title: "Demographic", Tags: []model.Tag{{ID: demographic, Title: demographic}}},
		{ID: "genres", Title: "Genres", Tags: tagsFromStrings(genres)},
	}
}

func lastChapterSummary(raw *rawLastChapter) *model.ChapterSummary {
	if raw == nil {
		return nil
	}
	return &model.ChapterSummary{
		ChapterID: raw.ID,
		Number:    raw.Number,
		Title:     raw.Title,
		Date:      parseDate(raw.Date),
	}
}

// mangaToContent normalizes a raw series object into the canonical
// record. Absent optional fields stay nil; required fields may come out
// empty when the source omits them, validation is the caller's problem.
func mangaToContent(raw rawManga, contentID string) model.Content {
	content := model.Content{
		ContentID:   contentID,
		Title:       raw.Title,
		Cover:       raw.Cover,
		Summary:     raw.Description,
		Status:      model.ParseStatus(raw.Status),
		ReadingMode: model.ReadingPagedComic,
		Properties:  buildProperties(raw.Type, raw.Demographic, raw.Genres),
		LastChapter: lastChapterSummary(raw.LastChapter),
	}
	if raw.Rating != nil || raw.Views != nil || raw.Follows != nil {
		content.Statistics = &model.Statistics{
			Rating:  raw.Rating,
			Views:   raw.Views,
			Follows: raw.Follows,
		}
	}
	if added := parseDate(raw.CreatedAt); !added.IsZero() {
		content.DateAdded = &added
	}
	if updated := parseDate(raw.UpdatedAt); !updated.IsZero() {
		content.DateUpdated = &updated
	}
	return content
}

// mangaToHighlight projects a raw series object onto the listing card
// shape. LastChapter is included only when the source carried one.
func mangaToHighlight(raw rawManga) model.Highlight {
	return model.Highlight{
		ID:          raw.ID,
		Title:       raw.Title,
		Cover:       raw.Cover,
		LastChapter: lastChapterSummary(raw.LastChapter),
	}
}

// chapterToChapter normalizes a raw chapter object. Index is positional
// and assigned by the caller walking the listing.
func chapterToChapter(raw rawChapter, index int) model.Chapter {
	language := raw.Language
	if language == "" {
		language = defaultLanguage
	}
	return model.Chapter{
		ChapterID: raw.ID,
		Index:     index,
		Number:    raw.Number,
		Title:     raw.Title,
		Date:      parseDate(raw.Date),
		Language:  language,
	}
}
