package model

import (
	"strings"
	"time"
)

// Status is the publication status of a series. The remote site only
// distinguishes finished series, so anything that is not completed is
// treated as ongoing.
type Status string

const (
	StatusOngoing   Status = "ONGOING"
	StatusCompleted Status = "COMPLETED"
	StatusUnknown   Status = "UNKNOWN"
)

// ParseStatus maps a raw status string to a Status. The value is
// completed only on a case-insensitive match of the literal "completed"
// after trimming; every other value, including empty, is ongoing.
func ParseStatus(raw string) Status {
	if strings.EqualFold(strings.TrimSpace(raw), "completed") {
		return StatusCompleted
	}
	return StatusOngoing
}

type ReadingMode string

const (
	ReadingPagedComic ReadingMode = "PAGED_COMIC"
	ReadingWebtoon    ReadingMode = "WEBTOON"
)

type Tag struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// Property is a named group of tags attached to a series, e.g. the
// genre list. IDs are unique within a Content's property set.
type Property struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Tags  []Tag  `json:"tags"`
}

// Statistics carries optional numeric counters. Fields absent from the
// source stay nil.
type Statistics struct {
	Rating  *float64 `json:"rating,omitempty"`
	Views   *float64 `json:"views,omitempty"`
	Follows *float64 `json:"follows,omitempty"`
}

// ChapterSummary is the condensed chapter reference embedded in series
// records and listing cards.
type ChapterSummary struct {
	ChapterID string    `json:"chapterId"`
	Number    float64   `json:"number"`
	Title     string    `json:"title"`
	Date      time.Time `json:"date"`
}

// Content is the canonical series record. Optional fields use nil for
// absence; a missing source field never produces a zero-value stand-in.
type Content struct {
	ContentID   string          `json:"contentId"`
	Title       string          `json:"title"`
	Cover       string          `json:"cover"`
	Summary     string          `json:"summary"`
	Status      Status          `json:"status"`
	ReadingMode ReadingMode     `json:"readingMode"`
	Properties  []Property      `json:"properties"`
	Statistics  *Statistics     `json:"statistics,omitempty"`
	LastChapter *ChapterSummary `json:"lastChapter,omitempty"`
	DateAdded   *time.Time      `json:"dateAdded,omitempty"`
	DateUpdated *time.Time      `json:"dateUpdated,omitempty"`
}
