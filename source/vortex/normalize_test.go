package vortex

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vortex-source/model"
)

func TestParseChapterNumber(t *testing.T) {
	tests := []struct {
		name      string
		chapterID string
		want      float64
	}{
		{"integer", "chapter-12", 12},
		{"sub_chapter", "chapter-12.5", 12.5},
		{"leading_zero", "chapter-07", 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseChapterNumber(tt.chapterID))
		})
	}

	t.Run("no_numeric_suffix", func(t *testing.T) {
		assert.True(t, math.IsNaN(parseChapterNumber("extra")))
		assert.True(t, math.IsNaN(parseChapterNumber("")))
		assert.True(t, math.IsNaN(parseChapterNumber("chapter-extra")))
	})
}

func TestChapterIDFromHref(t *testing.T) {
	assert.Equal(t, "chapter-12.5", chapterIDFromHref("/series/blade/chapter-12.5"))
	assert.Equal(t, "chapter-3", chapterIDFromHref("https://vortexscans.org/series/blade/chapter-3"))
	assert.Equal(t, "", chapterIDFromHref("/series/blade/extras"))
}

func TestParseDate(t *testing.T) {
	parsed := parseDate("January 2, 2024")
	assert.Equal(t, 2024, parsed.Year())
	assert.Equal(t, time.January, parsed.Month())

	rfc := parseDate("2024-03-01T10:00:00Z")
	assert.Equal(t, time.March, rfc.Month())

	// Unparseable values yield the zero time, never a failure.
	assert.True(t, parseDate("three days ago").IsZero())
	assert.True(t, parseDate("").IsZero())
}

func TestMangaToContent(t *testing.T) {
	rating := 4.5
	raw := rawManga{
		Title:       "Blade of Dawn",
		Description: "A wandering swordsman.",
		Cover:       "https://cdn.example/blade.jpg",
		Status:      "completed",
		Type:        "manhwa",
		Demographic: "shounen",
		Genres:      []string{"Action", "Fantasy", "Action"},
		Rating:      &rating,
		LastChapter: &rawLastChapter{
			ID:     "chapter-110",
			Number: 110,
			Title:  "Finale",
			Date:   "2024-03-01T10:00:00Z",
		},
		CreatedAt: "2020-01-05T00:00:00Z",
		UpdatedAt: "2024-03-01T10:00:00Z",
	}

	content := mangaToContent(raw, "blade-of-dawn")

	assert.Equal(t, "blade-of-dawn", content.ContentID)
	assert.Equal(t, model.StatusCompleted, content.Status)
	assert.Equal(t, model.ReadingPagedComic, content.ReadingMode)

	require.Len(t, content.Properties, 3)
	assert.Equal(t, "type", content.Properties[0].ID)
	assert.Equal(t, "demographic", content.Properties[1].ID)
	assert.Equal(t, "genres", content.Properties[2].ID)
	// Source order preserved, duplicates kept.
	require.Len(t, content.Properties[2].Tags, 3)
	assert.Equal(t, "Action", content.Properties[2].Tags[0].ID)
	assert.Equal(t, "Action", content.Properties[2].Tags[2].ID)

	require.NotNil(t, content.Statistics)
	require.NotNil(t, content.Statistics.Rating)
	assert.Equal(t, 4.5, *content.Statistics.Rating)
	assert.Nil(t, content.Statistics.Views)

	require.NotNil(t, content.LastChapter)
	assert.Equal(t, "chapter-110", content.LastChapter.ChapterID)

	require.NotNil(t, content.DateAdded)
	assert.Equal(t, 2020, content.DateAdded.Year())
}

func TestMangaToContentMissingOptionalFields(t *testing.T) {
	content := mangaToContent(rawManga{Title: "Bare"}, "bare")

	assert.Nil(t, content.LastChapter)
	assert.Nil(t, content.Statistics)
	assert.Nil(t, content.DateAdded)
	assert.Nil(t, content.DateUpdated)
	assert.Equal(t, model.StatusOngoing, content.Status)
	// Three property groups exist even when their values are empty.
	assert.Len(t, content.Properties, 3)
}

func TestMangaToHighlight(t *testing.T) {
	withLast := mangaToHighlight(rawManga{
		ID:          "blade-of-dawn",
		Title:       "Blade of Dawn",
		Cover:       "https://cdn.example/blade.jpg",
		LastChapter: &rawLastChapter{ID: "chapter-110", Number: 110},
	})
	require.NotNil(t, withLast.LastChapter)
	assert.Equal(t, float64(110), withLast.LastChapter.Number)

	withoutLast := mangaToHighlight(rawManga{ID: "bare", Title: "Bare", Cover: "c.jpg"})
	assert.Nil(t, withoutLast.LastChapter)
}

func TestChapterToChapter(t *testing.T) {
	chapter := chapterToChapter(rawChapter{
		ID:     "chapter-12.5",
		Number: 12.5,
		Title:  "Interlude",
		Date:   "January 2, 2024",
	}, 4)

	assert.Equal(t, "chapter-12.5", chapter.ChapterID)
	assert.Equal(t, 4, chapter.Index)
	assert.Equal(t, 12.5, chapter.Number)
	assert.Equal(t, "en", chapter.Language)
	assert.Equal(t, 2024, chapter.Date.Year())

	korean := chapterToChapter(rawChapter{ID: "chapter-1", Language: "ko"}, 0)
	assert.Equal(t, "ko", korean.Language)
}
