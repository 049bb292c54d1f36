package model

// Highlight is the lightweight series projection used in listings and
// homepage sections.
type Highlight struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Cover       string          `json:"cover"`
	LastChapter *ChapterSummary `json:"lastChapter,omitempty"`
}

// GenreFilter separates genres the caller wants from genres the caller
// rejects. A nil slice means no constraint of that polarity.
type GenreFilter struct {
	Included []string `json:"included,omitempty"`
	Excluded []string `json:"excluded,omitempty"`
}

// Filters holds the per-field directory constraints. A nil/absent field
// means "no constraint", never "empty selection".
type Filters struct {
	ContentType []string     `json:"content_type,omitempty"`
	Demographic []string     `json:"demographic,omitempty"`
	Genres      *GenreFilter `json:"genres,omitempty"`
	Completed   bool         `json:"completed,omitempty"`
}

type SortSelection struct {
	ID        string `json:"id"`
	Ascending bool   `json:"ascending"`
}

// DirectoryRequest describes one page of a filtered listing.
type DirectoryRequest struct {
	Query   string         `json:"query,omitempty"`
	Page    int            `json:"page,omitempty"`
	Sort    *SortSelection `json:"sort,omitempty"`
	Filters *Filters       `json:"filters,omitempty"`
}

// PagedResult is one directory page. IsLastPage is terminal: when true
// the caller must not request further pages even if Results is
// non-empty.
type PagedResult struct {
	Results    []Highlight `json:"results"`
	IsLastPage bool        `json:"isLastPage"`
}

type FilterType string

const (
	FilterMultiselect           FilterType = "MULTISELECT"
	FilterExcludableMultiselect FilterType = "EXCLUDABLE_MULTISELECT"
)

// DirectoryFilter describes one filter control for a caller's UI. The
// core only declares it and never interprets it further.
type DirectoryFilter struct {
	ID      string     `json:"id"`
	Title   string     `json:"title"`
	Type    FilterType `json:"type"`
	Options []Tag      `json:"options"`
}

type SortConfig struct {
	Options        []Tag         `json:"options"`
	CanChangeOrder bool          `json:"canChangeOrder"`
	Default        SortSelection `json:"default"`
}

type DirectoryConfig struct {
	Filters []DirectoryFilter `json:"filters"`
	Sort    SortConfig        `json:"sort"`
}
