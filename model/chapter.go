package model

import (
	"encoding/json"
	"math"
	"time"
)

// Chapter is one entry in a series' chapter listing. Index is the
// position the chapter was encountered at in the source listing; the
// listing order is authoritative and never re-sorted by Number.
//
// Number may be NaN when the source id carries no numeric suffix.
// Date is the zero time when the source date did not parse.
type Chapter struct {
	ChapterID string    `json:"chapterId"`
	Index     int       `json:"index"`
	Number    float64   `json:"number"`
	Title     string    `json:"title"`
	Date      time.Time `json:"date"`
	Language  string    `json:"language"`
}

// MarshalJSON emits the NaN number sentinel as null; encoding/json has
// no representation for NaN and would otherwise fail the whole
// response.
func (c Chapter) MarshalJSON() ([]byte, error) {
	type alias Chapter
	aux := struct {
		alias
		Number any `json:"number"`
	}{alias: alias(c), Number: c.Number}
	if math.IsNaN(c.Number) {
		aux.Number = nil
	}
	return json.Marshal(aux)
}

type Page struct {
	URL string `json:"url"`
}

// ChapterData is the ordered page list of a single chapter; slice order
// is reading order.
type ChapterData struct {
	Pages []Page `json:"pages"`
}
