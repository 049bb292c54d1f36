package model

// PageLink identifies a landing page the host may ask sections for.
type PageLink struct {
	ID string `json:"id"`
}

type SectionStyle string

const (
	SectionDefault SectionStyle = "DEFAULT"
	SectionInfo    SectionStyle = "INFO"
	SectionGallery SectionStyle = "GALLERY"
)

// PageSection is a named, orderable group of highlights on a landing
// page.
type PageSection struct {
	ID       string       `json:"id"`
	Title    string       `json:"title"`
	Subtitle string       `json:"subtitle,omitempty"`
	Style    SectionStyle `json:"style,omitempty"`
}

type ResolvedPageSection struct {
	Items []Highlight `json:"items"`
}
