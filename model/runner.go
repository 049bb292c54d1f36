package model

// RunnerInfo is the static descriptor a host runtime reads for
// capability discovery. The core does not validate or enforce it.
type RunnerInfo struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	Version            float64  `json:"version"`
	Website            string   `json:"website"`
	SupportedLanguages []string `json:"supportedLanguages"`
	Thumbnail          string   `json:"thumbnail"`
	MinAppVersion      string   `json:"minSupportedAppVersion"`
}

// NetworkRequest is an augmented request descriptor returned by image
// request handlers.
type NetworkRequest struct {
	URL     string            `json:"url"`
	Headers map[string]string `json:"headers,omitempty"`
}

type FieldKind string

const (
	FieldPicker FieldKind = "PICKER"
)

// FormField is a single preference control. Only pickers exist today;
// the kind is kept explicit so the host can dispatch on it.
type FormField struct {
	ID      string    `json:"id"`
	Title   string    `json:"title"`
	Kind    FieldKind `json:"kind"`
	Options []Tag     `json:"options,omitempty"`
	Value   string    `json:"value,omitempty"`
}

type FormSection struct {
	Header   string      `json:"header,omitempty"`
	Footer   string      `json:"footer,omitempty"`
	Children []FormField `json:"children"`
}

// Form is the declarative preference menu a source exposes to the host.
type Form struct {
	Sections []FormSection `json:"sections"`
}
