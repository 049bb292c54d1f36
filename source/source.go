// Package source defines the capability contracts a content-source
// adapter may implement. The contracts are deliberately independent so
// an adapter can implement any subset; the host discovers what a runner
// supports by interface assertion.
package source

import (
	"context"
	"errors"

	"vortex-source/model"
)

// ErrPageNotFound is returned when a page link identifier is not one
// the source recognizes.
var ErrPageNotFound = errors.New("page not found")

// ErrUnknownSection is returned when a section identifier is outside a
// resolver's fixed dispatch table.
var ErrUnknownSection = errors.New("unknown section")

// ContentSource is the core read contract: detail, chapters, pages and
// the filterable directory. Every operation performs at most one
// outbound fetch; cancellation and deadlines come from the caller's
// context.
type ContentSource interface {
	Info() model.RunnerInfo
	GetContent(ctx context.Context, contentID string) (*model.Content, error)
	GetChapters(ctx context.Context, contentID string) ([]model.Chapter, error)
	GetChapterData(ctx context.Context, contentID, chapterID string) (*model.ChapterData, error)
	GetDirectory(ctx context.Context, request model.DirectoryRequest) (*model.PagedResult, error)
	GetDirectoryConfig(ctx context.Context) (*model.DirectoryConfig, error)
	GetSearchFilters(ctx context.Context) ([]model.DirectoryFilter, error)
	GetTags(ctx context.Context) ([]model.Property, error)
}

// PageLinkResolver serves named landing pages made of highlight
// sections.
type PageLinkResolver interface {
	GetSectionsForPage(ctx context.Context, link model.PageLink) ([]model.PageSection, error)
	ResolvePageSection(ctx context.Context, link model.PageLink, sectionID string) (*model.ResolvedPageSection, error)
}

// ImageRequestHandler lets a source augment image fetches, typically
// with a referer the remote site requires. The transform is pure.
type ImageRequestHandler interface {
	WillRequestImage(url string) model.NetworkRequest
}

// PreferenceProvider exposes a declarative settings menu backed by a
// key-value store.
type PreferenceProvider interface {
	GetPreferenceMenu(ctx context.Context) (*model.Form, error)
	SetPreference(ctx context.Context, key, value string) error
}
