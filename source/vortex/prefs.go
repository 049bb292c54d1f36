package vortex

import (
	"context"

	"vortex-source/model"
)

const prefChapterLanguage = "chapter_lang"

// GetPreferenceMenu builds the declarative settings form. The current
// picker value comes from the preference store, defaulting to English
// when never set.
func (s *Source) GetPreferenceMenu(ctx context.Context) (*model.Form, error) {
	language, ok, err := s.prefs.Get(ctx, prefChapterLanguage)
	if err != nil {
		return nil, err
	}
	if !ok {
		language = defaultLanguage
	}

	return &model.Form{
		Sections: []model.FormSection{
			{
				Header: "Languages",
				Footer: "Language in which chapters will be available",
				Children: []model.FormField{
					{
						ID:      prefChapterLanguage,
						Title:   "Content Languages",
						Kind:    model.FieldPicker,
						Options: languageOptions,
						Value:   language,
					},
				},
			},
		},
	}, nil
}

func (s *Source) SetPreference(ctx context.Context, key, value string) error {
	return s.prefs.Set(ctx, key, value)
}
