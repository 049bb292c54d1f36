package vortex

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vortex-source/model"
)

func TestGetPreferenceMenuDefault(t *testing.T) {
	src := New()

	form, err := src.GetPreferenceMenu(context.Background())
	require.NoError(t, err)

	require.Len(t, form.Sections, 1)
	require.Len(t, form.Sections[0].Children, 1)

	picker := form.Sections[0].Children[0]
	assert.Equal(t, "chapter_lang", picker.ID)
	assert.Equal(t, model.FieldPicker, picker.Kind)
	assert.Equal(t, "en", picker.Value)
	assert.Equal(t, languageOptions, picker.Options)
}

func TestGetPreferenceMenuReadsStore(t *testing.T) {
	ctx := context.Background()
	src := New()

	require.NoError(t, src.SetPreference(ctx, "chapter_lang", "ja"))

	form, err := src.GetPreferenceMenu(ctx)
	require.NoError(t, err)
	assert.Equal(t, "ja", form.Sections[0].Children[0].Value)
}
