package locale_test

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-chrono/internal/chrono"
	"github.com/tartampluch/go-chrono/internal/locale"
)

func loadCatalog(t *testing.T) *locale.Catalog {
	t.Helper()
	cat, err := locale.Load()
	require.NoError(t, err)
	return cat
}

func TestLoad_DetectsEmbeddedLanguages(t *testing.T) {
	cat := loadCatalog(t)
	assert.ElementsMatch(t, []string{"en", "fr"}, cat.Languages())
}

func TestLocalizer_Span(t *testing.T) {
	cat := loadCatalog(t)

	tests := []struct {
		name     string
		lang     string
		span     chrono.Span
		expected string
	}{
		{"english plural", "en", chrono.FromSeconds(5400), "1 hour 30 minutes"},
		{"english singular", "en", chrono.FromSeconds(3661), "1 hour 1 minute 1 second"},
		{"english sub-second", "en", chrono.FromMillis(1500), "1 second 500 milliseconds"},
		{"english zero", "en", chrono.Span{}, "0 seconds"},
		{"french plural", "fr", chrono.FromSeconds(5400), "1 heure 30 minutes"},
		{"french weeks", "fr", chrono.FromSeconds(15 * 86400), "2 semaines 1 jour"},
		{"french zero is singular", "fr", chrono.Span{}, "0 seconde"},
		{"unknown language falls back", "xx", chrono.FromSeconds(7200), "2 hours"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, cat.Localizer(tt.lang).Span(tt.span))
		})
	}
}

func TestLocalizer_DefaultsToEnglish(t *testing.T) {
	cat := loadCatalog(t)
	assert.Equal(t, "1 year", cat.Localizer().Span(chrono.FromSeconds(365*86400)))
}

func TestLocalizer_NilRendersCompactForm(t *testing.T) {
	var l *locale.Localizer
	assert.Equal(t, "1h 30m", l.Span(chrono.FromSeconds(5400)))
}

func TestLoadFS_SkipsBadFiles(t *testing.T) {
	fsys := fstest.MapFS{
		"locales/active.en.json": {Data: []byte(`{"span_hour":{"one":"{{.Count}} hour","other":"{{.Count}} hours"}}`)},
		"locales/active..json":   {Data: []byte(`{}`)},
		"locales/README.md":      {Data: []byte("notes")},
		"locales/active.de.json": {Data: []byte(`{not json`)},
	}

	cat, err := locale.LoadFS(fsys)
	require.NoError(t, err)
	assert.Equal(t, []string{"en"}, cat.Languages())

	// span_minute is absent: the component falls back to its compact form.
	assert.Equal(t, "1 hour 30m", cat.Localizer("en").Span(chrono.FromSeconds(5400)))
}

func TestLoadFS_MissingDirectory(t *testing.T) {
	_, err := locale.LoadFS(fstest.MapFS{})
	assert.Error(t, err)
}
