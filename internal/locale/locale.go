package locale

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"strconv"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/tartampluch/go-chrono/internal/chrono"
	"github.com/tartampluch/go-chrono/internal/config"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localeFS embed.FS

// unitKeys maps a span unit to its plural-aware translation key.
var unitKeys = map[string]string{
	config.UnitYear:        config.TKeySpanYear,
	config.UnitWeek:        config.TKeySpanWeek,
	config.UnitDay:         config.TKeySpanDay,
	config.UnitHour:        config.TKeySpanHour,
	config.UnitMinute:      config.TKeySpanMinute,
	config.UnitSecond:      config.TKeySpanSecond,
	config.UnitMillisecond: config.TKeySpanMillisecond,
	config.UnitMicrosecond: config.TKeySpanMicrosecond,
	config.UnitNanosecond:  config.TKeySpanNanosecond,
}

// Catalog holds every translation shipped with the binary.
type Catalog struct {
	bundle    *i18n.Bundle
	languages []string
}

// Load builds a Catalog from the embedded locale files.
func Load() (*Catalog, error) {
	return LoadFS(localeFS)
}

// LoadFS builds a Catalog from the active.<lang>.json files found in the
// locales directory of fsys. Files that fail to load are logged and skipped.
func LoadFS(fsys fs.FS) (*Catalog, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc(config.LocaleFormat, json.Unmarshal)

	entries, err := fs.ReadDir(fsys, config.LocaleDir)
	if err != nil {
		slog.Error(config.ErrLocalesAccess,
			config.LogKeyComponent, config.CompLocale,
			config.LogKeyError, err,
		)
		return nil, fmt.Errorf("%s: %w", config.ErrLocalesAccess, err)
	}

	var detectedLangs []string

	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, config.LocalePrefix) || !strings.HasSuffix(name, config.LocaleExt) {
			slog.Debug(config.MsgLocaleSkip,
				config.LogKeyComponent, config.CompLocale,
				config.LogKeyFile, name,
			)
			continue
		}

		langCode := strings.TrimSuffix(strings.TrimPrefix(name, config.LocalePrefix), config.LocaleExt)
		if langCode == "" {
			slog.Warn(config.MsgLocaleBadName,
				config.LogKeyComponent, config.CompLocale,
				config.LogKeyFile, name,
			)
			continue
		}

		if _, err := bundle.LoadMessageFileFS(fsys, path.Join(config.LocaleDir, name)); err != nil {
			slog.Error(config.ErrLocaleLoad,
				config.LogKeyComponent, config.CompLocale,
				config.LogKeyFile, name,
				config.LogKeyError, err,
			)
			continue
		}

		slog.Debug(config.MsgLocaleLoaded,
			config.LogKeyComponent, config.CompLocale,
			config.LogKeyLang, langCode,
			config.LogKeyFile, name,
		)
		detectedLangs = append(detectedLangs, langCode)
	}

	return &Catalog{bundle: bundle, languages: detectedLangs}, nil
}

// Languages lists the language codes that loaded successfully.
func (c *Catalog) Languages() []string {
	return c.languages
}

// Localizer returns a translator for the first supported language in langs,
// falling back to English.
func (c *Catalog) Localizer(langs ...string) *Localizer {
	if len(langs) == 0 {
		langs = []string{config.DefaultLanguage}
	}
	return &Localizer{loc: i18n.NewLocalizer(c.bundle, langs...)}
}

// Localizer renders spans in one language.
// A nil Localizer renders the compact form of chrono.Span.HumanReadable.
type Localizer struct {
	loc *i18n.Localizer
}

// Span renders s with localized, pluralized unit names, e.g. "1 hour 30 minutes".
// The empty span renders as zero seconds.
func (l *Localizer) Span(s chrono.Span) string {
	if l == nil || l.loc == nil {
		return s.HumanReadable()
	}

	parts := s.Components()
	if len(parts) == 0 {
		parts = []chrono.Component{{Unit: config.UnitSecond}}
	}

	out := make([]string, len(parts))
	for i, p := range parts {
		out[i] = l.component(p)
	}
	return strings.Join(out, config.SpanSeparator)
}

func (l *Localizer) component(p chrono.Component) string {
	key := unitKeys[p.Unit]
	n := int64(p.Value)

	msg, err := l.loc.Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		PluralCount:  n,
		TemplateData: map[string]any{config.TemplateKeyCount: n},
	})
	if err != nil {
		slog.Debug(config.MsgTransMissing,
			config.LogKeyComponent, config.CompLocale,
			config.LogKeyKey, key,
			config.LogKeyError, err,
		)
	}
	// Localize returns the default language's text alongside a not-found error.
	if msg == "" {
		return strconv.FormatUint(p.Value, 10) + p.Unit
	}
	return msg
}
