package locale

import (
	"embed"
	"encoding/json"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/MikeBiancalana/datefield/internal/datefield"
	"github.com/MikeBiancalana/datefield/internal/logger"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localeFS embed.FS

// Default is the field's native locale; the display format follows German
// convention regardless of the chosen language.
var Default = language.German

var (
	bundleOnce sync.Once
	bundle     *i18n.Bundle
	matcher    language.Matcher
)

func loadBundle() {
	bundle = i18n.NewBundle(Default)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		logger.Error("reading embedded locales", "error", err)
		matcher = language.NewMatcher([]language.Tag{Default})
		return
	}

	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, "active.") || !strings.HasSuffix(name, ".json") {
			continue
		}
		if _, err := bundle.LoadMessageFileFS(localeFS, "locales/"+name); err != nil {
			logger.Error("loading locale", "file", name, "error", err)
			continue
		}
		logger.Debug("loaded locale", "file", name)
	}

	matcher = language.NewMatcher(bundle.LanguageTags())
}

// Locale translates the labels around the date field.
type Locale struct {
	tag       language.Tag
	localizer *i18n.Localizer
}

// New returns the locale best matching lang. Empty or unknown tags fall
// back to German.
func New(lang string) *Locale {
	bundleOnce.Do(loadBundle)

	tag := Default
	if lang != "" {
		if parsed, err := language.Parse(lang); err == nil {
			_, idx, conf := matcher.Match(parsed)
			if conf != language.No {
				tag = bundle.LanguageTags()[idx]
			}
		} else {
			logger.Debug("unparseable language tag", "lang", lang, "error", err)
		}
	}

	return &Locale{
		tag:       tag,
		localizer: i18n.NewLocalizer(bundle, tag.String()),
	}
}

func (l *Locale) Tag() language.Tag {
	return l.tag
}

// Msg translates id, returning id itself when no translation exists.
func (l *Locale) Msg(id string) string {
	return l.localize(id, nil)
}

// MsgWith translates id, filling its template placeholders from data.
func (l *Locale) MsgWith(id string, data map[string]any) string {
	return l.localize(id, data)
}

func (l *Locale) localize(id string, data map[string]any) string {
	msg, err := l.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: data,
	})
	if err != nil {
		logger.Debug("missing translation", "id", id, "lang", l.tag.String(), "error", err)
		return id
	}
	return msg
}

func (l *Locale) MonthName(m time.Month) string {
	return l.Msg("month." + strconv.Itoa(int(m)))
}

func (l *Locale) WeekdayName(w time.Weekday) string {
	return l.Msg("weekday." + strconv.Itoa(int(w)))
}

// WeekdayShort returns the two-letter weekday used in calendar headers.
func (l *Locale) WeekdayShort(w time.Weekday) string {
	return l.Msg("weekday.short." + strconv.Itoa(int(w)))
}

// FirstWeekday is Monday everywhere except English, which starts on Sunday.
func (l *Locale) FirstWeekday() time.Weekday {
	if base, _ := l.tag.Base(); base.String() == "en" {
		return time.Sunday
	}
	return time.Monday
}

// LongDate spells d out, e.g. "Dienstag, 24. Dezember 2024".
func (l *Locale) LongDate(d datefield.Date) string {
	return l.localize("date.long", map[string]any{
		"Weekday": l.WeekdayName(d.Time().Weekday()),
		"Day":     d.Day,
		"Month":   l.MonthName(d.Month),
		"Year":    d.Year,
	})
}
