package i18n

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"regexp"
	"slices"
	"strings"

	"github.com/dmitrymomot/guards/pkg/guard"
	"github.com/dmitrymomot/guards/pkg/logger"
)

// Translator renders messages from loaded catalogues. It is safe for
// concurrent use; catalogues are immutable after NewTranslator returns.
type Translator struct {
	translations   map[string]map[string]any
	languages      []string
	defaultLang    string
	fallbackToKey  bool
	missingLogMode bool
	logger         *slog.Logger
}

// NewTranslator loads the adapter's catalogues. Language codes are
// normalized with NormalizeLanguage; two codes that normalize to the same
// language are an error matching ErrInvalidCatalogue.
func NewTranslator(ctx context.Context, adapter TranslationAdapter, opts ...Option) (*Translator, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	t := &Translator{
		defaultLang:   DefaultLanguage,
		fallbackToKey: true,
		logger:        logger.Discard(),
	}
	for _, opt := range opts {
		opt(t)
	}

	loaded, err := adapter.Load(ctx)
	if err != nil {
		return nil, err
	}

	t.translations, err = normalizeCatalogue(loaded)
	if err != nil {
		return nil, err
	}
	t.languages = slices.Sorted(maps.Keys(t.translations))

	t.logger.DebugContext(ctx, "translations loaded",
		logger.Component("i18n"),
		slog.Any("languages", t.languages),
	)
	return t, nil
}

// SupportedLanguages returns the loaded language codes in sorted order.
func (t *Translator) SupportedLanguages() []string {
	return slices.Clone(t.languages)
}

// Language resolves lang to a loaded language. Unsupported languages resolve
// to the default language with ok set to false.
func (t *Translator) Language(lang string) (resolved string, ok bool) {
	if m, found := MatchLanguage(lang, t.languages); found {
		return m, true
	}
	return t.defaultLang, false
}

// HasTranslation reports whether lang has a template for key.
func (t *Translator) HasTranslation(lang, key string) bool {
	_, ok := t.lookup(lang, key)
	return ok
}

// T translates key for lang, substituting %{name} placeholders from args
// given as name, value pairs. Unsupported languages use the default
// language. A missing key yields the key itself, or "" when key fallback
// is disabled.
//
//	// "welcome": "Hello, %{name}!"
//	msg := tr.T("en", "welcome", "name", "John") // Hello, John!
func (t *Translator) T(lang, key string, args ...string) string {
	tmpl, ok := t.lookup(lang, key)
	if !ok {
		if t.missingLogMode {
			t.logger.Warn("translation not found",
				logger.Component("i18n"),
				slog.String("lang", lang),
				slog.String("key", key),
			)
		}
		if !t.fallbackToKey {
			return ""
		}
		tmpl = key
	}
	return namedSprintf(tmpl, buildParams(args))
}

// Localize returns err with its message translated into lang when err is a
// *guard.ValidationError whose TranslationKey has a template. The result
// still matches the original error with errors.Is and errors.As. Any other
// error is returned unchanged.
func (t *Translator) Localize(lang string, err error) error {
	verr, ok := err.(*guard.ValidationError)
	if !ok || verr.TranslationKey == "" {
		return err
	}

	tmpl, ok := t.lookup(lang, verr.TranslationKey)
	if !ok {
		if t.missingLogMode {
			t.logger.Warn("translation not found",
				logger.Component("i18n"),
				slog.String("lang", lang),
				slog.String("key", verr.TranslationKey),
			)
		}
		return err
	}

	params := make(map[string]string, len(verr.TranslationValues))
	for k, v := range verr.TranslationValues {
		params[k] = fmt.Sprint(v)
	}
	return &LocalizedError{Message: namedSprintf(tmpl, params), Err: err}
}

func (t *Translator) lookup(lang, key string) (string, bool) {
	resolved, _ := t.Language(lang)
	m, ok := t.translations[resolved]
	if !ok {
		return "", false
	}

	val, ok := getTranslation(m, key)
	if !ok {
		return "", false
	}
	switch v := val.(type) {
	case string:
		return v, true
	case fmt.Stringer:
		return v.String(), true
	default:
		return "", false
	}
}

// LocalizedError carries a translated message for Err.
type LocalizedError struct {
	Message string
	Err     error
}

func (e *LocalizedError) Error() string { return e.Message }

func (e *LocalizedError) Unwrap() error { return e.Err }

// getTranslation walks m along a dot-separated key: "validation.not_zero"
// reads m["validation"]["not_zero"].
func getTranslation(m map[string]any, key string) (any, bool) {
	current := m
	parts := strings.Split(key, ".")
	for i, part := range parts {
		val, ok := current[part]
		if !ok {
			return nil, false
		}
		if i == len(parts)-1 {
			return val, true
		}
		next, ok := val.(map[string]any)
		if !ok {
			return nil, false
		}
		current = next
	}
	return nil, false
}

// buildParams turns name, value pairs into a map. A trailing odd argument
// is ignored.
func buildParams(args []string) map[string]string {
	params := make(map[string]string, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		params[args[i]] = args[i+1]
	}
	return params
}

var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// namedSprintf replaces %{name} placeholders. Unknown names are left as is.
func namedSprintf(tmpl string, params map[string]string) string {
	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		if val, ok := params[match[2:len(match)-1]]; ok {
			return val
		}
		return match
	})
}
