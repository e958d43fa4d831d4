package i18n

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ParseYAML decodes a catalogue whose top-level keys are language codes.
func ParseYAML(content []byte) (map[string]map[string]any, error) {
	var data map[string]any
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, errors.Join(ErrFailedToParseYAML, err)
	}

	result := make(map[string]map[string]any, len(data))
	for lang, val := range data {
		m, ok := val.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: language %q: expected map, got %T", ErrInvalidCatalogue, lang, val)
		}
		result[lang] = m
	}

	if len(result) == 0 {
		return nil, fmt.Errorf("%w: no languages found", ErrInvalidCatalogue)
	}
	return normalizeCatalogue(result)
}

// normalizeCatalogue rekeys src by NormalizeLanguage. Codes that normalize to
// the same language ("en" and "EN") are rejected.
func normalizeCatalogue(src map[string]map[string]any) (map[string]map[string]any, error) {
	out := make(map[string]map[string]any, len(src))
	for lang, m := range src {
		norm := NormalizeLanguage(lang)
		if norm == "" {
			return nil, fmt.Errorf("%w: empty language code", ErrInvalidCatalogue)
		}
		if m == nil {
			return nil, fmt.Errorf("%w: nil translations for language %q", ErrInvalidCatalogue, lang)
		}
		if _, dup := out[norm]; dup {
			return nil, fmt.Errorf("%w: language %q is defined more than once", ErrInvalidCatalogue, norm)
		}
		out[norm] = m
	}
	return out, nil
}

// merge copies src into dst. Nested maps are merged key by key and src wins
// on conflicts.
func merge(dst, src map[string]any) {
	for k, v := range src {
		sm, srcIsMap := v.(map[string]any)
		dm, dstIsMap := dst[k].(map[string]any)
		if srcIsMap && dstIsMap {
			merge(dm, sm)
			continue
		}
		if srcIsMap {
			cp := make(map[string]any, len(sm))
			merge(cp, sm)
			dst[k] = cp
			continue
		}
		dst[k] = v
	}
}

func mergeCatalogues(dst, src map[string]map[string]any) {
	for lang, m := range src {
		if dst[lang] == nil {
			dst[lang] = make(map[string]any, len(m))
		}
		merge(dst[lang], m)
	}
}
