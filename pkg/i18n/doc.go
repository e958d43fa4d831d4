// Package i18n localizes validation failures.
//
// A Translator loads message catalogues through a TranslationAdapter and
// renders templates with named placeholders in the form %{name}. Catalogues
// are YAML documents keyed by language, with nested maps addressed by
// dot-separated keys:
//
//	en:
//	  validation:
//	    less_than: "value is greater than or equal to %{threshold}"
//
// Catalogues for English, German and Spanish are embedded and available
// through Defaults. Localize replaces the message of a *guard.ValidationError
// with the translation of its TranslationKey, keeping the original error in
// the chain for errors.Is:
//
//	tr, err := i18n.NewTranslator(ctx, i18n.Defaults())
//	if err != nil {
//		return err
//	}
//	_, err = validator.LessThan(4)(7)
//	fmt.Println(tr.Localize("de", err)) // Wert ist größer oder gleich 4
package i18n
