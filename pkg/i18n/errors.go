package i18n

import "errors"

var (
	ErrLanguageNotSupported = errors.New("language not supported")
	ErrNilAdapter           = errors.New("translation adapter is nil")

	ErrLoadingCancelled  = errors.New("loading translations cancelled")
	ErrFailedToReadFile  = errors.New("failed to read translation file")
	ErrFailedToParseYAML = errors.New("failed to parse YAML content")
	ErrInvalidCatalogue  = errors.New("invalid translation catalogue")
)
