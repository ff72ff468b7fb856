package choices

import "errors"

var (
	// ErrUnknownQuestionType is returned when a question type has no registered
	// capabilities.
	ErrUnknownQuestionType = errors.New("choices: unknown question type")
	// ErrMissingTranslator signals that a text key could not be resolved because
	// no translator was configured.
	ErrMissingTranslator = errors.New("choices: translator not configured")
	// ErrPayloadPath is returned when a choices-by-url payload does not contain
	// the configured path.
	ErrPayloadPath = errors.New("choices: payload path not found")
	// ErrPayloadShape is returned when the payload at the configured path is not
	// a list.
	ErrPayloadShape = errors.New("choices: payload is not a list")
)
