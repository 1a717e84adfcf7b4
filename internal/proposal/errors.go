package proposal

import "errors"

var (
	ErrRendererUnavailable = errors.New("pdf renderer is not configured")
	ErrEmailRecipient      = errors.New("email recipient is required")
)
