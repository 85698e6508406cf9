package domain

import "errors"

// ErrConversationNotFound is returned by every store for an unknown conversation ID.
var ErrConversationNotFound = errors.New("conversation not found")
