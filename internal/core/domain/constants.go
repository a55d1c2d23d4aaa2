package domain

import "errors"

// MaxFileSize caps inbound media payloads at 5MB.
const MaxFileSize = 5 * 1024 * 1024

var (
	ErrSendingReplyFailed = errors.New("failed to send reply")
	ErrEmptySubmission    = errors.New("empty submission")
	ErrOversizedMedia     = errors.New("media exceeds size limit")
	ErrNoPriorInput       = errors.New("no previous input")
	ErrNoCaptions         = errors.New("no captions available")
	ErrInvalidSelection   = errors.New("invalid selection")
)
