package domain

import (
	"sync"
	"time"
)

type ContentKind string

const (
	ContentText  ContentKind = "text"
	ContentImage ContentKind = "image"
)

// ContentItem is one normalized unit of user input fed into caption
// generation. Text items carry their literal string, image items carry the
// raw bytes plus media type.
type ContentItem struct {
	Kind      ContentKind
	Text      string
	Data      []byte
	MediaType string
}

type Caption struct {
	Hook     string `json:"hook"`
	Body     string `json:"body"`
	CTA      string `json:"cta"`
	Hashtags string `json:"hashtags"`
}

// Session holds the per-user interaction state for the lifetime of the
// process. Handlers hold the embedded lock for the whole transition so
// concurrent events from the same user never interleave.
type Session struct {
	sync.Mutex

	Platform     string
	LastContent  []ContentItem
	LastCaptions []Caption
	// EditingIndex is the zero-based caption index awaiting an edit reply,
	// or NoEditing.
	EditingIndex int
	LastRequest  time.Time
}

const NoEditing = -1

type Message struct {
	ID           int
	ChatID       int64
	UserID       int64
	Username     string
	Text         string
	ImageURL     string
	FileSize     int64
	IsVideo      bool
	CallbackData string
}

// QuickAction is a labeled inline control attached to a reply, identified by
// an opaque callback token.
type QuickAction struct {
	Label string
	Token string
}

type Action string

const (
	Typing Action = "typing"
)
