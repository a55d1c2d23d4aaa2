package commands

import (
	"context"
	"testing"
	"time"

	"capbot/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegenerateNoPriorInput(t *testing.T) {
	mg := &MockGenerator{captions: testCaptions}
	ms := &MockSender{}
	session := newSession()

	h := NewRegenerate(mg, ms, &MockStore{session: session}, &MockLimiter{allow: true}, "/regenerate")

	err := h.Respond(context.Background(), time.Minute,
		&domain.Message{ID: 1, ChatID: 10, UserID: 20, Text: "/regenerate"})

	require.NoError(t, err)
	assert.Equal(t, []string{noPriorInput}, ms.replies)
	assert.Nil(t, session.LastCaptions)
	assert.Equal(t, 0, mg.calls)
}

func TestRegenerateRateLimited(t *testing.T) {
	mg := &MockGenerator{captions: testCaptions}
	ms := &MockSender{}
	session := newSession()
	session.LastContent = []domain.ContentItem{{Kind: domain.ContentText, Text: "stored"}}

	h := NewRegenerate(mg, ms, &MockStore{session: session}, &MockLimiter{allow: false}, "/regenerate")

	err := h.Respond(context.Background(), time.Minute,
		&domain.Message{ID: 1, ChatID: 10, UserID: 20, Text: "/regenerate"})

	require.NoError(t, err)
	assert.Equal(t, []string{rateLimited}, ms.replies)
	assert.Equal(t, 0, mg.calls)
}

func TestRegenerateReusesStoredContent(t *testing.T) {
	stored := []domain.ContentItem{{Kind: domain.ContentText, Text: "stored input"}}

	mg := &MockGenerator{captions: testCaptions}
	ms := &MockSender{}
	session := newSession()
	session.Platform = "twitter"
	session.LastContent = stored
	session.EditingIndex = 2

	h := NewRegenerate(mg, ms, &MockStore{session: session}, &MockLimiter{allow: true}, "regenerate")

	err := h.Respond(context.Background(), time.Minute,
		&domain.Message{ID: 1, ChatID: 10, UserID: 20, CallbackData: "regenerate"})

	require.NoError(t, err)

	assert.Equal(t, stored, mg.content)
	assert.Equal(t, "twitter", mg.platform)
	assert.Equal(t, testCaptions, session.LastCaptions)
	assert.Equal(t, domain.NoEditing, session.EditingIndex)

	assert.Equal(t, []string{regenerating}, ms.replies)
	assert.Contains(t, ms.keyboardText, "✨ Option 1")
	require.Len(t, ms.keyboard, 4)
}
