package commands

import (
	"context"
	"testing"
	"time"

	"capbot/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectCaption(t *testing.T) {
	tests := []struct {
		name     string
		captions []domain.Caption
		token    string
		wantEdit string
	}{
		{
			name:     "no captions stored",
			captions: nil,
			token:    "select_1",
			wantEdit: noCaptions,
		},
		{
			name:     "index out of range",
			captions: testCaptions,
			token:    "select_4",
			wantEdit: invalidSelection,
		},
		{
			name:     "zero index",
			captions: testCaptions,
			token:    "select_0",
			wantEdit: invalidSelection,
		},
		{
			name:     "malformed token",
			captions: testCaptions,
			token:    "select_x",
			wantEdit: invalidSelection,
		},
		{
			name:     "valid selection returns caption verbatim",
			captions: testCaptions,
			token:    "select_2",
			wantEdit: selectedCaption + "\n" + domain.FormatCaption(testCaptions[1]),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ms := &MockSender{}
			session := newSession()
			session.LastCaptions = tc.captions

			h := NewSelect(ms, &MockStore{session: session}, "select")

			err := h.Respond(context.Background(), time.Minute,
				&domain.Message{ID: 5, ChatID: 10, UserID: 20, CallbackData: tc.token})

			require.NoError(t, err)
			assert.Equal(t, []string{tc.wantEdit}, ms.edits)
			// selection never clears the stored captions
			assert.Equal(t, tc.captions, session.LastCaptions)
		})
	}
}

func TestSelectKeepsReselectionPossible(t *testing.T) {
	ms := &MockSender{}
	session := newSession()
	session.LastCaptions = testCaptions

	h := NewSelect(ms, &MockStore{session: session}, "select")

	for _, token := range []string{"select_1", "select_3"} {
		err := h.Respond(context.Background(), time.Minute,
			&domain.Message{ID: 5, ChatID: 10, UserID: 20, CallbackData: token})
		require.NoError(t, err)
	}

	require.Len(t, ms.edits, 2)
	assert.Contains(t, ms.edits[0], testCaptions[0].Hook)
	assert.Contains(t, ms.edits[1], testCaptions[2].Hook)
}
