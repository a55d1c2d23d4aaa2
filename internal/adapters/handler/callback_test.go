package handler

import (
	"errors"
	"testing"
	"time"

	"capbot/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCallbackHandler_Dispatch(t *testing.T) {
	type testcase struct {
		name       string
		token      string
		mockSetup  func(r *MockRegistry, ch *MockCmdHandler)
		wantCalled bool
	}

	tests := []testcase{
		{
			name:  "select token keyed by prefix",
			token: "select_2",
			mockSetup: func(r *MockRegistry, ch *MockCmdHandler) {
				r.On("Get", "select").Return(ch, nil)
				ch.On("Respond", mock.Anything, mock.Anything,
					mock.AnythingOfType("*domain.Message")).Return(nil)
			},
			wantCalled: true,
		},
		{
			name:  "edit token keyed by prefix",
			token: "edit_3",
			mockSetup: func(r *MockRegistry, ch *MockCmdHandler) {
				r.On("Get", "edit").Return(ch, nil)
				ch.On("Respond", mock.Anything, mock.Anything,
					mock.AnythingOfType("*domain.Message")).Return(nil)
			},
			wantCalled: true,
		},
		{
			name:  "regenerate token without index",
			token: "regenerate",
			mockSetup: func(r *MockRegistry, ch *MockCmdHandler) {
				r.On("Get", "regenerate").Return(ch, nil)
				ch.On("Respond", mock.Anything, mock.Anything,
					mock.AnythingOfType("*domain.Message")).Return(errors.New("fail"))
			},
			wantCalled: true,
		},
		{
			name:  "unknown token dropped",
			token: "bogus_1",
			mockSetup: func(r *MockRegistry, _ *MockCmdHandler) {
				r.On("Get", "bogus").Return(nil, errors.New("no handler"))
			},
			wantCalled: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			reg := new(MockRegistry)
			ch := new(MockCmdHandler)
			reg.cmd = ch
			tc.mockSetup(reg, ch)

			h := NewCallback(reg, 3*time.Second)
			h.Dispatch(&domain.Message{
				ID:           5,
				ChatID:       100,
				UserID:       200,
				CallbackData: tc.token,
			})

			// as the Respond() call is a goroutine, wait for finish
			time.Sleep(100 * time.Millisecond)

			reg.AssertExpectations(t)
			if tc.wantCalled {
				ch.AssertCalled(t, "Respond",
					mock.Anything,
					mock.Anything,
					mock.MatchedBy(func(msg *domain.Message) bool {
						return assert.Equal(t, tc.token, msg.CallbackData)
					}),
				)
			} else {
				assert.Empty(t, ch.Calls)
			}
		})
	}
}
