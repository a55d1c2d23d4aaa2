package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "command with args", in: "/platform instagram", want: "/platform"},
		{name: "bare command", in: "/regenerate", want: "/regenerate"},
		{name: "plain text", in: "hello world", want: "hello"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ParseCommand(tc.in))
		})
	}
}

func TestParseCommandArgs(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "single arg", in: "/platform instagram", want: "instagram"},
		{name: "multiple args", in: "/platform my platform", want: "my platform"},
		{name: "no args", in: "/regenerate", want: ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ParseCommandArgs(tc.in))
		})
	}
}
