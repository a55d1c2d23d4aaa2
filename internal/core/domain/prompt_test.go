package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPrompt(t *testing.T) {
	tests := []struct {
		name         string
		platform     string
		content      []ContentItem
		wantContains []string
	}{
		{
			name:     "instagram clause and literal text",
			platform: "instagram",
			content:  []ContentItem{{Kind: ContentText, Text: "hi"}},
			wantContains: []string{
				"Instagram: Visual, engaging, story-driven.",
				"hi",
			},
		},
		{
			name:     "platform match is case-insensitive",
			platform: "TikTok",
			content:  []ContentItem{{Kind: ContentText, Text: "dance clip"}},
			wantContains: []string{
				"TikTok: Fun, trendy, short-form video style.",
				"dance clip",
			},
		},
		{
			name:     "unknown platform falls back to default clause",
			platform: "unknownplatform",
			content:  nil,
			wantContains: []string{
				"General social media: Versatile and impactful.",
				NoContext,
			},
		},
		{
			name:     "image items become markers",
			platform: "twitter",
			content: []ContentItem{
				{Kind: ContentImage, Data: []byte{0xff}},
				{Kind: ContentText, Text: "sunset"},
			},
			wantContains: []string{
				"Twitter: Concise, witty, thread-friendly.",
				"[image provided] sunset",
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := BuildPrompt(tc.platform, tc.content)
			for _, want := range tc.wantContains {
				assert.Contains(t, got, want)
			}
		})
	}
}

func TestFlattenContent(t *testing.T) {
	tests := []struct {
		name    string
		content []ContentItem
		want    string
	}{
		{
			name: "preserves item order",
			content: []ContentItem{
				{Kind: ContentText, Text: "first"},
				{Kind: ContentImage},
				{Kind: ContentText, Text: "second"},
			},
			want: "first [image provided] second",
		},
		{
			name:    "empty submission",
			content: nil,
			want:    NoContext,
		},
		{
			name: "whitespace-only text",
			content: []ContentItem{
				{Kind: ContentText, Text: "   "},
			},
			want: NoContext,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, FlattenContent(tc.content))
		})
	}
}
