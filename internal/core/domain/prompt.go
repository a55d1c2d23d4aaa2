package domain

import (
	"fmt"
	"strings"
)

const promptTemplate = `You are an advanced caption generation engine.
Generate 3 high-impact captions tailored for %s.

Rules:
- Strong hook in first line
- No clichés
- Human, authentic
- Platform-native
- Minimal emojis (0–2)
- Short and skimmable

Return ONLY a valid JSON array:
[
  {"hook":"","body":"","cta":"","hashtags":""}
]`

const imageMarker = "[image provided]"

// DefaultPlatform is the platform applied until the user sets one.
const DefaultPlatform = "default"

// NoContext substitutes for an empty flattened submission.
const NoContext = "No context provided"

var platformClauses = map[string]string{
	"instagram": "Instagram: Visual, engaging, story-driven.",
	"tiktok":    "TikTok: Fun, trendy, short-form video style.",
	"twitter":   "Twitter: Concise, witty, thread-friendly.",
	"default":   "General social media: Versatile and impactful.",
}

// BuildPrompt assembles the backend instruction for a platform and a
// submission. Pure string assembly, no I/O.
func BuildPrompt(platform string, content []ContentItem) string {
	clause, ok := platformClauses[strings.ToLower(platform)]
	if !ok {
		clause = platformClauses["default"]
	}

	return fmt.Sprintf(promptTemplate, clause) + "\n\nContext:\n" + FlattenContent(content)
}

// FlattenContent reduces a submission to a single context line, replacing
// image items with a fixed marker. Item order is preserved.
func FlattenContent(content []ContentItem) string {
	parts := make([]string, 0, len(content))

	for _, item := range content {
		switch item.Kind {
		case ContentText:
			parts = append(parts, item.Text)
		case ContentImage:
			parts = append(parts, imageMarker)
		}
	}

	flattened := strings.TrimSpace(strings.Join(parts, " "))
	if flattened == "" {
		return NoContext
	}

	return flattened
}
