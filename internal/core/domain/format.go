package domain

import (
	"fmt"
	"strings"
)

// FormatCaptions renders a generation result as one message, options
// numbered in generation order.
func FormatCaptions(platform string, captions []Caption) string {
	sb := &strings.Builder{}
	fmt.Fprintf(sb, "📍 Platform: %s\n\n", CapitalizePlatform(platform))

	for i, c := range captions {
		fmt.Fprintf(sb, "✨ Option %d\n%s\n\n", i+1, FormatCaption(c))
	}

	return strings.TrimRight(sb.String(), "\n")
}

// FormatCaption renders a single caption block.
func FormatCaption(c Caption) string {
	return fmt.Sprintf("%s\n\n%s\n%s\n%s", c.Hook, c.Body, c.CTA, c.Hashtags)
}

// CaptionKeyboard lays out the quick-actions for a rendered generation
// result: a Select/Edit pair per option plus a global regenerate row.
func CaptionKeyboard(options int) [][]QuickAction {
	keyboard := make([][]QuickAction, 0, options+1)

	for i := 1; i <= options; i++ {
		keyboard = append(keyboard, []QuickAction{
			{Label: fmt.Sprintf("Select %d", i), Token: fmt.Sprintf("select_%d", i)},
			{Label: fmt.Sprintf("Edit %d", i), Token: fmt.Sprintf("edit_%d", i)},
		})
	}

	keyboard = append(keyboard, []QuickAction{{Label: "Regenerate All", Token: "regenerate"}})

	return keyboard
}

// CapitalizePlatform uppercases the first letter for display, matching how
// platform names are echoed back to the user.
func CapitalizePlatform(platform string) string {
	if platform == "" {
		return platform
	}

	return strings.ToUpper(platform[:1]) + platform[1:]
}
