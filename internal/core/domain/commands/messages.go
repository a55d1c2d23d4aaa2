package commands

// User-facing reply strings shared by the interaction handlers.
const (
	rateLimited       = "⏳ Rate limit exceeded. Please wait 10 seconds."
	imageTooLarge     = "❌ Image too large (max 5MB). Please resize and try again."
	videoTooLarge     = "❌ Video too large (max 5MB). Please shorten and try again."
	emptySubmission   = "❌ Please send text, an image, or a video."
	noPriorInput      = "❌ No previous input found. Send text, image, or video first."
	noCaptions        = "❌ No captions available. Send something to generate captions first."
	invalidSelection  = "❌ Invalid selection."
	generating        = "⏳ Generating captions..."
	regenerating      = "⏳ Regenerating captions..."
	selectedCaption   = "✅ Selected Caption:"
	updatedCaption    = "✅ Updated Caption:"
	editPrompt        = "Reply to this message with your edited caption."
	platformUsage     = "Usage: /platform <name> (e.g., /platform instagram)"
	platformConfirmed = "Platform set to: "
)
