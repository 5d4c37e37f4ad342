package utils

import (
	"fmt"
	"strings"
)

// MaxReferenceImages is the server-side cap on reference images per request.
const MaxReferenceImages = 5

// BuildThumbnailPrompt assembles the final prompt sent to the image model from
// the user prompt and the selected style parameters. When referenceCount >= 1 a
// face-preservation block is prepended so the model keeps the uploaded face(s)
// as the focal subject.
func BuildThumbnailPrompt(userPrompt, style, aspectRatio, size string, referenceCount int) string {
	var b strings.Builder

	if referenceCount >= 1 {
		fmt.Fprintf(&b, "IMPORTANT: %d reference image(s) of real people are attached. ", referenceCount)
		b.WriteString("Preserve the exact face(s) from the reference image(s) and make them the focal subject of the thumbnail. ")
		b.WriteString("Do not alter facial features, skin tone, or identity.\n\n")
	}

	fmt.Fprintf(&b, "Create a high-impact video thumbnail. Style: %s. Aspect ratio: %s. Output size: %s.\n", style, aspectRatio, size)
	b.WriteString("Bold composition, high contrast, readable at small sizes. No watermarks, no borders.\n\n")
	b.WriteString(strings.TrimSpace(userPrompt))

	return b.String()
}
