package utils

import (
	"strings"
	"testing"
)

func TestBuildThumbnailPrompt(t *testing.T) {
	got := BuildThumbnailPrompt("my epic video", "bold", "16:9", "1280x720", 0)

	if strings.Contains(got, "reference image") {
		t.Fatal("no reference block expected without references")
	}
	for _, want := range []string{"bold", "16:9", "1280x720", "my epic video"} {
		if !strings.Contains(got, want) {
			t.Fatalf("prompt missing %q:\n%s", want, got)
		}
	}
}

func TestBuildThumbnailPromptWithReferences(t *testing.T) {
	got := BuildThumbnailPrompt("my epic video", "cinematic", "1:1", "1080x1080", 2)

	if !strings.Contains(got, "2 reference image(s)") {
		t.Fatalf("prompt missing reference count:\n%s", got)
	}
	if !strings.Contains(got, "Preserve the exact face(s)") {
		t.Fatalf("prompt missing face preservation block:\n%s", got)
	}
	// The preservation block must come before the style instructions.
	if strings.Index(got, "Preserve") > strings.Index(got, "cinematic") {
		t.Fatal("face preservation block should lead the prompt")
	}
}
