// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package ai

// Fixed generation settings for social media graphics.
const (
	GraphicSize    = "1024x1024"
	GraphicQuality = "hd"
	GraphicStyle   = "vivid"
)

// ImageParams describes a single image-generation request.
type ImageParams struct {
	Prompt  string
	Size    string
	Quality string
	Style   string
	N       int
}

// GraphicParams returns the parameters every graphic is generated with:
// one square HD image in the vivid style.
func GraphicParams(prompt string) ImageParams {
	return ImageParams{
		Prompt:  prompt,
		Size:    GraphicSize,
		Quality: GraphicQuality,
		Style:   GraphicStyle,
		N:       1,
	}
}

// GeneratedImage is the first image returned by a backend.
type GeneratedImage struct {
	URL string

	// RevisedPrompt is the prompt the backend actually used, when it
	// reports one (DALL-E 3 rewrites prompts before rendering).
	RevisedPrompt string
}
