package prompts

import "github.com/shouni/go-postcard-kit/pkg/domain"

const (
	// PostcardSystemInstruction は画像生成 AI の役割を定義します。
	PostcardSystemInstruction = "You are a professional travel postcard illustrator. Create a single beautiful postcard illustration that summarizes a personal journey, NOT a generic tourist image. Symbolic and artistic, not photorealistic."

	// PostcardNegativePrompt Negative Prompt の定義
	PostcardNegativePrompt = "photorealistic, photograph, text, alphabet, letters, words, signatures, watermark, username, low quality, distorted, generic stock imagery"
)

// styleSuffixes は画風ごとのプロンプトサフィックスです。
var styleSuffixes = map[domain.ArtStyle]string{
	domain.StyleWatercolor:     "watercolor illustration style, soft edges, flowing colors, artistic brushstrokes, paper texture, hand-painted aesthetic",
	domain.StyleVintagePost:    "vintage postcard style, retro illustration, 1950s travel poster aesthetic, slightly faded colors, nostalgic feel, classic typography-ready composition",
	domain.StyleCollage:        "artistic collage style, layered paper cutouts, mixed media aesthetic, overlapping elements, textured surfaces, creative composition",
	domain.StyleGraphicLineArt: "graphic line art style, bold outlines, clean vector-like illustration, minimal shading, modern graphic design aesthetic, flat colors with strong contrast",
}

// StyleSuffix は画風のプロンプトサフィックスを返します。未知の画風はヴィンテージにフォールバックします。
func StyleSuffix(style domain.ArtStyle) string {
	if suffix, ok := styleSuffixes[style]; ok {
		return suffix
	}
	return styleSuffixes[domain.StyleVintagePost]
}
