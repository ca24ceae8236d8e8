package prompts

import (
	"fmt"
	"strings"

	"github.com/shouni/go-postcard-kit/pkg/domain"
)

// プロンプトに流し込む各リストの上限です。長すぎる列挙は画像の焦点をぼかします。
const (
	maxSecondaryScenes = 2
	maxVisualElements  = 4
	maxPaletteColors   = 4
	maxMoodDescriptors = 3
	maxRecurringMotifs = 4
)

// PostcardImageBuilder は、集約プロファイルからポストカード画像用プロンプトを構築します。
type PostcardImageBuilder struct{}

// NewPostcardImageBuilder は新しい PostcardImageBuilder を生成します。
func NewPostcardImageBuilder() *PostcardImageBuilder {
	return &PostcardImageBuilder{}
}

// BuildImage は、UserPrompt（具体的内容）と SystemPrompt（役割・画風）を分けて生成します。
func (pb *PostcardImageBuilder) BuildImage(synthesis domain.SynthesisProfile, params domain.PostcardParams) (string, string) {
	// --- 1. System Prompt の構築 (AIの役割・画風) ---
	var ss strings.Builder
	ss.WriteString(PostcardSystemInstruction)
	ss.WriteString("\n\n")
	ss.WriteString(fmt.Sprintf("### ART STYLE ###\n%s", StyleSuffix(params.ArtStyle)))
	systemPrompt := ss.String()

	// --- 2. User Prompt の構築 (アルバムから抽出した具体的内容) ---
	sceneDescription := synthesis.PrimarySceneType
	if secondary := takeStrings(synthesis.SecondarySceneTypes, maxSecondaryScenes); len(secondary) > 0 {
		sceneDescription += fmt.Sprintf(" with hints of %s", strings.Join(secondary, ", "))
	}

	elements := takeStrings(synthesis.DominantVisualElements, maxVisualElements)
	if len(elements) == 0 {
		elements = []string{"architectural details"}
	}
	colors := takeStrings(synthesis.ColorPalette, maxPaletteColors)
	if len(colors) == 0 {
		colors = []string{"warm tones"}
	}

	parts := []string{
		fmt.Sprintf("A stylized postcard illustration of %s.", params.LocationLabel),
		fmt.Sprintf("The scene captures a %s.", sceneDescription),
		fmt.Sprintf("Key visual elements include: %s.", strings.Join(elements, ", ")),
		fmt.Sprintf("Color palette features %s with %s tones.", strings.Join(colors, ", "), synthesis.ColorTemperature),
		fmt.Sprintf("The mood is %s", synthesis.DominantMood),
	}

	if descriptors := takeStrings(synthesis.MoodDescriptors, maxMoodDescriptors); len(descriptors) > 0 {
		parts = append(parts, fmt.Sprintf("with an atmosphere that feels %s", strings.Join(descriptors, ", ")))
	}

	parts = append(parts, fmt.Sprintf("Lighting: %s, %s.", synthesis.LightingStyle, synthesis.TimeOfDay))

	if motifs := takeStrings(synthesis.RecurringNotableElements, maxRecurringMotifs); len(motifs) > 0 {
		parts = append(parts, fmt.Sprintf("Include symbolic references to: %s.", strings.Join(motifs, ", ")))
	}

	if params.UserDescription != "" {
		parts = append(parts, fmt.Sprintf("Trip essence: %s", params.UserDescription))
	}

	return strings.Join(parts, " "), systemPrompt
}

// takeStrings は先頭 n 件までの空でない要素を返します。
func takeStrings(values []string, n int) []string {
	var out []string
	for _, v := range values {
		if len(out) >= n {
			break
		}
		if s := strings.TrimSpace(v); s != "" {
			out = append(out, s)
		}
	}
	return out
}
