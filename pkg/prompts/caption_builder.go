package prompts

import (
	"fmt"
	"strings"

	"github.com/shouni/go-postcard-kit/pkg/domain"
)

// CaptionSystemPrompt はキャプション生成 AI の役割を定義します。
const CaptionSystemPrompt = "You are a creative writer specializing in evocative, personal travel writing. You craft captions that capture lived experiences rather than tourist clichés."

// キャプションの文脈に流し込む各リストの上限です。
const (
	maxContextColors      = 4
	maxContextMotifs      = 5
	maxContextDescriptors = 4
)

// toneInstructions はトーンごとの文体指示です。
var toneInstructions = map[domain.CaptionTone]string{
	domain.ToneSatirical:  "Write in a satirical, witty tone that gently pokes fun at travel clichés while still being affectionate. Use irony and self-aware humor.",
	domain.ToneArtistic:   "Write in an artistic, poetic tone that evokes imagery and emotion. Use metaphor and sensory language. Be evocative but not pretentious.",
	domain.ToneDramatic:   "Write in a dramatic, cinematic tone that makes the ordinary feel epic. Use bold statements and emotional weight.",
	domain.ToneMinimalist: "Write in a minimalist, understated tone. Be brief, subtle, and let silence speak. Use few words with maximum impact.",
}

// ToneInstruction はトーンの文体指示を返します。未知のトーンは artistic にフォールバックします。
func ToneInstruction(tone domain.CaptionTone) string {
	if instruction, ok := toneInstructions[tone]; ok {
		return instruction
	}
	return toneInstructions[domain.ToneArtistic]
}

// NewCaptionData は、集約プロファイルと利用者パラメータからテンプレートデータを組み立てます。
func NewCaptionData(synthesis domain.SynthesisProfile, params domain.PostcardParams) TemplateData {
	contextParts := []string{
		fmt.Sprintf("Location: %s", params.LocationLabel),
		fmt.Sprintf("Primary scene type: %s", synthesis.PrimarySceneType),
		fmt.Sprintf("Dominant mood: %s", synthesis.DominantMood),
		fmt.Sprintf("Energy level: %s", synthesis.EnergyLevel),
		fmt.Sprintf("Key visual elements: %s", strings.Join(synthesis.DominantVisualElements, ", ")),
		fmt.Sprintf("Color palette: %s", strings.Join(takeStrings(synthesis.ColorPalette, maxContextColors), ", ")),
		fmt.Sprintf("Recurring notable elements: %s", strings.Join(takeStrings(synthesis.RecurringNotableElements, maxContextMotifs), ", ")),
		fmt.Sprintf("Setting: mostly %s", synthesis.Setting),
		fmt.Sprintf("Mood descriptors: %s", strings.Join(takeStrings(synthesis.MoodDescriptors, maxContextDescriptors), ", ")),
	}

	if params.UserDescription != "" {
		contextParts = append(contextParts, fmt.Sprintf("User's trip description: %s", params.UserDescription))
	}

	return TemplateData{
		Context:         strings.Join(contextParts, "\n"),
		ToneInstruction: ToneInstruction(params.CaptionTone),
	}
}
