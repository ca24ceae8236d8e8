package publisher

import (
	"fmt"
	"strings"

	"github.com/shouni/go-postcard-kit/pkg/domain"
)

// BuildSummaryMarkdown は、ポストカードとアルバムプロファイルを統合して
// 人間が読めるサマリー Markdown 文字列を生成します。
func BuildSummaryMarkdown(postcard *domain.Postcard, profile *domain.AlbumProfile, imagePath string) string {
	var sb strings.Builder

	// 1. タイトルとポストカード本体
	sb.WriteString(fmt.Sprintf("# %s\n\n", postcard.Caption.LocationLabel))
	sb.WriteString(fmt.Sprintf("![postcard](%s)\n\n", imagePath))
	sb.WriteString(fmt.Sprintf("> %s\n\n", postcard.Caption.Caption))

	// 2. 生成パラメータ
	sb.WriteString("## Postcard\n\n")
	sb.WriteString(fmt.Sprintf("- art style: %s\n", postcard.Params.ArtStyle))
	sb.WriteString(fmt.Sprintf("- caption tone: %s\n", postcard.Caption.ToneApplied))
	if postcard.Params.UserDescription != "" {
		sb.WriteString(fmt.Sprintf("- trip notes: %s\n", postcard.Params.UserDescription))
	}
	sb.WriteString("\n")

	// 3. アルバムプロファイルのダイジェスト
	if profile == nil {
		return sb.String()
	}
	synthesis := profile.Synthesis
	sb.WriteString("## Album profile\n\n")
	sb.WriteString(fmt.Sprintf("- images analyzed: %d\n", profile.TotalImagesAnalyzed))
	sb.WriteString(fmt.Sprintf("- dominant scene: %s\n", synthesis.PrimarySceneType))
	sb.WriteString(fmt.Sprintf("- dominant mood: %s (%s energy)\n", synthesis.DominantMood, synthesis.EnergyLevel))
	if len(synthesis.DominantVisualElements) > 0 {
		sb.WriteString(fmt.Sprintf("- dominant elements: %s\n", strings.Join(synthesis.DominantVisualElements, ", ")))
	}
	if len(synthesis.ColorPalette) > 0 {
		sb.WriteString(fmt.Sprintf("- color palette: %s (%s)\n", strings.Join(synthesis.ColorPalette, ", "), synthesis.ColorTemperature))
	}
	if len(synthesis.RecurringNotableElements) > 0 {
		sb.WriteString(fmt.Sprintf("- recurring motifs: %s\n", strings.Join(synthesis.RecurringNotableElements, ", ")))
	}

	return sb.String()
}
