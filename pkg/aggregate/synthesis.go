package aggregate

import "github.com/shouni/go-postcard-kit/pkg/domain"

// 射影に採用する件数の固定値です。下流のプロンプト構築はこの形に依存します。
const (
	secondarySceneLimit     = 3 // プライマリランキングの 2〜4 位
	paletteColorLimit       = 5
	moodDescriptorTags      = 5
	recurringSynthesisLimit = 10
)

// project は 5 つのリデューサ出力を生成向けの平坦なプロファイルに射影します。
//
// 射影は純粋で状態を持ちません。各サマリの最頻値は必ずフォールバック込みで
// 埋まっているため、ここでは値の選び直しはせず、形を整えるだけです。
func project(
	scene domain.SceneSummary,
	elements domain.ElementSummary,
	visual domain.VisualSummary,
	mood domain.MoodSummary,
	notable domain.NotableSummary,
) domain.SynthesisProfile {
	secondaryScenes := make([]string, 0, secondarySceneLimit)
	for _, cat := range takeCategories(scene.PrimaryCategories, 1, 1+secondarySceneLimit) {
		secondaryScenes = append(secondaryScenes, cat.Category)
	}

	palette := make([]string, 0, paletteColorLimit)
	for i, c := range visual.Colors.TopColors {
		if i >= paletteColorLimit {
			break
		}
		palette = append(palette, c.Color)
	}

	descriptors := make([]string, 0, len(mood.SecondaryMoods)+moodDescriptorTags)
	descriptors = append(descriptors, mood.SecondaryMoods...)
	for i, t := range mood.TopAtmosphereTags {
		if i >= moodDescriptorTags {
			break
		}
		descriptors = append(descriptors, t.Tag)
	}

	recurring := notable.RecurringElements
	if len(recurring) > recurringSynthesisLimit {
		recurring = recurring[:recurringSynthesisLimit]
	}

	return domain.SynthesisProfile{
		PrimarySceneType:         scene.DominantSceneType,
		SecondarySceneTypes:      secondaryScenes,
		DominantVisualElements:   elements.DominantElements,
		ColorPalette:             palette,
		ColorTemperature:         visual.ColorTemperature.Dominant,
		LightingStyle:            visual.Lighting.Dominant,
		Setting:                  visual.Setting.Dominant,
		TimeOfDay:                visual.TimeOfDay.Dominant,
		DominantMood:             mood.DominantMood,
		MoodDescriptors:          descriptors,
		EnergyLevel:              mood.OverallEnergy,
		RecurringNotableElements: recurring,
		HasPeople:                elements.People.ImagesWithPeople > 0,
	}
}

// takeCategories はランキングの [from, to) 区間を範囲チェック付きで切り出します。
func takeCategories(ranked []domain.CategoryCount, from, to int) []domain.CategoryCount {
	if from >= len(ranked) {
		return nil
	}
	if to > len(ranked) {
		to = len(ranked)
	}
	return ranked[from:to]
}
