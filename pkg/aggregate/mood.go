package aggregate

import "github.com/shouni/go-postcard-kit/pkg/domain"

const (
	topTagsLimit       = 10
	secondaryMoodLimit = 3 // 最頻ムードを含む上位数。2〜3 位がセカンダリになります。

	fallbackMood   = "mixed"
	fallbackEnergy = "medium"
)

// reduceMood はムードと雰囲気を集約します。
//
// dominant_mood はムード分布の最頻値（空なら "mixed"）、secondary_moods は
// 頻度 2〜3 位のムード、overall_energy はエネルギー分布の最頻値（空なら
// "medium"）です。タグは全レコード分を 1 つの多重集合にまとめて上位 10 件
// を取ります。mood_consistency は最頻ムードの出現数を有効レコード数で
// 割った値で、ムードデータが皆無なら 0 です。
func reduceMood(records []domain.AnalysisRecord, total int) domain.MoodSummary {
	moods := newCounter()
	energies := newCounter()
	tags := newCounter()

	for _, r := range records {
		if r.Mood == nil {
			continue
		}
		if m := r.Mood.OverallMood; m != "" {
			moods.Add(m)
		}
		if e := r.Mood.EnergyLevel; e != "" {
			energies.Add(e)
		}
		for _, tag := range r.Mood.DescriptiveTags {
			if tag != "" {
				tags.Add(tag)
			}
		}
	}

	secondary := make([]string, 0, secondaryMoodLimit-1)
	if moods.Len() > 1 {
		for _, e := range moods.MostCommon(secondaryMoodLimit)[1:] {
			secondary = append(secondary, e.Key)
		}
	}

	topTags := make([]domain.TagCount, 0, topTagsLimit)
	for _, e := range tags.MostCommon(topTagsLimit) {
		topTags = append(topTags, domain.TagCount{Tag: e.Key, Count: e.Count})
	}

	consistency := 0.0
	if _, topCount, ok := moods.Top(); ok {
		consistency = float64(topCount) / float64(total)
	}

	return domain.MoodSummary{
		MoodDistribution:   moods.Distribution(),
		DominantMood:       moods.TopOr(fallbackMood),
		SecondaryMoods:     secondary,
		EnergyDistribution: energies.Distribution(),
		OverallEnergy:      energies.TopOr(fallbackEnergy),
		TopAtmosphereTags:  topTags,
		MoodConsistency:    consistency,
	}
}
