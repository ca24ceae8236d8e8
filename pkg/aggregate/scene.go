package aggregate

import "github.com/shouni/go-postcard-kit/pkg/domain"

// fallbackSceneType はプライマリカテゴリが 1 件もないときの既定値です。
const fallbackSceneType = "mixed"

// reduceScenes はシーン分類を集約します。
//
// プライマリのみの集計と、プライマリ＋セカンダリを合算した集計の 2 本を作り、
// それぞれ出現数降順（同数は初見順）のランキングにします。1 レコードは
// 合算側にプライマリで 1 回、各セカンダリで 1 回ずつ寄与できます。
func reduceScenes(records []domain.AnalysisRecord, total int) domain.SceneSummary {
	primary := newCounter()
	all := newCounter()

	for _, r := range records {
		if r.Scene == nil {
			continue
		}
		if p := r.Scene.PrimaryCategory; p != "" {
			primary.Add(p)
			all.Add(p)
		}
		for _, s := range r.Scene.SecondaryCategories {
			if s != "" {
				all.Add(s)
			}
		}
	}

	primaryRanked := rankCategories(primary, total)
	allRanked := rankCategories(all, total)

	dominant := fallbackSceneType
	if len(primaryRanked) > 0 {
		dominant = primaryRanked[0].Category
	}

	return domain.SceneSummary{
		PrimaryCategories: primaryRanked,
		AllCategories:     allRanked,
		DominantSceneType: dominant,
		SceneDiversity:    primary.Len(),
	}
}

// rankCategories はカウンタをランキング形式（割合付き）に変換します。
func rankCategories(c *counter, total int) []domain.CategoryCount {
	entries := c.MostCommon(0)
	ranked := make([]domain.CategoryCount, 0, len(entries))
	for _, e := range entries {
		ranked = append(ranked, domain.CategoryCount{
			Category:   e.Key,
			Count:      e.Count,
			Percentage: percentage(e.Count, total),
		})
	}
	return ranked
}
