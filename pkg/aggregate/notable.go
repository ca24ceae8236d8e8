package aggregate

import "github.com/shouni/go-postcard-kit/pkg/domain"

const (
	topNotableLimit    = 20
	recurringThreshold = 2
)

// reduceNotable は特徴的エレメントを集約します。
//
// 全レコードの notable エントリを 1 つの多重集合にまとめ、上位 20 件と
// 異なりエントリ数を出します。recurring_elements は上位 20 件のうち
// 2 回以上出現したものを頻度順のまま取り出したリストです。
func reduceNotable(records []domain.AnalysisRecord) domain.NotableSummary {
	notable := newCounter()
	for _, r := range records {
		for _, n := range r.Notable {
			if n != "" {
				notable.Add(n)
			}
		}
	}

	top := notable.MostCommon(topNotableLimit)
	all := make([]domain.NotableCount, 0, len(top))
	recurring := make([]string, 0, len(top))
	for _, e := range top {
		all = append(all, domain.NotableCount{Element: e.Key, Count: e.Count})
		if e.Count >= recurringThreshold {
			recurring = append(recurring, e.Key)
		}
	}

	return domain.NotableSummary{
		AllNotableElements: all,
		UniqueNotableCount: notable.Len(),
		RecurringElements:  recurring,
	}
}
