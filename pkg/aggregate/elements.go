package aggregate

import (
	"sort"

	"github.com/shouni/go-postcard-kit/pkg/domain"
)

// 支配的／希少エレメントを分ける固定のポリシー定数です。
// 50 以上は「大半の写真に写っている＝生成の前景に置いて安全」、
// 20 未満（かつ 0 より大）は「まれ＝象徴的な挿し込み候補」を意味します。
const (
	dominantRateThreshold = 50.0
	rareRateThreshold     = 20.0
)

// reduceElements はセグメント化エレメントを集約します。
//
// 追跡対象は固定 7 種で、presence_rate は有効レコード数を分母に小数第 1 位
// まで、平均プロミネンスは present だったレコードのみの平均を小数第 2 位
// まで丸めます。ランキングは (presence_count, avg_prominence) の降順で、
// 同値の場合は追跡対象の定義順が保たれます。
func reduceElements(records []domain.AnalysisRecord, total int) domain.ElementSummary {
	tracked := domain.TrackedElements()

	presence := make(map[string]int, len(tracked))
	prominenceSum := make(map[string]float64, len(tracked))
	peopleCountTotal := 0
	peopleImages := 0

	for _, r := range records {
		if r.Elements == nil {
			continue
		}
		for _, name := range tracked {
			obs := r.Elements.Observation(name)
			if !obs.Present {
				continue
			}
			presence[name]++
			prominenceSum[name] += obs.Prominence

			if name == domain.ElementPeople && obs.Count > 0 {
				peopleCountTotal += obs.Count
				peopleImages++
			}
		}
	}

	stats := make(map[string]domain.ElementStat, len(tracked))
	ranked := make([]domain.ElementStat, 0, len(tracked))
	for _, name := range tracked {
		count := presence[name]
		avg := 0.0
		if count > 0 {
			avg = round2(prominenceSum[name] / float64(count))
		}
		stat := domain.ElementStat{
			Element:       name,
			PresenceCount: count,
			PresenceRate:  percentage(count, total),
			AvgProminence: avg,
		}
		stats[name] = stat
		ranked = append(ranked, stat)
	}

	// 安定ソートなので、完全に同値のエレメントは追跡対象の定義順のままです。
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].PresenceCount != ranked[j].PresenceCount {
			return ranked[i].PresenceCount > ranked[j].PresenceCount
		}
		return ranked[i].AvgProminence > ranked[j].AvgProminence
	})

	dominant := make([]string, 0, len(ranked))
	rare := make([]string, 0, len(ranked))
	for _, stat := range ranked {
		if stat.PresenceRate >= dominantRateThreshold {
			dominant = append(dominant, stat.Element)
		}
		if stat.PresenceRate > 0 && stat.PresenceRate < rareRateThreshold {
			rare = append(rare, stat.Element)
		}
	}

	avgPeople := 0.0
	if peopleImages > 0 {
		avgPeople = round1(float64(peopleCountTotal) / float64(peopleImages))
	}

	return domain.ElementSummary{
		Stats:            stats,
		RankedByPresence: ranked,
		DominantElements: dominant,
		RareElements:     rare,
		People: domain.PeoplePresence{
			ImagesWithPeople:  presence[domain.ElementPeople],
			AvgPeoplePerImage: avgPeople,
		},
	}
}
