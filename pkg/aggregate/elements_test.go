package aggregate

import (
	"testing"

	"github.com/shouni/go-postcard-kit/pkg/domain"
)

// elementRecord は指定エレメントだけが present な有効レコードを作るのだ。
func elementRecord(mutate func(*domain.ElementBlock)) domain.AnalysisRecord {
	eb := &domain.ElementBlock{}
	mutate(eb)
	return domain.AnalysisRecord{Success: true, Elements: eb}
}

func TestReduceElements_PresenceAndProminence(t *testing.T) {
	records := []domain.AnalysisRecord{
		elementRecord(func(eb *domain.ElementBlock) {
			eb.Sky = domain.ElementObservation{Present: true, Prominence: 0.5}
			eb.Water = domain.ElementObservation{Present: true, Prominence: 0.8}
		}),
		elementRecord(func(eb *domain.ElementBlock) {
			eb.Sky = domain.ElementObservation{Present: true, Prominence: 0.3}
		}),
	}

	profile, err := Aggregate(records)
	if err != nil {
		t.Fatalf("集約に失敗したのだ: %v", err)
	}

	sky := profile.Elements.Stats["sky"]
	if sky.PresenceCount != 2 || sky.PresenceRate != 100.0 {
		t.Errorf("sky の presence が違うのだ: %+v", sky)
	}
	if sky.AvgProminence != 0.4 {
		t.Errorf("sky の平均プロミネンスが違うのだ: %v", sky.AvgProminence)
	}

	water := profile.Elements.Stats["water"]
	if water.PresenceCount != 1 || water.PresenceRate != 50.0 {
		t.Errorf("water の presence が違うのだ: %+v", water)
	}

	// 平均プロミネンスは present だったレコードのみの平均なのだ
	if water.AvgProminence != 0.8 {
		t.Errorf("water の平均プロミネンスが違うのだ: %v", water.AvgProminence)
	}

	buildings := profile.Elements.Stats["buildings"]
	if buildings.PresenceCount != 0 || buildings.AvgProminence != 0 {
		t.Errorf("不在エレメントはゼロのはずなのだ: %+v", buildings)
	}
}

func TestReduceElements_Thresholds(t *testing.T) {
	t.Run("presence_rate がちょうど 50.0 なら dominant に入るのだ", func(t *testing.T) {
		records := []domain.AnalysisRecord{
			elementRecord(func(eb *domain.ElementBlock) {
				eb.Sky = domain.ElementObservation{Present: true, Prominence: 0.5}
			}),
			elementRecord(func(eb *domain.ElementBlock) {}),
		}

		profile, err := Aggregate(records)
		if err != nil {
			t.Fatalf("集約に失敗したのだ: %v", err)
		}
		if !contains(profile.Elements.DominantElements, "sky") {
			t.Errorf("50.0%% は dominant に含まれるべきなのだ: %+v", profile.Elements.DominantElements)
		}
	})

	t.Run("ちょうど 20.0 は rare から外れ、19.9 相当は入るのだ", func(t *testing.T) {
		// 5 レコード中 1 回 present → 20.0% ちょうど
		records := make([]domain.AnalysisRecord, 0, 5)
		records = append(records, elementRecord(func(eb *domain.ElementBlock) {
			eb.Water = domain.ElementObservation{Present: true, Prominence: 0.5}
		}))
		for i := 0; i < 4; i++ {
			records = append(records, elementRecord(func(eb *domain.ElementBlock) {}))
		}

		profile, err := Aggregate(records)
		if err != nil {
			t.Fatalf("集約に失敗したのだ: %v", err)
		}
		if contains(profile.Elements.RareElements, "water") {
			t.Errorf("20.0%% は rare から除外されるべきなのだ: %+v", profile.Elements.RareElements)
		}

		// 6 レコード中 1 回 present → 16.7% で rare なのだ
		records = append(records, elementRecord(func(eb *domain.ElementBlock) {}))
		profile, err = Aggregate(records)
		if err != nil {
			t.Fatalf("集約に失敗したのだ: %v", err)
		}
		if !contains(profile.Elements.RareElements, "water") {
			t.Errorf("20%% 未満は rare に含まれるべきなのだ: %+v", profile.Elements.RareElements)
		}
	})

	t.Run("presence_rate が 0 のエレメントは rare にも入らないのだ", func(t *testing.T) {
		records := []domain.AnalysisRecord{
			elementRecord(func(eb *domain.ElementBlock) {
				eb.Sky = domain.ElementObservation{Present: true, Prominence: 0.5}
			}),
		}

		profile, err := Aggregate(records)
		if err != nil {
			t.Fatalf("集約に失敗したのだ: %v", err)
		}
		if len(profile.Elements.RareElements) != 0 {
			t.Errorf("不在エレメントが rare に混ざっているのだ: %+v", profile.Elements.RareElements)
		}
	})
}

func TestReduceElements_Ranking(t *testing.T) {
	t.Run("presence_count 優先、同数なら avg_prominence で並ぶのだ", func(t *testing.T) {
		records := []domain.AnalysisRecord{
			elementRecord(func(eb *domain.ElementBlock) {
				eb.Sky = domain.ElementObservation{Present: true, Prominence: 0.2}
				eb.Water = domain.ElementObservation{Present: true, Prominence: 0.9}
				eb.Buildings = domain.ElementObservation{Present: true, Prominence: 0.5}
			}),
			elementRecord(func(eb *domain.ElementBlock) {
				eb.Buildings = domain.ElementObservation{Present: true, Prominence: 0.5}
			}),
		}

		profile, err := Aggregate(records)
		if err != nil {
			t.Fatalf("集約に失敗したのだ: %v", err)
		}

		ranked := profile.Elements.RankedByPresence
		if ranked[0].Element != "buildings" {
			t.Errorf("先頭は buildings のはずなのだ: %+v", ranked[0])
		}
		// sky と water は同数（1）なので avg_prominence の高い water が先なのだ
		if ranked[1].Element != "water" || ranked[2].Element != "sky" {
			t.Errorf("同数タイブレークが違うのだ: %+v", ranked[1:3])
		}
	})

	t.Run("各レコードはエレメントごとに最大 1 回しか寄与しないのだ", func(t *testing.T) {
		records := []domain.AnalysisRecord{
			elementRecord(func(eb *domain.ElementBlock) {
				eb.Sky = domain.ElementObservation{Present: true, Prominence: 1.0}
			}),
		}

		profile, err := Aggregate(records)
		if err != nil {
			t.Fatalf("集約に失敗したのだ: %v", err)
		}
		for _, stat := range profile.Elements.RankedByPresence {
			if stat.PresenceCount > profile.TotalImagesAnalyzed {
				t.Errorf("presence_count が有効レコード数を超えているのだ: %+v", stat)
			}
		}
	})
}

func TestReduceElements_People(t *testing.T) {
	t.Run("人数は count 付きレコードの平均なのだ", func(t *testing.T) {
		records := []domain.AnalysisRecord{
			elementRecord(func(eb *domain.ElementBlock) {
				eb.People = domain.ElementObservation{Present: true, Prominence: 0.3, Count: 2}
			}),
			elementRecord(func(eb *domain.ElementBlock) {
				eb.People = domain.ElementObservation{Present: true, Prominence: 0.4, Count: 3}
			}),
			elementRecord(func(eb *domain.ElementBlock) {
				// present だが count 不明のレコードは平均の分母に入らないのだ
				eb.People = domain.ElementObservation{Present: true, Prominence: 0.1}
			}),
		}

		profile, err := Aggregate(records)
		if err != nil {
			t.Fatalf("集約に失敗したのだ: %v", err)
		}

		people := profile.Elements.People
		if people.ImagesWithPeople != 3 {
			t.Errorf("images_with_people が違うのだ: %d", people.ImagesWithPeople)
		}
		if people.AvgPeoplePerImage != 2.5 {
			t.Errorf("avg_people_per_image が違うのだ: %v", people.AvgPeoplePerImage)
		}
		if !profile.Synthesis.HasPeople {
			t.Error("has_people が立っていないのだ")
		}
	})

	t.Run("誰も写っていなければ has_people は false なのだ", func(t *testing.T) {
		records := []domain.AnalysisRecord{
			elementRecord(func(eb *domain.ElementBlock) {
				eb.Sky = domain.ElementObservation{Present: true, Prominence: 0.5}
			}),
		}

		profile, err := Aggregate(records)
		if err != nil {
			t.Fatalf("集約に失敗したのだ: %v", err)
		}
		if profile.Synthesis.HasPeople {
			t.Error("has_people は false のはずなのだ")
		}
		if profile.Elements.People.AvgPeoplePerImage != 0 {
			t.Errorf("平均人数は 0 のはずなのだ: %v", profile.Elements.People.AvgPeoplePerImage)
		}
	})
}

func contains(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}
