package aggregate

import (
	"reflect"
	"testing"

	"github.com/shouni/go-postcard-kit/pkg/domain"
)

func moodRecord(m *domain.MoodBlock) domain.AnalysisRecord {
	return domain.AnalysisRecord{Success: true, Mood: m}
}

func TestReduceMood(t *testing.T) {
	t.Run("最頻ムードとセカンダリムードが取れるのだ", func(t *testing.T) {
		records := []domain.AnalysisRecord{
			moodRecord(&domain.MoodBlock{OverallMood: "vibrant", EnergyLevel: "high"}),
			moodRecord(&domain.MoodBlock{OverallMood: "vibrant", EnergyLevel: "high"}),
			moodRecord(&domain.MoodBlock{OverallMood: "serene", EnergyLevel: "low"}),
			moodRecord(&domain.MoodBlock{OverallMood: "nostalgic"}),
		}

		profile, err := Aggregate(records)
		if err != nil {
			t.Fatalf("集約に失敗したのだ: %v", err)
		}

		mood := profile.Mood
		if mood.DominantMood != "vibrant" {
			t.Errorf("dominant_mood が違うのだ: %s", mood.DominantMood)
		}
		if want := []string{"serene", "nostalgic"}; !reflect.DeepEqual(mood.SecondaryMoods, want) {
			t.Errorf("secondary_moods が違うのだ: %+v", mood.SecondaryMoods)
		}
		if mood.OverallEnergy != "high" {
			t.Errorf("overall_energy が違うのだ: %s", mood.OverallEnergy)
		}
		if mood.MoodConsistency != 0.5 {
			t.Errorf("mood_consistency が違うのだ: %v", mood.MoodConsistency)
		}
	})

	t.Run("ムードが 1 種類だけならセカンダリは空なのだ", func(t *testing.T) {
		records := []domain.AnalysisRecord{
			moodRecord(&domain.MoodBlock{OverallMood: "serene"}),
			moodRecord(&domain.MoodBlock{OverallMood: "serene"}),
		}

		profile, err := Aggregate(records)
		if err != nil {
			t.Fatalf("集約に失敗したのだ: %v", err)
		}
		if len(profile.Mood.SecondaryMoods) != 0 {
			t.Errorf("セカンダリは空のはずなのだ: %+v", profile.Mood.SecondaryMoods)
		}
		if profile.Mood.MoodConsistency != 1.0 {
			t.Errorf("全会一致なら 1.0 のはずなのだ: %v", profile.Mood.MoodConsistency)
		}
	})

	t.Run("ムードデータが皆無ならフォールバックに落ちるのだ", func(t *testing.T) {
		records := []domain.AnalysisRecord{
			{
				Success: true,
				Elements: &domain.ElementBlock{
					Sky: domain.ElementObservation{Present: true, Prominence: 0.5},
				},
			},
		}

		profile, err := Aggregate(records)
		if err != nil {
			t.Fatalf("集約に失敗したのだ: %v", err)
		}
		if profile.Mood.DominantMood != "mixed" {
			t.Errorf("dominant_mood のフォールバックが違うのだ: %s", profile.Mood.DominantMood)
		}
		if profile.Mood.OverallEnergy != "medium" {
			t.Errorf("overall_energy のフォールバックが違うのだ: %s", profile.Mood.OverallEnergy)
		}
		if profile.Mood.MoodConsistency != 0 {
			t.Errorf("データ皆無なら 0 のはずなのだ: %v", profile.Mood.MoodConsistency)
		}
	})

	t.Run("タグは上位 10 件で打ち切られるのだ", func(t *testing.T) {
		tags := []string{"t1", "t2", "t3", "t4", "t5", "t6", "t7", "t8", "t9", "t10", "t11"}
		records := []domain.AnalysisRecord{
			moodRecord(&domain.MoodBlock{OverallMood: "playful", DescriptiveTags: tags}),
		}

		profile, err := Aggregate(records)
		if err != nil {
			t.Fatalf("集約に失敗したのだ: %v", err)
		}
		if got := len(profile.Mood.TopAtmosphereTags); got != 10 {
			t.Errorf("タグは 10 件で打ち切られるはずなのだ: %d", got)
		}
	})
}

func TestReduceNotable(t *testing.T) {
	t.Run("2 回以上出現したものだけが recurring になるのだ", func(t *testing.T) {
		records := []domain.AnalysisRecord{
			{Success: true, Notable: []string{"lighthouse", "fishing boat"}},
			{Success: true, Notable: []string{"lighthouse", "tram"}},
		}

		profile, err := Aggregate(records)
		if err != nil {
			t.Fatalf("集約に失敗したのだ: %v", err)
		}

		notable := profile.Notable
		if notable.UniqueNotableCount != 3 {
			t.Errorf("unique_notable_count が違うのだ: %d", notable.UniqueNotableCount)
		}
		if want := []string{"lighthouse"}; !reflect.DeepEqual(notable.RecurringElements, want) {
			t.Errorf("recurring_elements が違うのだ: %+v", notable.RecurringElements)
		}
		if notable.AllNotableElements[0].Element != "lighthouse" || notable.AllNotableElements[0].Count != 2 {
			t.Errorf("最頻エレメントが違うのだ: %+v", notable.AllNotableElements[0])
		}
	})

	t.Run("recurring は頻度順に並ぶのだ", func(t *testing.T) {
		records := []domain.AnalysisRecord{
			{Success: true, Notable: []string{"tram", "lighthouse", "lighthouse"}},
			{Success: true, Notable: []string{"tram", "lighthouse"}},
		}

		profile, err := Aggregate(records)
		if err != nil {
			t.Fatalf("集約に失敗したのだ: %v", err)
		}
		if want := []string{"lighthouse", "tram"}; !reflect.DeepEqual(profile.Notable.RecurringElements, want) {
			t.Errorf("頻度順になっていないのだ: %+v", profile.Notable.RecurringElements)
		}
	})
}
