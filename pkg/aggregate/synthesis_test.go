package aggregate

import (
	"reflect"
	"testing"

	"github.com/shouni/go-postcard-kit/pkg/domain"
)

func TestProject_Shape(t *testing.T) {
	t.Run("射影はスライス長の上限を守るのだ", func(t *testing.T) {
		records := []domain.AnalysisRecord{
			{
				Success: true,
				Scene: &domain.SceneBlock{
					PrimaryCategory: "architecture",
				},
				Visual: &domain.VisualBlock{
					DominantColors: []string{"c1", "c2", "c3", "c4", "c5", "c6", "c7"},
				},
				Mood: &domain.MoodBlock{
					OverallMood:     "vibrant",
					DescriptiveTags: []string{"t1", "t2", "t3", "t4", "t5", "t6"},
				},
			},
			sceneRecord("streets_transit"),
			sceneRecord("food"),
			sceneRecord("interiors"),
			sceneRecord("nature_general"),
		}

		profile, err := Aggregate(records)
		if err != nil {
			t.Fatalf("集約に失敗したのだ: %v", err)
		}

		syn := profile.Synthesis
		if got := len(syn.SecondarySceneTypes); got != 3 {
			t.Errorf("セカンダリシーンは 2〜4 位の 3 件のはずなのだ: %d", got)
		}
		if got := len(syn.ColorPalette); got != 5 {
			t.Errorf("カラーパレットは 5 色のはずなのだ: %d", got)
		}
		if got := len(syn.MoodDescriptors); got > 5+2 {
			t.Errorf("ムード記述子が多すぎるのだ: %d", got)
		}
	})

	t.Run("セカンダリシーンはプライマリランキングの 2 位以降なのだ", func(t *testing.T) {
		records := []domain.AnalysisRecord{
			sceneRecord("beach"),
			sceneRecord("beach"),
			sceneRecord("city"),
		}

		profile, err := Aggregate(records)
		if err != nil {
			t.Fatalf("集約に失敗したのだ: %v", err)
		}

		syn := profile.Synthesis
		if syn.PrimarySceneType != "beach" {
			t.Errorf("primary_scene_type が違うのだ: %s", syn.PrimarySceneType)
		}
		if want := []string{"city"}; !reflect.DeepEqual(syn.SecondarySceneTypes, want) {
			t.Errorf("secondary_scene_types が違うのだ: %+v", syn.SecondarySceneTypes)
		}
	})

	t.Run("ムード記述子はセカンダリムード＋上位タグの結合なのだ", func(t *testing.T) {
		records := []domain.AnalysisRecord{
			moodRecord(&domain.MoodBlock{OverallMood: "vibrant", DescriptiveTags: []string{"lively"}}),
			moodRecord(&domain.MoodBlock{OverallMood: "vibrant", DescriptiveTags: []string{"lively", "warm"}}),
			moodRecord(&domain.MoodBlock{OverallMood: "serene"}),
		}

		profile, err := Aggregate(records)
		if err != nil {
			t.Fatalf("集約に失敗したのだ: %v", err)
		}

		want := []string{"serene", "lively", "warm"}
		if !reflect.DeepEqual(profile.Synthesis.MoodDescriptors, want) {
			t.Errorf("mood_descriptors が違うのだ。\n期待: %+v\n実際: %+v", want, profile.Synthesis.MoodDescriptors)
		}
	})

	t.Run("全フィールドが必ず値を持つのだ", func(t *testing.T) {
		// ムードと視覚特徴を一切持たない最小限の入力なのだ
		records := []domain.AnalysisRecord{
			{Success: true, Notable: []string{"lighthouse"}},
		}

		profile, err := Aggregate(records)
		if err != nil {
			t.Fatalf("集約に失敗したのだ: %v", err)
		}

		syn := profile.Synthesis
		for field, got := range map[string]string{
			"primary_scene_type": syn.PrimarySceneType,
			"color_temperature":  syn.ColorTemperature,
			"lighting_style":     syn.LightingStyle,
			"setting":            syn.Setting,
			"time_of_day":        syn.TimeOfDay,
			"dominant_mood":      syn.DominantMood,
			"energy_level":       syn.EnergyLevel,
		} {
			if got == "" {
				t.Errorf("%s が空文字になっているのだ", field)
			}
		}
		if syn.SecondarySceneTypes == nil || syn.ColorPalette == nil ||
			syn.MoodDescriptors == nil || syn.RecurringNotableElements == nil {
			t.Error("スライスフィールドは nil ではなく空スライスであるべきなのだ")
		}
	})
}

func TestCounter_FirstSeenTieBreak(t *testing.T) {
	c := newCounter()
	for _, key := range []string{"b", "a", "c", "a", "b", "c"} {
		c.Add(key)
	}

	entries := c.MostCommon(0)
	got := []string{entries[0].Key, entries[1].Key, entries[2].Key}
	if want := []string{"b", "a", "c"}; !reflect.DeepEqual(got, want) {
		t.Errorf("全件同数なら初見順のはずなのだ: %+v", got)
	}

	c.Add("c")
	if key, count, ok := c.Top(); !ok || key != "c" || count != 3 {
		t.Errorf("最頻キーが違うのだ: %s (%d)", key, count)
	}
}

func TestRounding(t *testing.T) {
	tests := []struct {
		count int
		total int
		want  float64
	}{
		{1, 3, 33.3},
		{2, 3, 66.7},
		{1, 8, 12.5},
		{1, 16, 6.3}, // 6.25 は切り上げで 6.3 になるのだ
		{3, 3, 100.0},
		{0, 3, 0.0},
	}

	for _, tt := range tests {
		if got := percentage(tt.count, tt.total); got != tt.want {
			t.Errorf("percentage(%d, %d) = %v, want %v", tt.count, tt.total, got, tt.want)
		}
	}
}
