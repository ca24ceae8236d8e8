package domain

// AlbumProfile はアルバム全体の集約結果です。
// 集約呼び出しごとに新しく生成され、生成後は変更されません。
type AlbumProfile struct {
	TotalImagesAnalyzed int              `json:"total_images_analyzed"`
	Scene               SceneSummary     `json:"scene_summary"`
	Elements            ElementSummary   `json:"element_summary"`
	Visual              VisualSummary    `json:"visual_summary"`
	Mood                MoodSummary      `json:"mood_summary"`
	Notable             NotableSummary   `json:"notable_elements"`
	Synthesis           SynthesisProfile `json:"synthesis_prompt_data"`
}

// CategoryCount はランキング 1 行分（カテゴリ、出現数、有効レコード比の割合）です。
type CategoryCount struct {
	Category   string  `json:"category"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// SceneSummary はシーン分類の集約結果です。
type SceneSummary struct {
	PrimaryCategories []CategoryCount `json:"primary_categories"`
	AllCategories     []CategoryCount `json:"all_categories"`
	DominantSceneType string          `json:"dominant_scene_type"`
	SceneDiversity    int             `json:"scene_diversity"`
}

// ElementStat は追跡対象エレメント 1 件の統計です。
type ElementStat struct {
	Element       string  `json:"element"`
	PresenceCount int     `json:"presence_count"`
	PresenceRate  float64 `json:"presence_rate"`
	AvgProminence float64 `json:"avg_prominence"`
}

// PeoplePresence は people エレメント固有の追加集計です。
type PeoplePresence struct {
	ImagesWithPeople  int     `json:"images_with_people"`
	AvgPeoplePerImage float64 `json:"avg_people_per_image"`
}

// ElementSummary はセグメント化エレメントの集約結果です。
type ElementSummary struct {
	Stats            map[string]ElementStat `json:"element_stats"`
	RankedByPresence []ElementStat          `json:"ranked_by_presence"`
	DominantElements []string               `json:"dominant_elements"`
	RareElements     []string               `json:"rare_elements"`
	People           PeoplePresence         `json:"people_presence"`
}

// ColorCount は色トークンの出現数です。
type ColorCount struct {
	Color string `json:"color"`
	Count int    `json:"count"`
}

// ColorPalette は全レコードを通した色の集計です。
type ColorPalette struct {
	TopColors             []ColorCount `json:"top_colors"`
	UniqueColorsMentioned int          `json:"unique_colors_mentioned"`
}

// CategoricalSummary はカテゴリ分布と最頻値のペアです。
// Dominant はデータが一切ない場合、フィールドごとのフォールバック文字列になります。
type CategoricalSummary struct {
	Distribution map[string]int `json:"distribution"`
	Dominant     string         `json:"dominant"`
}

// VisualSummary は視覚特徴の集約結果です。
type VisualSummary struct {
	Colors           ColorPalette       `json:"color_palette"`
	ColorTemperature CategoricalSummary `json:"color_temperature"`
	Lighting         CategoricalSummary `json:"lighting"`
	Setting          CategoricalSummary `json:"setting"`
	TimeOfDay        CategoricalSummary `json:"time_of_day"`
	Weather          CategoricalSummary `json:"weather"`
}

// TagCount はムードタグの出現数です。
type TagCount struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

// MoodSummary はムードと雰囲気の集約結果です。
// MoodConsistency は最頻ムードの出現数を有効レコード数で割った [0,1] の値で、
// アルバムの均質さの目安に過ぎません（統計的な信頼区間ではありません）。
type MoodSummary struct {
	MoodDistribution   map[string]int `json:"mood_distribution"`
	DominantMood       string         `json:"dominant_mood"`
	SecondaryMoods     []string       `json:"secondary_moods"`
	EnergyDistribution map[string]int `json:"energy_distribution"`
	OverallEnergy      string         `json:"overall_energy"`
	TopAtmosphereTags  []TagCount     `json:"top_atmosphere_tags"`
	MoodConsistency    float64        `json:"mood_consistency"`
}

// NotableCount は特徴的エレメントの出現数です。
type NotableCount struct {
	Element string `json:"element"`
	Count   int    `json:"count"`
}

// NotableSummary は特徴的エレメントの集約結果です。
// RecurringElements は 2 回以上出現したエレメントを頻度順に並べたものです。
type NotableSummary struct {
	AllNotableElements []NotableCount `json:"all_notable_elements"`
	UniqueNotableCount int            `json:"unique_notable_count"`
	RecurringElements  []string       `json:"recurring_elements"`
}

// SynthesisProfile は画像・キャプション生成のプロンプトに流し込む平坦な射影です。
// フィールド名とスライス長は下流のプロンプト構築が依存する固定の形なので、
// すべてのフィールドは計算値かフォールバック値を必ず持ちます。
type SynthesisProfile struct {
	PrimarySceneType         string   `json:"primary_scene_type"`
	SecondarySceneTypes      []string `json:"secondary_scene_types"`
	DominantVisualElements   []string `json:"dominant_visual_elements"`
	ColorPalette             []string `json:"color_palette"`
	ColorTemperature         string   `json:"color_temperature"`
	LightingStyle            string   `json:"lighting_style"`
	Setting                  string   `json:"setting"`
	TimeOfDay                string   `json:"time_of_day"`
	DominantMood             string   `json:"dominant_mood"`
	MoodDescriptors          []string `json:"mood_descriptors"`
	EnergyLevel              string   `json:"energy_level"`
	RecurringNotableElements []string `json:"recurring_notable_elements"`
	HasPeople                bool     `json:"has_people"`
}
