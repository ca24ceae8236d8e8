package domain

// AnalysisRecord は 1 枚の写真に対するビジョン分析の結果を保持します。
// 分析に失敗した場合は Success が false となり、ペイロードは空のままです。
// 集約エンジンは Success かつペイロードを持つレコードだけを対象にします。
type AnalysisRecord struct {
	Success    bool   `json:"success"`
	ImageIndex int    `json:"image_index"`
	FileName   string `json:"filename,omitempty"`
	Error      string `json:"error,omitempty"`

	Scene    *SceneBlock   `json:"scene_classification,omitempty"`
	Elements *ElementBlock `json:"segmented_elements,omitempty"`
	Visual   *VisualBlock  `json:"visual_features,omitempty"`
	Mood     *MoodBlock    `json:"mood_atmosphere,omitempty"`
	Notable  []string      `json:"notable_elements,omitempty"`
}

// SceneBlock はシーン分類の結果です。
// カテゴリ名はビジョンモデルが返す自由文字列で、閉じた集合ではありません。
type SceneBlock struct {
	PrimaryCategory     string   `json:"primary_category"`
	SecondaryCategories []string `json:"secondary_categories,omitempty"`
	Confidence          float64  `json:"confidence,omitempty"`
}

// ElementObservation は追跡対象エレメント 1 件の観測値です。
// Count は people のみ意味を持ちます（おおよその人数）。
type ElementObservation struct {
	Present    bool    `json:"present"`
	Prominence float64 `json:"prominence"`
	Count      int     `json:"count,omitempty"`
}

// ElementBlock は画像内のセグメント化されたエレメント群です。
// 追跡対象は固定の 7 種で、ゆるいマップではなく構造体として保持します。
type ElementBlock struct {
	Sky             ElementObservation `json:"sky"`
	Buildings       ElementObservation `json:"buildings"`
	Water           ElementObservation `json:"water"`
	People          ElementObservation `json:"people"`
	Vegetation      ElementObservation `json:"vegetation"`
	FoodDrinks      ElementObservation `json:"food_drinks"`
	VehiclesTransit ElementObservation `json:"vehicles_transit"`

	ForegroundFocus       string `json:"foreground_focus,omitempty"`
	BackgroundDescription string `json:"background_description,omitempty"`
}

// VisualBlock は色・光・環境といった低レベルの視覚特徴です。
// 各フィールドはビジョンモデル由来の自由なカテゴリトークンとして扱います。
type VisualBlock struct {
	DominantColors    []string `json:"dominant_colors,omitempty"`
	ColorTemperature  string   `json:"color_temperature,omitempty"`
	LightingCondition string   `json:"lighting_condition,omitempty"`
	IndoorOutdoor     string   `json:"indoor_outdoor,omitempty"`
	TimeOfDay         string   `json:"time_of_day,omitempty"`
	WeatherApparent   string   `json:"weather_apparent,omitempty"`
}

// MoodBlock は写真全体のムードと雰囲気です。
type MoodBlock struct {
	OverallMood     string   `json:"overall_mood,omitempty"`
	EnergyLevel     string   `json:"energy_level,omitempty"`
	DescriptiveTags []string `json:"descriptive_tags,omitempty"`
}
