package aggregate

import "github.com/shouni/go-postcard-kit/pkg/domain"

// 視覚特徴の集約パラメータと、フィールドごとのフォールバック文字列です。
const (
	topColorsLimit = 8

	fallbackColorTemperature = "mixed"
	fallbackLighting         = "varied"
	fallbackSetting          = "mixed"
	fallbackTimeOfDay        = "varied"
	fallbackWeather          = "varied"
)

// reduceVisual は視覚特徴を集約します。
//
// 色は全レコードの色トークンを 1 つの多重集合にまとめて上位 8 件を取り、
// 色温度・光・屋内外・時間帯・天候はそれぞれ独立に分布と最頻値を出します。
// あるフィールドを 1 件も供給したレコードがなければ、最頻値はフィールド
// ごとのフォールバック文字列になります。
func reduceVisual(records []domain.AnalysisRecord) domain.VisualSummary {
	colors := newCounter()
	temperature := newCounter()
	lighting := newCounter()
	setting := newCounter()
	timeOfDay := newCounter()
	weather := newCounter()

	for _, r := range records {
		if r.Visual == nil {
			continue
		}
		for _, c := range r.Visual.DominantColors {
			if c != "" {
				colors.Add(c)
			}
		}
		if v := r.Visual.ColorTemperature; v != "" {
			temperature.Add(v)
		}
		if v := r.Visual.LightingCondition; v != "" {
			lighting.Add(v)
		}
		if v := r.Visual.IndoorOutdoor; v != "" {
			setting.Add(v)
		}
		if v := r.Visual.TimeOfDay; v != "" {
			timeOfDay.Add(v)
		}
		if v := r.Visual.WeatherApparent; v != "" {
			weather.Add(v)
		}
	}

	topColors := make([]domain.ColorCount, 0, topColorsLimit)
	for _, e := range colors.MostCommon(topColorsLimit) {
		topColors = append(topColors, domain.ColorCount{Color: e.Key, Count: e.Count})
	}

	return domain.VisualSummary{
		Colors: domain.ColorPalette{
			TopColors:             topColors,
			UniqueColorsMentioned: colors.Len(),
		},
		ColorTemperature: summarize(temperature, fallbackColorTemperature),
		Lighting:         summarize(lighting, fallbackLighting),
		Setting:          summarize(setting, fallbackSetting),
		TimeOfDay:        summarize(timeOfDay, fallbackTimeOfDay),
		Weather:          summarize(weather, fallbackWeather),
	}
}

// summarize はカウンタから分布と最頻値のペアを作ります。
// 最頻値の同数タイブレークもカウンタの初見順規則に従います。
func summarize(c *counter, fallback string) domain.CategoricalSummary {
	return domain.CategoricalSummary{
		Distribution: c.Distribution(),
		Dominant:     c.TopOr(fallback),
	}
}
