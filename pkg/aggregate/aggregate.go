// Package aggregate は、写真ごとのビジョン分析結果をアルバム単位の
// 統計プロファイルへ還元する決定論的な集約エンジンです。
//
// このパッケージは純粋な計算のみを行います。I/O もログも持たず、
// 同じ入力（順序を含む）には常にビット単位で同一のプロファイルを返します。
// いくつかのランキングは同数時に「入力で先に現れたものが勝つ」規則を
// 採用しているため、入力順は意味を持ちます。
package aggregate

import (
	"errors"
	"math"

	"github.com/shouni/go-postcard-kit/pkg/domain"
)

// ErrNoValidInput は、有効なレコードが 1 件も残らなかったときに返されます。
// 部分的な失敗レコードは黙って捨てられますが、全滅はこのエラーで報告します。
var ErrNoValidInput = errors.New("集約できる有効な画像分析結果がありません")

// Aggregate は分析レコード群を 1 つの AlbumProfile に還元します。
//
// Success が false のレコードと空ペイロードのレコードは集約前に除外され、
// すべての割合は除外後の有効レコード数を分母に計算されます。
// 有効レコードが 0 件の場合のみ ErrNoValidInput を返し、それ以外で
// フィールドが欠けていても失敗せず、文書化されたフォールバック値に解決します。
func Aggregate(records []domain.AnalysisRecord) (*domain.AlbumProfile, error) {
	valid := filterValid(records)
	if len(valid) == 0 {
		return nil, ErrNoValidInput
	}
	total := len(valid)

	scene := reduceScenes(valid, total)
	elements := reduceElements(valid, total)
	visual := reduceVisual(valid)
	mood := reduceMood(valid, total)
	notable := reduceNotable(valid)

	return &domain.AlbumProfile{
		TotalImagesAnalyzed: total,
		Scene:               scene,
		Elements:            elements,
		Visual:              visual,
		Mood:                mood,
		Notable:             notable,
		Synthesis:           project(scene, elements, visual, mood, notable),
	}, nil
}

// filterValid は集約対象のレコードだけを入力順のまま取り出します。
func filterValid(records []domain.AnalysisRecord) []domain.AnalysisRecord {
	valid := make([]domain.AnalysisRecord, 0, len(records))
	for _, r := range records {
		if r.IsValid() {
			valid = append(valid, r)
		}
	}
	return valid
}

// round1 は小数第 1 位への四捨五入（0.5 は切り上げ）です。
// ゴールデン出力の比較対象になるため、丸め規則はここで一元化します。
func round1(x float64) float64 {
	return math.Round(x*10) / 10
}

// round2 は小数第 2 位への四捨五入です。平均プロミネンス用です。
func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// percentage は count / total を百分率にして小数第 1 位に丸めます。
func percentage(count, total int) float64 {
	return round1(float64(count) / float64(total) * 100)
}
