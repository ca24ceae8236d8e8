// Package analysis は、旅行写真 1 枚ごとの構造化ビジョン分析を担います。
// 集約エンジンが消費する AnalysisRecord を生成する、上流のコラボレータです。
package analysis

import (
	"context"

	"github.com/shouni/go-postcard-kit/pkg/domain"
)

// Analyzer は画像バイト列を分析して構造化レコードを返す契約です。
type Analyzer interface {
	// Analyze は 1 枚の画像を分析します。ビジョンモデルの呼び出しや応答の
	// パースに失敗した場合は、エラーではなく Success=false のレコードを
	// 返します。集約側は失敗レコードを黙って捨てる契約だからです。
	// error を返すのは、コンテキストの取り消しなど呼び出し自体が成立
	// しなかった場合に限られます。
	Analyze(ctx context.Context, imageData []byte, mimeType string) (domain.AnalysisRecord, error)
}
