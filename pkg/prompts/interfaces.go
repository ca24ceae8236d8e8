package prompts

import "github.com/shouni/go-postcard-kit/pkg/domain"

// ImagePrompt は、ポストカード画像用の AI プロンプトを構築する契約です。
type ImagePrompt interface {
	// BuildImage は、集約プロファイルと利用者パラメータからユーザープロンプトとシステムプロンプトを生成します。
	BuildImage(synthesis domain.SynthesisProfile, params domain.PostcardParams) (userPrompt string, systemPrompt string)
}

// CaptionPrompt は、キャプション用の AI プロンプトを構築する契約です。
type CaptionPrompt interface {
	// Build は、指定されたモード（例: "caption"）とデータに基づいてプロンプト文字列を生成します。
	Build(mode string, data TemplateData) (string, error)
}
