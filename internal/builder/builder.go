package builder

import (
	"context"
	"fmt"

	"github.com/shouni/go-postcard-kit/internal/runner"
	"github.com/shouni/go-postcard-kit/pkg/analysis"
	"github.com/shouni/go-postcard-kit/pkg/generator"
	"github.com/shouni/go-postcard-kit/pkg/prompts"
	"github.com/shouni/go-postcard-kit/pkg/publisher"

	"github.com/shouni/go-gemini-client/pkg/gemini"
	"golang.org/x/time/rate"
	"google.golang.org/genai"
)

// BuildAnalysisRunner は写真のビジョン分析を担当する Runner を構築します。
func BuildAnalysisRunner(ctx context.Context, appCtx *AppContext) (runner.AnalysisRunner, error) {
	analyzer, err := analysis.NewGeminiAnalyzer(ctx, appCtx.Config.GeminiAPIKey, appCtx.Config.VisionModel)
	if err != nil {
		return nil, fmt.Errorf("ビジョンアナライザーの初期化に失敗したのだ: %w", err)
	}

	limiter := rate.NewLimiter(rate.Every(appCtx.Options.RateInterval), generator.DefaultRateBurst)

	return runner.NewAlbumAnalysisRunner(analyzer, appCtx.Reader, limiter), nil
}

// BuildPostcardRunner はポストカードの画像・キャプション生成を担当する Runner を構築します。
func BuildPostcardRunner(ctx context.Context, appCtx *AppContext) (runner.PostcardRunner, error) {
	imgGen, err := generator.InitializeImageGenerator(
		appCtx.Config.GeminiImageModel,
		appCtx.Reader,
		appCtx.httpClient,
		appCtx.aiClient,
	)
	if err != nil {
		return nil, fmt.Errorf("GeminiGeneratorの初期化に失敗したのだ: %w", err)
	}

	captionPrompt, err := prompts.NewTextPromptBuilder()
	if err != nil {
		return nil, fmt.Errorf("キャプションプロンプトの初期化に失敗したのだ: %w", err)
	}

	composer := generator.NewPostcardComposer(
		imgGen,
		appCtx.aiClient,
		prompts.NewPostcardImageBuilder(),
		captionPrompt,
		appCtx.Config.GeminiModel,
		rate.NewLimiter(rate.Every(appCtx.Options.RateInterval), generator.DefaultRateBurst),
	)

	return runner.NewDefaultPostcardRunner(composer), nil
}

// BuildPublisherRunner はコンテンツ保存を行う Runner を構築します。
func BuildPublisherRunner(appCtx *AppContext) runner.PublisherRunner {
	pub := publisher.NewPostcardPublisher(appCtx.Writer)
	return runner.NewDefaultPublisherRunner(appCtx.Options, pub)
}

// InitializeAIClient は gemini クライアントを初期化します。
func InitializeAIClient(ctx context.Context, apiKey string) (gemini.GenerativeModel, error) {
	const defaultGeminiTemperature = float32(0.2)
	clientConfig := gemini.Config{
		APIKey:      apiKey,
		Temperature: genai.Ptr(defaultGeminiTemperature),
	}
	aiClient, err := gemini.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("AIクライアントの初期化に失敗しました: %w", err)
	}
	return aiClient, nil
}
