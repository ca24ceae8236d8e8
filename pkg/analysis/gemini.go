package analysis

import (
	"context"
	"fmt"

	"github.com/shouni/go-postcard-kit/pkg/domain"

	"google.golang.org/genai"
)

// 分析の一貫性を優先した控えめな生成設定です。
const (
	defaultAnalysisTemperature = float32(0.2)
	defaultAnalysisMaxTokens   = int32(1000)
)

// GeminiAnalyzer は Gemini のマルチモーダル呼び出しで写真を分析する実体です。
type GeminiAnalyzer struct {
	client *genai.Client
	model  string
	prompt string
}

// NewGeminiAnalyzer は GeminiAnalyzer を初期化します。
func NewGeminiAnalyzer(ctx context.Context, apiKey, model string) (*GeminiAnalyzer, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("Gemini API キーは必須です")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("ビジョンクライアントの初期化に失敗しました: %w", err)
	}

	return &GeminiAnalyzer{
		client: client,
		model:  model,
		prompt: AnalysisPrompt,
	}, nil
}

// Analyze は 1 枚の画像を Gemini に送り、構造化レコードにパースして返します。
// モデル呼び出しやパースの失敗は Success=false のレコードに畳み込みます。
func (ga *GeminiAnalyzer) Analyze(ctx context.Context, imageData []byte, mimeType string) (domain.AnalysisRecord, error) {
	if err := ctx.Err(); err != nil {
		return domain.AnalysisRecord{}, err
	}

	parts := []*genai.Part{
		genai.NewPartFromText(ga.prompt),
		genai.NewPartFromBytes(imageData, mimeType),
	}
	contents := []*genai.Content{
		genai.NewContentFromParts(parts, genai.RoleUser),
	}
	config := &genai.GenerateContentConfig{
		Temperature:      genai.Ptr(defaultAnalysisTemperature),
		MaxOutputTokens:  defaultAnalysisMaxTokens,
		ResponseMIMEType: "application/json",
	}

	resp, err := ga.client.Models.GenerateContent(ctx, ga.model, contents, config)
	if err != nil {
		return FailedRecord(0, "", fmt.Errorf("ビジョン分析の呼び出しに失敗しました: %w", err)), nil
	}

	rec, err := ParseRecord(resp.Text())
	if err != nil {
		return FailedRecord(0, "", err), nil
	}
	return rec, nil
}
