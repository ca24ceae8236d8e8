package config

import (
	"time"

	"github.com/shouni/go-utils/envutil"
)

// デフォルト値の定義なのだ
const (
	DefaultModel        = "gemini-3-flash-preview"
	DefaultImageModel   = "gemini-3-pro-image-preview"
	DefaultVisionModel  = "gemini-3-flash-preview"
	DefaultHTTPTimeout  = 30 * time.Second
	DefaultRateInterval = 2 * time.Second
	DefaultSessionTTL   = 1 * time.Hour
	DefaultOutputDir    = "output/postcard" // パブリッシャーで使用するデフォルト保存先なのだ
)

// Config はアプリケーション全体の環境設定（APIキーやクラウド設定）を保持する構造体なのだ。
type Config struct {
	ProjectID        string
	LocationID       string
	GeminiAPIKey     string
	GeminiModel      string
	GeminiImageModel string
	VisionModel      string

	Options GenerateOptions
}

// LoadConfig は環境変数から設定を読み込み、構造体を返すのだ！
func LoadConfig() *Config {
	cfg := &Config{
		ProjectID:        envutil.GetEnv("PROJECT_ID", ""),
		LocationID:       envutil.GetEnv("REGION", ""),
		GeminiAPIKey:     envutil.GetEnv("GEMINI_API_KEY", ""),
		GeminiModel:      envutil.GetEnv("GEMINI_MODEL", DefaultModel),
		GeminiImageModel: envutil.GetEnv("IMAGE_GEMINI_MODEL", DefaultImageModel),
		VisionModel:      envutil.GetEnv("VISION_GEMINI_MODEL", DefaultVisionModel),
	}
	return cfg
}

// GenerateOptions は CLI フラグから渡される実行時のパラメータなのだ。
type GenerateOptions struct {
	// ソース入力関連
	PhotoDir    string   // --photo-dir: アルバム写真のディレクトリ
	PhotoFiles  []string // --photo: 個別の写真パス（複数指定可）
	RecordsFile string   // --records-file: 分析済みレコード JSON のパス
	ProfileFile string   // --profile-file: 集約済みプロファイル JSON のパス

	// 出力関連
	OutputDir string // --output-dir

	// ポストカード設定
	Location        string // --location: "Lisbon, Fall 2025" のようなラベル
	ArtStyle        string // --art-style
	CaptionTone     string // --caption-tone
	UserDescription string // --description

	// AI挙動設定
	AIModel     string // --model: テキスト生成用のGeminiモデル
	ImageModel  string // --image-model: 画像生成用のGeminiモデル
	VisionModel string // --vision-model: 写真分析用のGeminiモデル

	// 実行制御
	HTTPTimeout  time.Duration // --http-timeout
	RateInterval time.Duration // --rate-interval
}
