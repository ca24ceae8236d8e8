package cmd

import (
	"fmt"
	"os"

	"github.com/shouni/go-postcard-kit/internal/config"

	clibase "github.com/shouni/go-cli-base"
	"github.com/spf13/cobra"
)

// opts は全コマンドで共有する実行時オプションなのだ。
var opts config.GenerateOptions

// addAppFlags は、アプリケーション全般に適用されるグローバルフラグを定義するのだ。
func addAppFlags(rootCmd *cobra.Command) {
	// --- ソース入力関連 ---
	rootCmd.PersistentFlags().StringVarP(&opts.PhotoDir, "photo-dir", "d", "", "アルバム写真のディレクトリ（ローカルパス）なのだ。")
	rootCmd.PersistentFlags().StringArrayVarP(&opts.PhotoFiles, "photo", "p", nil, "個別の写真パス（複数指定できるのだ）。")

	// --- 生成結果の出力設定 ---
	rootCmd.PersistentFlags().StringVarP(&opts.OutputDir, "output-dir", "o", config.DefaultOutputDir, "保存先ディレクトリ（ローカル or gs://...）なのだ。")

	// --- ポストカード設定 ---
	rootCmd.PersistentFlags().StringVarP(&opts.Location, "location", "l", "", "ポストカードに載せるロケーションラベル（例: \"Lisbon, Fall 2025\"）なのだ。")
	rootCmd.PersistentFlags().StringVar(&opts.ArtStyle, "art-style", "vintage_postcard", "画像の画風なのだ（styles コマンドで一覧できるのだ）。")
	rootCmd.PersistentFlags().StringVar(&opts.CaptionTone, "caption-tone", "artistic", "キャプションのトーンなのだ（styles コマンドで一覧できるのだ）。")
	rootCmd.PersistentFlags().StringVar(&opts.UserDescription, "description", "", "旅の自由記述（プロンプトに添えられるのだ）。")

	// --- AIモデル・挙動設定 ---
	rootCmd.PersistentFlags().StringVar(&opts.AIModel, "model", config.DefaultModel, "キャプション生成に使う Gemini モデル名なのだ。")
	rootCmd.PersistentFlags().StringVar(&opts.ImageModel, "image-model", config.DefaultImageModel, "画像生成に使う Gemini モデル名なのだ。")
	rootCmd.PersistentFlags().StringVar(&opts.VisionModel, "vision-model", config.DefaultVisionModel, "写真分析に使う Gemini モデル名なのだ。")
	rootCmd.PersistentFlags().DurationVar(&opts.HTTPTimeout, "http-timeout", config.DefaultHTTPTimeout, "Webリクエストのタイムアウトなのだ。")
	rootCmd.PersistentFlags().DurationVar(&opts.RateInterval, "rate-interval", config.DefaultRateInterval, "AI呼び出しのレート制限間隔なのだ。")
}

// preRunAppE は、コマンド実行前に環境変数などの必須チェックを行うのだ。
func preRunAppE(cmd *cobra.Command, args []string) error {
	// Gemini APIを利用するため、APIキーの存在チェックは欠かせないのだ！
	if os.Getenv("GEMINI_API_KEY") == "" {
		return fmt.Errorf("エラー: 環境変数 GEMINI_API_KEY が設定されていません。Gemini APIの利用には必須なのだ")
	}

	return nil
}

// Execute は、アプリケーションのメインエントリポイントなのだ。
// main.go から呼び出されて、cobra のコマンドライン解析を開始するのだよ。
func Execute() {
	clibase.Execute(
		"postcard-kit",
		addAppFlags,
		preRunAppE,
		generateCmd,
		analyzeCmd,
		aggregateCmd,
		postcardCmd,
		stylesCmd,
	)
}

// loadConfig は環境変数と CLI フラグを統合した設定を返すのだ。
func loadConfig() *config.Config {
	cfg := config.LoadConfig()
	cfg.GeminiModel = opts.AIModel
	cfg.GeminiImageModel = opts.ImageModel
	cfg.VisionModel = opts.VisionModel
	cfg.Options = opts
	return cfg
}
