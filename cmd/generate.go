package cmd

import (
	"fmt"
	"log/slog"

	"github.com/shouni/go-postcard-kit/internal/pipeline"

	"github.com/spf13/cobra"
)

// generateCmd は、写真分析からポストカード公開までの全工程を実行するのだ。
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "アルバム写真からポストカードを一気に生成しますなのだ。",
	Long: `アルバムの写真をビジョンAIで分析し、統計的に集約したうえで、
画風とトーンを反映したポストカード画像とキャプションを生成するのだ。
出力は画像ファイルとサマリー（Markdown）になるのだよ。`,
	RunE: generateCommand,
}

func init() {
}

func generateCommand(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	// 1. 必須チェック
	if opts.PhotoDir == "" && len(opts.PhotoFiles) == 0 {
		return fmt.Errorf("写真（--photo-dir または --photo）を指定してほしいのだ")
	}
	if opts.Location == "" {
		return fmt.Errorf("ロケーションラベル（--location）を指定してほしいのだ")
	}

	// 2. 環境変数等から基本設定をロードするのだ
	cfg := loadConfig()

	slog.Info("ポストカード生成パイプラインを起動するのだ！",
		"location", opts.Location,
		"art_style", opts.ArtStyle,
		"caption_tone", opts.CaptionTone,
		"output", opts.OutputDir)

	// 3. 更新した config を考慮しつつパイプラインを実行するのだ
	err := pipeline.Execute(ctx, cfg)
	if err != nil {
		return fmt.Errorf("パイプライン実行中にエラーが発生したのだ: %w", err)
	}

	slog.Info("すべての生成工程が完了したのだ！")
	return nil
}
