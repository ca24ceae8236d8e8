package cmd

import (
	"fmt"
	"log/slog"

	"github.com/shouni/go-postcard-kit/internal/pipeline"

	"github.com/spf13/cobra"
)

// analyzeCmd は、写真のビジョン分析（JSON出力）のみを実行するのだ。
var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "写真の分析レコード（JSON）のみを生成して保存するのだ。",
	Long: `アルバムの各写真をビジョンAIで分析し、シーン分類・エレメント・
色彩・ムードの構造化レコードをJSON形式で出力するのだ。
集約やポストカード生成は行わないのだよ。`,
	RunE: analyzeCommand,
}

func init() {
}

func analyzeCommand(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	if opts.PhotoDir == "" && len(opts.PhotoFiles) == 0 {
		return fmt.Errorf("写真（--photo-dir または --photo）を指定してほしいのだ")
	}

	cfg := loadConfig()

	slog.Info("写真分析モードを起動するのだ！",
		"vision_model", cfg.VisionModel,
		"output", opts.OutputDir)

	if err := pipeline.ExecuteAnalyzeOnly(ctx, cfg); err != nil {
		return fmt.Errorf("写真分析中にエラーが発生したのだ: %w", err)
	}

	slog.Info("分析レコード（JSON）の生成が完了したのだ！", "output_dir", opts.OutputDir)
	return nil
}
