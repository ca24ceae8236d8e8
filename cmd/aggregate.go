package cmd

import (
	"fmt"
	"log/slog"

	"github.com/shouni/go-postcard-kit/internal/pipeline"

	"github.com/spf13/cobra"
)

// aggregateCmd は、分析済みレコードからアルバムプロファイルだけを構築するのだ。
var aggregateCmd = &cobra.Command{
	Use:   "aggregate",
	Short: "分析レコードを集約してアルバムプロファイル（JSON）を保存するのだ。",
	Long: `analyze コマンドが出力した分析レコードのJSONを読み込み、
シーン・エレメント・色彩・ムードの統計と、生成プロンプト用の
射影データをまとめたアルバムプロファイルを出力するのだ。`,
	RunE: aggregateCommand,
}

func init() {
	aggregateCmd.Flags().StringVarP(&opts.RecordsFile, "records-file", "r", "", "分析レコードJSONのパス（ローカル or gs://...）なのだ。")
}

func aggregateCommand(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	if opts.RecordsFile == "" {
		return fmt.Errorf("分析レコード（--records-file）を指定してほしいのだ")
	}

	cfg := loadConfig()

	slog.Info("集約モードを起動するのだ！",
		"records_file", opts.RecordsFile,
		"output", opts.OutputDir)

	if err := pipeline.ExecuteAggregateOnly(ctx, cfg); err != nil {
		return fmt.Errorf("集約中にエラーが発生したのだ: %w", err)
	}

	slog.Info("アルバムプロファイル（JSON）の生成が完了したのだ！", "output_dir", opts.OutputDir)
	return nil
}
