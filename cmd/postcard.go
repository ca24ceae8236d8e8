package cmd

import (
	"fmt"
	"log/slog"

	"github.com/shouni/go-postcard-kit/internal/pipeline"

	"github.com/spf13/cobra"
)

// postcardCmd は、集約済みプロファイルからポストカードの生成と公開だけを実行するのだ。
var postcardCmd = &cobra.Command{
	Use:   "postcard",
	Short: "アルバムプロファイルからポストカードを生成して保存するのだ。",
	Long: `aggregate コマンドが出力したアルバムプロファイルのJSONを読み込み、
画風とトーンを反映したポストカード画像とキャプションを生成して
保存する最終ステージなのだ。写真の再分析は行わないのだよ。`,
	RunE: postcardCommand,
}

func init() {
	postcardCmd.Flags().StringVarP(&opts.ProfileFile, "profile-file", "P", "", "アルバムプロファイルJSONのパス（ローカル or gs://...）なのだ。")
}

func postcardCommand(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	if opts.ProfileFile == "" {
		return fmt.Errorf("アルバムプロファイル（--profile-file）を指定してほしいのだ")
	}
	if opts.Location == "" {
		return fmt.Errorf("ロケーションラベル（--location）を指定してほしいのだ")
	}

	cfg := loadConfig()

	slog.Info("ポストカード生成モードを起動するのだ！",
		"profile_file", opts.ProfileFile,
		"art_style", opts.ArtStyle,
		"caption_tone", opts.CaptionTone,
		"output", opts.OutputDir)

	if err := pipeline.ExecutePostcardOnly(ctx, cfg); err != nil {
		return fmt.Errorf("ポストカード生成中にエラーが発生したのだ: %w", err)
	}

	slog.Info("ポストカードの生成が完了したのだ！", "output_dir", opts.OutputDir)
	return nil
}
