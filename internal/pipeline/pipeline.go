package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/shouni/go-postcard-kit/internal/builder"
	"github.com/shouni/go-postcard-kit/internal/config"
	"github.com/shouni/go-postcard-kit/internal/runner"
	"github.com/shouni/go-postcard-kit/pkg/aggregate"
	"github.com/shouni/go-postcard-kit/pkg/domain"
	"github.com/shouni/go-postcard-kit/pkg/publisher"
	"github.com/shouni/go-postcard-kit/pkg/session"

	"github.com/shouni/go-http-kit/pkg/httpkit"
	"github.com/shouni/go-remote-io/pkg/gcsfactory"
)

const (
	recordsFileName = "analysis_records.json"
	profileFileName = "album_profile.json"
)

// Execute は、写真分析からポストカード公開までの全工程を実行するのだ。
func Execute(ctx context.Context, cfg *config.Config) error {
	appCtx, err := setupAppContext(ctx, cfg)
	if err != nil {
		return err
	}

	photoPaths, err := collectPhotoPaths(cfg.Options)
	if err != nil {
		return err
	}

	params, err := buildPostcardParams(cfg.Options)
	if err != nil {
		return err
	}

	sess, err := appCtx.Sessions.Create(photoPaths)
	if err != nil {
		return fmt.Errorf("セッションの作成に失敗したのだ: %w", err)
	}
	slog.Info("セッションを開始するのだ", "session_id", sess.ID, "photos", len(photoPaths))

	// --- Phase 1: Analysis Phase (写真分析) ---
	records, err := runAnalysisStep(ctx, appCtx, photoPaths)
	if err != nil {
		return err
	}
	sess.Records = records
	sess.Status = session.StatusAnalyzed
	if err := appCtx.Sessions.Update(sess); err != nil {
		return err
	}

	// --- Phase 2: Aggregation Phase (統計集約) ---
	profile, err := aggregate.Aggregate(records)
	if err != nil {
		return fmt.Errorf("アルバムの集約に失敗したのだ: %w", err)
	}
	sess.Profile = profile
	sess.Status = session.StatusAggregated
	if err := appCtx.Sessions.Update(sess); err != nil {
		return err
	}
	slog.Info("アルバムの集約が完了したのだ",
		"valid_images", profile.TotalImagesAnalyzed,
		"dominant_scene", profile.Scene.DominantSceneType)

	// 中間成果物も保存しておくと、postcard コマンド単体での再実行に使えるのだ
	if err := writeJSON(ctx, appCtx, profileFileName, profile); err != nil {
		return err
	}

	// --- Phase 3: Postcard Phase (ポストカード生成) ---
	postcard, err := runPostcardStep(ctx, appCtx, profile, params)
	if err != nil {
		return err
	}
	sess.Postcard = postcard
	sess.Status = session.StatusCompleted
	if err := appCtx.Sessions.Update(sess); err != nil {
		return err
	}

	// --- Phase 4: Publish Phase (公開/保存) ---
	result, err := runPublishStep(ctx, appCtx, postcard, profile)
	if err != nil {
		return err
	}

	slog.Info("ポストカードが完成したのだ！",
		"session_id", sess.ID,
		"image", result.ImagePath,
		"markdown", result.MarkdownPath)
	return nil
}

// ExecuteAnalyzeOnly は、写真分析だけを実行してレコード JSON を保存するのだ。
func ExecuteAnalyzeOnly(ctx context.Context, cfg *config.Config) error {
	appCtx, err := setupAppContext(ctx, cfg)
	if err != nil {
		return err
	}

	photoPaths, err := collectPhotoPaths(cfg.Options)
	if err != nil {
		return err
	}

	records, err := runAnalysisStep(ctx, appCtx, photoPaths)
	if err != nil {
		return err
	}

	if err := writeJSON(ctx, appCtx, recordsFileName, records); err != nil {
		return err
	}

	slog.Info("分析レコードを保存したのだ", "records", len(records))
	return nil
}

// ExecuteAggregateOnly は、分析済みレコードの JSON を読み込み、
// 集約だけを実行してプロファイル JSON を保存するのだ。
func ExecuteAggregateOnly(ctx context.Context, cfg *config.Config) error {
	appCtx, err := setupAppContext(ctx, cfg)
	if err != nil {
		return err
	}

	var records []domain.AnalysisRecord
	if err := readJSON(ctx, appCtx, cfg.Options.RecordsFile, &records); err != nil {
		return err
	}

	profile, err := aggregate.Aggregate(records)
	if err != nil {
		return fmt.Errorf("アルバムの集約に失敗したのだ: %w", err)
	}

	if err := writeJSON(ctx, appCtx, profileFileName, profile); err != nil {
		return err
	}

	slog.Info("アルバムプロファイルを保存したのだ",
		"valid_images", profile.TotalImagesAnalyzed,
		"dominant_scene", profile.Scene.DominantSceneType)
	return nil
}

// ExecutePostcardOnly は、集約済みプロファイルの JSON を基に、
// ポストカードの生成と公開だけを実行する最終ステージなのだ！
func ExecutePostcardOnly(ctx context.Context, cfg *config.Config) error {
	appCtx, err := setupAppContext(ctx, cfg)
	if err != nil {
		return err
	}

	var profile domain.AlbumProfile
	if err := readJSON(ctx, appCtx, cfg.Options.ProfileFile, &profile); err != nil {
		return err
	}

	params, err := buildPostcardParams(cfg.Options)
	if err != nil {
		return err
	}

	postcard, err := runPostcardStep(ctx, appCtx, &profile, params)
	if err != nil {
		return err
	}

	result, err := runPublishStep(ctx, appCtx, postcard, &profile)
	if err != nil {
		return err
	}

	slog.Info("ポストカードが完成したのだ！", "image", result.ImagePath, "markdown", result.MarkdownPath)
	return nil
}

// setupAppContext は、提供された設定と共有コンポーネントを使用して、アプリケーションコンテキストを初期化して返すのだ。
func setupAppContext(ctx context.Context, cfg *config.Config) (*builder.AppContext, error) {
	httpClient := httpkit.New(cfg.Options.HTTPTimeout)
	aiClient, err := builder.InitializeAIClient(ctx, cfg.GeminiAPIKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create ai client: %w", err)
	}

	gcsFactory, err := gcsfactory.NewGCSClientFactory(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCS client factory: %w", err)
	}

	reader, err := gcsFactory.NewInputReader()
	if err != nil {
		return nil, err
	}
	writer, err := gcsFactory.NewOutputWriter()
	if err != nil {
		return nil, err
	}

	sessions := session.NewCacheRepository(config.DefaultSessionTTL, config.DefaultSessionTTL)

	appCtx := builder.NewAppContext(cfg, httpClient, aiClient, reader, writer, sessions)
	return &appCtx, nil
}

// collectPhotoPaths は、--photo と --photo-dir からアルバムの写真パスを集めるのだ。
// ディレクトリは名前順に並べて、分析結果の順序を安定させるのだ。
func collectPhotoPaths(opts config.GenerateOptions) ([]string, error) {
	paths := append([]string{}, opts.PhotoFiles...)

	if opts.PhotoDir != "" {
		entries, err := os.ReadDir(opts.PhotoDir)
		if err != nil {
			return nil, fmt.Errorf("写真ディレクトリ '%s' の読み込みに失敗したのだ: %w", opts.PhotoDir, err)
		}
		var fromDir []string
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			name := entry.Name()
			if !runner.IsSupportedImage(name) {
				continue
			}
			fromDir = append(fromDir, filepath.Join(opts.PhotoDir, name))
		}
		sort.Strings(fromDir)
		paths = append(paths, fromDir...)
	}

	if len(paths) == 0 {
		return nil, fmt.Errorf("分析する写真がないのだ（--photo か --photo-dir を指定してほしいのだ）")
	}
	return paths, nil
}

// buildPostcardParams は、CLI フラグからポストカード生成パラメータを組み立てて検証するのだ。
func buildPostcardParams(opts config.GenerateOptions) (domain.PostcardParams, error) {
	params := domain.PostcardParams{
		LocationLabel:   opts.Location,
		ArtStyle:        domain.ArtStyle(opts.ArtStyle),
		CaptionTone:     domain.CaptionTone(opts.CaptionTone),
		UserDescription: opts.UserDescription,
	}
	if err := params.Validate(); err != nil {
		return domain.PostcardParams{}, err
	}
	return params, nil
}

// runAnalysisStep は AlbumAnalysisRunner を使って写真を並列分析するのだ
func runAnalysisStep(ctx context.Context, appCtx *builder.AppContext, photoPaths []string) ([]domain.AnalysisRecord, error) {
	slog.Info("Phase 1: 写真分析を開始するのだ...", "photos", len(photoPaths))
	analysisRunner, err := builder.BuildAnalysisRunner(ctx, appCtx)
	if err != nil {
		return nil, fmt.Errorf("AnalysisRunnerの構築に失敗したのだ: %w", err)
	}
	return analysisRunner.Run(ctx, photoPaths)
}

// runPostcardStep は PostcardRunner を使って画像とキャプションを生成するのだ
func runPostcardStep(ctx context.Context, appCtx *builder.AppContext, profile *domain.AlbumProfile, params domain.PostcardParams) (*domain.Postcard, error) {
	slog.Info("Phase 3: ポストカード生成を開始するのだ...",
		"art_style", string(params.ArtStyle),
		"caption_tone", string(params.CaptionTone))
	postcardRunner, err := builder.BuildPostcardRunner(ctx, appCtx)
	if err != nil {
		return nil, fmt.Errorf("PostcardRunnerの構築に失敗したのだ: %w", err)
	}
	return postcardRunner.Run(ctx, profile, params)
}

// runPublishStep は PublisherRunner を使って成果物を保存するのだ
func runPublishStep(ctx context.Context, appCtx *builder.AppContext, postcard *domain.Postcard, profile *domain.AlbumProfile) (publisher.PublishResult, error) {
	slog.Info("Phase 4: 成果物の保存を開始するのだ...")
	return builder.BuildPublisherRunner(appCtx).Run(ctx, postcard, profile)
}

// writeJSON は、中間成果物を整形済み JSON として出力ディレクトリに保存するのだ。
func writeJSON(ctx context.Context, appCtx *builder.AppContext, fileName string, v any) error {
	outputPath, err := publisher.ResolveOutputPath(appCtx.Options.OutputDir, fileName)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("'%s' のJSONエンコードに失敗したのだ: %w", fileName, err)
	}

	if err := appCtx.Writer.Write(ctx, outputPath, strings.NewReader(string(data)), "application/json"); err != nil {
		return fmt.Errorf("'%s' の書き込みに失敗したのだ: %w", outputPath, err)
	}
	return nil
}

// readJSON は、リーダー経由で JSON ファイルを読み込んでデコードするのだ（GCS等も対応！）。
func readJSON(ctx context.Context, appCtx *builder.AppContext, path string, v any) error {
	if path == "" {
		return fmt.Errorf("入力ファイルのパスを指定してほしいのだ")
	}
	rc, err := appCtx.Reader.Open(ctx, path)
	if err != nil {
		return fmt.Errorf("JSONファイル '%s' の読み込みに失敗したのだ: %w", path, err)
	}
	defer rc.Close()

	if err := json.NewDecoder(rc).Decode(v); err != nil {
		return fmt.Errorf("JSONファイル '%s' のデコードに失敗したのだ: %w", path, err)
	}
	return nil
}
