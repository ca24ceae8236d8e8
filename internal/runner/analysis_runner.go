package runner

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/shouni/go-postcard-kit/pkg/analysis"
	"github.com/shouni/go-postcard-kit/pkg/domain"

	"github.com/shouni/go-remote-io/pkg/remoteio"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// supportedMimeTypes は分析対象として受け付ける拡張子と MIME タイプの対応なのだ。
var supportedMimeTypes = map[string]string{
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".gif":  "image/gif",
	".webp": "image/webp",
}

// IsSupportedImage は、パスの拡張子が分析対象の画像形式かを返すのだ。
func IsSupportedImage(path string) bool {
	_, ok := supportedMimeTypes[strings.ToLower(filepath.Ext(path))]
	return ok
}

// AnalysisRunner は、写真群のビジョン分析を実行するインターフェースなのだ。
type AnalysisRunner interface {
	// Run は全写真を分析し、入力と同じ順序でレコードを返すのだ。
	Run(ctx context.Context, photoPaths []string) ([]domain.AnalysisRecord, error)
}

// AlbumAnalysisRunner は、アルバムの各写真を並列で分析する核となる構造体なのだ。
type AlbumAnalysisRunner struct {
	analyzer analysis.Analyzer    // 1枚の画像を構造化レコードに変換するアナライザー
	reader   remoteio.InputReader // ローカルやGCSのファイルを読み込むリーダー
	limiter  *rate.Limiter        // API呼び出しのレート制限
}

// NewAlbumAnalysisRunner は、AlbumAnalysisRunnerの新しいインスタンスを生成して返すのだ。
func NewAlbumAnalysisRunner(
	az analysis.Analyzer,
	r remoteio.InputReader,
	limiter *rate.Limiter,
) *AlbumAnalysisRunner {
	return &AlbumAnalysisRunner{
		analyzer: az,
		reader:   r,
		limiter:  limiter,
	}
}

// Run は全写真を並列分析するのだ。個々の写真の失敗はレコードに畳み込み、
// 処理全体は止めないのだ。コンテキストの中断だけがエラーとして返るのだ。
func (ar *AlbumAnalysisRunner) Run(ctx context.Context, photoPaths []string) ([]domain.AnalysisRecord, error) {
	records := make([]domain.AnalysisRecord, len(photoPaths))
	eg, egCtx := errgroup.WithContext(ctx)

	for i, photoPath := range photoPaths {
		i, photoPath := i, photoPath
		eg.Go(func() error {
			if err := ar.limiter.Wait(egCtx); err != nil {
				return err
			}

			rec, err := ar.analyzeOne(egCtx, i, photoPath)
			if err != nil {
				return err
			}
			records[i] = rec
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return records, nil
}

// analyzeOne は 1 枚の写真を読み込んで分析するのだ。
func (ar *AlbumAnalysisRunner) analyzeOne(ctx context.Context, index int, photoPath string) (domain.AnalysisRecord, error) {
	fileName := filepath.Base(photoPath)
	logger := slog.With("image_index", index, "file", fileName)

	mimeType, ok := supportedMimeTypes[strings.ToLower(filepath.Ext(photoPath))]
	if !ok {
		logger.Warn("サポート外の画像形式なのでスキップするのだ")
		rec := analysis.FailedRecord(index, fileName, fmt.Errorf("サポートされていない画像形式です: %s", photoPath))
		return rec, nil
	}

	data, err := ar.readPhoto(ctx, photoPath)
	if err != nil {
		logger.Warn("写真の読み込みに失敗したのだ", "error", err)
		return analysis.FailedRecord(index, fileName, err), nil
	}

	logger.Info("写真の分析を開始するのだ")
	startTime := time.Now()

	rec, err := ar.analyzer.Analyze(ctx, data, mimeType)
	if err != nil {
		// コンテキストの中断など呼び出しレベルの失敗だけがここに来るのだ
		return domain.AnalysisRecord{}, err
	}
	rec.ImageIndex = index
	rec.FileName = fileName

	logger.Info("写真の分析が完了したのだ",
		"success", rec.Success,
		"duration", time.Since(startTime).Round(time.Millisecond))
	return rec, nil
}

// readPhoto は、リーダーを使って写真データを取得するのだ（GCS等も対応！）。
func (ar *AlbumAnalysisRunner) readPhoto(ctx context.Context, photoPath string) ([]byte, error) {
	rc, err := ar.reader.Open(ctx, photoPath)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}
