package publisher

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/shouni/go-postcard-kit/pkg/domain"

	"github.com/shouni/go-remote-io/pkg/remoteio"
)

// Options はパブリッシュ動作を制御する設定項目です。
type Options struct {
	OutputDir string
}

// PublishResult はパブリッシュ処理の結果として生成されたファイルの情報を保持します。
type PublishResult struct {
	ImagePath    string // 保存されたポストカード画像のパス
	MarkdownPath string // 生成されたサマリー Markdown のパス
}

const (
	defaultSummaryName = "postcard.md"
	defaultImageBase   = "postcard"
)

// PostcardPublisher は成果物の永続化を担います。
type PostcardPublisher struct {
	writer remoteio.OutputWriter
}

// NewPostcardPublisher は指定されたライターで新しい PostcardPublisher を生成します。
func NewPostcardPublisher(writer remoteio.OutputWriter) *PostcardPublisher {
	return &PostcardPublisher{
		writer: writer,
	}
}

// Publish はポストカード画像とサマリー Markdown を保存し、生成されたファイル情報を返却するのだ！
func (p *PostcardPublisher) Publish(ctx context.Context, postcard *domain.Postcard, profile *domain.AlbumProfile, opts Options) (PublishResult, error) {
	result := PublishResult{}

	// 1. 出力パスの解決
	imageName := defaultImageBase + extensionForMime(postcard.Image.MimeType)
	imagePath, err := ResolveOutputPath(opts.OutputDir, imageName)
	if err != nil {
		return result, err
	}
	markdownPath, err := ResolveOutputPath(opts.OutputDir, defaultSummaryName)
	if err != nil {
		return result, err
	}

	// 2. 画像の保存
	if err := p.writer.Write(ctx, imagePath, bytes.NewReader(postcard.Image.Data), postcard.Image.MimeType); err != nil {
		return result, fmt.Errorf("ポストカード画像の書き込みに失敗しました: %w", err)
	}
	result.ImagePath = imagePath

	// 3. サマリー Markdown の構築と保存
	content := BuildSummaryMarkdown(postcard, profile, imageName)
	if err := p.writer.Write(ctx, markdownPath, strings.NewReader(content), "text/markdown; charset=utf-8"); err != nil {
		return result, fmt.Errorf("markdownファイルの書き込みに失敗しました: %w", err)
	}
	result.MarkdownPath = markdownPath

	slog.Info("ポストカードの保存が完了しました", "image", result.ImagePath, "markdown", result.MarkdownPath)
	return result, nil
}

// extensionForMime は MIME タイプからファイル拡張子を決定します。
func extensionForMime(mimeType string) string {
	switch mimeType {
	case "image/jpeg":
		return ".jpg"
	case "image/webp":
		return ".webp"
	default:
		return ".png"
	}
}
