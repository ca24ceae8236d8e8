package runner

import (
	"context"

	"github.com/shouni/go-postcard-kit/internal/config"
	"github.com/shouni/go-postcard-kit/pkg/domain"
	"github.com/shouni/go-postcard-kit/pkg/publisher"
)

// PublisherRunner はパブリッシュ処理のインターフェースです。
type PublisherRunner interface {
	Run(ctx context.Context, postcard *domain.Postcard, profile *domain.AlbumProfile) (publisher.PublishResult, error)
}

// DefaultPublisherRunner は pkg/publisher を利用した標準実装です。
type DefaultPublisherRunner struct {
	options   config.GenerateOptions
	publisher *publisher.PostcardPublisher
}

func NewDefaultPublisherRunner(options config.GenerateOptions, pub *publisher.PostcardPublisher) *DefaultPublisherRunner {
	return &DefaultPublisherRunner{
		options:   options,
		publisher: pub,
	}
}

func (pr *DefaultPublisherRunner) Run(ctx context.Context, postcard *domain.Postcard, profile *domain.AlbumProfile) (publisher.PublishResult, error) {
	// internal/config の値を pkg/publisher 用の構造体に詰め替えます。
	opts := publisher.Options{
		OutputDir: pr.options.OutputDir,
	}

	return pr.publisher.Publish(ctx, postcard, profile, opts)
}
