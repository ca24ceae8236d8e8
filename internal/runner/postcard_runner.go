package runner

import (
	"context"
	"fmt"

	"github.com/shouni/go-postcard-kit/pkg/domain"
	"github.com/shouni/go-postcard-kit/pkg/generator"
)

// PostcardRunner はポストカード生成処理のインターフェースなのだ。
type PostcardRunner interface {
	Run(ctx context.Context, profile *domain.AlbumProfile, params domain.PostcardParams) (*domain.Postcard, error)
}

// DefaultPostcardRunner は pkg/generator を利用した標準実装なのだ。
type DefaultPostcardRunner struct {
	composer *generator.PostcardComposer
}

// NewDefaultPostcardRunner は DefaultPostcardRunner の新しいインスタンスを生成するのだ。
func NewDefaultPostcardRunner(composer *generator.PostcardComposer) *DefaultPostcardRunner {
	return &DefaultPostcardRunner{composer: composer}
}

// Run は集約プロファイルの射影データからポストカードを生成するのだ。
func (pr *DefaultPostcardRunner) Run(ctx context.Context, profile *domain.AlbumProfile, params domain.PostcardParams) (*domain.Postcard, error) {
	if profile == nil {
		return nil, fmt.Errorf("アルバムプロファイルが必要なのだ")
	}

	postcard, err := pr.composer.Compose(ctx, profile.Synthesis, params)
	if err != nil {
		return nil, fmt.Errorf("ポストカードの生成に失敗したのだ: %w", err)
	}
	return postcard, nil
}
