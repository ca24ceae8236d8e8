package generator

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/shouni/go-postcard-kit/pkg/domain"
	"github.com/shouni/go-postcard-kit/pkg/prompts"

	imagedom "github.com/shouni/gemini-image-kit/pkg/domain"
	imagekit "github.com/shouni/gemini-image-kit/pkg/generator"
	"github.com/shouni/go-gemini-client/pkg/gemini"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

var jsonBlockRegex = regexp.MustCompile("(?s)```(?:json)?\\s*(.*\\S)\\s*```")

// fallbackCaption はキャプション応答が壊れていた場合の定型文です。
const fallbackCaption = "Wish you were here."

// PostcardComposer は、集約プロファイルからポストカードの画像とキャプションを生成します。
type PostcardComposer struct {
	ImageGenerator imagekit.ImageGenerator
	AIClient       gemini.GenerativeModel
	ImagePrompt    prompts.ImagePrompt
	CaptionPrompt  prompts.CaptionPrompt
	CaptionModel   string
	RateLimiter    *rate.Limiter
}

// NewPostcardComposer は PostcardComposer の新しいインスタンスを初期化済みの状態で生成します。
func NewPostcardComposer(
	imgGen imagekit.ImageGenerator,
	aiClient gemini.GenerativeModel,
	imagePrompt prompts.ImagePrompt,
	captionPrompt prompts.CaptionPrompt,
	captionModel string,
	limiter *rate.Limiter,
) *PostcardComposer {
	return &PostcardComposer{
		ImageGenerator: imgGen,
		AIClient:       aiClient,
		ImagePrompt:    imagePrompt,
		CaptionPrompt:  captionPrompt,
		CaptionModel:   captionModel,
		RateLimiter:    limiter,
	}
}

// Compose は画像とキャプションを並行して生成し、1枚のポストカードに束ねます。
func (pc *PostcardComposer) Compose(ctx context.Context, synthesis domain.SynthesisProfile, params domain.PostcardParams) (*domain.Postcard, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	var (
		image   domain.PostcardImage
		caption domain.PostcardCaption
	)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		img, err := pc.ComposeImage(egCtx, synthesis, params)
		if err != nil {
			return err
		}
		image = img
		return nil
	})
	eg.Go(func() error {
		cpt, err := pc.ComposeCaption(egCtx, synthesis, params)
		if err != nil {
			return err
		}
		caption = cpt
		return nil
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return &domain.Postcard{
		Image:   image,
		Caption: caption,
		Params:  params,
	}, nil
}

// ComposeImage はポストカード画像を 1 枚生成します。
func (pc *PostcardComposer) ComposeImage(ctx context.Context, synthesis domain.SynthesisProfile, params domain.PostcardParams) (domain.PostcardImage, error) {
	if err := pc.RateLimiter.Wait(ctx); err != nil {
		return domain.PostcardImage{}, err
	}

	userPrompt, systemPrompt := pc.ImagePrompt.BuildImage(synthesis, params)

	logger := slog.With("art_style", string(params.ArtStyle), "location", params.LocationLabel)
	logger.Info("ポストカード画像の生成を開始します")

	startTime := time.Now()
	resp, err := pc.ImageGenerator.GenerateMangaPanel(ctx, imagedom.ImageGenerationRequest{
		Prompt:         userPrompt,
		SystemPrompt:   systemPrompt,
		NegativePrompt: prompts.PostcardNegativePrompt,
		AspectRatio:    PostcardAspectRatio,
	})
	if err != nil {
		return domain.PostcardImage{}, fmt.Errorf("ポストカード画像の生成に失敗しました (art_style: %s): %w", params.ArtStyle, err)
	}

	logger.Info("ポストカード画像の生成が完了しました", "duration", time.Since(startTime).Round(time.Millisecond))

	return domain.PostcardImage{
		Data:     resp.Data,
		MimeType: resp.MimeType,
		Prompt:   userPrompt,
	}, nil
}

// ComposeCaption はポストカードのキャプションを生成します。
// AI の応答が JSON として壊れている場合は定型文にフォールバックします。
func (pc *PostcardComposer) ComposeCaption(ctx context.Context, synthesis domain.SynthesisProfile, params domain.PostcardParams) (domain.PostcardCaption, error) {
	if err := pc.RateLimiter.Wait(ctx); err != nil {
		return domain.PostcardCaption{}, err
	}

	data := prompts.NewCaptionData(synthesis, params)
	captionPrompt, err := pc.CaptionPrompt.Build(prompts.ModeCaption, data)
	if err != nil {
		return domain.PostcardCaption{}, err
	}
	finalPrompt := prompts.CaptionSystemPrompt + "\n\n" + captionPrompt

	slog.Info("キャプションの生成を開始します", "tone", string(params.CaptionTone))

	resp, err := pc.AIClient.GenerateContent(ctx, finalPrompt, pc.CaptionModel)
	if err != nil {
		return domain.PostcardCaption{}, fmt.Errorf("キャプションの生成に失敗しました (tone: %s): %w", params.CaptionTone, err)
	}

	return parseCaption(resp.Text, params), nil
}

// captionPayload は AI が返すキャプション JSON の形です。
type captionPayload struct {
	LocationLabel string `json:"location_label"`
	Caption       string `json:"caption"`
	ToneApplied   string `json:"tone_applied"`
}

// parseCaption は、AIが返したテキストからMarkdownのコードブロック等を除去してJSONとしてパースします。
// 壊れた応答でもポストカードは完成させるので、欠けたフィールドは入力値か定型文で埋めます。
func parseCaption(raw string, params domain.PostcardParams) domain.PostcardCaption {
	rawJSON := strings.TrimSpace(raw)
	if matches := jsonBlockRegex.FindStringSubmatch(rawJSON); len(matches) > 1 {
		rawJSON = matches[1]
	}

	var payload captionPayload
	if err := json.Unmarshal([]byte(rawJSON), &payload); err != nil {
		slog.Warn("キャプション応答のパースに失敗したため定型文を使います", "error", err)
		return domain.PostcardCaption{
			LocationLabel: params.LocationLabel,
			Caption:       fallbackCaption,
			ToneApplied:   string(params.CaptionTone),
		}
	}

	caption := domain.PostcardCaption{
		LocationLabel: payload.LocationLabel,
		Caption:       payload.Caption,
		ToneApplied:   payload.ToneApplied,
	}
	if caption.LocationLabel == "" {
		caption.LocationLabel = params.LocationLabel
	}
	if caption.Caption == "" {
		caption.Caption = fallbackCaption
	}
	if caption.ToneApplied == "" {
		caption.ToneApplied = string(params.CaptionTone)
	}
	return caption
}
