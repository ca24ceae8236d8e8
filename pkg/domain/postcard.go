package domain

import "fmt"

// ArtStyle はポストカード画像の画風です。
type ArtStyle string

// CaptionTone はキャプション文体のトーンです。
type CaptionTone string

const (
	StyleWatercolor     ArtStyle = "watercolor_illustration"
	StyleVintagePost    ArtStyle = "vintage_postcard"
	StyleCollage        ArtStyle = "collage"
	StyleGraphicLineArt ArtStyle = "graphic_line_art"

	ToneSatirical  CaptionTone = "satirical"
	ToneArtistic   CaptionTone = "artistic"
	ToneDramatic   CaptionTone = "dramatic"
	ToneMinimalist CaptionTone = "minimalist"
)

// StyleOption は CLI や UI に提示する選択肢 1 件分のメタデータです。
type StyleOption struct {
	Value       string `json:"value"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

// ArtStyleOptions は選択可能な画風の一覧を定義順で返します。
func ArtStyleOptions() []StyleOption {
	return []StyleOption{
		{Value: string(StyleWatercolor), Label: "Watercolor Illustration", Description: "Soft, flowing watercolor painting style"},
		{Value: string(StyleVintagePost), Label: "Vintage Postcard", Description: "Retro 1950s travel poster aesthetic"},
		{Value: string(StyleCollage), Label: "Collage", Description: "Layered paper cutout mixed media style"},
		{Value: string(StyleGraphicLineArt), Label: "Graphic Line Art", Description: "Bold outlines with flat colors"},
	}
}

// CaptionToneOptions は選択可能なトーンの一覧を定義順で返します。
func CaptionToneOptions() []StyleOption {
	return []StyleOption{
		{Value: string(ToneSatirical), Label: "Satirical", Description: "Witty and self-aware humor"},
		{Value: string(ToneArtistic), Label: "Artistic", Description: "Poetic and evocative"},
		{Value: string(ToneDramatic), Label: "Dramatic", Description: "Bold and cinematic"},
		{Value: string(ToneMinimalist), Label: "Minimalist", Description: "Brief and understated"},
	}
}

// Validate は画風が選択肢に含まれるかを検査します。
func (s ArtStyle) Validate() error {
	switch s {
	case StyleWatercolor, StyleVintagePost, StyleCollage, StyleGraphicLineArt:
		return nil
	}
	return fmt.Errorf("未知の画風です: %q", string(s))
}

// Validate はトーンが選択肢に含まれるかを検査します。
func (t CaptionTone) Validate() error {
	switch t {
	case ToneSatirical, ToneArtistic, ToneDramatic, ToneMinimalist:
		return nil
	}
	return fmt.Errorf("未知のキャプショントーンです: %q", string(t))
}

// PostcardParams はポストカード生成の利用者指定パラメータです。
type PostcardParams struct {
	LocationLabel   string      `json:"location_label"`
	ArtStyle        ArtStyle    `json:"art_style"`
	CaptionTone     CaptionTone `json:"caption_tone"`
	UserDescription string      `json:"user_description,omitempty"`
}

// Validate は必須項目と選択肢の妥当性をまとめて検査します。
func (p PostcardParams) Validate() error {
	if p.LocationLabel == "" {
		return fmt.Errorf("location_label は必須です")
	}
	if err := p.ArtStyle.Validate(); err != nil {
		return err
	}
	return p.CaptionTone.Validate()
}

// PostcardImage は生成されたポストカード画像です。
type PostcardImage struct {
	Data     []byte `json:"-"`
	MimeType string `json:"mime_type"`
	Prompt   string `json:"prompt"`
}

// PostcardCaption は生成されたキャプションです。
type PostcardCaption struct {
	LocationLabel string `json:"location_label"`
	Caption       string `json:"caption"`
	ToneApplied   string `json:"tone_applied"`
}

// Postcard は最終成果物（画像＋キャプション＋入力パラメータ）です。
type Postcard struct {
	Image   PostcardImage   `json:"image"`
	Caption PostcardCaption `json:"caption"`
	Params  PostcardParams  `json:"input_parameters"`
}
