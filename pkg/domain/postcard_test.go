package domain

import "testing"

func TestPostcardParams_Validate(t *testing.T) {
	tests := []struct {
		name    string
		params  PostcardParams
		wantErr bool
	}{
		{
			name: "正しい組み合わせは通るのだ",
			params: PostcardParams{
				LocationLabel: "Lisbon, Fall 2025",
				ArtStyle:      StyleVintagePost,
				CaptionTone:   ToneArtistic,
			},
		},
		{
			name: "location_label が空ならエラーなのだ",
			params: PostcardParams{
				ArtStyle:    StyleCollage,
				CaptionTone: ToneSatirical,
			},
			wantErr: true,
		},
		{
			name: "未知の画風はエラーなのだ",
			params: PostcardParams{
				LocationLabel: "Kyoto",
				ArtStyle:      ArtStyle("oil_painting"),
				CaptionTone:   ToneDramatic,
			},
			wantErr: true,
		},
		{
			name: "未知のトーンはエラーなのだ",
			params: PostcardParams{
				LocationLabel: "Kyoto",
				ArtStyle:      StyleWatercolor,
				CaptionTone:   CaptionTone("sarcastic"),
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.params.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr = %v", err, tt.wantErr)
			}
		})
	}
}

func TestStyleOptions(t *testing.T) {
	if got := len(ArtStyleOptions()); got != 4 {
		t.Errorf("画風は 4 種のはずなのだ: %d", got)
	}
	if got := len(CaptionToneOptions()); got != 4 {
		t.Errorf("トーンは 4 種のはずなのだ: %d", got)
	}
	for _, opt := range ArtStyleOptions() {
		if err := ArtStyle(opt.Value).Validate(); err != nil {
			t.Errorf("一覧の画風が Validate を通らないのだ: %v", err)
		}
	}
}
