package publisher

import (
	"strings"
	"testing"

	"github.com/shouni/go-postcard-kit/pkg/domain"
)

func testPostcard() *domain.Postcard {
	return &domain.Postcard{
		Image: domain.PostcardImage{
			Data:     []byte{0x89, 0x50, 0x4e, 0x47},
			MimeType: "image/png",
			Prompt:   "A stylized postcard illustration of Lisbon.",
		},
		Caption: domain.PostcardCaption{
			LocationLabel: "LISBOA ~ autumn edition",
			Caption:       "Another tram photo, you're welcome.",
			ToneApplied:   "satirical",
		},
		Params: domain.PostcardParams{
			LocationLabel: "Lisbon, Fall 2025",
			ArtStyle:      domain.StyleVintagePost,
			CaptionTone:   domain.ToneSatirical,
		},
	}
}

func testProfile() *domain.AlbumProfile {
	return &domain.AlbumProfile{
		TotalImagesAnalyzed: 12,
		Synthesis: domain.SynthesisProfile{
			PrimarySceneType:         "city",
			DominantMood:             "lively",
			EnergyLevel:              "high",
			DominantVisualElements:   []string{"buildings", "people"},
			ColorPalette:             []string{"terracotta", "blue"},
			ColorTemperature:         "warm",
			RecurringNotableElements: []string{"tram", "azulejo tiles"},
		},
	}
}

func TestBuildSummaryMarkdown(t *testing.T) {
	content := BuildSummaryMarkdown(testPostcard(), testProfile(), "postcard.png")

	for _, want := range []string{
		"# LISBOA ~ autumn edition",
		"![postcard](postcard.png)",
		"> Another tram photo, you're welcome.",
		"- art style: vintage_postcard",
		"- caption tone: satirical",
		"- images analyzed: 12",
		"- dominant scene: city",
		"- dominant mood: lively (high energy)",
		"- recurring motifs: tram, azulejo tiles",
	} {
		if !strings.Contains(content, want) {
			t.Errorf("サマリーに %q が含まれていないのだ:\n%s", want, content)
		}
	}
}

func TestBuildSummaryMarkdown_WithoutProfile(t *testing.T) {
	content := BuildSummaryMarkdown(testPostcard(), nil, "postcard.png")
	if strings.Contains(content, "Album profile") {
		t.Errorf("プロファイルなしでダイジェストが出ているのだ:\n%s", content)
	}
	if !strings.Contains(content, "> Another tram photo") {
		t.Errorf("キャプションが含まれていないのだ:\n%s", content)
	}
}

func TestResolveOutputPath(t *testing.T) {
	t.Run("ローカルパスを結合できるのだ", func(t *testing.T) {
		got, err := ResolveOutputPath("output/trip", "postcard.png")
		if err != nil {
			t.Fatalf("パス解決に失敗したのだ: %v", err)
		}
		if !strings.HasSuffix(got, "postcard.png") {
			t.Errorf("ファイル名が結合されていないのだ: %q", got)
		}
	})

	t.Run("GCS URI のスキームを保護するのだ", func(t *testing.T) {
		got, err := ResolveOutputPath("gs://my-bucket/trips/lisbon", "postcard.png")
		if err != nil {
			t.Fatalf("パス解決に失敗したのだ: %v", err)
		}
		if got != "gs://my-bucket/trips/lisbon/postcard.png" {
			t.Errorf("GCS パスが期待と違うのだ: %q", got)
		}
	})
}

func TestExtensionForMime(t *testing.T) {
	cases := []struct {
		mime string
		want string
	}{
		{"image/png", ".png"},
		{"image/jpeg", ".jpg"},
		{"image/webp", ".webp"},
		{"application/octet-stream", ".png"},
	}
	for _, tc := range cases {
		if got := extensionForMime(tc.mime); got != tc.want {
			t.Errorf("%s の拡張子が期待と違うのだ: got %q want %q", tc.mime, got, tc.want)
		}
	}
}
