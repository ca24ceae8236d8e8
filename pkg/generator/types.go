package generator

const (
	// PostcardAspectRatio はポストカード画像の推奨アスペクト比です。
	PostcardAspectRatio = "3:2"

	// DefaultRateBurst はレート制限のバーストサイズです。
	DefaultRateBurst = 2
)
