package prompts

import (
	_ "embed"
)

const (
	ModeCaption = "caption"
)

// TemplateData はキャプションプロンプトのテンプレートに渡すデータ構造です。
type TemplateData struct {
	Context         string
	ToneInstruction string
}

var (
	//go:embed caption.md
	CaptionTemplate string
)

// allTemplates はモードとテンプレート文字列を紐づけるマップなのだ。
var allTemplates = map[string]string{
	ModeCaption: CaptionTemplate,
}
