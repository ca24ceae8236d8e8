package analysis

import (
	_ "embed"
)

// AnalysisPrompt はビジョンモデルに JSON 形式の構造化分析を要求する
// プロンプトです。フィールド名は domain.AnalysisRecord の JSON タグと
// 一対一なので、どちらかを変えるときは必ず両方を揃えてください。
//
//go:embed analysis_prompt.md
var AnalysisPrompt string
