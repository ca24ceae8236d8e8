package analysis

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/shouni/go-postcard-kit/pkg/domain"
)

var jsonBlockRegex = regexp.MustCompile("(?s)```(?:json)?\\s*(.*\\S)\\s*```")

// ParseRecord はビジョンモデルの生テキスト応答を AnalysisRecord にパースします。
// コードフェンス付き JSON、本文に混ざった JSON、素の JSON の順で救済を試みます。
func ParseRecord(raw string) (domain.AnalysisRecord, error) {
	raw = strings.TrimSpace(raw)
	var rawJSON string

	matches := jsonBlockRegex.FindStringSubmatch(raw)
	if len(matches) > 1 {
		rawJSON = matches[1]
	} else {
		// 救済 1: 最外の JSON オブジェクトを探します。
		firstBracket := strings.Index(raw, "{")
		lastBracket := strings.LastIndex(raw, "}")
		if firstBracket != -1 && lastBracket != -1 && lastBracket > firstBracket {
			rawJSON = raw[firstBracket : lastBracket+1]
		} else {
			// 救済 2: 応答全体を JSON とみなします。
			rawJSON = raw
		}
	}

	var rec domain.AnalysisRecord
	if err := json.Unmarshal([]byte(rawJSON), &rec); err != nil {
		return domain.AnalysisRecord{}, fmt.Errorf("ビジョン応答の JSON 解析に失敗しました (応答抜粋: %q): %w", truncateString(raw, 200), err)
	}

	rec.Success = true
	if !rec.HasPayload() {
		return domain.AnalysisRecord{}, fmt.Errorf("ビジョン応答に分析ペイロードが含まれていません (応答抜粋: %q)", truncateString(raw, 200))
	}
	return rec, nil
}

// FailedRecord は分析失敗を表すレコードを作ります。
// 失敗は集約の前段で黙って落とされるため、エラー内容はレコード自身が運びます。
func FailedRecord(index int, fileName string, cause error) domain.AnalysisRecord {
	return domain.AnalysisRecord{
		Success:    false,
		ImageIndex: index,
		FileName:   fileName,
		Error:      cause.Error(),
	}
}

func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
