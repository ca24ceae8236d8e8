// Package session は、写真アップロードからポストカード完成までの
// 一連の処理状態をセッション単位で保持します。
package session

import (
	"time"

	"github.com/shouni/go-postcard-kit/pkg/domain"
)

// Status はセッションのライフサイクル上の位置です。
type Status string

const (
	StatusCreated    Status = "created"
	StatusAnalyzed   Status = "analyzed"
	StatusAggregated Status = "aggregated"
	StatusCompleted  Status = "completed"
)

// Session は 1 回のポストカード生成の全工程の状態を運びます。
type Session struct {
	ID         string                  `json:"id"`
	Status     Status                  `json:"status"`
	PhotoPaths []string                `json:"photo_paths"`
	Records    []domain.AnalysisRecord `json:"records,omitempty"`
	Profile    *domain.AlbumProfile    `json:"profile,omitempty"`
	Postcard   *domain.Postcard        `json:"postcard,omitempty"`
	CreatedAt  time.Time               `json:"created_at"`
	UpdatedAt  time.Time               `json:"updated_at"`
}
