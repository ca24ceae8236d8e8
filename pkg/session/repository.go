package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// ErrNotFound は、セッションが存在しないか期限切れのときに返されます。
var ErrNotFound = errors.New("セッションが見つかりません")

// Repository はセッションの永続化の契約です。
type Repository interface {
	// Create は新しいセッションを発行して保存します。
	Create(photoPaths []string) (*Session, error)
	// Get は ID でセッションを取得します。
	Get(id string) (*Session, error)
	// Update は既存セッションを上書き保存します。
	Update(sess *Session) error
}

// CacheRepository は go-cache をバックエンドにした TTL 付きのリポジトリです。
type CacheRepository struct {
	store *cache.Cache
}

// NewCacheRepository は CacheRepository を初期化します。
func NewCacheRepository(ttl, cleanupInterval time.Duration) *CacheRepository {
	return &CacheRepository{
		store: cache.New(ttl, cleanupInterval),
	}
}

// Create は UUID を発行し、created 状態のセッションを保存して返します。
func (cr *CacheRepository) Create(photoPaths []string) (*Session, error) {
	now := time.Now()
	sess := &Session{
		ID:         uuid.NewString(),
		Status:     StatusCreated,
		PhotoPaths: photoPaths,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	cr.store.SetDefault(sess.ID, sess)
	return sess, nil
}

// Get は ID でセッションを取得します。期限切れは ErrNotFound として扱います。
func (cr *CacheRepository) Get(id string) (*Session, error) {
	val, ok := cr.store.Get(id)
	if !ok {
		return nil, fmt.Errorf("セッション '%s' の取得に失敗しました: %w", id, ErrNotFound)
	}
	sess, ok := val.(*Session)
	if !ok {
		return nil, fmt.Errorf("セッション '%s' の型が不正です: %T", id, val)
	}
	return sess, nil
}

// Update は既存セッションを上書きし、更新時刻を進めます。
func (cr *CacheRepository) Update(sess *Session) error {
	if _, err := cr.Get(sess.ID); err != nil {
		return err
	}
	sess.UpdatedAt = time.Now()
	cr.store.SetDefault(sess.ID, sess)
	return nil
}
