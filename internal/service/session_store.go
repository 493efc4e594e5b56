package service

import (
	"sync"
	"time"

	"vocab_drill/internal/model"

	"github.com/google/uuid"
)

// sessionDraft は開始済みで未完了のセッションです。完了するまでDBには保存しません。
type sessionDraft struct {
	TenantID  uuid.UUID
	Direction model.Direction
	ThemeID   string
	Words     []model.WordSnapshot
	StartedAt time.Time
	ExpiresAt time.Time
}

// draftStore は未完了セッションのメモリ上の置き場です。
type draftStore struct {
	mu     sync.Mutex
	drafts map[uuid.UUID]*sessionDraft
}

func newDraftStore() *draftStore {
	return &draftStore{drafts: make(map[uuid.UUID]*sessionDraft)}
}

// put は下書きを登録し、ついでに期限切れのものを掃除します。
func (s *draftStore) put(id uuid.UUID, d *sessionDraft, now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for k, v := range s.drafts {
		if !now.Before(v.ExpiresAt) {
			delete(s.drafts, k)
		}
	}
	s.drafts[id] = d
}

// take は下書きを取り出して削除します。同じセッションを二重に完了させないため。
// 他テナントのものは削除せずに見つからない扱いにします。
func (s *draftStore) take(id, tenantID uuid.UUID, now time.Time) (*sessionDraft, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.drafts[id]
	if !ok || d.TenantID != tenantID {
		return nil, false
	}
	delete(s.drafts, id)
	if !now.Before(d.ExpiresAt) {
		return nil, false
	}
	return d, true
}

// restore は検証エラーで完了できなかった下書きを戻します。
func (s *draftStore) restore(id uuid.UUID, d *sessionDraft) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drafts[id] = d
}

func (s *draftStore) size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.drafts)
}
