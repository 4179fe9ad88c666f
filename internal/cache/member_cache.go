// Package cache - кэш загруженных участников по id.
//
// Массовые UPDATE/DELETE идут мимо кэша, поэтому после каждой такой операции
// кэш нужно очистить через Purge, иначе чтение вернет устаревшие значения.
package cache

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/bagdasarian/member-search/internal/domain"
)

const DefaultSize = 1024

type MemberCache struct {
	entries *lru.Cache[int64, domain.Member]
}

func NewMemberCache(size int) (*MemberCache, error) {
	if size <= 0 {
		size = DefaultSize
	}
	entries, err := lru.New[int64, domain.Member](size)
	if err != nil {
		return nil, err
	}
	return &MemberCache{entries: entries}, nil
}

// Get возвращает копию закэшированного участника.
func (c *MemberCache) Get(id int64) (*domain.Member, bool) {
	m, ok := c.entries.Get(id)
	if !ok {
		return nil, false
	}
	return cloneMember(&m), true
}

func (c *MemberCache) Put(m *domain.Member) {
	if m == nil {
		return
	}
	c.entries.Add(m.ID, *cloneMember(m))
}

func (c *MemberCache) Remove(id int64) {
	c.entries.Remove(id)
}

// Purge сбрасывает весь кэш. Вызывается после массовых операций.
func (c *MemberCache) Purge() {
	c.entries.Purge()
}

func (c *MemberCache) Len() int {
	return c.entries.Len()
}

func cloneMember(m *domain.Member) *domain.Member {
	out := *m
	if m.Username != nil {
		out.Username = domain.StringPtr(*m.Username)
	}
	if m.TeamID != nil {
		out.TeamID = domain.Int64Ptr(*m.TeamID)
	}
	if m.UpdatedAt != nil {
		t := *m.UpdatedAt
		out.UpdatedAt = &t
	}
	return &out
}
