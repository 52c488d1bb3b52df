package application

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/url"
	"time"

	"github.com/Techluminate-Academy/bsn-directory/internal/cache"
	"github.com/Techluminate-Academy/bsn-directory/internal/domain/member"
	"github.com/Techluminate-Academy/bsn-directory/internal/repository"
	"github.com/Techluminate-Academy/bsn-directory/pkg/monitoring"
)

type MemberService struct {
	repo     repository.MemberRepo
	cache    cache.Store
	cacheTTL time.Duration
}

func NewMemberService(repos *repository.Repos, store cache.Store, ttl time.Duration) *MemberService {
	return &MemberService{repo: repos.Member, cache: store, cacheTTL: ttl}
}

// List serves the paginated, filtered directory. Pages are cached per query
// key and expire by TTL only, a bounded staleness window after writes.
func (s *MemberService) List(ctx context.Context, q member.ListQuery) (*member.Page, error) {
	// Filter values are user input and may contain the delimiter; escaping
	// keeps distinct queries on distinct keys.
	key := fmt.Sprintf("%s%d:%d:%s:%s:%s",
		cache.PrefixMemberList, q.Page, q.Limit,
		url.QueryEscape(q.IndustryHouse), url.QueryEscape(q.MembershipLevel), url.QueryEscape(q.Country))

	var page member.Page
	if s.cacheGet(ctx, "list", key, &page) {
		return &page, nil
	}

	result, err := s.repo.List(ctx, q)
	if err != nil {
		return nil, err
	}
	s.cacheSet(ctx, key, result)
	return result, nil
}

// Search serves free-text lookups. Results live under the search namespace,
// which submission writes clear unconditionally.
func (s *MemberService) Search(ctx context.Context, text string, page, limit int) (*member.Page, error) {
	key := fmt.Sprintf("%s%s:%d:%d", cache.PrefixSearch, url.QueryEscape(text), page, limit)

	var cached member.Page
	if s.cacheGet(ctx, "search", key, &cached) {
		return &cached, nil
	}

	result, err := s.repo.Search(ctx, text, page, limit)
	if err != nil {
		return nil, err
	}
	s.cacheSet(ctx, key, result)
	return result, nil
}

// GetByAirtableID looks up one mirror record by its external id.
func (s *MemberService) GetByAirtableID(ctx context.Context, id string) (*member.Record, error) {
	return s.repo.FindByAirtableID(ctx, id)
}

// GetByEmail backs the edit flow's record lookup. The caller decides the
// fallback when nothing matches (e.g. offer signup instead).
func (s *MemberService) GetByEmail(ctx context.Context, email string) (*member.Record, error) {
	return s.repo.FindByEmail(ctx, email)
}

// IsNotFound reports whether err is the mirror store's not-found case.
func IsNotFound(err error) bool {
	return errors.Is(err, repository.ErrMemberNotFound) || errors.Is(err, ErrVersionNotFound)
}

func (s *MemberService) cacheGet(ctx context.Context, namespace, key string, out any) bool {
	raw, err := s.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, cache.ErrMiss) {
			log.Printf("cache read %s failed: %v", key, err)
		}
		monitoring.CacheMisses.WithLabelValues(namespace).Inc()
		return false
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return false
	}
	monitoring.CacheHits.WithLabelValues(namespace).Inc()
	return true
}

func (s *MemberService) cacheSet(ctx context.Context, key string, val any) {
	raw, err := json.Marshal(val)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, string(raw), s.cacheTTL); err != nil {
		log.Printf("cache write %s failed: %v", key, err)
	}
}
