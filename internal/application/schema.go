package application

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/Techluminate-Academy/bsn-directory/internal/cache"
	"github.com/Techluminate-Academy/bsn-directory/internal/domain/schema"
	"github.com/Techluminate-Academy/bsn-directory/internal/repository"
	"github.com/Techluminate-Academy/bsn-directory/pkg/monitoring"
	"gorm.io/gorm"
)

// ErrVersionNotFound means the requested schema version does not exist.
var ErrVersionNotFound = errors.New("schema version not found")

type SchemaService struct {
	repo     repository.SchemaRepo
	cache    cache.Store
	cacheTTL time.Duration
}

func NewSchemaService(repos *repository.Repos, store cache.Store, ttl time.Duration) *SchemaService {
	return &SchemaService{repo: repos.Schema, cache: store, cacheTTL: ttl}
}

// ListVersions returns all version summaries, newest first.
func (s *SchemaService) ListVersions(ctx context.Context) ([]schema.VersionSummary, error) {
	var summaries []schema.VersionSummary
	if s.cacheGet(ctx, cache.KeySchemaVersions, &summaries) {
		return summaries, nil
	}

	versions, err := s.repo.ListVersions()
	if err != nil {
		return nil, err
	}

	summaries = make([]schema.VersionSummary, 0, len(versions))
	for _, v := range versions {
		fields, err := v.FieldList()
		if err != nil {
			return nil, fmt.Errorf("corrupt field list in version %d: %w", v.Version, err)
		}
		summaries = append(summaries, schema.VersionSummary{
			Version:    v.Version,
			Status:     v.Status,
			FieldCount: len(fields),
			UpdatedAt:  v.UpdatedAt,
		})
	}

	s.cacheSet(ctx, cache.KeySchemaVersions, summaries)
	return summaries, nil
}

// GetVersion returns exactly the requested version; no implicit "latest
// published" resolution.
func (s *SchemaService) GetVersion(ctx context.Context, version int) (*schema.VersionView, error) {
	key := fmt.Sprintf(cache.KeySchemaVersion, version)
	var view schema.VersionView
	if s.cacheGet(ctx, key, &view) {
		return &view, nil
	}

	v, err := s.repo.GetVersion(version)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrVersionNotFound
	}
	if err != nil {
		return nil, err
	}

	fields, err := v.FieldList()
	if err != nil {
		return nil, fmt.Errorf("corrupt field list in version %d: %w", v.Version, err)
	}
	view = schema.VersionView{
		Version:   v.Version,
		Status:    v.Status,
		Fields:    fields,
		UpdatedAt: v.UpdatedAt,
	}

	s.cacheSet(ctx, key, &view)
	return &view, nil
}

// GetLatest returns the highest version regardless of status. Used by the
// builder's fetch-mutate-recreate edit flow.
func (s *SchemaService) GetLatest(ctx context.Context) (*schema.VersionView, error) {
	v, err := s.repo.GetLatest()
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrVersionNotFound
	}
	if err != nil {
		return nil, err
	}
	return s.GetVersion(ctx, v.Version)
}

// CreateVersion allocates the next integer version (max existing + 1, or 1
// when none exist) and inserts a new immutable snapshot. Existing versions
// are never touched. Gaps can occur if the insert fails after allocation;
// that is acceptable.
func (s *SchemaService) CreateVersion(ctx context.Context, input schema.CreateVersionDTO) (*schema.VersionView, error) {
	status := input.Status
	if status != schema.StatusPublished {
		status = schema.StatusDraft
	}

	max, err := s.repo.MaxVersion()
	if err != nil {
		return nil, err
	}

	v := schema.FormVersion{
		Version: max + 1,
		Status:  status,
	}
	if err := v.SetFieldList(input.Fields); err != nil {
		return nil, err
	}
	if err := s.repo.Create(&v); err != nil {
		return nil, err
	}

	// The new version was never cached, but clearing both keys keeps the
	// collision-free invariant for concurrent readers.
	if err := s.cache.Delete(ctx, cache.KeySchemaVersions, fmt.Sprintf(cache.KeySchemaVersion, v.Version)); err != nil {
		log.Printf("schema cache invalidation failed: %v", err)
	}

	return &schema.VersionView{
		Version:   v.Version,
		Status:    v.Status,
		Fields:    input.Fields,
		UpdatedAt: v.UpdatedAt,
	}, nil
}

func (s *SchemaService) cacheGet(ctx context.Context, key string, out any) bool {
	raw, err := s.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, cache.ErrMiss) {
			log.Printf("cache read %s failed: %v", key, err)
		}
		monitoring.CacheMisses.WithLabelValues("schema").Inc()
		return false
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		log.Printf("cache decode %s failed: %v", key, err)
		return false
	}
	monitoring.CacheHits.WithLabelValues("schema").Inc()
	return true
}

func (s *SchemaService) cacheSet(ctx context.Context, key string, val any) {
	raw, err := json.Marshal(val)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, string(raw), s.cacheTTL); err != nil {
		log.Printf("cache write %s failed: %v", key, err)
	}
}
