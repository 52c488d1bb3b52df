package application

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/Techluminate-Academy/bsn-directory/internal/airtable"
	"github.com/Techluminate-Academy/bsn-directory/internal/cache"
	"github.com/Techluminate-Academy/bsn-directory/internal/domain/metadata"
	"github.com/Techluminate-Academy/bsn-directory/pkg/monitoring"
)

// OptionDenylist drops specific known-bad option values per external field
// name. Data-quality patching for junk the external schema accumulated;
// extend the table, not the adapter.
type OptionDenylist map[string][]string

// DefaultOptionDenylist covers the known-bad values in the production base.
var DefaultOptionDenylist = OptionDenylist{
	"PRIMARY INDUSTRY HOUSE": {"N/A", "Other (see below)"},
	"Membership Level":       {"Unknown"},
}

type MetadataService struct {
	api      airtable.API
	cache    cache.Store
	cacheTTL time.Duration
	denylist OptionDenylist
}

func NewMetadataService(api airtable.API, store cache.Store, ttl time.Duration, denylist OptionDenylist) *MetadataService {
	if denylist == nil {
		denylist = DefaultOptionDenylist
	}
	return &MetadataService{api: api, cache: store, cacheTTL: ttl, denylist: denylist}
}

// FetchFieldMetadata returns the external system's normalized column
// metadata. The adapter queries the schema endpoint once per call; this
// layer memoizes the result with the standard TTL. Failures are surfaced
// without retry — reloading is a UI concern.
func (s *MetadataService) FetchFieldMetadata(ctx context.Context) ([]metadata.ExternalField, error) {
	var fields []metadata.ExternalField
	if raw, err := s.cache.Get(ctx, cache.KeyMetadataFields); err == nil {
		if json.Unmarshal([]byte(raw), &fields) == nil {
			monitoring.CacheHits.WithLabelValues("metadata").Inc()
			return fields, nil
		}
	} else if !errors.Is(err, cache.ErrMiss) {
		log.Printf("metadata cache read failed: %v", err)
	}
	monitoring.CacheMisses.WithLabelValues("metadata").Inc()

	fetched, err := s.api.TableSchema(ctx)
	if err != nil {
		return nil, err
	}

	fields = make([]metadata.ExternalField, 0, len(fetched))
	for _, f := range fetched {
		f.Options = s.filterOptions(f)
		fields = append(fields, f)
	}

	if raw, err := json.Marshal(fields); err == nil {
		if err := s.cache.Set(ctx, cache.KeyMetadataFields, string(raw), s.cacheTTL); err != nil {
			log.Printf("metadata cache write failed: %v", err)
		}
	}
	return fields, nil
}

// filterOptions removes self-referential placeholder options (display name
// equal to the field's own name) and anything on the field's denylist.
func (s *MetadataService) filterOptions(f metadata.ExternalField) []metadata.ExternalOption {
	if len(f.Options) == 0 {
		return nil
	}
	denied := s.denylist[f.FieldName]

	kept := make([]metadata.ExternalOption, 0, len(f.Options))
	for _, opt := range f.Options {
		if strings.EqualFold(opt.Name, f.FieldName) {
			continue
		}
		if contains(denied, opt.Name) {
			continue
		}
		kept = append(kept, opt)
	}
	if len(kept) == 0 {
		return nil
	}
	return kept
}

func contains(values []string, v string) bool {
	for _, item := range values {
		if item == v {
			return true
		}
	}
	return false
}
