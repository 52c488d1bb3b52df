package application

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/Techluminate-Academy/bsn-directory/internal/airtable"
	"github.com/Techluminate-Academy/bsn-directory/internal/blob"
	"github.com/Techluminate-Academy/bsn-directory/internal/cache"
	"github.com/Techluminate-Academy/bsn-directory/internal/domain/member"
	"github.com/Techluminate-Academy/bsn-directory/internal/domain/metadata"
	"github.com/Techluminate-Academy/bsn-directory/internal/domain/schema"
	"github.com/Techluminate-Academy/bsn-directory/internal/mapping"
	"github.com/Techluminate-Academy/bsn-directory/internal/repository"
	"github.com/Techluminate-Academy/bsn-directory/pkg/monitoring"
)

// SubmissionService runs the write pipeline: upload pending files, assemble
// the external payload, write the external record, mirror it into the query
// store, and clear the search cache. Phases are strictly sequential; any
// failure aborts the whole operation and the caller re-invokes from scratch.
type SubmissionService struct {
	api      airtable.API
	repo     repository.MemberRepo
	uploader blob.Uploader
	cache    cache.Store
}

func NewSubmissionService(api airtable.API, repos *repository.Repos, uploader blob.Uploader, store cache.Store) *SubmissionService {
	return &SubmissionService{api: api, repo: repos.Member, uploader: uploader, cache: store}
}

// Submit creates a new external record from the form state and returns its
// stable id.
func (s *SubmissionService) Submit(ctx context.Context, values map[string]any, fields []schema.FieldDefinition, m mapping.FieldMapping) (string, error) {
	return s.run(ctx, "", values, fields, m)
}

// Update writes the form state onto an existing external record. No
// optimistic-concurrency token is carried: concurrent editors race and the
// last successful write wins.
func (s *SubmissionService) Update(ctx context.Context, recordID string, values map[string]any, fields []schema.FieldDefinition, m mapping.FieldMapping) (string, error) {
	if recordID == "" {
		return "", fmt.Errorf("update requires a record id")
	}
	return s.run(ctx, recordID, values, fields, m)
}

func (s *SubmissionService) run(ctx context.Context, recordID string, values map[string]any, fields []schema.FieldDefinition, m mapping.FieldMapping) (string, error) {
	outcome := "failure"
	defer func() { monitoring.SubmissionsTotal.WithLabelValues(outcome).Inc() }()

	if err := s.uploadFiles(ctx, values, fields); err != nil {
		log.Printf("submission: file upload failed: %v", err)
		return "", fmt.Errorf("submission failed")
	}

	payload := AssemblePayload(values, fields, m)

	var rec *airtable.Record
	var err error
	if recordID == "" {
		rec, err = s.api.CreateRecord(ctx, payload)
	} else {
		rec, err = s.api.UpdateRecord(ctx, recordID, payload)
	}
	if err != nil {
		log.Printf("submission: external write failed: %v", err)
		return "", fmt.Errorf("submission failed")
	}

	// Mirror the server-confirmed values so reads observe the update without
	// round-tripping through the external system.
	mirror := &member.Record{AirtableID: rec.ID, Fields: rec.Fields}
	if mirror.Fields == nil {
		mirror.Fields = payload
	}
	if err := s.repo.Upsert(ctx, mirror); err != nil {
		log.Printf("submission: mirror upsert failed: %v", err)
		return "", fmt.Errorf("submission failed")
	}

	// The search key space cannot be mapped back to affected records, so the
	// whole namespace goes. List entries expire by TTL.
	if err := s.cache.DeletePrefix(ctx, cache.PrefixSearch); err != nil {
		log.Printf("submission: search cache invalidation failed: %v", err)
		return "", fmt.Errorf("submission failed")
	}

	outcome = "success"
	return rec.ID, nil
}

// uploadFiles replaces every pending binary with its uploaded URL. All files
// complete before payload assembly; one failure aborts the submission so the
// external record never carries some-but-not-all attachments.
func (s *SubmissionService) uploadFiles(ctx context.Context, values map[string]any, fields []schema.FieldDefinition) error {
	for _, f := range fields {
		if f.Type != schema.FieldFile {
			continue
		}
		pending, ok := values[f.Name].(*blob.Pending)
		if !ok || pending == nil {
			continue
		}
		url, err := s.uploader.Upload(ctx, *pending)
		if err != nil {
			return fmt.Errorf("upload %s: %w", f.Name, err)
		}
		values[f.Name] = url
	}
	return nil
}

// AssemblePayload builds the flat external payload from the form state.
// Conversion rules per field:
//
//   - no external mapping: dropped entirely
//   - file: a bare URL for single-attachment columns, a one-element
//     attachment-descriptor list for multi-attachment columns
//   - selection with a single-select column: the first selected identifier
//     resolved to its display name
//   - selection with a multi-select column: every identifier resolved to its
//     name, silently dropping any that fail to resolve
//   - number column: parsed value, or nil when empty/unparseable (numeric
//     validity is a required-field concern handled before this stage)
//   - everything else: the raw form value
func AssemblePayload(values map[string]any, fields []schema.FieldDefinition, m mapping.FieldMapping) map[string]any {
	payload := make(map[string]any)

	for _, f := range fields {
		extName, mapped := m.ExternalName[f.Name]
		if !mapped {
			continue
		}
		val, present := values[f.Name]
		if !present {
			continue
		}
		extType := m.ExternalType[f.Name]

		switch {
		case f.Type == schema.FieldFile:
			url, _ := val.(string)
			if url == "" {
				continue
			}
			if extType == metadata.TypeAttachment {
				payload[extName] = []map[string]any{{"url": url}}
			} else {
				payload[extName] = url
			}

		case f.Type.IsSelection() && len(m.Options[f.Name]) > 0:
			selected := toList(val)
			if len(selected) == 0 {
				continue
			}
			if extType == metadata.TypeMultipleSelects {
				var names []string
				for _, id := range selected {
					if name, ok := m.ResolveOptionName(f.Name, id); ok {
						names = append(names, name)
					}
				}
				payload[extName] = names
			} else {
				if name, ok := m.ResolveOptionName(f.Name, selected[0]); ok {
					payload[extName] = name
				}
			}

		case extType == metadata.TypeNumber:
			payload[extName] = parseNumber(val)

		default:
			payload[extName] = val
		}
	}
	return payload
}

func toList(val any) []string {
	switch v := val.(type) {
	case []string:
		return v
	case string:
		if v == "" {
			return nil
		}
		return []string{v}
	case []any:
		var out []string
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

func parseNumber(val any) any {
	switch v := val.(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case string:
		n, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return nil
		}
		return n
	}
	return nil
}
