package application

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/Techluminate-Academy/bsn-directory/internal/airtable"
	"github.com/Techluminate-Academy/bsn-directory/internal/blob"
	"github.com/Techluminate-Academy/bsn-directory/internal/cache"
	"github.com/Techluminate-Academy/bsn-directory/internal/domain/metadata"
)

// fakeCache is an in-memory cache.Store that records prefix invalidations.
type fakeCache struct {
	mu              sync.Mutex
	entries         map[string]string
	deleted         []string
	deletedPrefixes []string
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: map[string]string{}}
}

func (f *fakeCache) Get(_ context.Context, key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if v, ok := f.entries[key]; ok {
		return v, nil
	}
	return "", cache.ErrMiss
}

func (f *fakeCache) Set(_ context.Context, key, value string, _ time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries[key] = value
	return nil
}

func (f *fakeCache) Delete(_ context.Context, keys ...string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, k := range keys {
		delete(f.entries, k)
		f.deleted = append(f.deleted, k)
	}
	return nil
}

func (f *fakeCache) DeletePrefix(_ context.Context, prefix string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deletedPrefixes = append(f.deletedPrefixes, prefix)
	for k := range f.entries {
		if len(k) >= len(prefix) && k[:len(prefix)] == prefix {
			delete(f.entries, k)
		}
	}
	return nil
}

// fakeAPI is a function-backed airtable.API.
type fakeAPI struct {
	tableSchema  func(ctx context.Context) ([]metadata.ExternalField, error)
	createRecord func(ctx context.Context, fields map[string]any) (*airtable.Record, error)
	updateRecord func(ctx context.Context, id string, fields map[string]any) (*airtable.Record, error)
}

func (f *fakeAPI) TableSchema(ctx context.Context) ([]metadata.ExternalField, error) {
	return f.tableSchema(ctx)
}

func (f *fakeAPI) CreateRecord(ctx context.Context, fields map[string]any) (*airtable.Record, error) {
	return f.createRecord(ctx, fields)
}

func (f *fakeAPI) UpdateRecord(ctx context.Context, id string, fields map[string]any) (*airtable.Record, error) {
	return f.updateRecord(ctx, id, fields)
}

func (f *fakeAPI) GetRecord(context.Context, string) (*airtable.Record, error) {
	return nil, airtable.ErrRecordNotFound
}

func (f *fakeAPI) FindRecordByEmail(context.Context, string) (*airtable.Record, error) {
	return nil, airtable.ErrRecordNotFound
}

// fakeUploader returns queued URLs in order, or an error.
type fakeUploader struct {
	urls     []string
	err      error
	uploaded []blob.Pending
}

func (f *fakeUploader) Upload(_ context.Context, file blob.Pending) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	if len(f.urls) == 0 {
		return "", errors.New("no upload url queued")
	}
	f.uploaded = append(f.uploaded, file)
	url := f.urls[0]
	if len(f.urls) > 1 {
		f.urls = f.urls[1:]
	}
	return url, nil
}
