package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Techluminate-Academy/bsn-directory/internal/airtable"
	"github.com/Techluminate-Academy/bsn-directory/internal/api/handlers"
	"github.com/Techluminate-Academy/bsn-directory/internal/application"
	"github.com/Techluminate-Academy/bsn-directory/internal/blob"
	"github.com/Techluminate-Academy/bsn-directory/internal/cache"
	"github.com/Techluminate-Academy/bsn-directory/internal/config"
	"github.com/Techluminate-Academy/bsn-directory/internal/domain/metadata"
	"github.com/Techluminate-Academy/bsn-directory/internal/domain/schema"
	"github.com/Techluminate-Academy/bsn-directory/internal/repository"
	"github.com/Techluminate-Academy/bsn-directory/internal/repository/mock"
	"github.com/Techluminate-Academy/bsn-directory/internal/testutils"
)

// missCache satisfies the cache contract without retaining anything, so every
// request hits the mocked repositories.
type missCache struct{}

func (missCache) Get(context.Context, string) (string, error) { return "", cache.ErrMiss }
func (missCache) Set(context.Context, string, string, time.Duration) error {
	return nil
}
func (missCache) Delete(context.Context, ...string) error    { return nil }
func (missCache) DeletePrefix(context.Context, string) error { return nil }

type noopAPI struct{}

func (noopAPI) TableSchema(context.Context) ([]metadata.ExternalField, error) { return nil, nil }
func (noopAPI) CreateRecord(context.Context, map[string]any) (*airtable.Record, error) {
	return nil, nil
}
func (noopAPI) UpdateRecord(context.Context, string, map[string]any) (*airtable.Record, error) {
	return nil, nil
}
func (noopAPI) GetRecord(context.Context, string) (*airtable.Record, error) { return nil, nil }
func (noopAPI) FindRecordByEmail(context.Context, string) (*airtable.Record, error) {
	return nil, nil
}

type noopUploader struct{}

func (noopUploader) Upload(context.Context, blob.Pending) (string, error) { return "", nil }

func newTestRouter(t *testing.T, schemaRepo repository.SchemaRepo) *testRig {
	t.Helper()
	ctrl := gomock.NewController(t)
	memberRepo := mock.NewMockMemberRepo(ctrl)

	repos := &repository.Repos{Schema: schemaRepo, Member: memberRepo}
	svc := application.New(repos, application.Deps{
		API:      noopAPI{},
		Cache:    missCache{},
		Uploader: noopUploader{},
		CacheTTL: time.Minute,
	})
	h := handlers.New(svc, noopUploader{})
	return &testRig{router: testutils.SetupRouter(h)}
}

type testRig struct {
	router http.Handler
}

func (rig *testRig) do(method, path string, body []byte, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	rig.router.ServeHTTP(w, req)
	return w
}

func storedVersion(t *testing.T, version int, fields []schema.FieldDefinition) schema.FormVersion {
	t.Helper()
	v := schema.FormVersion{Version: version, Status: schema.StatusPublished, UpdatedAt: time.Now()}
	require.NoError(t, v.SetFieldList(fields))
	return v
}

func TestListVersions(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockSchemaRepo(ctrl)
	repo.EXPECT().ListVersions().Return([]schema.FormVersion{
		storedVersion(t, 2, []schema.FieldDefinition{
			{Name: "fullName", Label: "Full Name", Type: schema.FieldText, Required: true, Step: 1},
			{Name: "email", Label: "Email Address", Type: schema.FieldEmail, Required: true, Step: 1},
		}),
		storedVersion(t, 1, []schema.FieldDefinition{
			{Name: "fullName", Label: "Full Name", Type: schema.FieldText, Required: true, Step: 1},
		}),
	}, nil)
	rig := newTestRouter(t, repo)

	w := rig.do(http.MethodGet, "/schemas", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Success bool                    `json:"success"`
		Data    []schema.VersionSummary `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	require.Len(t, body.Data, 2)
	assert.Equal(t, 2, body.Data[0].Version)
	assert.Equal(t, 2, body.Data[0].FieldCount)
	assert.Equal(t, 1, body.Data[1].FieldCount)
}

func TestGetVersion_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockSchemaRepo(ctrl)
	repo.EXPECT().GetVersion(7).Return(schema.FormVersion{}, gorm.ErrRecordNotFound)
	rig := newTestRouter(t, repo)

	w := rig.do(http.MethodGet, "/schemas/7", nil, nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	var body struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, "Schema version not found", body.Error)
}

func TestGetVersion_RejectsNonNumeric(t *testing.T) {
	ctrl := gomock.NewController(t)
	rig := newTestRouter(t, mock.NewMockSchemaRepo(ctrl))

	w := rig.do(http.MethodGet, "/schemas/abc", nil, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateVersion_RequiresAdminKey(t *testing.T) {
	config.AdminKey = "sekrit"
	t.Cleanup(func() { config.AdminKey = "" })

	ctrl := gomock.NewController(t)
	rig := newTestRouter(t, mock.NewMockSchemaRepo(ctrl))

	payload := []byte(`{"fields": [{"name": "fullName", "label": "Full Name", "type": "text", "step": 1}]}`)

	w := rig.do(http.MethodPost, "/schemas", payload, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = rig.do(http.MethodPost, "/schemas", payload, map[string]string{"X-Admin-Key": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateVersion(t *testing.T) {
	config.AdminKey = "sekrit"
	t.Cleanup(func() { config.AdminKey = "" })

	ctrl := gomock.NewController(t)
	repo := mock.NewMockSchemaRepo(ctrl)
	repo.EXPECT().MaxVersion().Return(3, nil)
	repo.EXPECT().Create(gomock.Any()).DoAndReturn(func(v *schema.FormVersion) error {
		assert.Equal(t, 4, v.Version)
		assert.Equal(t, schema.StatusDraft, v.Status)
		return nil
	})
	rig := newTestRouter(t, repo)

	payload := []byte(`{"fields": [{"name": "fullName", "label": "Full Name", "type": "text", "required": true, "step": 1}]}`)
	w := rig.do(http.MethodPost, "/schemas", payload, map[string]string{"X-Admin-Key": "sekrit"})
	require.Equal(t, http.StatusCreated, w.Code)

	var body struct {
		Success bool               `json:"success"`
		Data    schema.VersionView `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, 4, body.Data.Version)
	assert.Equal(t, schema.StatusDraft, body.Data.Status)
	require.Len(t, body.Data.Fields, 1)
	assert.Equal(t, "Full Name", body.Data.Fields[0].Label)
}

func TestCreateVersion_RejectsEmptyFieldList(t *testing.T) {
	config.AdminKey = "sekrit"
	t.Cleanup(func() { config.AdminKey = "" })

	ctrl := gomock.NewController(t)
	rig := newTestRouter(t, mock.NewMockSchemaRepo(ctrl))

	w := rig.do(http.MethodPost, "/schemas", []byte(`{"fields": []}`), map[string]string{"X-Admin-Key": "sekrit"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
