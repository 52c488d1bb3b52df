package airtable

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Techluminate-Academy/bsn-directory/internal/domain/metadata"
)

const metaFixture = `{
  "tables": [
    {
      "id": "tblOther",
      "name": "Events",
      "fields": [{"name": "Title", "type": "singleLineText"}]
    },
    {
      "id": "tblMembers",
      "name": "Members",
      "fields": [
        {"name": "Full Name", "type": "singleLineText"},
        {
          "name": "PRIMARY INDUSTRY HOUSE",
          "type": "singleSelect",
          "options": {
            "choices": [
              {"id": "selTech", "name": "Technology"},
              {"id": "selHealth", "name": "Healthcare"}
            ]
          }
        },
        {"name": "Years of Experience", "type": "number"}
      ]
    }
  ]
}`

func TestTableSchema(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		assert.Equal(t, "/v0/meta/bases/appBase/tables", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(metaFixture))
	}))
	defer srv.Close()

	c := NewClient("key123", "appBase", "tblMembers").WithBaseURL(srv.URL)
	fields, err := c.TableSchema(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer key123", gotAuth)

	require.Len(t, fields, 3)
	assert.Equal(t, "Full Name", fields[0].FieldName)
	assert.Equal(t, metadata.TypeSingleLineText, fields[0].FieldType)
	assert.Empty(t, fields[0].Options)

	house := fields[1]
	assert.Equal(t, metadata.TypeSingleSelect, house.FieldType)
	require.Len(t, house.Options, 2)
	assert.Equal(t, "selTech", house.Options[0].ID)
	assert.Equal(t, "Technology", house.Options[0].Name)
}

func TestTableSchema_MatchesByName(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(metaFixture))
	}))
	defer srv.Close()

	c := NewClient("k", "appBase", "Members").WithBaseURL(srv.URL)
	fields, err := c.TableSchema(context.Background())
	require.NoError(t, err)
	assert.Len(t, fields, 3)
}

func TestTableSchema_TableNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(metaFixture))
	}))
	defer srv.Close()

	c := NewClient("k", "appBase", "tblMissing").WithBaseURL(srv.URL)
	_, err := c.TableSchema(context.Background())
	assert.ErrorIs(t, err, ErrTableNotFound)
}

func TestCreateRecord_SendsTypecast(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v0/appBase/tblMembers", r.URL.Path)

		var payload struct {
			Fields   map[string]any `json:"fields"`
			Typecast bool           `json:"typecast"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.True(t, payload.Typecast)
		assert.Equal(t, "Ada Obi", payload.Fields["Full Name"])

		_, _ = w.Write([]byte(`{"id": "recNew", "fields": {"Full Name": "Ada Obi"}}`))
	}))
	defer srv.Close()

	c := NewClient("k", "appBase", "tblMembers").WithBaseURL(srv.URL)
	rec, err := c.CreateRecord(context.Background(), map[string]any{"Full Name": "Ada Obi"})
	require.NoError(t, err)
	assert.Equal(t, "recNew", rec.ID)
	assert.Equal(t, "Ada Obi", rec.Fields["Full Name"])
}

func TestGetRecord_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewClient("k", "appBase", "tblMembers").WithBaseURL(srv.URL)
	_, err := c.GetRecord(context.Background(), "recGone")
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestFindRecordByEmail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		formula := r.URL.Query().Get("filterByFormula")
		assert.True(t, strings.Contains(formula, strings.ToLower("ADA@example.com")),
			"formula should lowercase the email: %s", formula)
		_, _ = w.Write([]byte(`{"records": [{"id": "recAda", "fields": {"Email Address": "ada@example.com"}}]}`))
	}))
	defer srv.Close()

	c := NewClient("k", "appBase", "tblMembers").WithBaseURL(srv.URL)
	rec, err := c.FindRecordByEmail(context.Background(), "ADA@example.com")
	require.NoError(t, err)
	assert.Equal(t, "recAda", rec.ID)
}

func TestFindRecordByEmail_NoMatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"records": []}`))
	}))
	defer srv.Close()

	c := NewClient("k", "appBase", "tblMembers").WithBaseURL(srv.URL)
	_, err := c.FindRecordByEmail(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestDo_SurfacesErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"error": {"type": "INVALID_VALUE_FOR_COLUMN"}}`))
	}))
	defer srv.Close()

	c := NewClient("k", "appBase", "tblMembers").WithBaseURL(srv.URL)
	_, err := c.CreateRecord(context.Background(), map[string]any{"Years of Experience": "many"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "422")
	assert.Contains(t, err.Error(), "INVALID_VALUE_FOR_COLUMN")
}
