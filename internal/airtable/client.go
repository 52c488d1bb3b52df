package airtable

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/Techluminate-Academy/bsn-directory/internal/domain/metadata"
)

const defaultBaseURL = "https://api.airtable.com"

var (
	// ErrTableNotFound means the configured table id is absent from the base
	// schema. Treated as a fetch failure; retry is a UI-level concern.
	ErrTableNotFound = errors.New("airtable: table not found")
	// ErrRecordNotFound means a lookup by id or email matched nothing.
	ErrRecordNotFound = errors.New("airtable: record not found")
)

// Record is one external record: the stable id plus a loosely-typed bag of
// column values keyed by column name.
type Record struct {
	ID     string         `json:"id"`
	Fields map[string]any `json:"fields"`
}

// API is the narrow contract the services consume. The concrete client talks
// to the Airtable REST API; tests substitute fakes.
type API interface {
	TableSchema(ctx context.Context) ([]metadata.ExternalField, error)
	CreateRecord(ctx context.Context, fields map[string]any) (*Record, error)
	UpdateRecord(ctx context.Context, recordID string, fields map[string]any) (*Record, error)
	GetRecord(ctx context.Context, recordID string) (*Record, error)
	FindRecordByEmail(ctx context.Context, email string) (*Record, error)
}

// Client is a thin wrapper over the Airtable REST API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	baseID     string
	tableID    string
}

func NewClient(apiKey, baseID, tableID string) *Client {
	return &Client{
		httpClient: http.DefaultClient,
		baseURL:    defaultBaseURL,
		apiKey:     apiKey,
		baseID:     baseID,
		tableID:    tableID,
	}
}

// WithBaseURL overrides the API host. Used by tests.
func (c *Client) WithBaseURL(base string) *Client {
	c.baseURL = strings.TrimRight(base, "/")
	return c
}

type metaTablesResponse struct {
	Tables []struct {
		ID     string `json:"id"`
		Name   string `json:"name"`
		Fields []struct {
			Name    string `json:"name"`
			Type    string `json:"type"`
			Options *struct {
				Choices []struct {
					ID   string `json:"id"`
					Name string `json:"name"`
				} `json:"choices"`
			} `json:"options"`
		} `json:"fields"`
	} `json:"tables"`
}

// TableSchema fetches the base schema and normalizes the configured table's
// columns. Queries the endpoint once per call; memoization lives a layer up.
func (c *Client) TableSchema(ctx context.Context) ([]metadata.ExternalField, error) {
	path := fmt.Sprintf("/v0/meta/bases/%s/tables", c.baseID)
	var resp metaTablesResponse
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}

	for _, table := range resp.Tables {
		if table.ID != c.tableID && table.Name != c.tableID {
			continue
		}
		fields := make([]metadata.ExternalField, 0, len(table.Fields))
		for _, f := range table.Fields {
			ext := metadata.ExternalField{
				FieldName: f.Name,
				FieldType: metadata.ExternalFieldType(f.Type),
			}
			if f.Options != nil {
				for _, ch := range f.Options.Choices {
					ext.Options = append(ext.Options, metadata.ExternalOption{ID: ch.ID, Name: ch.Name})
				}
			}
			fields = append(fields, ext)
		}
		return fields, nil
	}
	return nil, ErrTableNotFound
}

type recordPayload struct {
	Fields   map[string]any `json:"fields"`
	Typecast bool           `json:"typecast"`
}

func (c *Client) CreateRecord(ctx context.Context, fields map[string]any) (*Record, error) {
	path := fmt.Sprintf("/v0/%s/%s", c.baseID, c.tableID)
	var rec Record
	if err := c.do(ctx, http.MethodPost, path, recordPayload{Fields: fields, Typecast: true}, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (c *Client) UpdateRecord(ctx context.Context, recordID string, fields map[string]any) (*Record, error) {
	path := fmt.Sprintf("/v0/%s/%s/%s", c.baseID, c.tableID, recordID)
	var rec Record
	if err := c.do(ctx, http.MethodPatch, path, recordPayload{Fields: fields, Typecast: true}, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (c *Client) GetRecord(ctx context.Context, recordID string) (*Record, error) {
	path := fmt.Sprintf("/v0/%s/%s/%s", c.baseID, c.tableID, recordID)
	var rec Record
	err := c.do(ctx, http.MethodGet, path, nil, &rec)
	if err != nil {
		var se *statusError
		if errors.As(err, &se) && se.code == http.StatusNotFound {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return &rec, nil
}

// FindRecordByEmail looks up at most one record whose email column matches,
// case-insensitively.
func (c *Client) FindRecordByEmail(ctx context.Context, email string) (*Record, error) {
	formula := fmt.Sprintf(`LOWER({Email Address})=%q`, strings.ToLower(email))
	path := fmt.Sprintf("/v0/%s/%s?maxRecords=1&filterByFormula=%s",
		c.baseID, c.tableID, url.QueryEscape(formula))

	var resp struct {
		Records []Record `json:"records"`
	}
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	if len(resp.Records) == 0 {
		return nil, ErrRecordNotFound
	}
	return &resp.Records[0], nil
}

type statusError struct {
	code int
	body string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("airtable: unexpected status %d: %s", e.code, e.body)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("airtable: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var buf bytes.Buffer
		_, _ = buf.ReadFrom(resp.Body)
		return &statusError{code: resp.StatusCode, body: strings.TrimSpace(buf.String())}
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
