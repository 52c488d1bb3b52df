package application

import (
	"time"

	"github.com/Techluminate-Academy/bsn-directory/internal/airtable"
	"github.com/Techluminate-Academy/bsn-directory/internal/blob"
	"github.com/Techluminate-Academy/bsn-directory/internal/cache"
	"github.com/Techluminate-Academy/bsn-directory/internal/repository"
)

type Services struct {
	Schema     *SchemaService
	Metadata   *MetadataService
	Member     *MemberService
	Submission *SubmissionService
}

// Deps are the external collaborators shared across services: the Airtable
// client, the cache store, and the blob uploader. Created once at startup
// and passed by reference.
type Deps struct {
	API      airtable.API
	Cache    cache.Store
	Uploader blob.Uploader
	CacheTTL time.Duration
	Denylist OptionDenylist
}

func New(repos *repository.Repos, deps Deps) *Services {
	return &Services{
		Schema:     NewSchemaService(repos, deps.Cache, deps.CacheTTL),
		Metadata:   NewMetadataService(deps.API, deps.Cache, deps.CacheTTL, deps.Denylist),
		Member:     NewMemberService(repos, deps.Cache, deps.CacheTTL),
		Submission: NewSubmissionService(deps.API, repos, deps.Uploader, deps.Cache),
	}
}
