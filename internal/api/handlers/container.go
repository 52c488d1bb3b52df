package handlers

import (
	"github.com/Techluminate-Academy/bsn-directory/internal/application"
	"github.com/Techluminate-Academy/bsn-directory/internal/blob"
)

type Handlers struct {
	Schema     *SchemaHandler
	Metadata   *MetadataHandler
	Member     *MemberHandler
	Submission *SubmissionHandler
	Upload     *UploadHandler
}

func New(svc *application.Services, uploader blob.Uploader) *Handlers {
	return &Handlers{
		Schema:     NewSchemaHandler(svc.Schema),
		Metadata:   NewMetadataHandler(svc.Metadata),
		Member:     NewMemberHandler(svc.Member),
		Submission: NewSubmissionHandler(svc.Schema, svc.Metadata, svc.Submission),
		Upload:     NewUploadHandler(uploader),
	}
}
