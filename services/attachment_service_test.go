package services

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/l3montree-dev/incidentguard/database/models"
	"github.com/l3montree-dev/incidentguard/dtos"
	"github.com/l3montree-dev/incidentguard/mocks"
	"github.com/l3montree-dev/incidentguard/shared"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type attachmentFixture struct {
	attachments *mocks.AttachmentRepository
	incidents   *mocks.IncidentRepository
	audit       *mocks.AuditLogService
	fs          afero.Fs
	service     *AttachmentService
}

func newAttachmentFixture(t *testing.T) attachmentFixture {
	f := attachmentFixture{
		attachments: mocks.NewAttachmentRepository(t),
		incidents:   mocks.NewIncidentRepository(t),
		audit:       mocks.NewAuditLogService(t),
		fs:          afero.NewMemMapFs(),
	}
	cfg := AttachmentConfig{MaxBytes: 64, AllowedExtensions: []string{".txt", ".png", ".log"}}
	f.service = NewAttachmentService(f.attachments, f.incidents, NewFSBlobStore(f.fs), newAuthorizer(t), f.audit, cfg)
	return f
}

func (f attachmentFixture) blobExists(t *testing.T, key string) bool {
	exists, err := afero.Exists(f.fs, "/"+key)
	require.NoError(t, err)
	return exists
}

func TestAttachmentServiceUpload(t *testing.T) {
	ctx := context.Background()
	editor := claimOf(shared.RoleEditor)
	incident := models.Incident{Model: models.Model{ID: uuid.New()}, CreatorID: editor.ID}

	t.Run("should reject extensions that are not allowed", func(t *testing.T) {
		f := newAttachmentFixture(t)

		_, err := f.service.Upload(ctx, editor, incident.ID, shared.AttachmentUpload{FileName: "run.exe", Size: 3, Content: strings.NewReader("MZ!")})
		assert.True(t, errors.Is(err, shared.ErrValidation))
	})

	t.Run("should reject a declared size above the limit", func(t *testing.T) {
		f := newAttachmentFixture(t)

		_, err := f.service.Upload(ctx, editor, incident.ID, shared.AttachmentUpload{FileName: "a.log", Size: 65, Content: strings.NewReader("x")})
		assert.True(t, errors.Is(err, shared.ErrValidation))
	})

	t.Run("should reject content above the limit even if the declared size lies", func(t *testing.T) {
		f := newAttachmentFixture(t)
		f.incidents.On("Read", mock.Anything, incident.ID).Return(incident, nil)

		_, err := f.service.Upload(ctx, editor, incident.ID, shared.AttachmentUpload{FileName: "a.log", Size: 1, Content: strings.NewReader(strings.Repeat("x", 65))})
		assert.True(t, errors.Is(err, shared.ErrValidation))
	})

	t.Run("should deny editors on incidents of others", func(t *testing.T) {
		f := newAttachmentFixture(t)
		foreign := models.Incident{Model: models.Model{ID: uuid.New()}, CreatorID: uuid.New()}
		f.incidents.On("Read", mock.Anything, foreign.ID).Return(foreign, nil)

		_, err := f.service.Upload(ctx, editor, foreign.ID, shared.AttachmentUpload{FileName: "a.txt", Size: 2, Content: strings.NewReader("hi")})
		assert.True(t, errors.Is(err, shared.ErrAuthorizationDenied))
	})

	t.Run("should store the blob, sniff the type and write the metadata", func(t *testing.T) {
		f := newAttachmentFixture(t)
		f.incidents.On("Read", mock.Anything, incident.ID).Return(incident, nil)
		runTransaction(&f.attachments.Mock)
		f.attachments.On("Create", mock.Anything, mock.Anything).Return(nil)
		f.audit.On("Record", mock.Anything, mock.Anything, mock.Anything, auditEntry(dtos.AuditActionCreate, "attachment")).Return(nil)

		attachment, err := f.service.Upload(ctx, editor, incident.ID, shared.AttachmentUpload{
			FileName: "../../notes.txt",
			MimeType: "application/octet-stream",
			Size:     11,
			Content:  strings.NewReader("hello world"),
		})
		require.NoError(t, err)
		assert.Equal(t, "notes.txt", attachment.FileName)
		assert.EqualValues(t, 11, attachment.FileSize)
		assert.True(t, strings.HasPrefix(attachment.MimeType, "text/plain"))
		assert.Equal(t, editor.ID, attachment.UploaderID)
		assert.True(t, f.blobExists(t, attachment.StorageKey))
	})

	t.Run("should remove the blob if the metadata cannot be written", func(t *testing.T) {
		f := newAttachmentFixture(t)
		f.incidents.On("Read", mock.Anything, incident.ID).Return(incident, nil)
		runTransaction(&f.attachments.Mock)

		var key string
		f.attachments.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			key = args.Get(1).(*models.Attachment).StorageKey
		}).Return(shared.Transient(errors.New("connection reset"), "could not create attachment"))

		_, err := f.service.Upload(ctx, editor, incident.ID, shared.AttachmentUpload{FileName: "a.txt", Size: 2, Content: strings.NewReader("hi")})
		assert.True(t, errors.Is(err, shared.ErrTransientStorage))
		require.NotEmpty(t, key)
		assert.False(t, f.blobExists(t, key))
	})
}

func TestAttachmentServiceOpenAndDelete(t *testing.T) {
	ctx := context.Background()
	uploader := claimOf(shared.RoleEditor)
	incidentID := uuid.New()
	attachment := models.Attachment{
		Model:      models.Model{ID: uuid.New()},
		IncidentID: incidentID,
		UploaderID: uploader.ID,
		FileName:   "a.txt",
		StorageKey: incidentID.String() + "/a.txt",
	}

	t.Run("should hide attachments of another incident", func(t *testing.T) {
		f := newAttachmentFixture(t)
		f.attachments.On("Read", mock.Anything, attachment.ID).Return(attachment, nil)

		_, _, err := f.service.Open(ctx, uploader, uuid.New(), attachment.ID)
		assert.True(t, errors.Is(err, shared.ErrNotFound))
	})

	t.Run("should stream the content", func(t *testing.T) {
		f := newAttachmentFixture(t)
		require.NoError(t, afero.WriteFile(f.fs, "/"+attachment.StorageKey, []byte("hi"), 0o640))
		f.attachments.On("Read", mock.Anything, attachment.ID).Return(attachment, nil)

		_, content, err := f.service.Open(ctx, claimOf(shared.RoleViewer), incidentID, attachment.ID)
		require.NoError(t, err)
		defer content.Close()
		raw, err := io.ReadAll(content)
		require.NoError(t, err)
		assert.Equal(t, "hi", string(raw))
	})

	t.Run("should deny other editors to delete", func(t *testing.T) {
		f := newAttachmentFixture(t)
		runTransaction(&f.attachments.Mock)
		f.attachments.On("Read", mock.Anything, attachment.ID).Return(attachment, nil)

		err := f.service.Delete(ctx, claimOf(shared.RoleEditor), incidentID, attachment.ID)
		assert.True(t, errors.Is(err, shared.ErrAuthorizationDenied))
	})

	t.Run("should delete metadata and blob for the uploader", func(t *testing.T) {
		f := newAttachmentFixture(t)
		require.NoError(t, afero.WriteFile(f.fs, "/"+attachment.StorageKey, []byte("hi"), 0o640))
		runTransaction(&f.attachments.Mock)
		f.attachments.On("Read", mock.Anything, attachment.ID).Return(attachment, nil)
		f.attachments.On("Delete", mock.Anything, attachment.ID).Return(nil)
		f.audit.On("Record", mock.Anything, mock.Anything, mock.Anything, auditEntry(dtos.AuditActionDelete, "attachment")).Return(nil)

		require.NoError(t, f.service.Delete(ctx, uploader, incidentID, attachment.ID))
		assert.False(t, f.blobExists(t, attachment.StorageKey))
	})
}
