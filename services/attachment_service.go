package services

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"slices"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/l3montree-dev/incidentguard/database/models"
	"github.com/l3montree-dev/incidentguard/dtos"
	"github.com/l3montree-dev/incidentguard/shared"
)

// enough for mimetype to recognize all formats it knows
const mimeSniffBytes = 3072

type AttachmentService struct {
	attachmentRepository shared.AttachmentRepository
	incidentRepository   shared.IncidentRepository
	blobStore            shared.BlobStore
	authorizer           shared.Authorizer
	auditLogService      shared.AuditLogService
	config               AttachmentConfig
}

var _ shared.AttachmentService = (*AttachmentService)(nil)

func NewAttachmentService(
	attachmentRepository shared.AttachmentRepository,
	incidentRepository shared.IncidentRepository,
	blobStore shared.BlobStore,
	authorizer shared.Authorizer,
	auditLogService shared.AuditLogService,
	config AttachmentConfig,
) *AttachmentService {
	return &AttachmentService{
		attachmentRepository: attachmentRepository,
		incidentRepository:   incidentRepository,
		blobStore:            blobStore,
		authorizer:           authorizer,
		auditLogService:      auditLogService,
		config:               config,
	}
}

func (s *AttachmentService) checkFile(upload shared.AttachmentUpload) (string, string, error) {
	name := filepath.Base(strings.TrimSpace(upload.FileName))
	if name == "" || name == "." || name == "/" {
		return "", "", shared.Invalid("file name is required")
	}
	ext := strings.ToLower(filepath.Ext(name))
	if !slices.Contains(s.config.AllowedExtensions, ext) {
		return "", "", shared.Invalid(fmt.Sprintf("file extension %q is not allowed", ext))
	}
	if upload.Size > s.config.MaxBytes {
		return "", "", shared.Invalid(fmt.Sprintf("file exceeds the maximum size of %d bytes", s.config.MaxBytes))
	}
	return name, ext, nil
}

// sniffMimeType detects the type from the first bytes and returns a reader
// that still yields the whole content.
func sniffMimeType(r io.Reader) (string, io.Reader, error) {
	buffered := bufio.NewReaderSize(r, mimeSniffBytes)
	head, err := buffered.Peek(mimeSniffBytes)
	if err != nil && err != io.EOF && err != bufio.ErrBufferFull {
		return "", nil, shared.Transient(err, "could not read upload")
	}
	return mimetype.Detect(head).String(), buffered, nil
}

func (s *AttachmentService) Upload(ctx context.Context, claim shared.Claim, incidentID uuid.UUID, upload shared.AttachmentUpload) (models.Attachment, error) {
	if err := requirePermission(s.authorizer, claim, shared.PermissionEditIncidents); err != nil {
		return models.Attachment{}, err
	}
	name, ext, err := s.checkFile(upload)
	if err != nil {
		return models.Attachment{}, err
	}

	incident, err := s.incidentRepository.Read(nil, incidentID)
	if err != nil {
		return models.Attachment{}, err
	}
	if !s.authorizer.CanEditIncident(claim, incident) {
		return models.Attachment{}, denied(shared.PermissionEditIncidents, "not allowed to edit this incident")
	}

	mimeType, content, err := sniffMimeType(upload.Content)
	if err != nil {
		return models.Attachment{}, err
	}
	if upload.MimeType != "" && upload.MimeType != "application/octet-stream" {
		mimeType = upload.MimeType
	}

	attachment := models.Attachment{
		Model:      models.Model{ID: uuid.New()},
		IncidentID: incidentID,
		UploaderID: claim.ID,
		FileName:   name,
		MimeType:   mimeType,
	}
	attachment.StorageKey = fmt.Sprintf("%s/%s%s", incidentID, attachment.ID, ext)

	size, err := s.blobStore.Put(ctx, attachment.StorageKey, content, s.config.MaxBytes)
	if err != nil {
		return models.Attachment{}, err
	}
	attachment.FileSize = size

	err = s.attachmentRepository.Transaction(func(tx shared.DB) error {
		if err := s.attachmentRepository.Create(tx, &attachment); err != nil {
			return err
		}
		return s.auditLogService.Record(ctx, tx, &claim, shared.AuditEntry{
			Action:       dtos.AuditActionCreate,
			ResourceType: "attachment",
			ResourceID:   &attachment.ID,
			Details: map[string]any{
				"incident_id": incidentID.String(),
				"file_name":   attachment.FileName,
				"file_size":   attachment.FileSize,
			},
		})
	})
	if err != nil {
		if delErr := s.blobStore.Delete(ctx, attachment.StorageKey); delErr != nil {
			slog.Warn("could not remove orphaned blob", "key", attachment.StorageKey, "err", delErr)
		}
		return models.Attachment{}, err
	}
	return attachment, nil
}

func (s *AttachmentService) List(ctx context.Context, claim shared.Claim, incidentID uuid.UUID) ([]models.Attachment, error) {
	if err := requirePermission(s.authorizer, claim, shared.PermissionViewIncidents); err != nil {
		return nil, err
	}
	if _, err := s.incidentRepository.Read(nil, incidentID); err != nil {
		return nil, err
	}
	return s.attachmentRepository.ListByIncidentID(incidentID)
}

func (s *AttachmentService) readOfIncident(tx shared.DB, incidentID, id uuid.UUID) (models.Attachment, error) {
	attachment, err := s.attachmentRepository.Read(tx, id)
	if err != nil {
		return models.Attachment{}, err
	}
	if attachment.IncidentID != incidentID {
		return models.Attachment{}, shared.NotFound("attachment not found")
	}
	return attachment, nil
}

// Open returns the metadata and the content. The caller closes the reader.
func (s *AttachmentService) Open(ctx context.Context, claim shared.Claim, incidentID, id uuid.UUID) (models.Attachment, io.ReadCloser, error) {
	if err := requirePermission(s.authorizer, claim, shared.PermissionViewIncidents); err != nil {
		return models.Attachment{}, nil, err
	}
	attachment, err := s.readOfIncident(nil, incidentID, id)
	if err != nil {
		return models.Attachment{}, nil, err
	}
	content, err := s.blobStore.Get(ctx, attachment.StorageKey)
	if err != nil {
		return models.Attachment{}, nil, err
	}
	return attachment, content, nil
}

func (s *AttachmentService) Delete(ctx context.Context, claim shared.Claim, incidentID, id uuid.UUID) error {
	var attachment models.Attachment
	err := s.attachmentRepository.Transaction(func(tx shared.DB) error {
		var err error
		attachment, err = s.readOfIncident(tx, incidentID, id)
		if err != nil {
			return err
		}
		if !s.authorizer.CanDeleteAttachment(claim, attachment) {
			return denied(shared.PermissionEditIncidents, "only the uploader or an admin may delete this attachment")
		}
		if err := s.attachmentRepository.Delete(tx, id); err != nil {
			return err
		}
		return s.auditLogService.Record(ctx, tx, &claim, shared.AuditEntry{
			Action:       dtos.AuditActionDelete,
			ResourceType: "attachment",
			ResourceID:   &id,
			Details:      map[string]any{"incident_id": incidentID.String(), "file_name": attachment.FileName},
		})
	})
	if err != nil {
		return err
	}

	if err := s.blobStore.Delete(ctx, attachment.StorageKey); err != nil {
		slog.Warn("could not delete attachment blob", "attachment", id, "err", err)
	}
	return nil
}
