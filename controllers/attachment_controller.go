// Copyright (C) 2026 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package controllers

import (
	"fmt"
	"log/slog"
	"mime"
	"net/http"

	"github.com/l3montree-dev/incidentguard/shared"
	"github.com/l3montree-dev/incidentguard/transformer"
	"github.com/labstack/echo/v4"
)

type AttachmentController struct {
	attachmentService shared.AttachmentService
}

func NewAttachmentController(attachmentService shared.AttachmentService) *AttachmentController {
	return &AttachmentController{
		attachmentService: attachmentService,
	}
}

// @Summary Upload an attachment
// @Security BearerAuth
// @Accept multipart/form-data
// @Param id path string true "Incident ID"
// @Param file formData file true "The file"
// @Success 201 {object} dtos.AttachmentDTO
// @Router /incidents/{id}/attachments [post]
func (controller *AttachmentController) Upload(ctx shared.Context) error {
	incidentID, err := uuidParam(ctx, "id")
	if err != nil {
		return err
	}

	header, err := ctx.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(400, "missing file").WithInternal(err)
	}
	file, err := header.Open()
	if err != nil {
		return echo.NewHTTPError(400, "could not read file").WithInternal(err)
	}
	defer file.Close()

	withStatus(ctx, http.StatusCreated)
	attachment, err := controller.attachmentService.Upload(ctx.Request().Context(), shared.GetClaim(ctx), incidentID, shared.AttachmentUpload{
		FileName: header.Filename,
		MimeType: header.Header.Get(echo.HeaderContentType),
		Size:     header.Size,
		Content:  file,
	})
	if err != nil {
		return httpError(err)
	}
	return ctx.JSON(http.StatusCreated, transformer.AttachmentModelToDTO(attachment))
}

func (controller *AttachmentController) List(ctx shared.Context) error {
	incidentID, err := uuidParam(ctx, "id")
	if err != nil {
		return err
	}

	attachments, err := controller.attachmentService.List(ctx.Request().Context(), shared.GetClaim(ctx), incidentID)
	if err != nil {
		return httpError(err)
	}
	return ctx.JSON(200, transformer.AttachmentModelsToDTOs(attachments))
}

// Download streams the content with the stored mime type.
func (controller *AttachmentController) Download(ctx shared.Context) error {
	incidentID, err := uuidParam(ctx, "id")
	if err != nil {
		return err
	}
	attachmentID, err := uuidParam(ctx, "attachmentID")
	if err != nil {
		return err
	}

	attachment, content, err := controller.attachmentService.Open(ctx.Request().Context(), shared.GetClaim(ctx), incidentID, attachmentID)
	if err != nil {
		return httpError(err)
	}
	defer func() {
		if err := content.Close(); err != nil {
			slog.Warn("could not close attachment", "id", attachment.ID, "err", err)
		}
	}()

	ctx.Response().Header().Set(echo.HeaderContentDisposition, mime.FormatMediaType("attachment", map[string]string{"filename": attachment.FileName}))
	if attachment.FileSize > 0 {
		ctx.Response().Header().Set(echo.HeaderContentLength, fmt.Sprint(attachment.FileSize))
	}
	return ctx.Stream(200, attachment.MimeType, content)
}

func (controller *AttachmentController) Delete(ctx shared.Context) error {
	incidentID, err := uuidParam(ctx, "id")
	if err != nil {
		return err
	}
	attachmentID, err := uuidParam(ctx, "attachmentID")
	if err != nil {
		return err
	}

	withStatus(ctx, http.StatusNoContent)
	if err := controller.attachmentService.Delete(ctx.Request().Context(), shared.GetClaim(ctx), incidentID, attachmentID); err != nil {
		return httpError(err)
	}
	return ctx.NoContent(http.StatusNoContent)
}
