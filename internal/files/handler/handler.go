package handler

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"path"
	"regexp"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"rentora/internal/files"
	"rentora/internal/platform/scope"
	tenantmodels "rentora/internal/tenant/models"
	"rentora/internal/transport/http/shared"
	dErrors "rentora/pkg/domain-errors"
)

// maxUploadBytes caps tenant document uploads at 10 MB.
const maxUploadBytes = 10 << 20

// TenantService is the surface the handler needs from the tenant feature.
type TenantService interface {
	Get(ctx context.Context, caller scope.Scope, id uuid.UUID) (*tenantmodels.Tenant, error)
	AttachFile(ctx context.Context, caller scope.Scope, id uuid.UUID, kind, path string) (*tenantmodels.Tenant, error)
}

type Handler struct {
	disk    *files.Disk
	tenants TenantService
	logger  *slog.Logger
}

func New(disk *files.Disk, tenants TenantService, logger *slog.Logger) *Handler {
	return &Handler{disk: disk, tenants: tenants, logger: logger}
}

func (h *Handler) Routes(r chi.Router) {
	r.Route("/files", func(r chi.Router) {
		r.Post("/upload", h.upload)
		r.Get("/tenant/{tenantID}", h.tenantFiles)
		r.Get("/download/*", h.download)
	})
}

func (h *Handler) upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "upload exceeds the 10 MB limit or is malformed"))
		return
	}

	tenantID, err := uuid.Parse(r.FormValue("tenant_id"))
	if err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid tenant_id"))
		return
	}
	kind := r.FormValue("kind")
	if kind != "agreement" && kind != "aadhar" {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "kind must be agreement or aadhar"))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "file field is required"))
		return
	}
	defer file.Close()
	if !strings.EqualFold(path.Ext(header.Filename), ".pdf") {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "only .pdf files are accepted"))
		return
	}
	data, err := io.ReadAll(file)
	if err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "failed to read upload"))
		return
	}

	caller := scope.FromContext(r.Context())
	tenant, err := h.tenants.Get(r.Context(), caller, tenantID)
	if err != nil {
		shared.WriteError(w, err)
		return
	}

	// Drop the previously attached file of this kind before saving anew.
	stale := tenant.AgreementPDF
	if kind == "aadhar" {
		stale = tenant.AadhaarPDF
	}

	name := fmt.Sprintf("uploads/tenant_%s_%s.pdf", tenantID, kind)
	rel, err := h.disk.Save(name, data)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	if stale != "" && stale != rel {
		if err := h.disk.Remove(stale); err != nil {
			h.logger.WarnContext(r.Context(), "stale file removal failed", "path", stale, "error", err)
		}
	}

	if _, err := h.tenants.AttachFile(r.Context(), caller, tenantID, kind, rel); err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusCreated, map[string]string{"path": rel})
}

func (h *Handler) tenantFiles(w http.ResponseWriter, r *http.Request) {
	tenantID, err := uuid.Parse(chi.URLParam(r, "tenantID"))
	if err != nil {
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid id"))
		return
	}
	tenant, err := h.tenants.Get(r.Context(), scope.FromContext(r.Context()), tenantID)
	if err != nil {
		shared.WriteError(w, err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, map[string]string{
		"agreement_pdf_path": tenant.AgreementPDF,
		"aadhar_pdf_path":    tenant.AadhaarPDF,
	})
}

var uploadedName = regexp.MustCompile(`^uploads/tenant_([0-9a-f-]{36})_(agreement|aadhar)\.pdf$`)

func (h *Handler) download(w http.ResponseWriter, r *http.Request) {
	rel := chi.URLParam(r, "*")
	caller := scope.FromContext(r.Context())

	// Tenant uploads embed the tenant ID, which carries the scope check.
	// Anything else is admin-only.
	if m := uploadedName.FindStringSubmatch(rel); m != nil {
		tenantID, err := uuid.Parse(m[1])
		if err == nil {
			if _, err := h.tenants.Get(r.Context(), caller, tenantID); err != nil {
				shared.WriteError(w, err)
				return
			}
		}
	} else if !caller.Admin {
		shared.WriteError(w, dErrors.New(dErrors.CodeForbidden, "admin role required"))
		return
	}

	data, err := h.disk.Open(rel)
	if err != nil {
		if dErrors.HasCode(err, dErrors.CodeBadRequest) {
			shared.WriteError(w, err)
			return
		}
		shared.WriteError(w, dErrors.New(dErrors.CodeNotFound, "file not found"))
		return
	}
	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Disposition", `attachment; filename="`+path.Base(rel)+`"`)
	_, _ = w.Write(data)
}
