// Package registry implements the HTTP adapter for the registry API.
package registry

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/opencontainers/go-digest"

	"github.com/bnema/kestrel/internal/adapters/dto"
	"github.com/bnema/kestrel/internal/boundaries/in"
	"github.com/bnema/kestrel/internal/domain"
	"github.com/bnema/kestrel/internal/logging"
)

// DefaultMaxManifestSize bounds how much of a manifest body is read when no
// limit is configured.
const DefaultMaxManifestSize = 4 * 1024 * 1024

// Handler implements the HTTP handler for Docker Registry API v2.
type Handler struct {
	registrySvc     in.RegistryService
	maxManifestSize int64
	log             logging.Logger
}

// NewHandler creates a new registry HTTP handler. Manifest bodies larger
// than maxManifestSize are rejected without being buffered.
func NewHandler(registrySvc in.RegistryService, maxManifestSize int64, log logging.Logger) *Handler {
	if maxManifestSize <= 0 {
		maxManifestSize = DefaultMaxManifestSize
	}
	return &Handler{
		registrySvc:     registrySvc,
		maxManifestSize: maxManifestSize,
		log:             log,
	}
}

// RegisterRoutes registers the registry routes on the given mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.Handle("/v2/", h)
}

type routeKind int

const (
	routeBase routeKind = iota
	routeCatalog
	routeManifest
	routeHistory
	routeBlob
	routeUploads
	routeUpload
	routeTags
)

// route is a parsed /v2/ path. ref holds the tag, digest or upload uuid.
type route struct {
	kind routeKind
	name string
	ref  string
}

// trailing path markers, tried in order; the repository name is everything
// before the last occurrence.
var markers = []struct {
	sep  string
	kind routeKind
}{
	{"/manifests/", routeManifest},
	{"/manifest_history/", routeHistory},
	{"/blobs/uploads/", routeUpload},
	{"/blobs/", routeBlob},
}

func parseRoute(path string) (route, bool) {
	rest, ok := strings.CutPrefix(path, "/v2/")
	if !ok {
		if path == "/v2" {
			return route{kind: routeBase}, true
		}
		return route{}, false
	}

	switch {
	case rest == "":
		return route{kind: routeBase}, true
	case rest == "_catalog":
		return route{kind: routeCatalog}, true
	case strings.HasSuffix(rest, "/tags/list"):
		return route{kind: routeTags, name: strings.TrimSuffix(rest, "/tags/list")}, true
	case strings.HasSuffix(rest, "/blobs/uploads/"):
		return route{kind: routeUploads, name: strings.TrimSuffix(rest, "/blobs/uploads/")}, true
	case strings.HasSuffix(rest, "/blobs/uploads"):
		return route{kind: routeUploads, name: strings.TrimSuffix(rest, "/blobs/uploads")}, true
	}

	for _, m := range markers {
		i := strings.LastIndex(rest, m.sep)
		if i <= 0 {
			continue
		}
		ref := rest[i+len(m.sep):]
		if ref == "" || strings.Contains(ref, "/") {
			continue
		}
		return route{kind: m.kind, name: rest[:i], ref: ref}, true
	}
	return route{}, false
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := logging.CtxWithFields(r.Context(), map[string]any{
		logging.FieldLayer:   "adapter",
		logging.FieldAdapter: "http",
		logging.FieldHandler: "registry",
		logging.FieldMethod:  r.Method,
		logging.FieldPath:    r.URL.Path,
	})
	r = r.WithContext(ctx)
	w.Header().Set(apiVersionHeader, apiVersion)

	rt, ok := parseRoute(r.URL.Path)
	if !ok {
		sendRegistryError(w, http.StatusNotFound, "NOT_FOUND", "route not found")
		return
	}

	type methods map[string]http.HandlerFunc
	var table methods
	switch rt.kind {
	case routeBase:
		table = methods{http.MethodGet: h.handleBase, http.MethodHead: h.handleBase}
	case routeCatalog:
		table = methods{http.MethodGet: h.handleCatalog}
	case routeTags:
		table = methods{http.MethodGet: h.handleListTags}
	case routeHistory:
		table = methods{http.MethodGet: h.handleHistory}
	case routeManifest:
		table = methods{
			http.MethodGet:    h.handleGetManifest,
			http.MethodHead:   h.handleGetManifest,
			http.MethodPut:    h.handlePutManifest,
			http.MethodDelete: h.handleDeleteManifest,
		}
	case routeBlob:
		table = methods{
			http.MethodGet:    h.handleGetBlob,
			http.MethodHead:   h.handleHeadBlob,
			http.MethodDelete: h.handleDeleteBlob,
		}
	case routeUploads:
		table = methods{http.MethodPost: h.handleStartBlobUpload}
	case routeUpload:
		table = methods{
			http.MethodGet:    h.handleUploadStatus,
			http.MethodPatch:  h.handlePatchUpload,
			http.MethodPut:    h.handlePutUpload,
			http.MethodDelete: h.handleCancelUpload,
		}
	}

	fn, ok := table[r.Method]
	if !ok {
		sendRegistryError(w, http.StatusMethodNotAllowed, "UNSUPPORTED", "method not allowed")
		return
	}
	if rt.name != "" {
		r.SetPathValue("name", rt.name)
	}
	if rt.ref != "" {
		r.SetPathValue("reference", rt.ref)
	}
	fn(w, r)
}

func (h *Handler) handleBase(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodGet {
		_, _ = w.Write([]byte("{}"))
	}
}

func (h *Handler) handleGetManifest(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logging.FromCtx(ctx)
	name := r.PathValue("name")
	reference := r.PathValue("reference")

	log.Debug().Str("name", name).Str("reference", reference).Msg("GET manifest")

	manifest, err := h.registrySvc.GetManifest(ctx, name, reference)
	if err != nil {
		writeError(w, r, err)
		return
	}

	d := manifest.Digest
	if d == "" {
		d = digest.FromBytes(manifest.Data)
	}
	w.Header().Set("Content-Type", manifest.ContentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(manifest.Data)))
	w.Header().Set("Docker-Content-Digest", d.String())
	w.WriteHeader(http.StatusOK)

	if r.Method == http.MethodGet {
		_, _ = w.Write(manifest.Data)
	}
}

func (h *Handler) handlePutManifest(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logging.FromCtx(ctx)
	name := r.PathValue("name")
	reference := r.PathValue("reference")
	contentType := r.Header.Get("Content-Type")

	log.Debug().Str("name", name).Str("reference", reference).Str("content_type", contentType).Msg("PUT manifest")

	if r.ContentLength > h.maxManifestSize {
		writeError(w, r, fmt.Errorf("%w: manifest is %d bytes, limit is %d",
			domain.ErrSizeLimitExceeded, r.ContentLength, h.maxManifestSize))
		return
	}

	// One byte past the limit lets the service reject oversized bodies sent
	// without a Content-Length.
	data, err := io.ReadAll(io.LimitReader(r.Body, h.maxManifestSize+1))
	if err != nil {
		writeError(w, r, fmt.Errorf("%w: reading body: %v", domain.ErrManifestInvalid, err))
		return
	}

	d, err := h.registrySvc.PutManifest(ctx, &domain.Manifest{
		Name:        name,
		Reference:   reference,
		ContentType: contentType,
		Data:        data,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	w.Header().Set("Docker-Content-Digest", d.String())
	w.Header().Set("Location", fmt.Sprintf("/v2/%s/manifests/%s", name, d))
	w.WriteHeader(http.StatusCreated)
}

func (h *Handler) handleDeleteManifest(w http.ResponseWriter, r *http.Request) {
	if err := h.registrySvc.DeleteManifest(r.Context(), r.PathValue("name"), r.PathValue("reference")); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusAccepted)
}

func (h *Handler) handleHistory(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	reference := r.PathValue("reference")

	history, err := h.registrySvc.ManifestHistory(r.Context(), name, reference)
	if err != nil {
		writeError(w, r, err)
		return
	}

	resp := dto.ManifestHistoryResponse{Name: name, Reference: reference, History: make([]string, 0, len(history))}
	for _, d := range history {
		resp.History = append(resp.History, d.String())
	}
	writeJSON(w, r, resp)
}

func (h *Handler) handleGetBlob(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logging.FromCtx(ctx)
	name := r.PathValue("name")
	d := digest.Digest(r.PathValue("reference"))

	log.Debug().Str("name", name).Str("digest", d.String()).Msg("GET blob")

	rc, info, err := h.registrySvc.GetBlob(ctx, name, d)
	if err != nil {
		writeError(w, r, err)
		return
	}
	defer rc.Close()

	setBlobHeaders(w, info)
	w.WriteHeader(http.StatusOK)
	if n, err := io.Copy(w, rc); err != nil {
		log.Warn().Err(err).Int64("written", n).Str("digest", d.String()).Msg("blob stream interrupted")
	}
}

func (h *Handler) handleHeadBlob(w http.ResponseWriter, r *http.Request) {
	info, err := h.registrySvc.StatBlob(r.Context(), r.PathValue("name"), digest.Digest(r.PathValue("reference")))
	if err != nil {
		writeError(w, r, err)
		return
	}
	setBlobHeaders(w, info)
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) handleDeleteBlob(w http.ResponseWriter, r *http.Request) {
	if err := h.registrySvc.DeleteBlob(r.Context(), r.PathValue("name"), digest.Digest(r.PathValue("reference"))); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusAccepted)
}

func setBlobHeaders(w http.ResponseWriter, info domain.BlobInfo) {
	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Length", strconv.FormatInt(info.Size, 10))
	w.Header().Set("Docker-Content-Digest", info.Digest.String())
}

// handleStartBlobUpload opens a session, or completes in one request for a
// monolithic upload (?digest=) or a cross-repository mount (?mount=&from=).
// A mount whose source blob is missing falls back to a new session.
func (h *Handler) handleStartBlobUpload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logging.FromCtx(ctx)
	name := r.PathValue("name")
	query := r.URL.Query()

	if mount := query.Get("mount"); mount != "" {
		info, err := h.registrySvc.MountBlob(ctx, name, query.Get("from"), digest.Digest(mount))
		switch {
		case err == nil:
			blobCreated(w, name, info.Digest)
			return
		case !errors.Is(err, domain.ErrBlobNotFound):
			writeError(w, r, err)
			return
		}
		log.Debug().Str("mount", mount).Msg("mount source missing, starting upload")
	}

	if dg := query.Get("digest"); dg != "" {
		info, err := h.registrySvc.PutBlob(ctx, name, digest.Digest(dg), r.Body, r.ContentLength)
		if err != nil {
			writeError(w, r, err)
			return
		}
		blobCreated(w, name, info.Digest)
		return
	}

	upload, err := h.registrySvc.StartUpload(ctx, name)
	if err != nil {
		writeError(w, r, err)
		return
	}
	uploadAccepted(w, http.StatusAccepted, name, upload)
}

func (h *Handler) handleUploadStatus(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	upload, err := h.registrySvc.UploadStatus(r.Context(), name, r.PathValue("reference"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	uploadAccepted(w, http.StatusNoContent, name, upload)
}

func (h *Handler) handlePatchUpload(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	upload, err := h.appendBody(r, name, r.PathValue("reference"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	uploadAccepted(w, http.StatusAccepted, name, upload)
}

// handlePutUpload appends any final chunk and publishes the blob.
func (h *Handler) handlePutUpload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	name := r.PathValue("name")
	uuid := r.PathValue("reference")

	dg := r.URL.Query().Get("digest")
	if dg == "" {
		writeError(w, r, fmt.Errorf("%w: digest query parameter required", domain.ErrInvalidDigest))
		return
	}

	if r.ContentLength != 0 {
		if _, err := h.appendBody(r, name, uuid); err != nil {
			writeError(w, r, err)
			return
		}
	}

	info, err := h.registrySvc.FinishUpload(ctx, name, uuid, digest.Digest(dg))
	if err != nil {
		writeError(w, r, err)
		return
	}
	blobCreated(w, name, info.Digest)
}

func (h *Handler) handleCancelUpload(w http.ResponseWriter, r *http.Request) {
	if err := h.registrySvc.CancelUpload(r.Context(), r.PathValue("name"), r.PathValue("reference")); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// appendBody writes the request body to the session at the offset named by
// Content-Range, or at the session's current offset when the header is
// absent (streamed chunk).
func (h *Handler) appendBody(r *http.Request, name, uuid string) (domain.Upload, error) {
	ctx := r.Context()

	offset, ok, err := parseContentRange(r.Header.Get("Content-Range"))
	if err != nil {
		return domain.Upload{}, err
	}
	if !ok {
		upload, err := h.registrySvc.UploadStatus(ctx, name, uuid)
		if err != nil {
			return domain.Upload{}, err
		}
		offset = upload.Offset
	}

	size := r.ContentLength
	if size < 0 {
		size = 0
	}
	return h.registrySvc.AppendBlobChunk(ctx, name, uuid, offset, r.Body, size)
}

// parseContentRange reads the start of a "start-end" chunk range.
func parseContentRange(header string) (int64, bool, error) {
	if header == "" {
		return 0, false, nil
	}
	header = strings.TrimPrefix(header, "bytes ")
	startStr, endStr, found := strings.Cut(header, "-")
	if !found {
		return 0, false, fmt.Errorf("%w: malformed Content-Range %q", domain.ErrOffsetConflict, header)
	}
	start, err := strconv.ParseInt(startStr, 10, 64)
	if err != nil || start < 0 {
		return 0, false, fmt.Errorf("%w: malformed Content-Range %q", domain.ErrOffsetConflict, header)
	}
	if end, err := strconv.ParseInt(endStr, 10, 64); err != nil || end < start {
		return 0, false, fmt.Errorf("%w: malformed Content-Range %q", domain.ErrOffsetConflict, header)
	}
	return start, true, nil
}

func uploadAccepted(w http.ResponseWriter, status int, name string, upload domain.Upload) {
	end := upload.Offset
	if end > 0 {
		end--
	}
	w.Header().Set("Location", fmt.Sprintf("/v2/%s/blobs/uploads/%s", name, upload.UUID))
	w.Header().Set("Range", fmt.Sprintf("0-%d", end))
	w.Header().Set("Docker-Upload-UUID", upload.UUID)
	w.Header().Set("Content-Length", "0")
	w.WriteHeader(status)
}

func blobCreated(w http.ResponseWriter, name string, d digest.Digest) {
	w.Header().Set("Location", fmt.Sprintf("/v2/%s/blobs/%s", name, d))
	w.Header().Set("Docker-Content-Digest", d.String())
	w.Header().Set("Content-Length", "0")
	w.WriteHeader(http.StatusCreated)
}

func (h *Handler) handleListTags(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	name := r.PathValue("name")

	n, err := pageSize(r)
	if err != nil {
		sendRegistryError(w, http.StatusBadRequest, "PAGINATION_NUMBER_INVALID", err.Error())
		return
	}

	tags, err := h.registrySvc.ListTags(ctx, name)
	if err != nil {
		writeError(w, r, err)
		return
	}

	sort.Strings(tags)
	if last := r.URL.Query().Get("last"); last != "" {
		i := sort.SearchStrings(tags, last)
		if i < len(tags) && tags[i] == last {
			i++
		}
		tags = tags[i:]
	}
	if n > 0 && len(tags) > n {
		tags = tags[:n]
		setNextLink(w, fmt.Sprintf("/v2/%s/tags/list", name), tags[n-1], n)
	}

	writeJSON(w, r, dto.TagListResponse{Name: name, Tags: tags})
}

func (h *Handler) handleCatalog(w http.ResponseWriter, r *http.Request) {
	n, err := pageSize(r)
	if err != nil {
		sendRegistryError(w, http.StatusBadRequest, "PAGINATION_NUMBER_INVALID", err.Error())
		return
	}

	page, err := h.registrySvc.ListRepositories(r.Context(), r.URL.Query().Get("last"), n)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if page.Next != "" {
		setNextLink(w, "/v2/_catalog", page.Next, len(page.Repositories))
	}

	repos := page.Repositories
	if repos == nil {
		repos = []string{}
	}
	writeJSON(w, r, dto.CatalogResponse{Repositories: repos})
}

// pageSize reads the optional n query parameter; zero means unset.
func pageSize(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("n")
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid page size %q", raw)
	}
	return n, nil
}

func setNextLink(w http.ResponseWriter, path, last string, n int) {
	q := url.Values{}
	q.Set("last", last)
	q.Set("n", strconv.Itoa(n))
	w.Header().Set("Link", fmt.Sprintf(`<%s?%s>; rel="next"`, path, q.Encode()))
}

func writeJSON(w http.ResponseWriter, r *http.Request, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log := logging.FromCtx(r.Context())
		log.Error().Err(err).Msg("failed to encode response")
	}
}
