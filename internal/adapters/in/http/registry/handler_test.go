package registry

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/opencontainers/go-digest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/kestrel/internal/adapters/dto"
	inmocks "github.com/bnema/kestrel/internal/boundaries/in/mocks"
	"github.com/bnema/kestrel/internal/domain"
	"github.com/bnema/kestrel/internal/logging"
)

const testUUID = "0b4c8a36-5a5e-4c43-8f57-3f3b0d1c2e9a"

var layerDigest = digest.FromString("layer")

func newTestHandler(t *testing.T) (*Handler, *inmocks.MockRegistryService) {
	registrySvc := inmocks.NewMockRegistryService(t)
	return NewHandler(registrySvc, 1024, logging.Nop()), registrySvc
}

func serve(h http.Handler, method, target string, body io.Reader) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, body)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var resp dto.RegistryErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp.Errors, 1)
	return resp.Errors[0].Code
}

func TestParseRoute(t *testing.T) {
	tests := []struct {
		path string
		want route
		ok   bool
	}{
		{"/v2/", route{kind: routeBase}, true},
		{"/v2", route{kind: routeBase}, true},
		{"/v2/_catalog", route{kind: routeCatalog}, true},
		{"/v2/a/b/tags/list", route{kind: routeTags, name: "a/b"}, true},
		{"/v2/app/manifests/latest", route{kind: routeManifest, name: "app", ref: "latest"}, true},
		{"/v2/a/manifests/b/manifests/v1", route{kind: routeManifest, name: "a/manifests/b", ref: "v1"}, true},
		{"/v2/app/manifest_history/v1", route{kind: routeHistory, name: "app", ref: "v1"}, true},
		{"/v2/app/blobs/" + layerDigest.String(), route{kind: routeBlob, name: "app", ref: layerDigest.String()}, true},
		{"/v2/app/blobs/uploads/", route{kind: routeUploads, name: "app"}, true},
		{"/v2/app/blobs/uploads", route{kind: routeUploads, name: "app"}, true},
		{"/v2/app/blobs/uploads/" + testUUID, route{kind: routeUpload, name: "app", ref: testUUID}, true},
		{"/v2/app/unknown", route{}, false},
		{"/v1/app/manifests/latest", route{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, ok := parseRoute(tt.path)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHandler_Base(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := serve(h, http.MethodGet, "/v2/", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "registry/2.0", rec.Header().Get("Docker-Distribution-API-Version"))
	assert.Equal(t, "{}", rec.Body.String())
}

func TestHandler_UnknownRoute(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := serve(h, http.MethodGet, "/v2/app/unknown", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "registry/2.0", rec.Header().Get("Docker-Distribution-API-Version"))
}

func TestHandler_MethodNotAllowed(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := serve(h, http.MethodPost, "/v2/app/manifests/latest", nil)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "UNSUPPORTED", decodeError(t, rec))
}

func TestHandler_GetManifest(t *testing.T) {
	h, registrySvc := newTestHandler(t)
	data := []byte(`{"schemaVersion":2}`)
	registrySvc.EXPECT().GetManifest(mock.Anything, "team/app", "latest").Return(&domain.Manifest{
		Name:        "team/app",
		Reference:   "latest",
		ContentType: "application/vnd.oci.image.manifest.v1+json",
		Data:        data,
	}, nil).Twice()

	rec := serve(h, http.MethodGet, "/v2/team/app/manifests/latest", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/vnd.oci.image.manifest.v1+json", rec.Header().Get("Content-Type"))
	assert.Equal(t, digest.FromBytes(data).String(), rec.Header().Get("Docker-Content-Digest"))
	assert.Equal(t, data, rec.Body.Bytes())

	rec = serve(h, http.MethodHead, "/v2/team/app/manifests/latest", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, fmt.Sprint(len(data)), rec.Header().Get("Content-Length"))
	assert.Empty(t, rec.Body.Bytes())
}

func TestHandler_GetManifest_Errors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"not found", domain.ErrManifestNotFound, http.StatusNotFound, "MANIFEST_UNKNOWN"},
		{"wrapped not found", fmt.Errorf("failed to get manifest: %w", domain.ErrManifestNotFound), http.StatusNotFound, "MANIFEST_UNKNOWN"},
		{"bad name", domain.ErrNameInvalid, http.StatusBadRequest, "NAME_INVALID"},
		{"upstream down", domain.ErrUpstreamUnavailable, http.StatusServiceUnavailable, "UNAVAILABLE"},
		{"upstream tampered", domain.ErrUpstreamIntegrityViolation, http.StatusBadGateway, "DIGEST_INVALID"},
		{"internal", assert.AnError, http.StatusInternalServerError, "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, registrySvc := newTestHandler(t)
			registrySvc.EXPECT().GetManifest(mock.Anything, "app", "v1").Return(nil, tt.err)

			rec := serve(h, http.MethodGet, "/v2/app/manifests/v1", nil)

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.code, decodeError(t, rec))
		})
	}
}

func TestHandler_PutManifest(t *testing.T) {
	h, registrySvc := newTestHandler(t)
	data := []byte(`{"schemaVersion":2}`)
	d := digest.FromBytes(data)
	registrySvc.EXPECT().PutManifest(mock.Anything, mock.MatchedBy(func(m *domain.Manifest) bool {
		return m.Name == "app" && m.Reference == "v1" && bytes.Equal(m.Data, data) &&
			m.ContentType == "application/vnd.oci.image.manifest.v1+json"
	})).Return(d, nil)

	req := httptest.NewRequest(http.MethodPut, "/v2/app/manifests/v1", bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/vnd.oci.image.manifest.v1+json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, d.String(), rec.Header().Get("Docker-Content-Digest"))
	assert.Equal(t, "/v2/app/manifests/"+d.String(), rec.Header().Get("Location"))
}

func TestHandler_PutManifest_TooLarge(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := serve(h, http.MethodPut, "/v2/app/manifests/v1", bytes.NewReader(make([]byte, 2048)))

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Equal(t, "SIZE_INVALID", decodeError(t, rec))
}

func TestHandler_PutManifest_MissingReferences(t *testing.T) {
	h, registrySvc := newTestHandler(t)
	registrySvc.EXPECT().PutManifest(mock.Anything, mock.Anything).
		Return("", fmt.Errorf("%w: %s", domain.ErrManifestReferenceMissing, layerDigest))

	rec := serve(h, http.MethodPut, "/v2/app/manifests/v1", strings.NewReader(`{}`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "MANIFEST_BLOB_UNKNOWN", decodeError(t, rec))
}

func TestHandler_DeleteManifest(t *testing.T) {
	h, registrySvc := newTestHandler(t)
	registrySvc.EXPECT().DeleteManifest(mock.Anything, "app", "v1").Return(nil).Once()
	registrySvc.EXPECT().DeleteManifest(mock.Anything, "app", "v2").Return(domain.ErrUnauthenticated).Once()

	rec := serve(h, http.MethodDelete, "/v2/app/manifests/v1", nil)
	assert.Equal(t, http.StatusAccepted, rec.Code)

	rec = serve(h, http.MethodDelete, "/v2/app/manifests/v2", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, BasicRealm, rec.Header().Get("WWW-Authenticate"))
	assert.Equal(t, "UNAUTHORIZED", decodeError(t, rec))
}

func TestHandler_ManifestHistory(t *testing.T) {
	h, registrySvc := newTestHandler(t)
	d1, d2 := digest.FromString("one"), digest.FromString("two")
	registrySvc.EXPECT().ManifestHistory(mock.Anything, "app", "v1").Return([]digest.Digest{d2, d1}, nil)

	rec := serve(h, http.MethodGet, "/v2/app/manifest_history/v1", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp dto.ManifestHistoryResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, []string{d2.String(), d1.String()}, resp.History)
}

func TestHandler_GetBlob(t *testing.T) {
	h, registrySvc := newTestHandler(t)
	registrySvc.EXPECT().GetBlob(mock.Anything, "app", layerDigest).
		Return(io.NopCloser(strings.NewReader("layer")), domain.BlobInfo{Digest: layerDigest, Size: 5}, nil)

	rec := serve(h, http.MethodGet, "/v2/app/blobs/"+layerDigest.String(), nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/octet-stream", rec.Header().Get("Content-Type"))
	assert.Equal(t, "5", rec.Header().Get("Content-Length"))
	assert.Equal(t, layerDigest.String(), rec.Header().Get("Docker-Content-Digest"))
	assert.Equal(t, "layer", rec.Body.String())
}

func TestHandler_HeadBlob(t *testing.T) {
	h, registrySvc := newTestHandler(t)
	registrySvc.EXPECT().StatBlob(mock.Anything, "app", layerDigest).
		Return(domain.BlobInfo{Digest: layerDigest, Size: 5}, nil).Once()
	registrySvc.EXPECT().StatBlob(mock.Anything, "other", layerDigest).
		Return(domain.BlobInfo{}, domain.ErrBlobNotFound).Once()

	rec := serve(h, http.MethodHead, "/v2/app/blobs/"+layerDigest.String(), nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "5", rec.Header().Get("Content-Length"))
	assert.Empty(t, rec.Body.Bytes())

	rec = serve(h, http.MethodHead, "/v2/other/blobs/"+layerDigest.String(), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_DeleteBlob(t *testing.T) {
	h, registrySvc := newTestHandler(t)
	registrySvc.EXPECT().DeleteBlob(mock.Anything, "app", layerDigest).Return(nil)

	rec := serve(h, http.MethodDelete, "/v2/app/blobs/"+layerDigest.String(), nil)

	assert.Equal(t, http.StatusAccepted, rec.Code)
}

func TestHandler_StartUpload(t *testing.T) {
	h, registrySvc := newTestHandler(t)
	registrySvc.EXPECT().StartUpload(mock.Anything, "app").Return(domain.Upload{UUID: testUUID, Name: "app"}, nil)

	rec := serve(h, http.MethodPost, "/v2/app/blobs/uploads/", nil)

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, "/v2/app/blobs/uploads/"+testUUID, rec.Header().Get("Location"))
	assert.Equal(t, "0-0", rec.Header().Get("Range"))
	assert.Equal(t, testUUID, rec.Header().Get("Docker-Upload-UUID"))
}

func TestHandler_StartUpload_CapacityExceeded(t *testing.T) {
	h, registrySvc := newTestHandler(t)
	registrySvc.EXPECT().StartUpload(mock.Anything, "app").Return(domain.Upload{}, domain.ErrCapacityExceeded)

	rec := serve(h, http.MethodPost, "/v2/app/blobs/uploads/", nil)

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "TOOMANYREQUESTS", decodeError(t, rec))
}

func TestHandler_MonolithicUpload(t *testing.T) {
	h, registrySvc := newTestHandler(t)
	registrySvc.EXPECT().PutBlob(mock.Anything, "app", layerDigest, mock.Anything, int64(5)).
		RunAndReturn(func(_ context.Context, _ string, d digest.Digest, r io.Reader, _ int64) (domain.BlobInfo, error) {
			data, err := io.ReadAll(r)
			if err != nil || string(data) != "layer" {
				return domain.BlobInfo{}, domain.ErrDigestMismatch
			}
			return domain.BlobInfo{Digest: d, Size: 5}, nil
		})

	rec := serve(h, http.MethodPost, "/v2/app/blobs/uploads/?digest="+layerDigest.String(), strings.NewReader("layer"))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "/v2/app/blobs/"+layerDigest.String(), rec.Header().Get("Location"))
	assert.Equal(t, layerDigest.String(), rec.Header().Get("Docker-Content-Digest"))
}

func TestHandler_MountBlob(t *testing.T) {
	h, registrySvc := newTestHandler(t)
	registrySvc.EXPECT().MountBlob(mock.Anything, "app", "base", layerDigest).
		Return(domain.BlobInfo{Digest: layerDigest, Size: 5}, nil)

	rec := serve(h, http.MethodPost, "/v2/app/blobs/uploads/?mount="+layerDigest.String()+"&from=base", nil)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, layerDigest.String(), rec.Header().Get("Docker-Content-Digest"))
}

func TestHandler_MountBlob_FallsBackToUpload(t *testing.T) {
	h, registrySvc := newTestHandler(t)
	registrySvc.EXPECT().MountBlob(mock.Anything, "app", "base", layerDigest).
		Return(domain.BlobInfo{}, domain.ErrBlobNotFound)
	registrySvc.EXPECT().StartUpload(mock.Anything, "app").Return(domain.Upload{UUID: testUUID, Name: "app"}, nil)

	rec := serve(h, http.MethodPost, "/v2/app/blobs/uploads/?mount="+layerDigest.String()+"&from=base", nil)

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, "/v2/app/blobs/uploads/"+testUUID, rec.Header().Get("Location"))
}

func TestHandler_UploadStatus(t *testing.T) {
	h, registrySvc := newTestHandler(t)
	registrySvc.EXPECT().UploadStatus(mock.Anything, "app", testUUID).
		Return(domain.Upload{UUID: testUUID, Name: "app", Offset: 10}, nil)

	rec := serve(h, http.MethodGet, "/v2/app/blobs/uploads/"+testUUID, nil)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "0-9", rec.Header().Get("Range"))
}

func TestHandler_PatchUpload_ContentRange(t *testing.T) {
	h, registrySvc := newTestHandler(t)
	registrySvc.EXPECT().AppendBlobChunk(mock.Anything, "app", testUUID, int64(5), mock.Anything, int64(3)).
		Return(domain.Upload{UUID: testUUID, Name: "app", Offset: 8}, nil)

	req := httptest.NewRequest(http.MethodPatch, "/v2/app/blobs/uploads/"+testUUID, strings.NewReader("abc"))
	req.Header.Set("Content-Range", "5-7")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, "0-7", rec.Header().Get("Range"))
	assert.Equal(t, "/v2/app/blobs/uploads/"+testUUID, rec.Header().Get("Location"))
}

func TestHandler_PatchUpload_Streamed(t *testing.T) {
	h, registrySvc := newTestHandler(t)
	registrySvc.EXPECT().UploadStatus(mock.Anything, "app", testUUID).
		Return(domain.Upload{UUID: testUUID, Name: "app", Offset: 4}, nil)
	registrySvc.EXPECT().AppendBlobChunk(mock.Anything, "app", testUUID, int64(4), mock.Anything, int64(3)).
		Return(domain.Upload{UUID: testUUID, Name: "app", Offset: 7}, nil)

	rec := serve(h, http.MethodPatch, "/v2/app/blobs/uploads/"+testUUID, strings.NewReader("abc"))

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, "0-6", rec.Header().Get("Range"))
}

func TestHandler_PatchUpload_Conflicts(t *testing.T) {
	h, registrySvc := newTestHandler(t)
	registrySvc.EXPECT().AppendBlobChunk(mock.Anything, "app", testUUID, int64(0), mock.Anything, int64(3)).
		Return(domain.Upload{}, domain.ErrOffsetConflict).Once()

	req := httptest.NewRequest(http.MethodPatch, "/v2/app/blobs/uploads/"+testUUID, strings.NewReader("abc"))
	req.Header.Set("Content-Range", "0-2")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusRequestedRangeNotSatisfiable, rec.Code)
	assert.Equal(t, "BLOB_UPLOAD_INVALID", decodeError(t, rec))

	req = httptest.NewRequest(http.MethodPatch, "/v2/app/blobs/uploads/"+testUUID, strings.NewReader("abc"))
	req.Header.Set("Content-Range", "nonsense")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusRequestedRangeNotSatisfiable, rec.Code)
}

func TestHandler_PatchUpload_Expired(t *testing.T) {
	h, registrySvc := newTestHandler(t)
	registrySvc.EXPECT().UploadStatus(mock.Anything, "app", testUUID).Return(domain.Upload{}, domain.ErrSessionExpired)

	rec := serve(h, http.MethodPatch, "/v2/app/blobs/uploads/"+testUUID, strings.NewReader("abc"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "BLOB_UPLOAD_UNKNOWN", decodeError(t, rec))
}

func TestHandler_PutUpload(t *testing.T) {
	h, registrySvc := newTestHandler(t)
	registrySvc.EXPECT().FinishUpload(mock.Anything, "app", testUUID, layerDigest).
		Return(domain.BlobInfo{Digest: layerDigest, Size: 5}, nil)

	rec := serve(h, http.MethodPut, "/v2/app/blobs/uploads/"+testUUID+"?digest="+layerDigest.String(), nil)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "/v2/app/blobs/"+layerDigest.String(), rec.Header().Get("Location"))
}

func TestHandler_PutUpload_FinalChunk(t *testing.T) {
	h, registrySvc := newTestHandler(t)
	registrySvc.EXPECT().UploadStatus(mock.Anything, "app", testUUID).
		Return(domain.Upload{UUID: testUUID, Name: "app", Offset: 2}, nil)
	registrySvc.EXPECT().AppendBlobChunk(mock.Anything, "app", testUUID, int64(2), mock.Anything, int64(3)).
		Return(domain.Upload{UUID: testUUID, Name: "app", Offset: 5}, nil)
	registrySvc.EXPECT().FinishUpload(mock.Anything, "app", testUUID, layerDigest).
		Return(domain.BlobInfo{}, domain.ErrDigestMismatch)

	rec := serve(h, http.MethodPut, "/v2/app/blobs/uploads/"+testUUID+"?digest="+layerDigest.String(), strings.NewReader("yer"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "DIGEST_INVALID", decodeError(t, rec))
}

func TestHandler_PutUpload_MissingDigest(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := serve(h, http.MethodPut, "/v2/app/blobs/uploads/"+testUUID, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "DIGEST_INVALID", decodeError(t, rec))
}

func TestHandler_CancelUpload(t *testing.T) {
	h, registrySvc := newTestHandler(t)
	registrySvc.EXPECT().CancelUpload(mock.Anything, "app", testUUID).Return(nil)

	rec := serve(h, http.MethodDelete, "/v2/app/blobs/uploads/"+testUUID, nil)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestHandler_ListTags(t *testing.T) {
	h, registrySvc := newTestHandler(t)
	registrySvc.EXPECT().ListTags(mock.Anything, "app").Return([]string{"v3", "v1", "v2", "latest"}, nil)

	rec := serve(h, http.MethodGet, "/v2/app/tags/list", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp dto.TagListResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "app", resp.Name)
	assert.Equal(t, []string{"latest", "v1", "v2", "v3"}, resp.Tags)
	assert.Empty(t, rec.Header().Get("Link"))
}

func TestHandler_ListTags_Paginated(t *testing.T) {
	h, registrySvc := newTestHandler(t)
	registrySvc.EXPECT().ListTags(mock.Anything, "app").Return([]string{"a", "b", "c", "d"}, nil)

	rec := serve(h, http.MethodGet, "/v2/app/tags/list?n=2&last=a", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp dto.TagListResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, []string{"b", "c"}, resp.Tags)
	assert.Equal(t, `</v2/app/tags/list?last=c&n=2>; rel="next"`, rec.Header().Get("Link"))
}

func TestHandler_ListTags_UnknownRepository(t *testing.T) {
	h, registrySvc := newTestHandler(t)
	registrySvc.EXPECT().ListTags(mock.Anything, "app").Return(nil, domain.ErrRepositoryNotFound)

	rec := serve(h, http.MethodGet, "/v2/app/tags/list", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NAME_UNKNOWN", decodeError(t, rec))
}

func TestHandler_Catalog(t *testing.T) {
	h, registrySvc := newTestHandler(t)
	registrySvc.EXPECT().ListRepositories(mock.Anything, "alpha", 2).
		Return(domain.CatalogPage{Repositories: []string{"beta", "gamma"}, Next: "gamma"}, nil)

	rec := serve(h, http.MethodGet, "/v2/_catalog?n=2&last=alpha", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp dto.CatalogResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, []string{"beta", "gamma"}, resp.Repositories)
	assert.Equal(t, `</v2/_catalog?last=gamma&n=2>; rel="next"`, rec.Header().Get("Link"))
}

func TestHandler_Catalog_Empty(t *testing.T) {
	h, registrySvc := newTestHandler(t)
	registrySvc.EXPECT().ListRepositories(mock.Anything, "", 0).Return(domain.CatalogPage{}, nil)

	rec := serve(h, http.MethodGet, "/v2/_catalog", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"repositories":[]}`, rec.Body.String())
}

func TestHandler_Catalog_BadPageSize(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := serve(h, http.MethodGet, "/v2/_catalog?n=abc", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "PAGINATION_NUMBER_INVALID", decodeError(t, rec))
}
