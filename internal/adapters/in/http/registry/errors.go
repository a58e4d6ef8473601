package registry

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/bnema/kestrel/internal/adapters/dto"
	"github.com/bnema/kestrel/internal/domain"
	"github.com/bnema/kestrel/internal/logging"
)

const (
	apiVersionHeader = "Docker-Distribution-API-Version"
	apiVersion       = "registry/2.0"

	// BasicRealm is the challenge sent with 401 responses.
	BasicRealm = `Basic realm="kestrel"`
)

type errorCode struct {
	status int
	code   string
}

// errorCodes is checked in order; more specific sentinels come first.
var errorCodes = []struct {
	err error
	errorCode
}{
	{domain.ErrUnauthenticated, errorCode{http.StatusUnauthorized, "UNAUTHORIZED"}},
	{domain.ErrBlobNotFound, errorCode{http.StatusNotFound, "BLOB_UNKNOWN"}},
	{domain.ErrManifestNotFound, errorCode{http.StatusNotFound, "MANIFEST_UNKNOWN"}},
	{domain.ErrUploadNotFound, errorCode{http.StatusNotFound, "BLOB_UPLOAD_UNKNOWN"}},
	{domain.ErrSessionExpired, errorCode{http.StatusNotFound, "BLOB_UPLOAD_UNKNOWN"}},
	{domain.ErrRepositoryNotFound, errorCode{http.StatusNotFound, "NAME_UNKNOWN"}},
	{domain.ErrProxyNotConfigured, errorCode{http.StatusNotFound, "NAME_UNKNOWN"}},
	{domain.ErrUpstreamIntegrityViolation, errorCode{http.StatusBadGateway, "DIGEST_INVALID"}},
	{domain.ErrDigestMismatch, errorCode{http.StatusBadRequest, "DIGEST_INVALID"}},
	{domain.ErrInvalidDigest, errorCode{http.StatusBadRequest, "DIGEST_INVALID"}},
	{domain.ErrUnsupportedAlgorithm, errorCode{http.StatusBadRequest, "UNSUPPORTED"}},
	{domain.ErrSizeLimitExceeded, errorCode{http.StatusRequestEntityTooLarge, "SIZE_INVALID"}},
	{domain.ErrOffsetConflict, errorCode{http.StatusRequestedRangeNotSatisfiable, "BLOB_UPLOAD_INVALID"}},
	{domain.ErrCapacityExceeded, errorCode{http.StatusTooManyRequests, "TOOMANYREQUESTS"}},
	{domain.ErrManifestReferenceMissing, errorCode{http.StatusBadRequest, "MANIFEST_BLOB_UNKNOWN"}},
	{domain.ErrManifestInvalid, errorCode{http.StatusBadRequest, "MANIFEST_INVALID"}},
	{domain.ErrNameInvalid, errorCode{http.StatusBadRequest, "NAME_INVALID"}},
	{domain.ErrReferenceInvalid, errorCode{http.StatusBadRequest, "TAG_INVALID"}},
	{domain.ErrUpstreamUnavailable, errorCode{http.StatusServiceUnavailable, "UNAVAILABLE"}},
}

// classify maps err onto a registry status and code. Anything outside the
// taxonomy is an internal error.
func classify(err error) errorCode {
	for _, c := range errorCodes {
		if errors.Is(err, c.err) {
			return c.errorCode
		}
	}
	return errorCode{http.StatusInternalServerError, "UNKNOWN"}
}

// writeError sends err as a registry error body and logs it.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	ec := classify(err)
	log := logging.FromCtx(r.Context())
	if ec.status >= http.StatusInternalServerError {
		log.Error().Err(err).Int(logging.FieldStatus, ec.status).Str("code", ec.code).Msg("registry request failed")
	} else {
		log.Debug().Err(err).Int(logging.FieldStatus, ec.status).Str("code", ec.code).Msg("registry request rejected")
	}

	message := err.Error()
	switch {
	case ec.status == http.StatusUnauthorized:
		w.Header().Set("WWW-Authenticate", BasicRealm)
	case ec.code == "UNKNOWN":
		message = "internal server error"
	}
	sendRegistryError(w, ec.status, ec.code, message)
}

// sendRegistryError sends a Docker Registry V2 formatted error response.
func sendRegistryError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set(apiVersionHeader, apiVersion)
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(dto.RegistryErrorResponse{
		Errors: []dto.RegistryErrorItem{{
			Code:    code,
			Message: message,
		}},
	})
}
