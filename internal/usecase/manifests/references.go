package manifests

import (
	"encoding/json"
	"fmt"

	"github.com/opencontainers/go-digest"
	"github.com/opencontainers/image-spec/specs-go"
	ocispec "github.com/opencontainers/image-spec/specs-go/v1"

	"github.com/bnema/kestrel/internal/domain"
)

// Docker media types accepted alongside the OCI ones.
const (
	MediaTypeDockerManifest     = "application/vnd.docker.distribution.manifest.v2+json"
	MediaTypeDockerManifestList = "application/vnd.docker.distribution.manifest.list.v2+json"
)

// document is the union of the fields of image manifests and indexes that
// matter for reference tracking.
type document struct {
	specs.Versioned
	MediaType   string               `json:"mediaType,omitempty"`
	Config      *ocispec.Descriptor  `json:"config,omitempty"`
	Layers      []ocispec.Descriptor `json:"layers,omitempty"`
	Manifests   []ocispec.Descriptor `json:"manifests,omitempty"`
	Subject     *ocispec.Descriptor  `json:"subject,omitempty"`
	Annotations map[string]string    `json:"annotations,omitempty"`
}

// parsed is a validated manifest.
type parsed struct {
	mediaType   string
	annotations map[string]string
	refs        []domain.ManifestReference
}

// IsIndex reports whether mediaType names a multi-platform index.
func IsIndex(mediaType string) bool {
	return mediaType == ocispec.MediaTypeImageIndex || mediaType == MediaTypeDockerManifestList
}

// parseManifest validates data as a schema 2 manifest or index and returns
// the content it references. contentType is the type the client declared; the
// document's own mediaType wins when present.
func parseManifest(contentType string, data []byte) (parsed, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return parsed{}, fmt.Errorf("%w: %v", domain.ErrManifestInvalid, err)
	}
	if doc.SchemaVersion != 2 {
		return parsed{}, fmt.Errorf("%w: unsupported schema version %d", domain.ErrManifestInvalid, doc.SchemaVersion)
	}

	if doc.MediaType != "" && isManifestType(contentType) && doc.MediaType != contentType {
		return parsed{}, fmt.Errorf("%w: media type %q does not match content type %q",
			domain.ErrManifestInvalid, doc.MediaType, contentType)
	}

	mediaType := doc.MediaType
	if mediaType == "" && isManifestType(contentType) {
		mediaType = contentType
	}
	if mediaType == "" {
		if len(doc.Manifests) > 0 {
			mediaType = ocispec.MediaTypeImageIndex
		} else {
			mediaType = ocispec.MediaTypeImageManifest
		}
	}

	p := parsed{mediaType: mediaType, annotations: doc.Annotations}

	if IsIndex(mediaType) {
		if doc.Config != nil || len(doc.Layers) > 0 {
			return parsed{}, fmt.Errorf("%w: index carries image fields", domain.ErrManifestInvalid)
		}
		for _, m := range doc.Manifests {
			if err := checkDescriptor(m); err != nil {
				return parsed{}, err
			}
			p.refs = append(p.refs, domain.ManifestReference{
				Digest:    m.Digest,
				MediaType: m.MediaType,
				Size:      m.Size,
				Manifest:  true,
			})
		}
		return p, nil
	}

	if doc.Config == nil {
		return parsed{}, fmt.Errorf("%w: missing config", domain.ErrManifestInvalid)
	}
	if err := checkDescriptor(*doc.Config); err != nil {
		return parsed{}, err
	}
	p.refs = append(p.refs, domain.ManifestReference{
		Digest:    doc.Config.Digest,
		MediaType: doc.Config.MediaType,
		Size:      doc.Config.Size,
	})

	for _, l := range doc.Layers {
		if err := checkDescriptor(l); err != nil {
			return parsed{}, err
		}
		// Foreign layers are served from their URLs, not from this registry.
		if len(l.URLs) > 0 {
			continue
		}
		p.refs = append(p.refs, domain.ManifestReference{
			Digest:    l.Digest,
			MediaType: l.MediaType,
			Size:      l.Size,
		})
	}

	return p, nil
}

func isManifestType(mediaType string) bool {
	switch mediaType {
	case ocispec.MediaTypeImageManifest, ocispec.MediaTypeImageIndex,
		MediaTypeDockerManifest, MediaTypeDockerManifestList:
		return true
	}
	return false
}

func checkDescriptor(desc ocispec.Descriptor) error {
	if err := desc.Digest.Validate(); err != nil {
		return fmt.Errorf("%w: descriptor digest %q: %v", domain.ErrManifestInvalid, desc.Digest, err)
	}
	if desc.Size < 0 {
		return fmt.Errorf("%w: descriptor %s has negative size", domain.ErrManifestInvalid, desc.Digest)
	}
	return nil
}

// distinct returns the references with duplicates removed, keeping order.
func distinct(refs []domain.ManifestReference) []domain.ManifestReference {
	seen := make(map[digest.Digest]bool, len(refs))
	out := refs[:0:0]
	for _, r := range refs {
		if seen[r.Digest] {
			continue
		}
		seen[r.Digest] = true
		out = append(out, r)
	}
	return out
}
