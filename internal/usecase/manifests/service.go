// Package manifests implements manifest storage with reference tracking.
package manifests

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/hashicorp/go-multierror"
	"github.com/opencontainers/go-digest"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/kestrel/internal/boundaries/in"
	"github.com/bnema/kestrel/internal/boundaries/out"
	"github.com/bnema/kestrel/internal/domain"
	"github.com/bnema/kestrel/internal/logging"
	"github.com/bnema/kestrel/pkg/digestcodec"
	"github.com/bnema/kestrel/pkg/validation"
)

// populateConcurrency bounds parallel fetches of missing references.
const populateConcurrency = 4

// Ensure Service implements in.ManifestService.
var _ in.ManifestService = (*Service)(nil)

// Service implements the ManifestService interface.
//
// Every stored manifest holds one reference on each distinct blob it names
// and one parent count on each child manifest of an index. Both are
// in-memory and replayed by Rebuild on startup.
type Service struct {
	blobs    out.BlobStorage
	store    out.ManifestStorage
	eventBus out.EventPublisher

	locks   *keyedMutex
	parents sync.Map // name@digest -> *atomic.Int64

	rebuildOnce sync.Once
	rebuilt     int
	rebuildErr  error
}

// NewService creates a new manifest service.
func NewService(blobs out.BlobStorage, store out.ManifestStorage, eventBus out.EventPublisher) *Service {
	return &Service{
		blobs:    blobs,
		store:    store,
		eventBus: eventBus,
		locks:    newKeyedMutex(),
	}
}

// PutManifest validates and stores a manifest, then points its tag at it.
// References that are not present locally fail the write unless
// opts.Populate is set, in which case it is asked to fetch them first.
func (s *Service) PutManifest(ctx context.Context, manifest *domain.Manifest, opts domain.PutManifestOptions) (digest.Digest, error) {
	ctx = logging.CtxWithFields(ctx, map[string]any{
		logging.FieldLayer:   "usecase",
		logging.FieldUseCase: "PutManifest",
		"name":               manifest.Name,
		"reference":          manifest.Reference,
	})
	log := logging.FromCtx(ctx)

	if err := validateName(manifest.Name); err != nil {
		return "", err
	}

	d, tag, err := s.contentDigest(manifest)
	if err != nil {
		return "", err
	}

	p, err := parseManifest(manifest.ContentType, manifest.Data)
	if err != nil {
		return "", err
	}
	refs := distinct(p.refs)

	if err := s.ensureReferences(ctx, manifest.Name, refs, opts); err != nil {
		return "", err
	}

	if err := s.storeRevision(ctx, manifest.Name, d, p.mediaType, manifest.Data, refs, opts.Populate != nil); err != nil {
		return "", err
	}

	if tag != "" {
		if err := s.store.SetTag(ctx, manifest.Name, tag, d); err != nil {
			return "", log.WrapErr(err, "failed to update tag")
		}
	}

	if s.eventBus != nil {
		if err := s.eventBus.Publish(domain.EventManifestPushed, domain.ManifestPushedPayload{
			Name:        manifest.Name,
			Reference:   manifest.Reference,
			Digest:      d,
			Annotations: p.annotations,
		}); err != nil {
			log.Warn().Err(err).Msg("failed to publish manifest pushed event")
		}
	}

	manifest.Digest = d
	manifest.ContentType = p.mediaType
	manifest.Annotations = p.annotations

	log.Info().Str("digest", d.String()).Msg("manifest stored")
	return d, nil
}

// contentDigest computes the manifest digest. A digest reference must match
// the content and selects the algorithm; a tag reference is returned as tag.
func (s *Service) contentDigest(manifest *domain.Manifest) (digest.Digest, string, error) {
	if manifest.Reference == "" {
		return "", "", fmt.Errorf("%w: empty reference", domain.ErrReferenceInvalid)
	}

	if !looksLikeDigest(manifest.Reference) {
		if err := validation.ValidateTag(manifest.Reference); err != nil {
			return "", "", fmt.Errorf("%w: %v", domain.ErrReferenceInvalid, err)
		}
		return digestcodec.Compute(manifest.Data), manifest.Reference, nil
	}

	asserted, err := digestcodec.Parse(manifest.Reference)
	if err != nil {
		return "", "", err
	}
	computed, err := digestcodec.ComputeWith(asserted.Algorithm(), manifest.Data)
	if err != nil {
		return "", "", err
	}
	if computed != asserted {
		return "", "", fmt.Errorf("%w: computed %s, expected %s", domain.ErrDigestMismatch, computed, asserted)
	}
	return computed, "", nil
}

// ensureReferences checks that every reference is accessible from name,
// populating missing ones when allowed. Blobs count as accessible when name
// holds an upload, mount or manifest claim on them; on the population path
// any stored copy will do.
func (s *Service) ensureReferences(ctx context.Context, name string, refs []domain.ManifestReference, opts domain.PutManifestOptions) error {
	populate := opts.Populate != nil
	missing := s.missingReferences(ctx, name, refs, populate)
	if len(missing) == 0 {
		return nil
	}

	if !populate {
		return fmt.Errorf("%w: %s", domain.ErrManifestReferenceMissing, missing[0].Digest)
	}

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(populateConcurrency)
	for _, ref := range missing {
		g.Go(func() error {
			if err := opts.Populate(ref); err != nil {
				return fmt.Errorf("failed to populate %s: %w", ref.Digest, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if still := s.missingReferences(ctx, name, missing, populate); len(still) > 0 {
		return fmt.Errorf("%w: %s", domain.ErrManifestReferenceMissing, still[0].Digest)
	}
	return nil
}

func (s *Service) missingReferences(ctx context.Context, name string, refs []domain.ManifestReference, populate bool) []domain.ManifestReference {
	var missing []domain.ManifestReference
	for _, ref := range refs {
		var ok bool
		switch {
		case ref.Manifest:
			ok = s.store.RecordExists(ctx, name, ref.Digest)
		case populate:
			ok = s.blobs.BlobExists(ctx, ref.Digest)
		default:
			ok = s.blobs.HasClaim(ctx, name, ref.Digest)
		}
		if !ok {
			missing = append(missing, ref)
		}
	}
	return missing
}

// storeRevision writes the record once per (name, digest) and takes its
// references. Re-putting identical content leaves the counts unchanged.
func (s *Service) storeRevision(ctx context.Context, name string, d digest.Digest, mediaType string, data []byte, refs []domain.ManifestReference, populate bool) error {
	log := logging.FromCtx(ctx)

	unlock := s.locks.Lock(revisionKey(name, d))
	defer unlock()

	if s.store.RecordExists(ctx, name, d) {
		return nil
	}

	claimed, err := s.claimAll(ctx, name, refs, populate)
	if err != nil {
		s.unclaimAll(ctx, name, claimed)
		return err
	}

	if err := s.store.PutRecord(ctx, name, out.ManifestRecord{Digest: d, MediaType: mediaType, Data: data}); err != nil {
		s.unclaimAll(ctx, name, claimed)
		return log.WrapErr(err, "failed to store manifest")
	}
	return nil
}

// unclaimAll rolls back claimAll. Blob references go back to being upload
// claims so a failed write never reclaims content the client just pushed.
func (s *Service) unclaimAll(ctx context.Context, name string, refs []domain.ManifestReference) {
	log := logging.FromCtx(ctx)
	for _, ref := range refs {
		if ref.Manifest {
			s.parentCounter(name, ref.Digest).Add(-1)
			continue
		}
		if err := s.blobs.ReturnReference(ctx, name, ref.Digest); err != nil {
			log.Warn().Err(err).Str("blob", ref.Digest.String()).Msg("failed to roll back blob reference")
		}
	}
}

func (s *Service) claimAll(ctx context.Context, name string, refs []domain.ManifestReference, populate bool) ([]domain.ManifestReference, error) {
	claim := s.blobs.ClaimReference
	if populate {
		claim = s.blobs.AdoptReference
	}

	claimed := make([]domain.ManifestReference, 0, len(refs))
	for _, ref := range refs {
		if ref.Manifest {
			if !s.store.RecordExists(ctx, name, ref.Digest) {
				return claimed, fmt.Errorf("%w: %s", domain.ErrManifestReferenceMissing, ref.Digest)
			}
			s.parentCounter(name, ref.Digest).Add(1)
		} else if err := claim(ctx, name, ref.Digest); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return claimed, fmt.Errorf("%w: %s", domain.ErrManifestReferenceMissing, ref.Digest)
			}
			return claimed, err
		}
		claimed = append(claimed, ref)
	}
	return claimed, nil
}

// releaseAll drops the references in refs and returns the child manifests
// whose last parent went away.
func (s *Service) releaseAll(ctx context.Context, name string, refs []domain.ManifestReference) ([]digest.Digest, error) {
	var (
		orphans []digest.Digest
		result  *multierror.Error
	)
	for _, ref := range refs {
		if ref.Manifest {
			if s.parentCounter(name, ref.Digest).Add(-1) <= 0 {
				orphans = append(orphans, ref.Digest)
			}
			continue
		}
		if err := s.blobs.ReleaseReference(ctx, name, ref.Digest); err != nil && !errors.Is(err, domain.ErrNotFound) {
			result = multierror.Append(result, err)
		}
	}
	return orphans, result.ErrorOrNil()
}

// GetManifest retrieves a manifest by name and reference.
func (s *Service) GetManifest(ctx context.Context, name, reference string) (*domain.Manifest, error) {
	ctx = logging.CtxWithFields(ctx, map[string]any{
		logging.FieldLayer:   "usecase",
		logging.FieldUseCase: "GetManifest",
		"name":               name,
		"reference":          reference,
	})

	if err := validateName(name); err != nil {
		return nil, err
	}

	d, err := s.resolve(ctx, name, reference)
	if err != nil {
		return nil, err
	}

	rec, err := s.store.GetRecord(ctx, name, d)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		return nil, logging.FromCtx(ctx).WrapErr(err, "failed to get manifest")
	}

	return &domain.Manifest{
		Name:        name,
		Reference:   reference,
		ContentType: rec.MediaType,
		Data:        rec.Data,
		Digest:      d,
	}, nil
}

// DeleteManifest removes a tag pointer, or a revision when reference is a
// digest. Deleting a revision removes the tags pointing at it, releases its
// blob references and deletes child manifests left untagged and unparented.
func (s *Service) DeleteManifest(ctx context.Context, name, reference string) error {
	ctx = logging.CtxWithFields(ctx, map[string]any{
		logging.FieldLayer:   "usecase",
		logging.FieldUseCase: "DeleteManifest",
		"name":               name,
		"reference":          reference,
	})
	log := logging.FromCtx(ctx)

	if err := validateName(name); err != nil {
		return err
	}

	if !looksLikeDigest(reference) {
		if err := validation.ValidateTag(reference); err != nil {
			return fmt.Errorf("%w: %v", domain.ErrReferenceInvalid, err)
		}
		if err := s.store.DeleteTag(ctx, name, reference); err != nil {
			return err
		}
	} else {
		d, err := digestcodec.Parse(reference)
		if err != nil {
			return err
		}
		if err := s.deleteRevision(ctx, name, d, false); err != nil {
			return err
		}
	}

	if s.eventBus != nil {
		if err := s.eventBus.Publish(domain.EventManifestDeleted, domain.ManifestDeletedPayload{
			Name:      name,
			Reference: reference,
		}); err != nil {
			log.Warn().Err(err).Msg("failed to publish manifest deleted event")
		}
	}

	log.Info().Msg("manifest deleted")
	return nil
}

// deleteRevision removes one revision. With onlyOrphan set, the revision is
// kept if it gained a parent or a tag in the meantime.
func (s *Service) deleteRevision(ctx context.Context, name string, d digest.Digest, onlyOrphan bool) error {
	log := logging.FromCtx(ctx)

	unlock := s.locks.Lock(revisionKey(name, d))
	rec, err := s.store.GetRecord(ctx, name, d)
	if err != nil {
		unlock()
		return err
	}

	tags, err := s.store.TagsFor(ctx, name, d)
	if err != nil {
		unlock()
		return log.WrapErr(err, "failed to look up tags")
	}

	if onlyOrphan && (len(tags) > 0 || s.parentCount(name, d) > 0) {
		unlock()
		return nil
	}

	for _, tag := range tags {
		if err := s.store.DeleteTag(ctx, name, tag); err != nil && !errors.Is(err, domain.ErrNotFound) {
			unlock()
			return log.WrapErr(err, "failed to delete tag")
		}
	}

	if err := s.store.DeleteRecord(ctx, name, d); err != nil {
		unlock()
		return err
	}
	unlock()

	p, err := parseManifest(rec.MediaType, rec.Data)
	if err != nil {
		log.Warn().Err(err).Str("digest", d.String()).Msg("stored manifest no longer parses, references not released")
		return nil
	}

	orphans, err := s.releaseAll(ctx, name, distinct(p.refs))
	result := multierror.Append(nil, err)
	for _, child := range orphans {
		if err := s.deleteRevision(ctx, name, child, true); err != nil && !errors.Is(err, domain.ErrNotFound) {
			result = multierror.Append(result, err)
		}
	}

	if err := result.ErrorOrNil(); err != nil {
		return log.WrapErr(err, "failed to release manifest references")
	}
	return nil
}

// ListTags returns the tags of a repository in lexical order.
func (s *Service) ListTags(ctx context.Context, name string) ([]string, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	return s.store.ListTags(ctx, name)
}

// ListRepositories returns one page of the catalog.
func (s *Service) ListRepositories(ctx context.Context, last string, n int) (domain.CatalogPage, error) {
	if n < 0 {
		n = 0
	}
	return s.store.ListRepositories(ctx, last, n)
}

// ManifestHistory returns the digests a tag has pointed at, most recent
// first. For a digest reference it returns that digest alone.
func (s *Service) ManifestHistory(ctx context.Context, name, reference string) ([]digest.Digest, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}

	if looksLikeDigest(reference) {
		d, err := digestcodec.Parse(reference)
		if err != nil {
			return nil, err
		}
		if !s.store.RecordExists(ctx, name, d) {
			return nil, domain.ErrManifestNotFound
		}
		return []digest.Digest{d}, nil
	}

	if err := validation.ValidateTag(reference); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrReferenceInvalid, err)
	}
	return s.store.TagHistory(ctx, name, reference, 0)
}

// Rebuild replays every stored manifest into the reference counts.
func (s *Service) Rebuild(ctx context.Context) (int, error) {
	s.rebuildOnce.Do(func() {
		s.rebuilt, s.rebuildErr = s.rebuild(ctx)
	})
	return s.rebuilt, s.rebuildErr
}

func (s *Service) rebuild(ctx context.Context) (int, error) {
	ctx = logging.CtxWithFields(ctx, map[string]any{
		logging.FieldLayer:   "usecase",
		logging.FieldUseCase: "Rebuild",
	})
	log := logging.FromCtx(ctx)

	var scanned, dangling int
	err := s.store.WalkRecords(ctx, func(name string, rec out.ManifestRecord) error {
		scanned++
		p, err := parseManifest(rec.MediaType, rec.Data)
		if err != nil {
			log.Warn().Err(err).Str("name", name).Str("digest", rec.Digest.String()).Msg("skipping unparseable manifest")
			return nil
		}
		for _, ref := range distinct(p.refs) {
			if ref.Manifest {
				s.parentCounter(name, ref.Digest).Add(1)
				continue
			}
			if err := s.blobs.AdoptReference(ctx, name, ref.Digest); err != nil {
				if !errors.Is(err, domain.ErrNotFound) {
					return err
				}
				dangling++
				log.Warn().Str("name", name).Str("digest", rec.Digest.String()).
					Str("blob", ref.Digest.String()).Msg("manifest references a missing blob")
			}
		}
		return nil
	})
	if err != nil {
		return scanned, log.WrapErr(err, "failed to rebuild references")
	}

	log.Info().Int("manifests", scanned).Int("dangling", dangling).Msg("references rebuilt")
	return scanned, nil
}

func (s *Service) resolve(ctx context.Context, name, reference string) (digest.Digest, error) {
	if looksLikeDigest(reference) {
		return digestcodec.Parse(reference)
	}
	if err := validation.ValidateTag(reference); err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrReferenceInvalid, err)
	}
	return s.store.ResolveTag(ctx, name, reference)
}

func (s *Service) parentCounter(name string, d digest.Digest) *atomic.Int64 {
	v, _ := s.parents.LoadOrStore(revisionKey(name, d), &atomic.Int64{})
	return v.(*atomic.Int64)
}

func (s *Service) parentCount(name string, d digest.Digest) int64 {
	v, ok := s.parents.Load(revisionKey(name, d))
	if !ok {
		return 0
	}
	return v.(*atomic.Int64).Load()
}

func revisionKey(name string, d digest.Digest) string {
	return name + "@" + d.String()
}

// looksLikeDigest reports whether reference is meant as a digest. Tags cannot
// contain ':' so anything with one is parsed as a digest.
func looksLikeDigest(reference string) bool {
	return strings.Contains(reference, ":")
}

func validateName(name string) error {
	if err := validation.ValidateRepositoryName(name); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrNameInvalid, err)
	}
	return nil
}
