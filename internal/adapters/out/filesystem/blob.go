// Package filesystem implements storage adapters using the local filesystem.
package filesystem

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/hashicorp/go-multierror"
	"github.com/opencontainers/go-digest"

	"github.com/bnema/kestrel/internal/boundaries/out"
	"github.com/bnema/kestrel/internal/domain"
	"github.com/bnema/kestrel/internal/logging"
	"github.com/bnema/kestrel/pkg/digestcodec"
)

// Negative reference counts mark entries that cannot take new claims.
const (
	refsRemoving   int64 = -1
	refsPublishing int64 = -2
)

// Ensure BlobStorage implements out.BlobStorage.
var _ out.BlobStorage = (*BlobStorage)(nil)

// BlobConfig tunes the blob store.
type BlobConfig struct {
	// MaxBlobSize bounds the cumulative size of an upload. Zero disables the check.
	MaxBlobSize int64
	// MaxSessions bounds concurrently open upload sessions. Zero disables the check.
	MaxSessions int
	// UploadTTL is how long a session may stay idle before it expires.
	UploadTTL time.Duration
	Clock     clock.Clock
	Events    out.EventPublisher
}

// BlobStorage implements out.BlobStorage on the local filesystem.
//
// Blob bytes live under blobs/<alg>/<hex[:2]>/<hex>. Reference counts are
// kept in memory, split per repository into pending upload claims and
// manifest references, and rebuilt from manifests on startup.
type BlobStorage struct {
	rootDir string
	cfg     BlobConfig
	clock   clock.Clock
	log     logging.Logger

	entries  sync.Map // digest.Digest -> *blobEntry
	sessions sync.Map // uuid -> *uploadSession
	active   atomic.Int64
}

type claimKind int

const (
	claimPending claimKind = iota
	claimManifest
)

type repoClaims struct {
	pending  atomic.Int64
	manifest atomic.Int64
}

func (rc *repoClaims) counter(kind claimKind) *atomic.Int64 {
	if kind == claimPending {
		return &rc.pending
	}
	return &rc.manifest
}

type blobEntry struct {
	// mu serializes publish and removal of the bytes for one digest.
	mu      sync.Mutex
	refs    atomic.Int64
	pins    atomic.Int64
	orphan  atomic.Bool
	repos   sync.Map // name -> *repoClaims
	size    int64
	created time.Time
}

func (e *blobEntry) claims(name string) *repoClaims {
	v, _ := e.repos.LoadOrStore(name, &repoClaims{})
	return v.(*repoClaims)
}

func (e *blobEntry) info(d digest.Digest) domain.BlobInfo {
	return domain.BlobInfo{Digest: d, Size: e.size, CreatedAt: e.created}
}

// NewBlobStorage opens the blob store rooted at rootDir, creating the
// directory layout when needed and indexing blobs already on disk.
func NewBlobStorage(rootDir string, cfg BlobConfig, log logging.Logger) (*BlobStorage, error) {
	dirs := []string{
		filepath.Join(rootDir, "blobs"),
		filepath.Join(rootDir, "uploads"),
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	if cfg.Clock == nil {
		cfg.Clock = clock.New()
	}
	if cfg.UploadTTL <= 0 {
		cfg.UploadTTL = time.Hour
	}

	s := &BlobStorage{
		rootDir: rootDir,
		cfg:     cfg,
		clock:   cfg.Clock,
		log:     log,
	}

	// Sessions do not survive a restart, so leftover upload data is garbage.
	stale, err := s.removeStaleUploads()
	if err != nil {
		return nil, err
	}
	indexed, err := s.indexBlobs()
	if err != nil {
		return nil, err
	}

	log.Info().
		Str(logging.FieldLayer, "adapter").
		Str(logging.FieldAdapter, "filesystem").
		Str("root_dir", rootDir).
		Int("blobs", indexed).
		Int("stale_uploads", stale).
		Msg("blob storage initialized")

	return s, nil
}

func (s *BlobStorage) indexBlobs() (int, error) {
	root := filepath.Join(s.rootDir, "blobs")
	count := 0
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.HasSuffix(path, ".tmp") {
			_ = os.Remove(path)
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		parts := strings.Split(filepath.ToSlash(rel), "/")
		if len(parts) != 3 {
			return nil
		}
		dgst, err := digestcodec.Parse(parts[0] + ":" + parts[2])
		if err != nil {
			s.log.Warn().
				Str(logging.FieldLayer, "adapter").
				Str(logging.FieldAdapter, "filesystem").
				Str("path", path).
				Msg("ignoring unrecognised file in blob store")
			return nil
		}

		fi, err := d.Info()
		if err != nil {
			return err
		}
		e := &blobEntry{size: fi.Size(), created: fi.ModTime()}
		e.orphan.Store(true)
		s.entries.Store(dgst, e)
		count++
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to index blobs: %w", err)
	}
	return count, nil
}

// GetBlob opens a blob for reading. The blob is pinned until the reader is closed.
func (s *BlobStorage) GetBlob(_ context.Context, d digest.Digest) (io.ReadCloser, domain.BlobInfo, error) {
	for {
		v, ok := s.entries.Load(d)
		if !ok {
			return nil, domain.BlobInfo{}, fmt.Errorf("%w: %s", domain.ErrBlobNotFound, d)
		}
		e := v.(*blobEntry)

		e.pins.Add(1)
		if e.refs.Load() < 0 {
			s.unpin(d, e)
			// Wait for the in-flight publish or removal, then look again.
			s.waitEntry(e)
			if e.refs.Load() >= 0 {
				continue
			}
			if cur, ok := s.entries.Load(d); !ok || cur == v {
				return nil, domain.BlobInfo{}, fmt.Errorf("%w: %s", domain.ErrBlobNotFound, d)
			}
			continue
		}

		file, err := os.Open(s.getBlobPath(d))
		if err != nil {
			s.unpin(d, e)
			if os.IsNotExist(err) {
				return nil, domain.BlobInfo{}, fmt.Errorf("%w: %s", domain.ErrBlobNotFound, d)
			}
			return nil, domain.BlobInfo{}, fmt.Errorf("failed to open blob: %w", err)
		}

		return &pinnedFile{File: file, release: func() { s.unpin(d, e) }}, e.info(d), nil
	}
}

// pinnedFile releases the blob pin on Close. It keeps *os.File's Seek so it
// can be served with http.ServeContent.
type pinnedFile struct {
	*os.File
	once    sync.Once
	release func()
}

func (p *pinnedFile) Close() error {
	err := p.File.Close()
	p.once.Do(p.release)
	return err
}

// StatBlob returns blob metadata.
func (s *BlobStorage) StatBlob(_ context.Context, d digest.Digest) (domain.BlobInfo, error) {
	v, ok := s.entries.Load(d)
	if !ok || v.(*blobEntry).refs.Load() < 0 {
		return domain.BlobInfo{}, fmt.Errorf("%w: %s", domain.ErrBlobNotFound, d)
	}
	return v.(*blobEntry).info(d), nil
}

// BlobExists checks if a blob exists.
func (s *BlobStorage) BlobExists(ctx context.Context, d digest.Digest) bool {
	_, err := s.StatBlob(ctx, d)
	return err == nil
}

// PutBlob stores a complete blob in one call.
func (s *BlobStorage) PutBlob(ctx context.Context, name string, expected digest.Digest, r io.Reader) (domain.BlobInfo, error) {
	upload, err := s.BeginUpload(ctx, name)
	if err != nil {
		return domain.BlobInfo{}, err
	}
	if _, err := s.AppendChunk(ctx, upload.UUID, 0, r); err != nil {
		_ = s.AbortUpload(ctx, upload.UUID)
		return domain.BlobInfo{}, err
	}
	return s.CompleteUpload(ctx, upload.UUID, expected)
}

// MountBlob gives name a claim on an existing blob.
func (s *BlobStorage) MountBlob(_ context.Context, name string, d digest.Digest) (domain.BlobInfo, error) {
	for {
		v, ok := s.entries.Load(d)
		if !ok {
			return domain.BlobInfo{}, fmt.Errorf("%w: %s", domain.ErrBlobNotFound, d)
		}
		e := v.(*blobEntry)
		if s.claim(e, name, claimPending) {
			s.log.Debug().
				Str(logging.FieldLayer, "adapter").
				Str(logging.FieldAdapter, "filesystem").
				Str("digest", d.String()).
				Str("name", name).
				Msg("blob mounted")
			return e.info(d), nil
		}
		s.waitEntry(e)
	}
}

// HasClaim reports whether name holds an upload, mount or manifest claim on d.
func (s *BlobStorage) HasClaim(_ context.Context, name string, d digest.Digest) bool {
	v, ok := s.entries.Load(d)
	if !ok {
		return false
	}
	e := v.(*blobEntry)
	if e.refs.Load() <= 0 {
		return false
	}
	rcv, ok := e.repos.Load(name)
	if !ok {
		return false
	}
	rc := rcv.(*repoClaims)
	return rc.pending.Load() > 0 || rc.manifest.Load() > 0
}

// ClaimReference records a manifest reference from name to d. name must
// already hold a claim on d: a pending upload claim is converted, otherwise
// another manifest reference is added next to an existing one.
func (s *BlobStorage) ClaimReference(_ context.Context, name string, d digest.Digest) error {
	for {
		v, ok := s.entries.Load(d)
		if !ok {
			return fmt.Errorf("%w: %s", domain.ErrBlobNotFound, d)
		}
		e := v.(*blobEntry)
		rcv, ok := e.repos.Load(name)
		if !ok {
			return fmt.Errorf("%w: %s is not available in %s", domain.ErrBlobNotFound, d, name)
		}
		rc := rcv.(*repoClaims)
		if decrementIfPositive(&rc.pending) {
			rc.manifest.Add(1)
			return nil
		}

		// Hold the global count first so a concurrent release cannot
		// reclaim the bytes between the two increments.
		if !s.hold(e) {
			s.waitEntry(e)
			continue
		}
		if incrementIfPositive(&rc.manifest) {
			return nil
		}
		s.drop(d, e)
		return fmt.Errorf("%w: %s is not available in %s", domain.ErrBlobNotFound, d, name)
	}
}

// AdoptReference records a manifest reference from name to d whether or not
// name held a claim before. It serves startup replay and proxy population,
// where the content was verified against its digest on the way in.
func (s *BlobStorage) AdoptReference(_ context.Context, name string, d digest.Digest) error {
	for {
		v, ok := s.entries.Load(d)
		if !ok {
			return fmt.Errorf("%w: %s", domain.ErrBlobNotFound, d)
		}
		e := v.(*blobEntry)
		rc := e.claims(name)
		if decrementIfPositive(&rc.pending) {
			rc.manifest.Add(1)
			return nil
		}
		if s.claim(e, name, claimManifest) {
			return nil
		}
		s.waitEntry(e)
	}
}

// ReturnReference turns one manifest reference from name to d back into an
// upload claim. It undoes ClaimReference after a failed manifest write
// without touching the global count.
func (s *BlobStorage) ReturnReference(_ context.Context, name string, d digest.Digest) error {
	v, ok := s.entries.Load(d)
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrBlobNotFound, d)
	}
	rcv, ok := v.(*blobEntry).repos.Load(name)
	if !ok || !decrementIfPositive(&rcv.(*repoClaims).manifest) {
		return fmt.Errorf("%w: %s is not referenced by %s", domain.ErrBlobNotFound, d, name)
	}
	rcv.(*repoClaims).pending.Add(1)
	return nil
}

// ReleaseReference drops one manifest reference from name to d.
func (s *BlobStorage) ReleaseReference(_ context.Context, name string, d digest.Digest) error {
	return s.release(d, name, claimManifest)
}

// DeleteBlob drops one upload claim held by name. Bytes are removed once no
// repository references the blob and no reader holds it open.
func (s *BlobStorage) DeleteBlob(_ context.Context, d digest.Digest, name string) error {
	if err := s.release(d, name, claimPending); err != nil {
		return err
	}

	s.log.Info().
		Str(logging.FieldLayer, "adapter").
		Str(logging.FieldAdapter, "filesystem").
		Str("digest", d.String()).
		Str("name", name).
		Msg("blob reference deleted")

	return nil
}

// References returns the global reference count of d, or -1 when unknown.
func (s *BlobStorage) References(d digest.Digest) int64 {
	v, ok := s.entries.Load(d)
	if !ok {
		return -1
	}
	return v.(*blobEntry).refs.Load()
}

func (s *BlobStorage) claim(e *blobEntry, name string, kind claimKind) bool {
	if !s.hold(e) {
		return false
	}
	e.orphan.Store(false)
	e.claims(name).counter(kind).Add(1)
	return true
}

// hold adds one to the global count unless the entry is being published or
// removed.
func (s *BlobStorage) hold(e *blobEntry) bool {
	for {
		r := e.refs.Load()
		if r < 0 {
			return false
		}
		if e.refs.CompareAndSwap(r, r+1) {
			return true
		}
	}
}

// drop undoes hold.
func (s *BlobStorage) drop(d digest.Digest, e *blobEntry) {
	if e.refs.Add(-1) == 0 {
		s.reclaim(d, e)
	}
}

func (s *BlobStorage) release(d digest.Digest, name string, kind claimKind) error {
	v, ok := s.entries.Load(d)
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrBlobNotFound, d)
	}
	e := v.(*blobEntry)

	rcv, ok := e.repos.Load(name)
	if !ok || !decrementIfPositive(rcv.(*repoClaims).counter(kind)) {
		return fmt.Errorf("%w: %s is not referenced by %s", domain.ErrBlobNotFound, d, name)
	}

	s.drop(d, e)
	return nil
}

func (s *BlobStorage) unpin(d digest.Digest, e *blobEntry) {
	if e.pins.Add(-1) == 0 && e.refs.Load() == 0 && !e.orphan.Load() {
		s.reclaim(d, e)
	}
}

// waitEntry blocks until an in-flight publish or removal of e is done.
func (s *BlobStorage) waitEntry(e *blobEntry) {
	e.mu.Lock()
	e.mu.Unlock() //nolint:staticcheck // barrier
}

// reclaim removes the bytes of d when nothing references or reads it.
func (s *BlobStorage) reclaim(d digest.Digest, e *blobEntry) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.refs.CompareAndSwap(0, refsRemoving) {
		return false
	}
	if e.pins.Load() != 0 {
		// The last reader reclaims on close.
		e.refs.Store(0)
		return false
	}

	if err := os.Remove(s.getBlobPath(d)); err != nil && !os.IsNotExist(err) {
		s.log.Error().
			Err(err).
			Str(logging.FieldLayer, "adapter").
			Str(logging.FieldAdapter, "filesystem").
			Str("digest", d.String()).
			Msg("failed to remove blob")
		e.refs.Store(0)
		return false
	}
	s.entries.CompareAndDelete(d, e)

	s.log.Info().
		Str(logging.FieldLayer, "adapter").
		Str(logging.FieldAdapter, "filesystem").
		Str("digest", d.String()).
		Int64(logging.FieldSize, e.size).
		Msg("blob reclaimed")

	if s.cfg.Events != nil {
		if err := s.cfg.Events.Publish(domain.EventBlobReclaimed, domain.BlobReclaimedPayload{Digest: d, Size: e.size}); err != nil {
			s.log.Warn().Err(err).Msg("failed to publish blob reclaimed event")
		}
	}
	return true
}

// publish moves a verified upload file into the store, or adds a claim when
// the content is already present.
func (s *BlobStorage) publish(d digest.Digest, srcPath, name string, size int64) (domain.BlobInfo, error) {
	for {
		if v, ok := s.entries.Load(d); ok {
			e := v.(*blobEntry)
			if s.claim(e, name, claimPending) {
				_ = os.Remove(srcPath)
				s.log.Debug().
					Str(logging.FieldLayer, "adapter").
					Str(logging.FieldAdapter, "filesystem").
					Str("digest", d.String()).
					Int64("references", e.refs.Load()).
					Msg("blob already stored, reference added")
				return e.info(d), nil
			}
			s.waitEntry(e)
			continue
		}

		e := &blobEntry{}
		e.refs.Store(refsPublishing)
		e.mu.Lock()
		if _, loaded := s.entries.LoadOrStore(d, e); loaded {
			e.mu.Unlock()
			continue
		}

		blobPath := s.getBlobPath(d)
		err := os.MkdirAll(filepath.Dir(blobPath), 0750)
		if err == nil {
			err = os.Rename(srcPath, blobPath)
		}
		if err != nil {
			s.entries.Delete(d)
			e.mu.Unlock()
			return domain.BlobInfo{}, fmt.Errorf("failed to move upload to blob location: %w", err)
		}

		e.size = size
		e.created = s.clock.Now()
		e.claims(name).pending.Add(1)
		e.refs.Store(1)
		e.mu.Unlock()

		s.log.Info().
			Str(logging.FieldLayer, "adapter").
			Str(logging.FieldAdapter, "filesystem").
			Str("digest", d.String()).
			Int64(logging.FieldSize, size).
			Msg("blob stored")

		return e.info(d), nil
	}
}

// Sweep reclaims blobs nothing references that are older than grace, and
// purges expired upload sessions.
func (s *BlobStorage) Sweep(ctx context.Context, grace time.Duration) (domain.GCReport, error) {
	report := domain.GCReport{UploadsPurged: s.PurgeExpiredUploads(ctx)}
	cutoff := s.clock.Now().Add(-grace)

	var result *multierror.Error
	s.entries.Range(func(k, v any) bool {
		if err := ctx.Err(); err != nil {
			result = multierror.Append(result, err)
			return false
		}
		d, e := k.(digest.Digest), v.(*blobEntry)
		if e.refs.Load() != 0 || e.pins.Load() != 0 || e.created.After(cutoff) {
			return true
		}
		if s.reclaim(d, e) {
			report.BlobsRemoved++
			report.BytesReclaimed += e.size
		}
		return true
	})

	stale, err := s.removeStaleUploads()
	report.UploadsPurged += stale
	if err != nil {
		result = multierror.Append(result, err)
	}

	return report, result.ErrorOrNil()
}

func incrementIfPositive(c *atomic.Int64) bool {
	for {
		v := c.Load()
		if v <= 0 {
			return false
		}
		if c.CompareAndSwap(v, v+1) {
			return true
		}
	}
}

func decrementIfPositive(c *atomic.Int64) bool {
	for {
		v := c.Load()
		if v <= 0 {
			return false
		}
		if c.CompareAndSwap(v, v-1) {
			return true
		}
	}
}

func (s *BlobStorage) getBlobPath(d digest.Digest) string {
	hex := d.Encoded()
	if len(hex) < 2 {
		return filepath.Join(s.rootDir, "blobs", d.Algorithm().String(), hex)
	}
	return filepath.Join(s.rootDir, "blobs", d.Algorithm().String(), hex[:2], hex)
}

func (s *BlobStorage) getUploadPath(uuid string) string {
	return filepath.Join(s.rootDir, "uploads", uuid)
}

func (s *BlobStorage) removeStaleUploads() (int, error) {
	entries, err := os.ReadDir(filepath.Join(s.rootDir, "uploads"))
	if err != nil {
		return 0, fmt.Errorf("failed to read uploads directory: %w", err)
	}
	var result *multierror.Error
	removed := 0
	for _, entry := range entries {
		if _, live := s.sessions.Load(entry.Name()); live {
			continue
		}
		if err := os.RemoveAll(s.getUploadPath(entry.Name())); err != nil {
			result = multierror.Append(result, err)
			continue
		}
		removed++
	}
	if err := result.ErrorOrNil(); err != nil {
		return removed, fmt.Errorf("failed to remove stale uploads: %w", err)
	}
	return removed, nil
}

// Ping checks that the storage root accepts writes.
func (s *BlobStorage) Ping(_ context.Context) error {
	f, err := os.CreateTemp(filepath.Join(s.rootDir, "uploads"), ".ping-*")
	if err != nil {
		return fmt.Errorf("storage not writable: %w", err)
	}
	name := f.Name()
	_ = f.Close()
	if err := os.Remove(name); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("storage not writable: %w", err)
	}
	return nil
}
