package filesystem

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/opencontainers/go-digest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/kestrel/internal/domain"
	"github.com/bnema/kestrel/internal/logging"
	"github.com/bnema/kestrel/pkg/digestcodec"
)

func testLogger() logging.Logger {
	return logging.Nop()
}

func newTestBlobStorage(t *testing.T, cfg BlobConfig) (*BlobStorage, string) {
	t.Helper()
	tmpDir := t.TempDir()
	storage, err := NewBlobStorage(tmpDir, cfg, testLogger())
	require.NoError(t, err)
	return storage, tmpDir
}

func uploadBlob(t *testing.T, s *BlobStorage, name string, data []byte) domain.BlobInfo {
	t.Helper()
	ctx := context.Background()
	upload, err := s.BeginUpload(ctx, name)
	require.NoError(t, err)
	_, err = s.AppendChunk(ctx, upload.UUID, 0, bytes.NewReader(data))
	require.NoError(t, err)
	info, err := s.CompleteUpload(ctx, upload.UUID, digestcodec.Compute(data))
	require.NoError(t, err)
	return info
}

func readBlob(t *testing.T, s *BlobStorage, d digest.Digest) []byte {
	t.Helper()
	rc, _, err := s.GetBlob(context.Background(), d)
	require.NoError(t, err)
	defer rc.Close()
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	return data
}

func TestNewBlobStorage(t *testing.T) {
	storage, tmpDir := newTestBlobStorage(t, BlobConfig{})

	assert.NotNil(t, storage)
	assert.DirExists(t, filepath.Join(tmpDir, "blobs"))
	assert.DirExists(t, filepath.Join(tmpDir, "uploads"))
}

func TestNewBlobStorage_InvalidPath(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, nil, 0600))

	_, err := NewBlobStorage(filepath.Join(file, "nested"), BlobConfig{}, testLogger())

	assert.Error(t, err)
}

func TestBlobStorage_ChunkedUploadRoundTrip(t *testing.T) {
	s, tmpDir := newTestBlobStorage(t, BlobConfig{})
	ctx := context.Background()
	data := []byte(strings.Repeat("0123456789", 10000))

	upload, err := s.BeginUpload(ctx, "library/alpine")
	require.NoError(t, err)
	assert.Equal(t, domain.UploadInitiated, upload.State)

	var offset int64
	for start := 0; start < len(data); start += 7000 {
		end := min(start+7000, len(data))
		offset, err = s.AppendChunk(ctx, upload.UUID, offset, bytes.NewReader(data[start:end]))
		require.NoError(t, err)
	}
	assert.Equal(t, int64(len(data)), offset)

	status, err := s.UploadStatus(ctx, upload.UUID)
	require.NoError(t, err)
	assert.Equal(t, domain.UploadInProgress, status.State)
	assert.Equal(t, offset, status.Offset)

	info, err := s.CompleteUpload(ctx, upload.UUID, digestcodec.Compute(data))
	require.NoError(t, err)
	assert.Equal(t, int64(len(data)), info.Size)

	assert.Equal(t, data, readBlob(t, s, info.Digest))
	assert.NoFileExists(t, filepath.Join(tmpDir, "uploads", upload.UUID))

	_, err = s.UploadStatus(ctx, upload.UUID)
	assert.ErrorIs(t, err, domain.ErrUploadNotFound)
}

func TestBlobStorage_BlobPathLayout(t *testing.T) {
	s, tmpDir := newTestBlobStorage(t, BlobConfig{})
	info := uploadBlob(t, s, "app", []byte("layout"))

	hex := info.Digest.Encoded()
	assert.FileExists(t, filepath.Join(tmpDir, "blobs", "sha256", hex[:2], hex))
}

func TestBlobStorage_AppendChunk_OffsetConflict(t *testing.T) {
	s, _ := newTestBlobStorage(t, BlobConfig{})
	ctx := context.Background()

	upload, err := s.BeginUpload(ctx, "app")
	require.NoError(t, err)
	_, err = s.AppendChunk(ctx, upload.UUID, 0, strings.NewReader("abc"))
	require.NoError(t, err)

	offset, err := s.AppendChunk(ctx, upload.UUID, 1, strings.NewReader("zzz"))
	assert.ErrorIs(t, err, domain.ErrOffsetConflict)
	assert.Equal(t, int64(3), offset)

	// The rejected chunk must not have been written.
	_, err = s.AppendChunk(ctx, upload.UUID, 3, strings.NewReader("def"))
	require.NoError(t, err)
	_, err = s.CompleteUpload(ctx, upload.UUID, digestcodec.Compute([]byte("abcdef")))
	assert.NoError(t, err)
}

type blockingReader struct {
	started chan struct{}
	release chan struct{}
	once    sync.Once
}

func (r *blockingReader) Read(p []byte) (int, error) {
	r.once.Do(func() { close(r.started) })
	<-r.release
	return 0, io.EOF
}

func TestBlobStorage_AppendChunk_ConcurrentAppendRejected(t *testing.T) {
	s, _ := newTestBlobStorage(t, BlobConfig{})
	ctx := context.Background()

	upload, err := s.BeginUpload(ctx, "app")
	require.NoError(t, err)

	br := &blockingReader{started: make(chan struct{}), release: make(chan struct{})}
	done := make(chan error, 1)
	go func() {
		_, err := s.AppendChunk(ctx, upload.UUID, 0, br)
		done <- err
	}()
	<-br.started

	_, err = s.AppendChunk(ctx, upload.UUID, 0, strings.NewReader("x"))
	assert.ErrorIs(t, err, domain.ErrOffsetConflict)

	close(br.release)
	assert.NoError(t, <-done)
}

func TestBlobStorage_CompleteUpload_DigestMismatch(t *testing.T) {
	s, tmpDir := newTestBlobStorage(t, BlobConfig{})
	ctx := context.Background()

	upload, err := s.BeginUpload(ctx, "app")
	require.NoError(t, err)
	_, err = s.AppendChunk(ctx, upload.UUID, 0, strings.NewReader("actual"))
	require.NoError(t, err)

	wrong := digestcodec.Compute([]byte("claimed"))
	_, err = s.CompleteUpload(ctx, upload.UUID, wrong)

	assert.ErrorIs(t, err, domain.ErrDigestMismatch)
	assert.False(t, s.BlobExists(ctx, wrong))
	assert.False(t, s.BlobExists(ctx, digestcodec.Compute([]byte("actual"))))
	assert.NoFileExists(t, filepath.Join(tmpDir, "uploads", upload.UUID))

	_, err = s.UploadStatus(ctx, upload.UUID)
	assert.ErrorIs(t, err, domain.ErrUploadNotFound)
}

func TestBlobStorage_CompleteUpload_Sha512(t *testing.T) {
	s, _ := newTestBlobStorage(t, BlobConfig{})
	ctx := context.Background()
	data := []byte("sha512 content")
	d, err := digestcodec.ComputeWith(digest.SHA512, data)
	require.NoError(t, err)

	upload, err := s.BeginUpload(ctx, "app")
	require.NoError(t, err)
	_, err = s.AppendChunk(ctx, upload.UUID, 0, bytes.NewReader(data))
	require.NoError(t, err)

	info, err := s.CompleteUpload(ctx, upload.UUID, d)
	require.NoError(t, err)
	assert.Equal(t, d, info.Digest)
	assert.Equal(t, data, readBlob(t, s, d))
}

func TestBlobStorage_AppendChunk_SizeLimit(t *testing.T) {
	s, _ := newTestBlobStorage(t, BlobConfig{MaxBlobSize: 10})
	ctx := context.Background()

	upload, err := s.BeginUpload(ctx, "app")
	require.NoError(t, err)
	_, err = s.AppendChunk(ctx, upload.UUID, 0, strings.NewReader("123456"))
	require.NoError(t, err)

	_, err = s.AppendChunk(ctx, upload.UUID, 6, strings.NewReader("7890A"))
	assert.ErrorIs(t, err, domain.ErrSizeLimitExceeded)

	_, err = s.UploadStatus(ctx, upload.UUID)
	assert.ErrorIs(t, err, domain.ErrUploadNotFound)
}

func TestBlobStorage_IdenticalUploadsShareStorage(t *testing.T) {
	s, tmpDir := newTestBlobStorage(t, BlobConfig{})
	data := []byte("same bytes")

	first := uploadBlob(t, s, "app", data)
	second := uploadBlob(t, s, "app", data)

	assert.Equal(t, first.Digest, second.Digest)
	assert.Equal(t, int64(2), s.References(first.Digest))

	var files int
	_ = filepath.Walk(filepath.Join(tmpDir, "blobs"), func(_ string, fi os.FileInfo, _ error) error {
		if fi != nil && !fi.IsDir() {
			files++
		}
		return nil
	})
	assert.Equal(t, 1, files)
}

func TestBlobStorage_ConcurrentIdenticalUploads(t *testing.T) {
	s, _ := newTestBlobStorage(t, BlobConfig{})
	data := []byte("racing content")
	const workers = 8

	ctx := context.Background()
	errs := make(chan error, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.PutBlob(ctx, "app", digestcodec.Compute(data), bytes.NewReader(data))
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	assert.Equal(t, int64(workers), s.References(digestcodec.Compute(data)))
	assert.Equal(t, data, readBlob(t, s, digestcodec.Compute(data)))
}

func TestBlobStorage_DeleteBlob_ReclaimsAtZero(t *testing.T) {
	s, _ := newTestBlobStorage(t, BlobConfig{})
	ctx := context.Background()
	data := []byte("delete me")

	info := uploadBlob(t, s, "app", data)
	uploadBlob(t, s, "app", data)

	require.NoError(t, s.DeleteBlob(ctx, info.Digest, "app"))
	assert.True(t, s.BlobExists(ctx, info.Digest))
	assert.FileExists(t, s.getBlobPath(info.Digest))

	require.NoError(t, s.DeleteBlob(ctx, info.Digest, "app"))
	assert.False(t, s.BlobExists(ctx, info.Digest))
	assert.NoFileExists(t, s.getBlobPath(info.Digest))

	err := s.DeleteBlob(ctx, info.Digest, "app")
	assert.ErrorIs(t, err, domain.ErrBlobNotFound)
}

func TestBlobStorage_DeleteBlob_OtherRepository(t *testing.T) {
	s, _ := newTestBlobStorage(t, BlobConfig{})
	ctx := context.Background()
	info := uploadBlob(t, s, "team/app", []byte("scoped"))

	err := s.DeleteBlob(ctx, info.Digest, "other")

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, int64(1), s.References(info.Digest))
}

func TestBlobStorage_PinnedBlobSurvivesDelete(t *testing.T) {
	s, _ := newTestBlobStorage(t, BlobConfig{})
	ctx := context.Background()
	data := []byte(strings.Repeat("pinned", 1000))
	info := uploadBlob(t, s, "app", data)

	rc, _, err := s.GetBlob(ctx, info.Digest)
	require.NoError(t, err)

	require.NoError(t, s.DeleteBlob(ctx, info.Digest, "app"))
	assert.FileExists(t, s.getBlobPath(info.Digest))

	got, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, data, got)

	require.NoError(t, rc.Close())
	assert.NoFileExists(t, s.getBlobPath(info.Digest))
	assert.False(t, s.BlobExists(ctx, info.Digest))
}

func TestBlobStorage_ClaimReferenceConvertsPendingClaim(t *testing.T) {
	s, _ := newTestBlobStorage(t, BlobConfig{})
	ctx := context.Background()
	info := uploadBlob(t, s, "app", []byte("layer"))

	require.NoError(t, s.ClaimReference(ctx, "app", info.Digest))
	assert.Equal(t, int64(1), s.References(info.Digest))

	// A second manifest in the same repository adds a reference.
	require.NoError(t, s.ClaimReference(ctx, "app", info.Digest))
	assert.Equal(t, int64(2), s.References(info.Digest))

	// The upload claim was converted, so there is nothing to delete directly.
	assert.ErrorIs(t, s.DeleteBlob(ctx, info.Digest, "app"), domain.ErrNotFound)

	require.NoError(t, s.ReleaseReference(ctx, "app", info.Digest))
	require.NoError(t, s.ReleaseReference(ctx, "app", info.Digest))
	assert.False(t, s.BlobExists(ctx, info.Digest))
}

func TestBlobStorage_ClaimReference_OtherRepository(t *testing.T) {
	s, _ := newTestBlobStorage(t, BlobConfig{})
	ctx := context.Background()
	info := uploadBlob(t, s, "team-a/app", []byte("private layer"))

	err := s.ClaimReference(ctx, "team-b/app", info.Digest)

	assert.ErrorIs(t, err, domain.ErrBlobNotFound)
	assert.Equal(t, int64(1), s.References(info.Digest))
	assert.False(t, s.HasClaim(ctx, "team-b/app", info.Digest))

	// Mounting makes it available.
	_, err = s.MountBlob(ctx, "team-b/app", info.Digest)
	require.NoError(t, err)
	require.NoError(t, s.ClaimReference(ctx, "team-b/app", info.Digest))
	assert.Equal(t, int64(2), s.References(info.Digest))
}

func TestBlobStorage_ReturnReference(t *testing.T) {
	s, _ := newTestBlobStorage(t, BlobConfig{})
	ctx := context.Background()
	info := uploadBlob(t, s, "app", []byte("layer"))

	require.NoError(t, s.ClaimReference(ctx, "app", info.Digest))
	require.NoError(t, s.ReturnReference(ctx, "app", info.Digest))

	assert.Equal(t, int64(1), s.References(info.Digest))
	assert.True(t, s.HasClaim(ctx, "app", info.Digest))
	assert.ErrorIs(t, s.ReturnReference(ctx, "app", info.Digest), domain.ErrBlobNotFound)

	// It is an upload claim again, so DeleteBlob releases it.
	require.NoError(t, s.DeleteBlob(ctx, info.Digest, "app"))
	assert.False(t, s.BlobExists(ctx, info.Digest))
}

func TestBlobStorage_HasClaim(t *testing.T) {
	s, _ := newTestBlobStorage(t, BlobConfig{})
	ctx := context.Background()
	info := uploadBlob(t, s, "app", []byte("layer"))

	assert.True(t, s.HasClaim(ctx, "app", info.Digest))
	assert.False(t, s.HasClaim(ctx, "other", info.Digest))
	assert.False(t, s.HasClaim(ctx, "app", digestcodec.Compute([]byte("missing"))))

	require.NoError(t, s.ClaimReference(ctx, "app", info.Digest))
	assert.True(t, s.HasClaim(ctx, "app", info.Digest))

	require.NoError(t, s.ReleaseReference(ctx, "app", info.Digest))
	assert.False(t, s.HasClaim(ctx, "app", info.Digest))
}

func TestBlobStorage_AdoptReference(t *testing.T) {
	tmpDir := t.TempDir()
	s, err := NewBlobStorage(tmpDir, BlobConfig{}, testLogger())
	require.NoError(t, err)
	info := uploadBlob(t, s, "app", []byte("layer"))

	// After a restart nothing holds a claim until manifests are replayed.
	reopened, err := NewBlobStorage(tmpDir, BlobConfig{}, testLogger())
	require.NoError(t, err)
	ctx := context.Background()
	assert.ErrorIs(t, reopened.ClaimReference(ctx, "app", info.Digest), domain.ErrBlobNotFound)

	require.NoError(t, reopened.AdoptReference(ctx, "app", info.Digest))
	assert.True(t, reopened.HasClaim(ctx, "app", info.Digest))
	assert.Equal(t, int64(1), reopened.References(info.Digest))
}

func TestBlobStorage_ClaimReference_Missing(t *testing.T) {
	s, _ := newTestBlobStorage(t, BlobConfig{})

	err := s.ClaimReference(context.Background(), "app", digestcodec.Compute([]byte("nope")))

	assert.ErrorIs(t, err, domain.ErrBlobNotFound)
}

func TestBlobStorage_MountBlob(t *testing.T) {
	s, _ := newTestBlobStorage(t, BlobConfig{})
	ctx := context.Background()
	info := uploadBlob(t, s, "source", []byte("shared"))

	_, err := s.MountBlob(ctx, "target", info.Digest)
	require.NoError(t, err)
	assert.Equal(t, int64(2), s.References(info.Digest))

	_, err = s.MountBlob(ctx, "target", digestcodec.Compute([]byte("missing")))
	assert.ErrorIs(t, err, domain.ErrBlobNotFound)
}

func TestBlobStorage_PutBlob(t *testing.T) {
	s, _ := newTestBlobStorage(t, BlobConfig{})
	ctx := context.Background()
	data := []byte("monolithic")

	info, err := s.PutBlob(ctx, "app", digestcodec.Compute(data), bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, int64(len(data)), info.Size)

	_, err = s.PutBlob(ctx, "app", digestcodec.Compute([]byte("other")), bytes.NewReader(data))
	assert.ErrorIs(t, err, domain.ErrDigestMismatch)
}

func TestBlobStorage_GetBlob_NotFound(t *testing.T) {
	s, _ := newTestBlobStorage(t, BlobConfig{})

	reader, _, err := s.GetBlob(context.Background(), digestcodec.Compute([]byte("absent")))

	assert.ErrorIs(t, err, domain.ErrBlobNotFound)
	assert.Nil(t, reader)
}

func TestBlobStorage_AbortUpload_Idempotent(t *testing.T) {
	s, tmpDir := newTestBlobStorage(t, BlobConfig{})
	ctx := context.Background()

	upload, err := s.BeginUpload(ctx, "app")
	require.NoError(t, err)
	_, err = s.AppendChunk(ctx, upload.UUID, 0, strings.NewReader("partial"))
	require.NoError(t, err)

	require.NoError(t, s.AbortUpload(ctx, upload.UUID))
	require.NoError(t, s.AbortUpload(ctx, upload.UUID))
	require.NoError(t, s.AbortUpload(ctx, "550e8400-e29b-41d4-a716-446655440000"))

	assert.NoFileExists(t, filepath.Join(tmpDir, "uploads", upload.UUID))
	_, err = s.AppendChunk(ctx, upload.UUID, 7, strings.NewReader("more"))
	assert.ErrorIs(t, err, domain.ErrUploadNotFound)
}

func TestBlobStorage_SessionCapacity(t *testing.T) {
	s, _ := newTestBlobStorage(t, BlobConfig{MaxSessions: 1})
	ctx := context.Background()

	first, err := s.BeginUpload(ctx, "app")
	require.NoError(t, err)

	_, err = s.BeginUpload(ctx, "app")
	assert.ErrorIs(t, err, domain.ErrCapacityExceeded)

	require.NoError(t, s.AbortUpload(ctx, first.UUID))
	_, err = s.BeginUpload(ctx, "app")
	assert.NoError(t, err)
}

func TestBlobStorage_IdleSessionExpires(t *testing.T) {
	mock := clock.NewMock()
	s, tmpDir := newTestBlobStorage(t, BlobConfig{UploadTTL: time.Minute, Clock: mock})
	ctx := context.Background()
	data := []byte("slow client")

	upload, err := s.BeginUpload(ctx, "app")
	require.NoError(t, err)
	_, err = s.AppendChunk(ctx, upload.UUID, 0, bytes.NewReader(data))
	require.NoError(t, err)

	mock.Add(30 * time.Second)
	assert.Equal(t, 0, s.PurgeExpiredUploads(ctx))

	mock.Add(31 * time.Second)
	assert.Equal(t, 1, s.PurgeExpiredUploads(ctx))
	assert.NoFileExists(t, filepath.Join(tmpDir, "uploads", upload.UUID))

	_, err = s.CompleteUpload(ctx, upload.UUID, digestcodec.Compute(data))
	assert.ErrorIs(t, err, domain.ErrSessionExpired)
	_, err = s.AppendChunk(ctx, upload.UUID, int64(len(data)), strings.NewReader("x"))
	assert.ErrorIs(t, err, domain.ErrSessionExpired)

	// The tombstone goes away after another TTL.
	mock.Add(2 * time.Minute)
	s.PurgeExpiredUploads(ctx)
	_, err = s.UploadStatus(ctx, upload.UUID)
	assert.ErrorIs(t, err, domain.ErrUploadNotFound)
}

func TestBlobStorage_ExpiryRacesCompletion(t *testing.T) {
	mock := clock.NewMock()
	s, tmpDir := newTestBlobStorage(t, BlobConfig{UploadTTL: time.Minute, Clock: mock})
	ctx := context.Background()

	var completed, expired int
	for i := 0; i < 50; i++ {
		data := []byte(fmt.Sprintf("racing upload %d", i))
		upload, err := s.BeginUpload(ctx, "app")
		require.NoError(t, err)
		_, err = s.AppendChunk(ctx, upload.UUID, 0, bytes.NewReader(data))
		require.NoError(t, err)
		mock.Add(2 * time.Minute)

		var (
			wg        sync.WaitGroup
			start     = make(chan struct{})
			purged    int
			info      domain.BlobInfo
			finishErr error
		)
		wg.Add(2)
		go func() {
			defer wg.Done()
			<-start
			purged = s.PurgeExpiredUploads(ctx)
		}()
		go func() {
			defer wg.Done()
			<-start
			info, finishErr = s.CompleteUpload(ctx, upload.UUID, digestcodec.Compute(data))
		}()
		close(start)
		wg.Wait()

		if finishErr == nil {
			completed++
			assert.Equal(t, 0, purged, "iteration %d", i)
			assert.True(t, s.BlobExists(ctx, info.Digest), "iteration %d", i)
		} else {
			expired++
			require.ErrorIs(t, finishErr, domain.ErrSessionExpired, "iteration %d", i)
			assert.Equal(t, 1, purged, "iteration %d", i)
			assert.False(t, s.BlobExists(ctx, digestcodec.Compute(data)), "iteration %d", i)
		}
		assert.NoFileExists(t, filepath.Join(tmpDir, "uploads", upload.UUID))
	}
	assert.Equal(t, 50, completed+expired)
}

func TestBlobStorage_ExpiredSessionFreesCapacity(t *testing.T) {
	mock := clock.NewMock()
	s, _ := newTestBlobStorage(t, BlobConfig{UploadTTL: time.Minute, MaxSessions: 1, Clock: mock})
	ctx := context.Background()

	_, err := s.BeginUpload(ctx, "app")
	require.NoError(t, err)

	mock.Add(2 * time.Minute)
	s.PurgeExpiredUploads(ctx)

	_, err = s.BeginUpload(ctx, "app")
	assert.NoError(t, err)
}

func TestBlobStorage_ReopenIndexesExistingBlobs(t *testing.T) {
	tmpDir := t.TempDir()
	s, err := NewBlobStorage(tmpDir, BlobConfig{}, testLogger())
	require.NoError(t, err)
	data := []byte("persisted")
	info := uploadBlob(t, s, "app", data)

	leftover, err := s.BeginUpload(context.Background(), "app")
	require.NoError(t, err)

	reopened, err := NewBlobStorage(tmpDir, BlobConfig{}, testLogger())
	require.NoError(t, err)

	assert.Equal(t, int64(0), reopened.References(info.Digest))
	assert.Equal(t, data, readBlob(t, reopened, info.Digest))
	// Reading an unreferenced blob after restart must not reclaim it.
	assert.True(t, reopened.BlobExists(context.Background(), info.Digest))
	assert.NoFileExists(t, filepath.Join(tmpDir, "uploads", leftover.UUID))
}

func TestBlobStorage_Sweep(t *testing.T) {
	tmpDir := t.TempDir()
	s, err := NewBlobStorage(tmpDir, BlobConfig{}, testLogger())
	require.NoError(t, err)
	kept := uploadBlob(t, s, "app", []byte("referenced"))
	orphan := uploadBlob(t, s, "app", []byte("orphaned"))
	require.NoError(t, s.ClaimReference(context.Background(), "app", kept.Digest))

	reopened, err := NewBlobStorage(tmpDir, BlobConfig{}, testLogger())
	require.NoError(t, err)
	require.NoError(t, reopened.AdoptReference(context.Background(), "app", kept.Digest))

	report, err := reopened.Sweep(context.Background(), 0)
	require.NoError(t, err)

	assert.Equal(t, 1, report.BlobsRemoved)
	assert.Equal(t, orphan.Size, report.BytesReclaimed)
	assert.True(t, reopened.BlobExists(context.Background(), kept.Digest))
	assert.False(t, reopened.BlobExists(context.Background(), orphan.Digest))
}

func TestBlobStorage_Ping(t *testing.T) {
	s, dir := newTestBlobStorage(t, BlobConfig{})

	require.NoError(t, s.Ping(context.Background()))

	entries, err := os.ReadDir(filepath.Join(dir, "uploads"))
	require.NoError(t, err)
	assert.Empty(t, entries, "ping file is removed")

	require.NoError(t, os.RemoveAll(filepath.Join(dir, "uploads")))
	assert.Error(t, s.Ping(context.Background()))
}
