package filesystem

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/opencontainers/go-digest"

	"github.com/bnema/kestrel/internal/domain"
	"github.com/bnema/kestrel/internal/logging"
	"github.com/bnema/kestrel/pkg/digestcodec"
)

const chunkBufferSize = 32 * 1024

// uploadSession is one resumable upload. mu is held for the duration of an
// append or completion, so a second concurrent append is rejected instead
// of interleaving bytes.
type uploadSession struct {
	mu           sync.Mutex
	id           string
	name         string
	state        atomic.Int32
	offset       atomic.Int64
	digester     *digestcodec.Digester
	startedAt    time.Time
	lastActivity atomic.Int64
}

func (u *uploadSession) touch(now time.Time) {
	u.lastActivity.Store(now.UnixNano())
}

func (u *uploadSession) idle(now time.Time) time.Duration {
	return now.Sub(time.Unix(0, u.lastActivity.Load()))
}

func (u *uploadSession) snapshot() domain.Upload {
	return domain.Upload{
		UUID:         u.id,
		Name:         u.name,
		Offset:       u.offset.Load(),
		State:        domain.UploadState(u.state.Load()),
		StartedAt:    u.startedAt,
		LastActivity: time.Unix(0, u.lastActivity.Load()),
	}
}

func (u *uploadSession) checkActive() error {
	st := domain.UploadState(u.state.Load())
	switch {
	case st == domain.UploadExpired:
		return fmt.Errorf("%w: %s", domain.ErrSessionExpired, u.id)
	case st.Terminal():
		return fmt.Errorf("%w: %s", domain.ErrUploadNotFound, u.id)
	}
	return nil
}

// BeginUpload opens a new upload session for name.
func (s *BlobStorage) BeginUpload(_ context.Context, name string) (domain.Upload, error) {
	if !s.reserveSession() {
		return domain.Upload{}, fmt.Errorf("%w: limit is %d", domain.ErrCapacityExceeded, s.cfg.MaxSessions)
	}

	id := uuid.NewString()
	file, err := os.OpenFile(s.getUploadPath(id), os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0600)
	if err != nil {
		s.active.Add(-1)
		return domain.Upload{}, fmt.Errorf("failed to create upload file: %w", err)
	}
	_ = file.Close()

	dg, err := digestcodec.NewDigester(digestcodec.Canonical)
	if err != nil {
		s.active.Add(-1)
		return domain.Upload{}, err
	}

	now := s.clock.Now()
	sess := &uploadSession{id: id, name: name, digester: dg, startedAt: now}
	sess.state.Store(int32(domain.UploadInitiated))
	sess.touch(now)
	s.sessions.Store(id, sess)

	s.log.Debug().
		Str(logging.FieldLayer, "adapter").
		Str(logging.FieldAdapter, "filesystem").
		Str("uuid", id).
		Str("name", name).
		Msg("blob upload started")

	return sess.snapshot(), nil
}

func (s *BlobStorage) reserveSession() bool {
	if s.cfg.MaxSessions <= 0 {
		s.active.Add(1)
		return true
	}
	for {
		n := s.active.Load()
		if n >= int64(s.cfg.MaxSessions) {
			return false
		}
		if s.active.CompareAndSwap(n, n+1) {
			return true
		}
	}
}

func (s *BlobStorage) lookupSession(id string) (*uploadSession, error) {
	v, ok := s.sessions.Load(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUploadNotFound, id)
	}
	sess := v.(*uploadSession)
	if err := sess.checkActive(); err != nil {
		return nil, err
	}
	return sess, nil
}

// transition moves a live session into a terminal state. Only one caller wins.
func (s *BlobStorage) transition(sess *uploadSession, to domain.UploadState) bool {
	for {
		cur := sess.state.Load()
		if domain.UploadState(cur).Terminal() {
			return false
		}
		if sess.state.CompareAndSwap(cur, int32(to)) {
			s.active.Add(-1)
			return true
		}
	}
}

// UploadStatus returns the current state of a session.
func (s *BlobStorage) UploadStatus(_ context.Context, id string) (domain.Upload, error) {
	sess, err := s.lookupSession(id)
	if err != nil {
		return domain.Upload{}, err
	}
	return sess.snapshot(), nil
}

// AppendChunk writes r at offset and returns the new offset.
func (s *BlobStorage) AppendChunk(ctx context.Context, id string, offset int64, r io.Reader) (int64, error) {
	sess, err := s.lookupSession(id)
	if err != nil {
		return 0, err
	}

	if !sess.mu.TryLock() {
		return 0, fmt.Errorf("%w: upload %s has a chunk in flight", domain.ErrOffsetConflict, id)
	}
	defer sess.mu.Unlock()

	if err := sess.checkActive(); err != nil {
		return 0, err
	}
	if cur := sess.offset.Load(); offset != cur {
		return cur, fmt.Errorf("%w: expected offset %d, got %d", domain.ErrOffsetConflict, cur, offset)
	}

	file, err := os.OpenFile(s.getUploadPath(id), os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return 0, fmt.Errorf("failed to open upload file: %w", err)
	}
	defer file.Close()

	sess.state.CompareAndSwap(int32(domain.UploadInitiated), int32(domain.UploadInProgress))

	written, err := s.copyChunk(ctx, file, sess, r)
	sess.touch(s.clock.Now())

	if err != nil {
		if errors.Is(err, domain.ErrSizeLimitExceeded) {
			s.discard(sess, domain.UploadAborted)
		}
		return sess.offset.Load(), err
	}

	s.log.Debug().
		Str(logging.FieldLayer, "adapter").
		Str(logging.FieldAdapter, "filesystem").
		Str("uuid", id).
		Str("name", sess.name).
		Int64("chunk_size", written).
		Int64("total_size", sess.offset.Load()).
		Msg("appended chunk to blob upload")

	return sess.offset.Load(), nil
}

// copyChunk streams r into file and the session digester. Bytes are only
// counted once they reached both, so offset and digest never disagree.
func (s *BlobStorage) copyChunk(ctx context.Context, file *os.File, sess *uploadSession, r io.Reader) (int64, error) {
	buf := make([]byte, chunkBufferSize)
	var written int64
	for {
		if err := ctx.Err(); err != nil {
			return written, err
		}

		n, readErr := r.Read(buf)
		if n > 0 {
			committed := sess.offset.Load()
			if s.cfg.MaxBlobSize > 0 && committed+int64(n) > s.cfg.MaxBlobSize {
				return written, fmt.Errorf("%w: blob exceeds %d bytes", domain.ErrSizeLimitExceeded, s.cfg.MaxBlobSize)
			}
			if _, err := file.Write(buf[:n]); err != nil {
				_ = file.Truncate(committed)
				return written, fmt.Errorf("failed to write chunk to upload file: %w", err)
			}
			_, _ = sess.digester.Write(buf[:n])
			sess.offset.Add(int64(n))
			written += int64(n)
		}

		if readErr == io.EOF {
			return written, nil
		}
		if readErr != nil {
			return written, fmt.Errorf("failed to read chunk: %w", readErr)
		}
	}
}

// CompleteUpload verifies the uploaded bytes against expected and publishes them.
func (s *BlobStorage) CompleteUpload(_ context.Context, id string, expected digest.Digest) (domain.BlobInfo, error) {
	sess, err := s.lookupSession(id)
	if err != nil {
		return domain.BlobInfo{}, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if err := sess.checkActive(); err != nil {
		return domain.BlobInfo{}, err
	}

	computed, err := s.uploadDigest(sess, expected.Algorithm())
	if err != nil {
		return domain.BlobInfo{}, err
	}
	if computed != expected {
		s.discard(sess, domain.UploadAborted)
		return domain.BlobInfo{}, fmt.Errorf("%w: expected %s, computed %s", domain.ErrDigestMismatch, expected, computed)
	}

	if !s.transition(sess, domain.UploadCompleted) {
		return domain.BlobInfo{}, fmt.Errorf("%w: %s", domain.ErrSessionExpired, id)
	}
	s.sessions.Delete(id)

	info, err := s.publish(expected, s.getUploadPath(id), sess.name, sess.offset.Load())
	if err != nil {
		_ = os.Remove(s.getUploadPath(id))
		return domain.BlobInfo{}, err
	}

	s.log.Info().
		Str(logging.FieldLayer, "adapter").
		Str(logging.FieldAdapter, "filesystem").
		Str("uuid", id).
		Str("digest", expected.String()).
		Msg("blob upload finished")

	return info, nil
}

// uploadDigest returns the digest of the session data using alg. The running
// digester covers the canonical algorithm, anything else re-reads the file.
func (s *BlobStorage) uploadDigest(sess *uploadSession, alg digest.Algorithm) (digest.Digest, error) {
	if alg == digestcodec.Canonical {
		return sess.digester.Digest(), nil
	}
	dg, err := digestcodec.NewDigester(alg)
	if err != nil {
		return "", err
	}
	file, err := os.Open(s.getUploadPath(sess.id))
	if err != nil {
		return "", fmt.Errorf("failed to open upload file: %w", err)
	}
	defer file.Close()
	if _, err := io.Copy(dg, file); err != nil {
		return "", fmt.Errorf("failed to hash upload: %w", err)
	}
	return dg.Digest(), nil
}

// AbortUpload cancels a session. Unknown or finished sessions are not an error.
func (s *BlobStorage) AbortUpload(_ context.Context, id string) error {
	v, ok := s.sessions.Load(id)
	if !ok {
		return nil
	}
	sess := v.(*uploadSession)

	sess.mu.Lock()
	defer sess.mu.Unlock()

	s.discard(sess, domain.UploadAborted)
	s.sessions.Delete(id)

	s.log.Debug().
		Str(logging.FieldLayer, "adapter").
		Str(logging.FieldAdapter, "filesystem").
		Str("uuid", id).
		Msg("blob upload cancelled")

	return nil
}

// discard moves sess into a terminal state and frees its data. Callers hold sess.mu.
func (s *BlobStorage) discard(sess *uploadSession, to domain.UploadState) bool {
	if !s.transition(sess, to) {
		return false
	}
	if err := os.Remove(s.getUploadPath(sess.id)); err != nil && !os.IsNotExist(err) {
		s.log.Warn().
			Err(err).
			Str(logging.FieldLayer, "adapter").
			Str(logging.FieldAdapter, "filesystem").
			Str("uuid", sess.id).
			Msg("failed to remove upload data")
	}
	if to != domain.UploadExpired {
		s.sessions.Delete(sess.id)
	}
	return true
}

// PurgeExpiredUploads expires sessions idle for longer than the upload TTL.
// Expired sessions stay visible as tombstones for one more TTL so that a
// late client gets ErrSessionExpired rather than ErrUploadNotFound.
func (s *BlobStorage) PurgeExpiredUploads(_ context.Context) int {
	now := s.clock.Now()
	ttl := s.cfg.UploadTTL
	expired := 0

	s.sessions.Range(func(k, v any) bool {
		sess := v.(*uploadSession)
		if sess.idle(now) < ttl {
			return true
		}
		if domain.UploadState(sess.state.Load()) == domain.UploadExpired {
			s.sessions.Delete(k)
			return true
		}
		// A session with a chunk in flight is not idle.
		if !sess.mu.TryLock() {
			return true
		}
		if s.discard(sess, domain.UploadExpired) {
			sess.touch(now)
			expired++
		}
		sess.mu.Unlock()
		return true
	})

	if expired > 0 {
		s.log.Info().
			Str(logging.FieldLayer, "adapter").
			Str(logging.FieldAdapter, "filesystem").
			Int("expired", expired).
			Msg("expired idle upload sessions")
	}
	return expired
}

// RunJanitor expires idle sessions every interval until ctx is done.
func (s *BlobStorage) RunJanitor(ctx context.Context, interval time.Duration) {
	ticker := s.clock.Ticker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.PurgeExpiredUploads(ctx)
		}
	}
}
