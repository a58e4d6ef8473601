package filesystem

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/opencontainers/go-digest"

	"github.com/bnema/kestrel/internal/boundaries/out"
	"github.com/bnema/kestrel/internal/domain"
	"github.com/bnema/kestrel/internal/logging"
	"github.com/bnema/kestrel/pkg/validation"
)

const (
	manifestsDir = "_manifests"
	revisionsDir = "revisions"
	tagsDir      = "tags"
	currentFile  = "current"
	historyFile  = "history"
	dataFile     = "data"
	mediaFile    = "mediatype"
)

// Ensure ManifestStorage implements out.ManifestStorage.
var _ out.ManifestStorage = (*ManifestStorage)(nil)

// ManifestConfig tunes the manifest store.
type ManifestConfig struct {
	// HistoryLimit bounds the stored history per tag. Zero keeps every
	// entry, a negative value disables history recording.
	HistoryLimit int
}

// ManifestStorage implements out.ManifestStorage on the local filesystem.
//
// Layout per repository:
//
//	repositories/<name>/_manifests/revisions/<alg>/<hex>/{data,mediatype}
//	repositories/<name>/_manifests/tags/<tag>/{current,history}
type ManifestStorage struct {
	rootDir string
	cfg     ManifestConfig
	log     logging.Logger

	tagLocks sync.Map // name + ":" + tag -> *sync.Mutex
}

// NewManifestStorage creates a new filesystem-based manifest storage.
func NewManifestStorage(rootDir string, cfg ManifestConfig, log logging.Logger) (*ManifestStorage, error) {
	if err := os.MkdirAll(filepath.Join(rootDir, "repositories"), 0750); err != nil {
		return nil, fmt.Errorf("failed to create repositories directory: %w", err)
	}

	return &ManifestStorage{
		rootDir: rootDir,
		cfg:     cfg,
		log:     log,
	}, nil
}

func (s *ManifestStorage) PutRecord(_ context.Context, name string, rec out.ManifestRecord) error {
	dir, err := s.getRevisionPath(name, rec.Digest)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create revision directory: %w", err)
	}

	// data is written last: its presence marks the revision as complete.
	if err := writeFileAtomic(filepath.Join(dir, mediaFile), []byte(rec.MediaType)); err != nil {
		return fmt.Errorf("failed to write media type: %w", err)
	}
	if err := writeFileAtomic(filepath.Join(dir, dataFile), rec.Data); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}

	s.log.Debug().
		Str(logging.FieldLayer, "adapter").
		Str(logging.FieldAdapter, "filesystem").
		Str("name", name).
		Str("digest", rec.Digest.String()).
		Int(logging.FieldSize, len(rec.Data)).
		Msg("manifest revision stored")

	return nil
}

func (s *ManifestStorage) GetRecord(_ context.Context, name string, d digest.Digest) (out.ManifestRecord, error) {
	dir, err := s.getRevisionPath(name, d)
	if err != nil {
		return out.ManifestRecord{}, err
	}

	data, err := os.ReadFile(filepath.Join(dir, dataFile))
	if err != nil {
		if os.IsNotExist(err) {
			return out.ManifestRecord{}, domain.ErrManifestNotFound
		}
		return out.ManifestRecord{}, fmt.Errorf("failed to read manifest: %w", err)
	}

	mediaType, err := os.ReadFile(filepath.Join(dir, mediaFile))
	if err != nil {
		s.log.Warn().
			Str(logging.FieldLayer, "adapter").
			Str(logging.FieldAdapter, "filesystem").
			Err(err).
			Str("name", name).
			Str("digest", d.String()).
			Msg("could not read manifest media type")
	}

	return out.ManifestRecord{
		Digest:    d,
		MediaType: string(mediaType),
		Data:      data,
	}, nil
}

func (s *ManifestStorage) RecordExists(_ context.Context, name string, d digest.Digest) bool {
	dir, err := s.getRevisionPath(name, d)
	if err != nil {
		return false
	}
	_, err = os.Stat(filepath.Join(dir, dataFile))
	return err == nil
}

func (s *ManifestStorage) DeleteRecord(_ context.Context, name string, d digest.Digest) error {
	dir, err := s.getRevisionPath(name, d)
	if err != nil {
		return err
	}

	if _, err := os.Stat(filepath.Join(dir, dataFile)); err != nil {
		if os.IsNotExist(err) {
			return domain.ErrManifestNotFound
		}
		return fmt.Errorf("failed to stat manifest: %w", err)
	}

	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("failed to delete manifest: %w", err)
	}

	s.pruneEmptyDirs(filepath.Dir(dir))

	s.log.Debug().
		Str(logging.FieldLayer, "adapter").
		Str(logging.FieldAdapter, "filesystem").
		Str("name", name).
		Str("digest", d.String()).
		Msg("manifest revision deleted")

	return nil
}

// WalkRecords visits every stored revision in every repository. Walking stops
// at the first error returned by fn.
func (s *ManifestStorage) WalkRecords(ctx context.Context, fn func(name string, rec out.ManifestRecord) error) error {
	repos, err := s.repositories()
	if err != nil {
		return err
	}

	for _, name := range repos {
		revisions := filepath.Join(s.repoPath(name), manifestsDir, revisionsDir)
		algs, err := os.ReadDir(revisions)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return fmt.Errorf("failed to read revisions of %s: %w", name, err)
		}

		for _, alg := range algs {
			hexes, err := os.ReadDir(filepath.Join(revisions, alg.Name()))
			if err != nil {
				return fmt.Errorf("failed to read revisions of %s: %w", name, err)
			}
			for _, hex := range hexes {
				if err := ctx.Err(); err != nil {
					return err
				}
				d := digest.NewDigestFromEncoded(digest.Algorithm(alg.Name()), hex.Name())
				if d.Validate() != nil {
					continue
				}
				rec, err := s.GetRecord(ctx, name, d)
				if errors.Is(err, domain.ErrManifestNotFound) {
					continue
				}
				if err != nil {
					return err
				}
				if err := fn(name, rec); err != nil {
					return err
				}
			}
		}
	}

	return nil
}

// SetTag points tag at d and appends d to the tag history. Concurrent writes to
// the same tag are serialized so the pointer and the history agree on the
// final value.
func (s *ManifestStorage) SetTag(_ context.Context, name, tag string, d digest.Digest) error {
	dir, err := s.getTagPath(name, tag)
	if err != nil {
		return err
	}

	mu := s.tagLock(name, tag)
	mu.Lock()
	defer mu.Unlock()

	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create tag directory: %w", err)
	}

	previous, _ := os.ReadFile(filepath.Join(dir, currentFile))

	if err := writeFileAtomic(filepath.Join(dir, currentFile), []byte(d.String())); err != nil {
		return fmt.Errorf("failed to write tag: %w", err)
	}

	if s.cfg.HistoryLimit >= 0 && string(previous) != d.String() {
		if err := s.appendHistory(filepath.Join(dir, historyFile), d); err != nil {
			s.log.Warn().
				Str(logging.FieldLayer, "adapter").
				Str(logging.FieldAdapter, "filesystem").
				Err(err).
				Str("name", name).
				Str("tag", tag).
				Msg("failed to record tag history")
		}
	}

	return nil
}

func (s *ManifestStorage) ResolveTag(_ context.Context, name, tag string) (digest.Digest, error) {
	dir, err := s.getTagPath(name, tag)
	if err != nil {
		return "", err
	}
	return readDigestFile(filepath.Join(dir, currentFile))
}

func (s *ManifestStorage) DeleteTag(_ context.Context, name, tag string) error {
	dir, err := s.getTagPath(name, tag)
	if err != nil {
		return err
	}

	mu := s.tagLock(name, tag)
	mu.Lock()
	defer mu.Unlock()

	if _, err := os.Stat(filepath.Join(dir, currentFile)); err != nil {
		if os.IsNotExist(err) {
			return domain.ErrManifestNotFound
		}
		return fmt.Errorf("failed to stat tag: %w", err)
	}

	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("failed to delete tag: %w", err)
	}
	s.pruneEmptyDirs(filepath.Dir(dir))

	return nil
}

func (s *ManifestStorage) ListTags(_ context.Context, name string) ([]string, error) {
	if err := validation.ValidateRepositoryName(name); err != nil {
		return nil, err
	}

	repoDir := filepath.Join(s.repoPath(name), manifestsDir)
	if _, err := os.Stat(repoDir); err != nil {
		if os.IsNotExist(err) {
			return nil, domain.ErrRepositoryNotFound
		}
		return nil, fmt.Errorf("failed to stat repository: %w", err)
	}

	entries, err := os.ReadDir(filepath.Join(repoDir, tagsDir))
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to read tags: %w", err)
	}

	tags := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		if _, err := os.Stat(filepath.Join(repoDir, tagsDir, e.Name(), currentFile)); err == nil {
			tags = append(tags, e.Name())
		}
	}
	sort.Strings(tags)

	return tags, nil
}

// TagsFor returns the tags of name that currently point at d.
func (s *ManifestStorage) TagsFor(ctx context.Context, name string, d digest.Digest) ([]string, error) {
	tags, err := s.ListTags(ctx, name)
	if err != nil {
		if errors.Is(err, domain.ErrRepositoryNotFound) {
			return nil, nil
		}
		return nil, err
	}

	var matched []string
	for _, tag := range tags {
		current, err := s.ResolveTag(ctx, name, tag)
		if err != nil {
			continue
		}
		if current == d {
			matched = append(matched, tag)
		}
	}
	return matched, nil
}

// TagHistory returns the digests tag has pointed at, most recent first. A
// positive limit truncates the result.
func (s *ManifestStorage) TagHistory(ctx context.Context, name, tag string, limit int) ([]digest.Digest, error) {
	dir, err := s.getTagPath(name, tag)
	if err != nil {
		return nil, err
	}

	current, err := s.ResolveTag(ctx, name, tag)
	if err != nil {
		return nil, err
	}

	if s.cfg.HistoryLimit < 0 {
		return []digest.Digest{current}, nil
	}

	mu := s.tagLock(name, tag)
	mu.Lock()
	entries, err := readHistory(filepath.Join(dir, historyFile))
	mu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("failed to read tag history: %w", err)
	}
	if len(entries) == 0 {
		entries = []digest.Digest{current}
	}

	history := make([]digest.Digest, 0, len(entries))
	for i := len(entries) - 1; i >= 0; i-- {
		history = append(history, entries[i])
		if limit > 0 && len(history) == limit {
			break
		}
	}
	return history, nil
}

// ListRepositories returns repository names in lexical order, starting after
// last. A positive n bounds the page size and sets Next when more remain.
func (s *ManifestStorage) ListRepositories(_ context.Context, last string, n int) (domain.CatalogPage, error) {
	repos, err := s.repositories()
	if err != nil {
		return domain.CatalogPage{}, err
	}

	start := sort.SearchStrings(repos, last)
	if last != "" && start < len(repos) && repos[start] == last {
		start++
	}
	repos = repos[start:]

	page := domain.CatalogPage{Repositories: repos}
	if n > 0 && len(repos) > n {
		page.Repositories = repos[:n]
		page.Next = repos[n-1]
	}
	if page.Repositories == nil {
		page.Repositories = []string{}
	}
	return page, nil
}

// RepositoryExists reports whether name holds at least one revision or tag.
func (s *ManifestStorage) RepositoryExists(_ context.Context, name string) bool {
	if validation.ValidateRepositoryName(name) != nil {
		return false
	}
	return s.hasContent(s.repoPath(name))
}

func (s *ManifestStorage) repositories() ([]string, error) {
	reposDir := filepath.Join(s.rootDir, "repositories")

	var repos []string
	err := filepath.WalkDir(reposDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if os.IsNotExist(err) && path == reposDir {
				return fs.SkipAll
			}
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if d.Name() == manifestsDir {
			repo := filepath.Dir(path)
			if s.hasContent(repo) {
				rel, err := filepath.Rel(reposDir, repo)
				if err != nil {
					return err
				}
				repos = append(repos, filepath.ToSlash(rel))
			}
			return fs.SkipDir
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list repositories: %w", err)
	}

	sort.Strings(repos)
	return repos, nil
}

func (s *ManifestStorage) hasContent(repoDir string) bool {
	for _, sub := range []string{revisionsDir, tagsDir} {
		entries, err := os.ReadDir(filepath.Join(repoDir, manifestsDir, sub))
		if err == nil && len(entries) > 0 {
			return true
		}
	}
	return false
}

func (s *ManifestStorage) appendHistory(path string, d digest.Digest) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintln(f, d.String()); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	if s.cfg.HistoryLimit == 0 {
		return nil
	}

	entries, err := readHistory(path)
	if err != nil {
		return err
	}
	if len(entries) <= s.cfg.HistoryLimit {
		return nil
	}

	var buf bytes.Buffer
	for _, e := range entries[len(entries)-s.cfg.HistoryLimit:] {
		buf.WriteString(e.String())
		buf.WriteByte('\n')
	}
	return writeFileAtomic(path, buf.Bytes())
}

// pruneEmptyDirs removes empty directories from dir up to the repositories root.
func (s *ManifestStorage) pruneEmptyDirs(dir string) {
	root := filepath.Join(s.rootDir, "repositories")
	for dir != root && strings.HasPrefix(dir, root) {
		if err := os.Remove(dir); err != nil {
			return
		}
		dir = filepath.Dir(dir)
	}
}

func (s *ManifestStorage) tagLock(name, tag string) *sync.Mutex {
	mu, _ := s.tagLocks.LoadOrStore(name+":"+tag, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

func (s *ManifestStorage) repoPath(name string) string {
	return filepath.Join(s.rootDir, "repositories", filepath.FromSlash(name))
}

func (s *ManifestStorage) getRevisionPath(name string, d digest.Digest) (string, error) {
	if err := validation.ValidateRepositoryName(name); err != nil {
		return "", err
	}
	if err := d.Validate(); err != nil {
		return "", fmt.Errorf("%w: %s", domain.ErrInvalidDigest, d)
	}

	path := filepath.Join(s.repoPath(name), manifestsDir, revisionsDir, d.Algorithm().String(), d.Encoded())
	if err := validation.ValidatePathWithinRoot(s.rootDir, path); err != nil {
		return "", fmt.Errorf("path validation failed: %w", err)
	}
	return path, nil
}

func (s *ManifestStorage) getTagPath(name, tag string) (string, error) {
	if err := validation.ValidateRepositoryName(name); err != nil {
		return "", err
	}
	if err := validation.ValidateTag(tag); err != nil {
		return "", err
	}

	path := filepath.Join(s.repoPath(name), manifestsDir, tagsDir, tag)
	if err := validation.ValidatePathWithinRoot(s.rootDir, path); err != nil {
		return "", fmt.Errorf("path validation failed: %w", err)
	}
	return path, nil
}

func readDigestFile(path string) (digest.Digest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", domain.ErrManifestNotFound
		}
		return "", fmt.Errorf("failed to read tag: %w", err)
	}
	d, err := digest.Parse(strings.TrimSpace(string(data)))
	if err != nil {
		return "", fmt.Errorf("corrupt tag pointer %s: %w", path, err)
	}
	return d, nil
}

func readHistory(path string) ([]digest.Digest, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()

	var entries []digest.Digest
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		d, err := digest.Parse(strings.TrimSpace(scanner.Text()))
		if err != nil {
			continue
		}
		entries = append(entries, d)
	}
	return entries, scanner.Err()
}

// writeFileAtomic writes data to a temporary file next to path and renames it
// into place so readers never observe a partial write.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if os.IsNotExist(err) {
		// A concurrent delete may have pruned the directory.
		if err = os.MkdirAll(dir, 0750); err == nil {
			tmp, err = os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
		}
	}
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return err
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		_ = os.Remove(tmp.Name())
		return err
	}
	return nil
}
