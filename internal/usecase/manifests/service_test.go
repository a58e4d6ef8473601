package manifests

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/opencontainers/go-digest"
	"github.com/opencontainers/image-spec/specs-go"
	ocispec "github.com/opencontainers/image-spec/specs-go/v1"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/kestrel/internal/adapters/out/filesystem"
	"github.com/bnema/kestrel/internal/boundaries/out"
	"github.com/bnema/kestrel/internal/boundaries/out/mocks"
	"github.com/bnema/kestrel/internal/domain"
	"github.com/bnema/kestrel/internal/logging"
	"github.com/bnema/kestrel/pkg/digestcodec"
)

func testContext() context.Context {
	return logging.WithCtx(context.Background(), logging.Nop())
}

type fixture struct {
	dir      string
	blobs    *filesystem.BlobStorage
	store    *filesystem.ManifestStorage
	eventBus *mocks.MockEventPublisher
	svc      *Service
}

// newFixture accepts any event; tests asserting on events use newStrictFixture.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := openFixture(t, t.TempDir())
	f.eventBus.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Maybe()
	return f
}

func newStrictFixture(t *testing.T) *fixture {
	t.Helper()
	return openFixture(t, t.TempDir())
}

func openFixture(t *testing.T, dir string) *fixture {
	t.Helper()
	blobs, err := filesystem.NewBlobStorage(dir, filesystem.BlobConfig{}, logging.Nop())
	require.NoError(t, err)
	store, err := filesystem.NewManifestStorage(dir, filesystem.ManifestConfig{}, logging.Nop())
	require.NoError(t, err)
	eventBus := mocks.NewMockEventPublisher(t)

	return &fixture{
		dir:      dir,
		blobs:    blobs,
		store:    store,
		eventBus: eventBus,
		svc:      NewService(blobs, store, eventBus),
	}
}

func (f *fixture) blob(t *testing.T, name, content string) ocispec.Descriptor {
	t.Helper()
	data := []byte(content)
	info, err := f.blobs.PutBlob(testContext(), name, digestcodec.Compute(data), bytes.NewReader(data))
	require.NoError(t, err)
	return ocispec.Descriptor{
		MediaType: ocispec.MediaTypeImageLayerGzip,
		Digest:    info.Digest,
		Size:      info.Size,
	}
}

func imageManifest(t *testing.T, config ocispec.Descriptor, layers ...ocispec.Descriptor) []byte {
	t.Helper()
	config.MediaType = ocispec.MediaTypeImageConfig
	if layers == nil {
		layers = []ocispec.Descriptor{}
	}
	data, err := json.Marshal(ocispec.Manifest{
		Versioned: specs.Versioned{SchemaVersion: 2},
		MediaType: ocispec.MediaTypeImageManifest,
		Config:    config,
		Layers:    layers,
	})
	require.NoError(t, err)
	return data
}

func imageIndex(t *testing.T, children ...digest.Digest) []byte {
	t.Helper()
	descs := make([]ocispec.Descriptor, 0, len(children))
	for _, c := range children {
		descs = append(descs, ocispec.Descriptor{MediaType: ocispec.MediaTypeImageManifest, Digest: c, Size: 1})
	}
	data, err := json.Marshal(ocispec.Index{
		Versioned: specs.Versioned{SchemaVersion: 2},
		MediaType: ocispec.MediaTypeImageIndex,
		Manifests: descs,
	})
	require.NoError(t, err)
	return data
}

func (f *fixture) put(t *testing.T, name, reference string, data []byte) digest.Digest {
	t.Helper()
	d, err := f.svc.PutManifest(testContext(), &domain.Manifest{
		Name:        name,
		Reference:   reference,
		ContentType: ocispec.MediaTypeImageManifest,
		Data:        data,
	}, domain.PutManifestOptions{})
	require.NoError(t, err)
	return d
}

func TestService_PutManifest_Success(t *testing.T) {
	f := newStrictFixture(t)
	ctx := testContext()

	config := f.blob(t, "myapp", "config")
	layer := f.blob(t, "myapp", "layer")
	data := imageManifest(t, config, layer)

	f.eventBus.EXPECT().Publish(domain.EventManifestPushed, mock.AnythingOfType("domain.ManifestPushedPayload")).Return(nil).Once()

	manifest := &domain.Manifest{
		Name:        "myapp",
		Reference:   "latest",
		ContentType: ocispec.MediaTypeImageManifest,
		Data:        data,
	}
	d, err := f.svc.PutManifest(ctx, manifest, domain.PutManifestOptions{})

	require.NoError(t, err)
	assert.Equal(t, digestcodec.Compute(data), d)
	assert.Equal(t, d, manifest.Digest)

	byTag, err := f.svc.GetManifest(ctx, "myapp", "latest")
	require.NoError(t, err)
	assert.Equal(t, data, byTag.Data)
	assert.Equal(t, ocispec.MediaTypeImageManifest, byTag.ContentType)
	assert.Equal(t, d, byTag.Digest)

	byDigest, err := f.svc.GetManifest(ctx, "myapp", d.String())
	require.NoError(t, err)
	assert.Equal(t, data, byDigest.Data)

	// The upload claims became manifest references.
	assert.Equal(t, int64(1), f.blobs.References(config.Digest))
	assert.Equal(t, int64(1), f.blobs.References(layer.Digest))
}

func TestService_PutManifest_MissingReference(t *testing.T) {
	f := newFixture(t)

	config := f.blob(t, "myapp", "config")
	missing := ocispec.Descriptor{Digest: digestcodec.Compute([]byte("never uploaded")), Size: 14}

	_, err := f.svc.PutManifest(testContext(), &domain.Manifest{
		Name:      "myapp",
		Reference: "latest",
		Data:      imageManifest(t, config, missing),
	}, domain.PutManifestOptions{})

	assert.ErrorIs(t, err, domain.ErrManifestReferenceMissing)
	assert.Contains(t, err.Error(), missing.Digest.String())

	_, err = f.svc.GetManifest(testContext(), "myapp", "latest")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, int64(1), f.blobs.References(config.Digest))
}

func TestService_PutManifest_Invalid(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name string
		data string
	}{
		{"not json", "{"},
		{"schema 1", `{"schemaVersion":1}`},
		{"missing config", `{"schemaVersion":2,"mediaType":"application/vnd.oci.image.manifest.v1+json","layers":[]}`},
		{"bad layer digest", `{"schemaVersion":2,"config":{"digest":"sha256:` + digestcodec.Compute([]byte("c")).Encoded() + `","size":1},"layers":[{"digest":"sha256:xyz","size":1}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.PutManifest(testContext(), &domain.Manifest{
				Name:      "myapp",
				Reference: "latest",
				Data:      []byte(tt.data),
			}, domain.PutManifestOptions{})
			assert.ErrorIs(t, err, domain.ErrManifestInvalid)
		})
	}
}

func TestService_PutManifest_InvalidName(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.PutManifest(testContext(), &domain.Manifest{
		Name:      "a/b/c/d/e/f",
		Reference: "latest",
		Data:      []byte(`{"schemaVersion":2}`),
	}, domain.PutManifestOptions{})

	assert.ErrorIs(t, err, domain.ErrNameInvalid)
}

func TestService_PutManifest_DigestReference(t *testing.T) {
	f := newFixture(t)
	data := imageManifest(t, f.blob(t, "myapp", "config"))

	d := f.put(t, "myapp", digestcodec.Compute(data).String(), data)
	assert.Equal(t, digestcodec.Compute(data), d)

	tags, err := f.svc.ListTags(testContext(), "myapp")
	require.NoError(t, err)
	assert.Empty(t, tags)

	_, err = f.svc.PutManifest(testContext(), &domain.Manifest{
		Name:      "myapp",
		Reference: digestcodec.Compute([]byte("other")).String(),
		Data:      data,
	}, domain.PutManifestOptions{})
	assert.ErrorIs(t, err, domain.ErrDigestMismatch)
}

func TestService_PutManifest_Sha512Reference(t *testing.T) {
	f := newFixture(t)
	data := imageManifest(t, f.blob(t, "myapp", "config"))
	d512, err := digestcodec.ComputeWith(digest.SHA512, data)
	require.NoError(t, err)

	d := f.put(t, "myapp", d512.String(), data)

	assert.Equal(t, d512, d)
	got, err := f.svc.GetManifest(testContext(), "myapp", d512.String())
	require.NoError(t, err)
	assert.Equal(t, data, got.Data)
}

func TestService_PutManifest_SameContentTwice(t *testing.T) {
	f := newFixture(t)
	config := f.blob(t, "myapp", "config")
	data := imageManifest(t, config)

	first := f.put(t, "myapp", "v1", data)
	second := f.put(t, "myapp", "v2", data)

	assert.Equal(t, first, second)
	assert.Equal(t, int64(1), f.blobs.References(config.Digest))
}

func TestService_SharedLayerCounts(t *testing.T) {
	f := newFixture(t)
	ctx := testContext()
	layer := f.blob(t, "myapp", "shared layer")
	a := imageManifest(t, f.blob(t, "myapp", "config a"), layer)
	b := imageManifest(t, f.blob(t, "myapp", "config b"), layer)

	da := f.put(t, "myapp", "a", a)
	f.put(t, "myapp", "b", b)
	assert.Equal(t, int64(2), f.blobs.References(layer.Digest))

	require.NoError(t, f.svc.DeleteManifest(ctx, "myapp", da.String()))
	assert.Equal(t, int64(1), f.blobs.References(layer.Digest))
	assert.True(t, f.blobs.BlobExists(ctx, layer.Digest))
}

func TestService_DeleteManifest_ByTag(t *testing.T) {
	f := newFixture(t)
	ctx := testContext()
	config := f.blob(t, "myapp", "config")
	d := f.put(t, "myapp", "latest", imageManifest(t, config))

	require.NoError(t, f.svc.DeleteManifest(ctx, "myapp", "latest"))

	_, err := f.svc.GetManifest(ctx, "myapp", "latest")
	assert.ErrorIs(t, err, domain.ErrManifestNotFound)

	_, err = f.svc.GetManifest(ctx, "myapp", d.String())
	assert.NoError(t, err)
	assert.Equal(t, int64(1), f.blobs.References(config.Digest))
}

func TestService_DeleteManifest_ByDigestReleasesBlobs(t *testing.T) {
	f := newStrictFixture(t)
	ctx := testContext()
	config := f.blob(t, "myapp", "config")
	layer := f.blob(t, "myapp", "layer")

	f.eventBus.EXPECT().Publish(domain.EventManifestPushed, mock.AnythingOfType("domain.ManifestPushedPayload")).Return(nil).Once()
	f.eventBus.EXPECT().Publish(domain.EventManifestDeleted, mock.AnythingOfType("domain.ManifestDeletedPayload")).Return(nil).Once()

	d := f.put(t, "myapp", "latest", imageManifest(t, config, layer))

	require.NoError(t, f.svc.DeleteManifest(ctx, "myapp", d.String()))

	_, err := f.svc.GetManifest(ctx, "myapp", d.String())
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = f.svc.GetManifest(ctx, "myapp", "latest")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.False(t, f.blobs.BlobExists(ctx, config.Digest))
	assert.False(t, f.blobs.BlobExists(ctx, layer.Digest))
}

func TestService_DeleteManifest_NotFound(t *testing.T) {
	f := newFixture(t)
	ctx := testContext()

	err := f.svc.DeleteManifest(ctx, "myapp", "latest")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = f.svc.DeleteManifest(ctx, "myapp", digestcodec.Compute([]byte("x")).String())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestService_Index(t *testing.T) {
	f := newFixture(t)
	ctx := testContext()

	amdConfig := f.blob(t, "myapp", "amd64 config")
	armConfig := f.blob(t, "myapp", "arm64 config")
	amd := f.put(t, "myapp", digestcodec.Compute(imageManifest(t, amdConfig)).String(), imageManifest(t, amdConfig))
	arm := f.put(t, "myapp", "arm", imageManifest(t, armConfig))

	indexData := imageIndex(t, amd, arm)
	index, err := f.svc.PutManifest(ctx, &domain.Manifest{
		Name:        "myapp",
		Reference:   "latest",
		ContentType: ocispec.MediaTypeImageIndex,
		Data:        indexData,
	}, domain.PutManifestOptions{})
	require.NoError(t, err)

	got, err := f.svc.GetManifest(ctx, "myapp", "latest")
	require.NoError(t, err)
	assert.Equal(t, ocispec.MediaTypeImageIndex, got.ContentType)

	// Deleting the index removes the untagged child but keeps the tagged one.
	require.NoError(t, f.svc.DeleteManifest(ctx, "myapp", index.String()))

	_, err = f.svc.GetManifest(ctx, "myapp", amd.String())
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.False(t, f.blobs.BlobExists(ctx, amdConfig.Digest))

	_, err = f.svc.GetManifest(ctx, "myapp", arm.String())
	assert.NoError(t, err)
	assert.True(t, f.blobs.BlobExists(ctx, armConfig.Digest))
}

func TestService_Index_MissingChild(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.PutManifest(testContext(), &domain.Manifest{
		Name:      "myapp",
		Reference: "latest",
		Data:      imageIndex(t, digestcodec.Compute([]byte("no such manifest"))),
	}, domain.PutManifestOptions{})

	assert.ErrorIs(t, err, domain.ErrManifestReferenceMissing)
}

func TestService_PutManifest_BlobsFromOtherRepository(t *testing.T) {
	f := newFixture(t)
	ctx := testContext()
	config := f.blob(t, "team-a/app", "config")
	layer := f.blob(t, "team-a/app", "layer")
	data := imageManifest(t, config, layer)

	_, err := f.svc.PutManifest(ctx, &domain.Manifest{
		Name:      "team-b/other",
		Reference: "stolen",
		Data:      data,
	}, domain.PutManifestOptions{})

	require.ErrorIs(t, err, domain.ErrManifestReferenceMissing)
	assert.False(t, f.store.RepositoryExists(ctx, "team-b/other"))
	assert.Equal(t, int64(1), f.blobs.References(layer.Digest))

	// The owning repository can still use them.
	f.put(t, "team-a/app", "v1", data)
}

func TestService_PutManifest_MountedBlobs(t *testing.T) {
	f := newFixture(t)
	ctx := testContext()
	config := f.blob(t, "team-a/app", "config")
	_, err := f.blobs.MountBlob(ctx, "team-b/other", config.Digest)
	require.NoError(t, err)

	f.put(t, "team-b/other", "v1", imageManifest(t, config))

	assert.Equal(t, int64(2), f.blobs.References(config.Digest))
}

func TestService_ForeignLayersAreNotRequired(t *testing.T) {
	f := newFixture(t)
	foreign := ocispec.Descriptor{
		MediaType: "application/vnd.docker.image.rootfs.foreign.diff.tar.gzip",
		Digest:    digestcodec.Compute([]byte("windows base")),
		Size:      12,
		URLs:      []string{"https://example.com/layer"},
	}

	f.put(t, "myapp", "latest", imageManifest(t, f.blob(t, "myapp", "config"), foreign))
}

func TestService_PutManifest_Populate(t *testing.T) {
	f := newFixture(t)
	ctx := testContext()
	config := f.blob(t, "myapp", "config")
	layerData := []byte("fetched on demand")
	layer := ocispec.Descriptor{MediaType: ocispec.MediaTypeImageLayerGzip, Digest: digestcodec.Compute(layerData), Size: int64(len(layerData))}

	var calls atomic.Int32
	opts := domain.PutManifestOptions{
		Populate: func(ref domain.ManifestReference) error {
			calls.Add(1)
			assert.Equal(t, layer.Digest, ref.Digest)
			_, err := f.blobs.PutBlob(ctx, "myapp", ref.Digest, bytes.NewReader(layerData))
			return err
		},
	}

	_, err := f.svc.PutManifest(ctx, &domain.Manifest{
		Name:      "myapp",
		Reference: "latest",
		Data:      imageManifest(t, config, layer),
	}, opts)

	require.NoError(t, err)
	assert.Equal(t, int32(1), calls.Load())
	assert.Equal(t, int64(1), f.blobs.References(layer.Digest))
}

func TestService_PutManifest_PopulateFailure(t *testing.T) {
	f := newFixture(t)
	missing := ocispec.Descriptor{Digest: digestcodec.Compute([]byte("gone")), Size: 4}
	boom := errors.New("upstream down")

	_, err := f.svc.PutManifest(testContext(), &domain.Manifest{
		Name:      "myapp",
		Reference: "latest",
		Data:      imageManifest(t, missing),
	}, domain.PutManifestOptions{
		Populate: func(domain.ManifestReference) error { return boom },
	})

	assert.ErrorIs(t, err, boom)
}

func TestService_ConcurrentPutsToOneTag(t *testing.T) {
	f := newFixture(t)
	ctx := testContext()

	const workers = 8
	datas := make([][]byte, workers)
	for i := range datas {
		datas[i] = imageManifest(t, f.blob(t, "myapp", fmt.Sprintf("config %d", i)))
	}

	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for _, data := range datas {
		wg.Add(1)
		go func(data []byte) {
			defer wg.Done()
			_, err := f.svc.PutManifest(ctx, &domain.Manifest{Name: "myapp", Reference: "latest", Data: data}, domain.PutManifestOptions{})
			errs <- err
		}(data)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	current, err := f.svc.GetManifest(ctx, "myapp", "latest")
	require.NoError(t, err)
	assert.Contains(t, datas, current.Data)

	for _, data := range datas {
		_, err := f.svc.GetManifest(ctx, "myapp", digestcodec.Compute(data).String())
		assert.NoError(t, err)
	}
}

func TestService_ManifestHistory(t *testing.T) {
	f := newFixture(t)
	ctx := testContext()
	first := f.put(t, "myapp", "latest", imageManifest(t, f.blob(t, "myapp", "c1")))
	second := f.put(t, "myapp", "latest", imageManifest(t, f.blob(t, "myapp", "c2")))

	history, err := f.svc.ManifestHistory(ctx, "myapp", "latest")
	require.NoError(t, err)
	assert.Equal(t, []digest.Digest{second, first}, history)

	history, err = f.svc.ManifestHistory(ctx, "myapp", first.String())
	require.NoError(t, err)
	assert.Equal(t, []digest.Digest{first}, history)

	_, err = f.svc.ManifestHistory(ctx, "myapp", "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestService_ListRepositoriesAndTags(t *testing.T) {
	f := newFixture(t)
	ctx := testContext()
	f.put(t, "b/app", "v1", imageManifest(t, f.blob(t, "b/app", "c1")))
	f.put(t, "a", "v2", imageManifest(t, f.blob(t, "a", "c2")))
	f.put(t, "a", "v1", imageManifest(t, f.blob(t, "a", "c3")))

	page, err := f.svc.ListRepositories(ctx, "", -1)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b/app"}, page.Repositories)

	tags, err := f.svc.ListTags(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, []string{"v1", "v2"}, tags)
}

func TestService_Rebuild(t *testing.T) {
	f := newFixture(t)
	config := f.blob(t, "myapp", "config")
	layer := f.blob(t, "myapp", "layer")
	d := f.put(t, "myapp", "latest", imageManifest(t, config, layer))

	// Reopen: counts are rebuilt from the stored manifests.
	reopened := openFixture(t, f.dir)
	reopened.eventBus.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Maybe()
	ctx := testContext()
	assert.Equal(t, int64(0), reopened.blobs.References(layer.Digest))

	scanned, err := reopened.svc.Rebuild(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, scanned)
	assert.Equal(t, int64(1), reopened.blobs.References(layer.Digest))

	// A second call is a no-op.
	scanned, err = reopened.svc.Rebuild(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, scanned)
	assert.Equal(t, int64(1), reopened.blobs.References(layer.Digest))

	require.NoError(t, reopened.svc.DeleteManifest(ctx, "myapp", d.String()))
	assert.False(t, reopened.blobs.BlobExists(ctx, layer.Digest))
}

func TestParseManifest_DockerMediaTypes(t *testing.T) {
	config := digestcodec.Compute([]byte("config"))
	data := []byte(`{"schemaVersion":2,"mediaType":"` + MediaTypeDockerManifest + `","config":{"mediaType":"application/vnd.docker.container.image.v1+json","digest":"` + config.String() + `","size":6},"layers":[]}`)

	p, err := parseManifest(MediaTypeDockerManifest, data)

	require.NoError(t, err)
	assert.Equal(t, MediaTypeDockerManifest, p.mediaType)
	require.Len(t, p.refs, 1)
	assert.Equal(t, config, p.refs[0].Digest)

	_, err = parseManifest(ocispec.MediaTypeImageIndex, data)
	assert.ErrorIs(t, err, domain.ErrManifestInvalid)
}

func TestService_PutManifest_StoreFailureKeepsBlobs(t *testing.T) {
	ctx := testContext()
	blobs, err := filesystem.NewBlobStorage(t.TempDir(), filesystem.BlobConfig{}, logging.Nop())
	require.NoError(t, err)
	store := mocks.NewMockManifestStorage(t)
	svc := NewService(blobs, store, nil)

	configData := []byte("config")
	config, err := blobs.PutBlob(ctx, "myapp", digestcodec.Compute(configData), bytes.NewReader(configData))
	require.NoError(t, err)
	data := imageManifest(t, ocispec.Descriptor{Digest: config.Digest, Size: config.Size})
	d := digestcodec.Compute(data)
	boom := errors.New("disk full")

	store.EXPECT().RecordExists(mock.Anything, "myapp", d).Return(false)
	store.EXPECT().PutRecord(mock.Anything, "myapp", mock.Anything).Return(boom).Once()

	manifest := &domain.Manifest{Name: "myapp", Reference: "latest", Data: data}
	_, err = svc.PutManifest(ctx, manifest, domain.PutManifestOptions{})

	require.ErrorIs(t, err, boom)
	assert.True(t, blobs.HasClaim(ctx, "myapp", config.Digest))
	assert.Equal(t, int64(1), blobs.References(config.Digest))

	// The client retries once storage has recovered.
	store.EXPECT().PutRecord(mock.Anything, "myapp", mock.Anything).Return(nil).Once()
	store.EXPECT().SetTag(mock.Anything, "myapp", "latest", d).Return(nil).Once()

	got, err := svc.PutManifest(ctx, &domain.Manifest{Name: "myapp", Reference: "latest", Data: data}, domain.PutManifestOptions{})

	require.NoError(t, err)
	assert.Equal(t, d, got)
	assert.Equal(t, int64(1), blobs.References(config.Digest))
}

func TestService_GetManifest_StoreError(t *testing.T) {
	blobs, err := filesystem.NewBlobStorage(t.TempDir(), filesystem.BlobConfig{}, logging.Nop())
	require.NoError(t, err)
	store := mocks.NewMockManifestStorage(t)
	svc := NewService(blobs, store, nil)
	d := digestcodec.Compute([]byte("manifest"))
	boom := errors.New("permission denied")

	store.EXPECT().GetRecord(mock.Anything, "myapp", d).Return(out.ManifestRecord{}, boom)

	_, err = svc.GetManifest(testContext(), "myapp", d.String())

	require.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, domain.ErrNotFound)
}

func TestService_GetManifest_UnknownTag(t *testing.T) {
	blobs, err := filesystem.NewBlobStorage(t.TempDir(), filesystem.BlobConfig{}, logging.Nop())
	require.NoError(t, err)
	store := mocks.NewMockManifestStorage(t)
	svc := NewService(blobs, store, nil)

	store.EXPECT().ResolveTag(mock.Anything, "myapp", "nope").Return("", domain.ErrManifestNotFound)

	_, err = svc.GetManifest(testContext(), "myapp", "nope")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
