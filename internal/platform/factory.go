package platform

import (
	"context"
	"fmt"

	"github.com/aretw0/tend/pkg/adapters/fs"
	"github.com/aretw0/tend/pkg/core"
)

// New assembles a loaded note store for the vault at path.
//
// The path is resolved through the dev-safety rules (a `go run` session is
// re-rooted into a temp dir unless the path already lives there), the blob
// store is initialized, and both persisted records are hydrated.
func New(path string, opts ...Option) (*core.Store, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	codec, err := core.CodecByName(o.format)
	if err != nil {
		return nil, err
	}

	blobs := o.blobs
	if blobs == nil {
		useTemp := o.forceTemp || IsDevRun()
		resolved := ResolveVaultPath(path, useTemp)

		if useTemp && o.logger != nil {
			o.logger.Warn("running in SAFE MODE (dev/test)", "original_path", path, "resolved_path", resolved)
		}

		// Opening without AutoInit means "this vault must already be there",
		// except in the temp sandbox, which is always created on the fly.
		mustExist := (o.mustExist || !o.autoInit) && !useTemp

		blobs = fs.NewStore(fs.Config{
			Path:      resolved,
			Ext:       "." + codec.Name(),
			MustExist: mustExist,
			Logger:    o.logger,
		})
	}

	ctx := context.Background()
	if err := blobs.Initialize(ctx); err != nil {
		return nil, fmt.Errorf("failed to initialize blob store: %w", err)
	}

	store := core.NewStore(blobs, core.Config{
		Logger:      o.logger,
		Clock:       o.clock,
		EventBuffer: o.eventBuffer,
		Codec:       codec,
	})

	if err := store.Load(ctx); err != nil {
		return nil, err
	}
	return store, nil
}
