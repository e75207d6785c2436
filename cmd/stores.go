package main

import (
	"go.uber.org/zap"

	"github.com/sells-group/projectmap/internal/store"
)

// storeEnv bundles the stores the CLI commands share.
type storeEnv struct {
	comments store.CommentStore
	users    *store.UserStore
	catalog  *store.Catalog
}

func openStores() (*storeEnv, error) {
	comments, err := store.OpenComments(cfg)
	if err != nil {
		return nil, err
	}

	return &storeEnv{
		comments: comments,
		users:    store.NewUserStore(cfg.Data.UsersPath()),
		catalog:  store.NewCatalog(cfg.Data.GeoJSONPath(), cfg.Data.ActivePath()),
	}, nil
}

func (e *storeEnv) Close() {
	if err := e.comments.Close(); err != nil {
		zap.L().Warn("close comment store", zap.Error(err))
	}
}
