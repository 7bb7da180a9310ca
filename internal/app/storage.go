package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/Gunvolt24/swiftcart/config"
	"github.com/Gunvolt24/swiftcart/internal/ports"
	"github.com/Gunvolt24/swiftcart/internal/repo/postgres"
	"github.com/Gunvolt24/swiftcart/internal/storage/file"
	"github.com/Gunvolt24/swiftcart/internal/storage/memory"
)

// Имена бэкендов хранилища корзины.
const (
	BackendMemory   = "memory"
	BackendFile     = "file"
	BackendPostgres = "postgres"
)

// newStorage — выбирает долговременное хранилище корзины по конфигурации.
// Выключенное хранилище → (nil, no-op, nil): корзина работает только в памяти.
func newStorage(
	ctx context.Context,
	st *config.Storage,
	pg *config.Postgres,
	log ports.Logger,
) (ports.KeyValueStorage, func(), error) {
	noop := func() {}
	if !st.Enabled {
		return nil, noop, nil
	}

	switch strings.ToLower(strings.TrimSpace(st.Backend)) {
	case BackendMemory:
		log.Infof(ctx, "cart storage: memory quota=%d", st.QuotaBytes)
		return memory.NewStorage(st.QuotaBytes), noop, nil

	case "", BackendFile:
		s, err := file.NewStorage(st.Dir)
		if err != nil {
			return nil, noop, err
		}
		log.Infof(ctx, "cart storage: file dir=%s", st.Dir)
		return s, noop, nil

	case BackendPostgres:
		pool, err := postgres.NewPool(ctx, pg.DSN, pg.MaxConns)
		if err != nil {
			return nil, noop, err
		}
		if pg.Migrate {
			if err := postgres.Migrate(ctx, pool); err != nil {
				pool.Close()
				return nil, noop, err
			}
		}
		log.Infof(ctx, "cart storage: postgres max_conns=%d", pg.MaxConns)
		return postgres.NewKVRepository(pool), pool.Close, nil

	default:
		return nil, noop, fmt.Errorf("unknown storage backend %q", st.Backend)
	}
}
