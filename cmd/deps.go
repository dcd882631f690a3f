package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/abhisek/letterz/internal/cardstore"
	"github.com/abhisek/letterz/internal/config"
	"github.com/abhisek/letterz/internal/letters"
	"github.com/abhisek/letterz/internal/logger"
	"github.com/abhisek/letterz/internal/session"
	"github.com/abhisek/letterz/internal/speech"
	"github.com/abhisek/letterz/internal/store"
	"github.com/abhisek/letterz/internal/store/boltkv"
	"github.com/abhisek/letterz/internal/store/memkv"
	"github.com/abhisek/letterz/internal/store/rediskv"
)

// deps is everything a command needs to read or play the deck.
type deps struct {
	cfg     config.Config
	log     *logger.Logger
	kv      cardstore.KV
	events  store.EventRepo
	cards   *cardstore.Store
	speaker speech.Speaker
	closers []io.Closer
}

// openDeps resolves configuration and opens the selected backend. The
// answer log always lives in SQLite, except for the memory backend which
// keeps nothing.
func openDeps(cmd *cobra.Command) (*deps, error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	dbPath, err := resolveDBPath(cmd, cfg)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}

	log, err := logger.New(cfg.LogMode, cfg.ResolveLogFile(filepath.Dir(dbPath)))
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}

	d := &deps{cfg: cfg, log: log}
	if err := d.openBackend(ctx, dbPath); err != nil {
		d.Close()
		return nil, err
	}

	alphabet := letters.Alphabet()
	d.cards = cardstore.New(d.kv, letters.Symbols(alphabet),
		cardstore.WithKey(cfg.StoreKey),
		cardstore.WithLogger(log),
	)
	log.Info("backend ready", "backend", cfg.Backend, "db", dbPath)
	return d, nil
}

func (d *deps) openBackend(ctx context.Context, dbPath string) error {
	if d.cfg.Backend == config.BackendMemory {
		d.kv = memkv.New()
		return nil
	}

	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	d.closers = append(d.closers, st)
	d.events = st.EventRepo()

	switch d.cfg.Backend {
	case config.BackendSQLite:
		d.kv = st
	case config.BackendBolt:
		bs, err := boltkv.Open(d.cfg.ResolveBoltPath(dbPath))
		if err != nil {
			return fmt.Errorf("open bolt: %w", err)
		}
		d.closers = append(d.closers, bs)
		d.kv = bs
	case config.BackendRedis:
		rs, err := rediskv.Open(ctx, rediskv.Options{
			Addr:     d.cfg.RedisAddr,
			Password: d.cfg.RedisPassword,
			DB:       d.cfg.RedisDB,
			Prefix:   "letterz:",
		})
		if err != nil {
			return fmt.Errorf("open redis: %w", err)
		}
		d.closers = append(d.closers, rs)
		d.kv = rs
	default:
		return fmt.Errorf("unknown backend %q", d.cfg.Backend)
	}
	return nil
}

// newSession builds a practice session over the opened deck store.
func (d *deps) newSession() (*session.Session, error) {
	cfg := session.DefaultConfig()
	cfg.Lowercase = d.cfg.Lowercase

	d.speaker = speech.New(d.cfg.TTS, d.log)
	return session.New(cfg, letters.Alphabet(), d.cards,
		session.WithSpeaker(d.speaker),
		session.WithEventRepo(d.events),
		session.WithLogger(d.log),
	)
}

// Close releases backends in reverse order and flushes the log.
func (d *deps) Close() error {
	if c, ok := d.speaker.(*speech.Command); ok {
		c.Close()
	}
	var errs []error
	for i := len(d.closers) - 1; i >= 0; i-- {
		if err := d.closers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	d.closers = nil
	d.log.Sync()
	return errors.Join(errs...)
}
