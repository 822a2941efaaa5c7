// Package store persists per-guild configuration as a single JSON document,
// read whole on startup and rewritten whole on every mutation. Mutation volume
// is low and the process is single-instance, so no finer write discipline is
// applied; a crash between mutation and rewrite loses the update.
package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"

	"github.com/spec-kit/ticket-bot/internal/domain"
	apperrors "github.com/spec-kit/ticket-bot/pkg/util/errorutil"
)

// GuildConfigStore encapsulates guild configuration persistence.
type GuildConfigStore interface {
	Get(guildID string) (domain.GuildConfig, bool)
	Upsert(guildID string, cfg domain.GuildConfig) error
	All() map[string]domain.GuildConfig
}

type fileStore struct {
	path    string
	logger  *zap.Logger
	mu      sync.Mutex
	configs map[string]domain.GuildConfig
}

// NewFileStore loads the JSON document at path, falling back to an empty
// configuration when the document is missing or unreadable.
func NewFileStore(path string, logger *zap.Logger) GuildConfigStore {
	s := &fileStore{
		path:    path,
		logger:  logger,
		configs: make(map[string]domain.GuildConfig),
	}
	s.load()
	return s
}

// Get returns the configuration record for a guild, if one exists.
func (s *fileStore) Get(guildID string) (domain.GuildConfig, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cfg, ok := s.configs[guildID]
	return cfg, ok
}

// Upsert merges cfg into any existing record. The title is only overwritten
// when a new one is supplied; the description is always overwritten since it
// is mandatory input. A write failure keeps the in-memory state and returns
// a CONFIG_IO_FAILURE, accepting loss of the update on restart.
func (s *fileStore) Upsert(guildID string, cfg domain.GuildConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current := s.configs[guildID]
	if cfg.WelcomeTitle != "" {
		current.WelcomeTitle = cfg.WelcomeTitle
	}
	current.WelcomeDescription = cfg.WelcomeDescription
	s.configs[guildID] = current

	if err := s.persist(); err != nil {
		s.logger.Error("guild config write failed, continuing with in-memory state", zap.Error(err))
		return apperrors.NewConfigIOFailure("unable to persist guild configuration", err)
	}
	return nil
}

// All returns a copy of every stored record.
func (s *fileStore) All() map[string]domain.GuildConfig {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]domain.GuildConfig, len(s.configs))
	for id, cfg := range s.configs {
		out[id] = cfg
	}
	return out
}

func (s *fileStore) load() {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn("guild config read failed, starting empty", zap.Error(err))
		}
		return
	}
	if err := json.Unmarshal(data, &s.configs); err != nil {
		s.logger.Warn("guild config document malformed, starting empty", zap.Error(err))
		s.configs = make(map[string]domain.GuildConfig)
	}
}

func (s *fileStore) persist() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(s.configs, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o644)
}
