package filestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fxamacker/cbor/v2"
	"github.com/rs/zerolog"

	"github.com/idilsaglam/littlelemon/internal/model"
)

// Single-file snapshot storage, as deterministic CBOR or indented JSON.
// No locking; one process owns the file.

// Format is the on-disk encoding of a snapshot.
type Format string

const (
	JSON Format = "json"
	CBOR Format = "cbor"
)

// ErrCorrupt wraps snapshot decode failures.
var ErrCorrupt = errors.New("filestore: corrupt snapshot")

// FormatFor returns the format implied by path: ".cbor" is CBOR,
// anything else JSON.
func FormatFor(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".cbor") {
		return CBOR
	}
	return JSON
}

var cborEnc cbor.EncMode

func init() {
	var err error
	cborEnc, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("filestore: cbor encoder: " + err.Error())
	}
}

type Config struct {
	Path string

	// Format defaults to FormatFor(Path).
	Format Format

	Logger *zerolog.Logger
}

// Store persists the menu as one file at Path.
type Store struct {
	path   string
	format Format
	log    zerolog.Logger
}

func New(cfg Config) *Store {
	f := cfg.Format
	if f == "" {
		f = FormatFor(cfg.Path)
	}
	logger := zerolog.Nop()
	if cfg.Logger != nil {
		logger = *cfg.Logger
	}
	return &Store{path: cfg.Path, format: f, log: logger}
}

func (s *Store) Path() string   { return s.path }
func (s *Store) Format() Format { return s.format }

// CreateSchema makes sure the parent directory exists.
func (s *Store) CreateSchema(context.Context) error {
	if s.path == "" {
		return errors.New("filestore: empty path")
	}
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}
	return nil
}

func (s *Store) ReadAll(context.Context) ([]model.MenuItem, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []model.MenuItem{}, nil
		}
		return nil, fmt.Errorf("read file: %w", err)
	}
	items := []model.MenuItem{}
	if len(b) == 0 {
		return items, nil
	}
	if err := s.decode(b, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// WriteAll merges items into the snapshot, replacing entries with the
// same ID, and rewrites the file through a temp file and rename. A
// snapshot that no longer decodes is replaced by items.
func (s *Store) WriteAll(ctx context.Context, items []model.MenuItem) error {
	current, err := s.ReadAll(ctx)
	if errors.Is(err, ErrCorrupt) {
		s.log.Warn().Err(err).Str("path", s.path).Msg("overwriting unreadable snapshot")
		current, err = nil, nil
	}
	if err != nil {
		return err
	}
	merged := upsert(current, items)

	b, err := s.encode(merged)
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		return fmt.Errorf("write file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("rename: %w", err)
	}
	return nil
}

func (s *Store) encode(items []model.MenuItem) ([]byte, error) {
	if s.format == CBOR {
		b, err := cborEnc.Marshal(items)
		if err != nil {
			return nil, fmt.Errorf("cbor marshal: %w", err)
		}
		return b, nil
	}
	b, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("json marshal: %w", err)
	}
	return b, nil
}

func (s *Store) decode(b []byte, items *[]model.MenuItem) error {
	if s.format == CBOR {
		if err := cbor.Unmarshal(b, items); err != nil {
			return fmt.Errorf("%w: cbor unmarshal: %w", ErrCorrupt, err)
		}
		return nil
	}
	if err := json.Unmarshal(b, items); err != nil {
		return fmt.Errorf("%w: json unmarshal: %w", ErrCorrupt, err)
	}
	return nil
}

func upsert(current, items []model.MenuItem) []model.MenuItem {
	index := make(map[string]int, len(current))
	for i, it := range current {
		index[it.ID] = i
	}
	for _, it := range items {
		if i, ok := index[it.ID]; ok {
			current[i] = it
			continue
		}
		index[it.ID] = len(current)
		current = append(current, it)
	}
	return current
}
