package adapter

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
	"gopkg.in/yaml.v3"

	m "salvager.dev/pkg/salvager/internal/model"
)

// CurrentWorldVersion is the world file format version written by Save.
const CurrentWorldVersion = 1

// compressedSuffix marks world snapshots stored as zstd-compressed YAML.
const compressedSuffix = ".zst"

// WorldStore loads and persists the world a salvage command works on.
type WorldStore interface {
	// Load reads the world at path and refreshes inventory bookkeeping.
	Load(path m.Path) (*m.World, error)

	// Save prunes emptied structures and writes the world back to path.
	Save(path m.Path, world *m.World) error
}

// FileWorldStore stores worlds as YAML files; paths ending in ".zst" are
// zstd-compressed.
type FileWorldStore struct{}

// NewFileWorldStore constructs a FileWorldStore.
func NewFileWorldStore() *FileWorldStore {
	return &FileWorldStore{}
}

// Load reads and decodes the world file at path.
func (s *FileWorldStore) Load(path m.Path) (*m.World, error) {
	// #nosec G304 - the world path is chosen by the operator
	raw, err := os.ReadFile(string(path))
	if err != nil {
		return nil, fmt.Errorf("read world: %w", err)
	}

	if isCompressed(path) {
		raw, err = decompress(raw)
		if err != nil {
			return nil, fmt.Errorf("decompress world %s: %w", path, err)
		}
	}

	var world m.World
	if err := yaml.Unmarshal(raw, &world); err != nil {
		return nil, fmt.Errorf("decode world %s: %w", path, err)
	}

	if world.Version > CurrentWorldVersion {
		return nil, fmt.Errorf("world %s has version %d, newest supported is %d", path, world.Version, CurrentWorldVersion)
	}

	world.Refresh()

	slog.Debug("loaded world", "path", path, "structures", len(world.Structures), "players", len(world.Players))

	return &world, nil
}

// Save writes world to path atomically.
func (s *FileWorldStore) Save(path m.Path, world *m.World) error {
	if pruned := world.Prune(); pruned > 0 {
		slog.Info("pruned emptied structures", "path", path, "count", pruned)
	}

	world.Version = CurrentWorldVersion

	var buf bytes.Buffer

	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)

	if err := encoder.Encode(world); err != nil {
		return fmt.Errorf("encode world: %w", err)
	}

	if err := encoder.Close(); err != nil {
		return fmt.Errorf("encode world: %w", err)
	}

	content := buf.Bytes()

	if isCompressed(path) {
		compressed, err := compress(content)
		if err != nil {
			return fmt.Errorf("compress world: %w", err)
		}

		content = compressed
	}

	return writeFileAtomic(string(path), content)
}

func isCompressed(path m.Path) bool {
	return strings.HasSuffix(string(path), compressedSuffix)
}

func decompress(raw []byte) ([]byte, error) {
	decoder, err := zstd.NewReader(bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}
	defer decoder.Close()

	return io.ReadAll(decoder)
}

func compress(raw []byte) ([]byte, error) {
	var buf bytes.Buffer

	encoder, err := zstd.NewWriter(&buf)
	if err != nil {
		return nil, err
	}

	if _, err := encoder.Write(raw); err != nil {
		_ = encoder.Close()
		return nil, err
	}

	if err := encoder.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// writeFileAtomic writes content to a temp file next to path and renames it into place.
func writeFileAtomic(path string, content []byte) error {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, ".world-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp world file: %w", err)
	}

	tmpName := tmp.Name()

	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(content); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write world: %w", err)
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close world: %w", err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		slog.Error("Failed to replace world file", "path", path, "error", err)
		return fmt.Errorf("replace world: %w", err)
	}

	return nil
}
