package storage

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"sync"

	"github.com/dgraph-io/badger/v3"
	"github.com/klauspost/compress/gzip"

	"github.com/annel0/voxel-kit/internal/logging"
	"github.com/annel0/voxel-kit/internal/vec"
	"github.com/annel0/voxel-kit/internal/world"
	"github.com/annel0/voxel-kit/internal/world/block"
)

// WorldStorage — персистентное хранилище дельт чанков поверх BadgerDB.
// Дельты сжимаются gzip перед записью: изменения чанков однообразны
// и хорошо жмутся.
type WorldStorage struct {
	db      *badger.DB
	dbPath  string
	mutex   sync.RWMutex
	isReady bool
}

// ChunkDelta содержит изменения в чанке
type ChunkDelta struct {
	Coords vec.Vec2              `json:"coords"`
	Blocks map[string]BlockDelta `json:"blocks"` // Ключ — упакованные координаты "x:y:z"
}

// BlockDelta содержит изменения блока
type BlockDelta struct {
	ID       block.BlockID  `json:"id"`
	Metadata block.Metadata `json:"metadata,omitempty"`
}

// NewWorldStorage создаёт новое хранилище мира
func NewWorldStorage(dataPath string) (*WorldStorage, error) {
	dbPath := filepath.Join(dataPath, "world")
	opts := badger.DefaultOptions(dbPath)
	opts.Logger = nil // Отключаем логирование BadgerDB

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("не удалось открыть BadgerDB: %w", err)
	}

	return &WorldStorage{
		db:      db,
		dbPath:  dbPath,
		isReady: true,
	}, nil
}

// Close закрывает хранилище данных
func (ws *WorldStorage) Close() error {
	ws.mutex.Lock()
	defer ws.mutex.Unlock()

	if !ws.isReady {
		return nil
	}

	ws.isReady = false
	return ws.db.Close()
}

// SaveChunk сохраняет изменения чанка. Чанк без изменений
// пропускается без обращения к диску.
func (ws *WorldStorage) SaveChunk(chunk *world.Chunk) error {
	ws.mutex.RLock()
	defer ws.mutex.RUnlock()

	if !ws.isReady {
		return fmt.Errorf("хранилище не готово")
	}

	chunk.Mu.RLock()
	if chunk.ChangeCounter == 0 {
		chunk.Mu.RUnlock()
		return nil
	}

	delta := ChunkDelta{
		Coords: chunk.Coords,
		Blocks: make(map[string]BlockDelta, len(chunk.Changes)),
	}

	for local := range chunk.Changes {
		key := packLocal(local)
		delta.Blocks[key] = BlockDelta{
			ID:       chunk.Blocks[local],
			Metadata: chunk.Metadata[local],
		}
	}
	chunk.Mu.RUnlock()

	data, err := json.Marshal(delta)
	if err != nil {
		return fmt.Errorf("ошибка сериализации дельты: %w", err)
	}

	compressed, err := compress(data)
	if err != nil {
		return fmt.Errorf("ошибка сжатия дельты: %w", err)
	}

	key := chunkKey(delta.Coords)
	err = ws.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, compressed)
	})
	if err != nil {
		return fmt.Errorf("ошибка сохранения в BadgerDB: %w", err)
	}

	chunk.ClearChanges()
	return nil
}

// LoadChunk загружает дельту чанка. Для несохранённого чанка
// возвращается пустая дельта.
func (ws *WorldStorage) LoadChunk(coords vec.Vec2) (*ChunkDelta, error) {
	ws.mutex.RLock()
	defer ws.mutex.RUnlock()

	if !ws.isReady {
		return nil, fmt.Errorf("хранилище не готово")
	}

	var data []byte
	err := ws.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(chunkKey(coords))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			data = append([]byte{}, val...)
			return nil
		})
	})

	if err == badger.ErrKeyNotFound {
		return &ChunkDelta{
			Coords: coords,
			Blocks: make(map[string]BlockDelta),
		}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения из BadgerDB: %w", err)
	}

	raw, err := decompress(data)
	if err != nil {
		return nil, fmt.Errorf("ошибка распаковки дельты: %w", err)
	}

	var delta ChunkDelta
	if err := json.Unmarshal(raw, &delta); err != nil {
		return nil, fmt.Errorf("ошибка десериализации дельты: %w", err)
	}
	return &delta, nil
}

// ApplyDeltaToChunk применяет дельту к чанку
func (ws *WorldStorage) ApplyDeltaToChunk(chunk *world.Chunk, delta *ChunkDelta) error {
	if delta == nil || len(delta.Blocks) == 0 {
		return nil
	}

	for key, blockDelta := range delta.Blocks {
		local, err := unpackLocal(key)
		if err != nil {
			logging.Warn("WorldStorage: ключ %q пропущен: %v", key, err)
			continue
		}
		if local.X < 0 || local.X >= 16 || local.Z < 0 || local.Z >= 16 ||
			local.Y < 0 || local.Y >= world.ChunkHeight {
			logging.Warn("WorldStorage: координаты %v вне чанка", local)
			continue
		}

		chunk.SetBlock(local, blockDelta.ID)
		for k, v := range blockDelta.Metadata {
			chunk.SetBlockMetadata(local, k, v)
		}
	}
	return nil
}

// LoadAndApplyChunk загружает и применяет дельту чанка
func (ws *WorldStorage) LoadAndApplyChunk(chunk *world.Chunk) error {
	delta, err := ws.LoadChunk(chunk.Coords)
	if err != nil {
		return err
	}
	return ws.ApplyDeltaToChunk(chunk, delta)
}

func chunkKey(coords vec.Vec2) []byte {
	return []byte(fmt.Sprintf("chunk:%d:%d", coords.X, coords.Y))
}

func packLocal(local vec.Vec3) string {
	return fmt.Sprintf("%d:%d:%d", local.X, local.Y, local.Z)
}

func unpackLocal(key string) (vec.Vec3, error) {
	var local vec.Vec3
	if _, err := fmt.Sscanf(key, "%d:%d:%d", &local.X, &local.Y, &local.Z); err != nil {
		return vec.Vec3{}, err
	}
	return local, nil
}

func compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write(data); err != nil {
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decompress(data []byte) ([]byte, error) {
	zr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer zr.Close()
	return io.ReadAll(zr)
}
