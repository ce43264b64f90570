package cart

import (
	"encoding/json"
	"os"
	"sync"
)

// FileStorage mirrors the browser's durable key-value storage: one JSON file
// read at startup and rewritten on every mutation.
type FileStorage struct {
	path string
}

func NewFileStorage(path string) *FileStorage {
	return &FileStorage{path: path}
}

func (f *FileStorage) Load() ([]LineItem, error) {
	data, err := os.ReadFile(f.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var items []LineItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (f *FileStorage) Save(items []LineItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return os.WriteFile(f.path, data, 0o644)
}

// MemoryStorage keeps cart state in memory; used by tests.
type MemoryStorage struct {
	mu    sync.Mutex
	items []LineItem
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

func (m *MemoryStorage) Load() ([]LineItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	items := make([]LineItem, len(m.items))
	copy(items, m.items)
	return items, nil
}

func (m *MemoryStorage) Save(items []LineItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = make([]LineItem, len(items))
	copy(m.items, items)
	return nil
}
