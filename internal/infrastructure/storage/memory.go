package storage

import "sync"

// MemoryDriver keeps collections in process memory. Used by tests and the
// memory storage mode.
type MemoryDriver struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemoryDriver() *MemoryDriver {
	return &MemoryDriver{data: make(map[string][]byte)}
}

func (d *MemoryDriver) Load(key string) ([]byte, bool, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	data, ok := d.data[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, true, nil
}

func (d *MemoryDriver) Save(key string, data []byte) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	stored := make([]byte, len(data))
	copy(stored, data)
	d.data[key] = stored
	return nil
}

func (d *MemoryDriver) Close() error {
	return nil
}
