package store

import (
	"path/filepath"
	"sync"

	"atlas/internal/domain"
)

const deviceKeysFile = "device_keys.json"

// DeviceKeyFileStore persists known peer device keys as a single JSON map
// on disk. Writers are serialised in-process and the file is replaced
// atomically, so within one process an update is never silently dropped.
// For concurrent writers across processes use DeviceKeySQLiteStore.
type DeviceKeyFileStore struct {
	dir string
	mu  sync.Mutex
}

// NewDeviceKeyFileStore returns a DeviceKeyFileStore rooted at dir.
func NewDeviceKeyFileStore(dir string) *DeviceKeyFileStore {
	return &DeviceKeyFileStore{dir: dir}
}

// Put stores or replaces the record for id.
func (s *DeviceKeyFileStore) Put(id domain.DeviceID, rec domain.DeviceRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := filepath.Join(s.dir, deviceKeysFile)
	m := make(map[domain.DeviceID]domain.DeviceRecord)
	if err := readJSON(path, &m); err != nil {
		return err
	}
	m[id] = rec
	return writeJSON(path, m, 0o600)
}

// Get returns the record for id, reporting whether it exists.
func (s *DeviceKeyFileStore) Get(id domain.DeviceID) (domain.DeviceRecord, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := make(map[domain.DeviceID]domain.DeviceRecord)
	if err := readJSON(filepath.Join(s.dir, deviceKeysFile), &m); err != nil {
		return domain.DeviceRecord{}, false, err
	}
	rec, ok := m[id]
	return rec, ok, nil
}

// List returns all known device records.
func (s *DeviceKeyFileStore) List() (map[domain.DeviceID]domain.DeviceRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := make(map[domain.DeviceID]domain.DeviceRecord)
	if err := readJSON(filepath.Join(s.dir, deviceKeysFile), &m); err != nil {
		return nil, err
	}
	return m, nil
}

// Remove deletes the record for id. Removing an unknown id is a no-op.
func (s *DeviceKeyFileStore) Remove(id domain.DeviceID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := filepath.Join(s.dir, deviceKeysFile)
	m := make(map[domain.DeviceID]domain.DeviceRecord)
	if err := readJSON(path, &m); err != nil {
		return err
	}
	if _, ok := m[id]; !ok {
		return nil
	}
	delete(m, id)
	return writeJSON(path, m, 0o600)
}

// Compile-time assertion that DeviceKeyFileStore implements domain.DeviceKeyStore.
var _ domain.DeviceKeyStore = (*DeviceKeyFileStore)(nil)
