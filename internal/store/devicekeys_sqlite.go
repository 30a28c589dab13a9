package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"atlas/internal/domain"
)

const deviceKeysSchema = `
CREATE TABLE IF NOT EXISTS device_keys (
	device_id   TEXT PRIMARY KEY,
	public_key  TEXT NOT NULL,
	fingerprint TEXT NOT NULL,
	added_unix  INTEGER NOT NULL
);`

// DeviceKeySQLiteStore persists peer device keys in SQLite. Every write is a
// transactional upsert, so concurrent callers cannot drop each other's
// updates the way a read-modify-write over a single record can.
type DeviceKeySQLiteStore struct {
	db *sql.DB
}

// OpenDeviceKeySQLiteStore opens (creating if needed) the database at path.
func OpenDeviceKeySQLiteStore(path string) (*DeviceKeySQLiteStore, error) {
	db, err := sql.Open("sqlite3", path+"?_busy_timeout=5000")
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(deviceKeysSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init device_keys schema: %w", err)
	}
	return &DeviceKeySQLiteStore{db: db}, nil
}

// Close releases the underlying database handle.
func (s *DeviceKeySQLiteStore) Close() error { return s.db.Close() }

// Put stores or replaces the record for id.
func (s *DeviceKeySQLiteStore) Put(id domain.DeviceID, rec domain.DeviceRecord) error {
	jwk, err := json.Marshal(rec.PublicKey)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(`
		INSERT INTO device_keys (device_id, public_key, fingerprint, added_unix)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(device_id) DO UPDATE SET
			public_key = excluded.public_key,
			fingerprint = excluded.fingerprint,
			added_unix = excluded.added_unix`,
		id.String(), string(jwk), rec.Fingerprint.String(), rec.AddedUnix)
	return err
}

// Get returns the record for id, reporting whether it exists.
func (s *DeviceKeySQLiteStore) Get(id domain.DeviceID) (domain.DeviceRecord, bool, error) {
	var (
		jwk  string
		rec  domain.DeviceRecord
		fp   string
		unix int64
	)
	err := s.db.QueryRow(
		`SELECT public_key, fingerprint, added_unix FROM device_keys WHERE device_id = ?`,
		id.String()).Scan(&jwk, &fp, &unix)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.DeviceRecord{}, false, nil
	}
	if err != nil {
		return domain.DeviceRecord{}, false, err
	}
	if err := json.Unmarshal([]byte(jwk), &rec.PublicKey); err != nil {
		return domain.DeviceRecord{}, false, err
	}
	rec.Fingerprint = domain.Fingerprint(fp)
	rec.AddedUnix = unix
	return rec, true, nil
}

// List returns all known device records.
func (s *DeviceKeySQLiteStore) List() (map[domain.DeviceID]domain.DeviceRecord, error) {
	rows, err := s.db.Query(`SELECT device_id, public_key, fingerprint, added_unix FROM device_keys`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[domain.DeviceID]domain.DeviceRecord)
	for rows.Next() {
		var (
			id   string
			jwk  string
			fp   string
			unix int64
		)
		if err := rows.Scan(&id, &jwk, &fp, &unix); err != nil {
			return nil, err
		}
		var rec domain.DeviceRecord
		if err := json.Unmarshal([]byte(jwk), &rec.PublicKey); err != nil {
			return nil, err
		}
		rec.Fingerprint = domain.Fingerprint(fp)
		rec.AddedUnix = unix
		out[domain.DeviceID(id)] = rec
	}
	return out, rows.Err()
}

// Remove deletes the record for id. Removing an unknown id is a no-op.
func (s *DeviceKeySQLiteStore) Remove(id domain.DeviceID) error {
	_, err := s.db.Exec(`DELETE FROM device_keys WHERE device_id = ?`, id.String())
	return err
}

// Compile-time assertion that DeviceKeySQLiteStore implements domain.DeviceKeyStore.
var _ domain.DeviceKeyStore = (*DeviceKeySQLiteStore)(nil)
