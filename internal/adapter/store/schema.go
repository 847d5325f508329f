package store

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"fragdoc/config"
	"go.etcd.io/bbolt"
)

// CurrentSchemaVersion is the snapshot format version.
// Increment this when making breaking changes to the storage format.
const CurrentSchemaVersion = 1

var keySchemaInfo = []byte("schema_info")

// SchemaInfo describes a snapshot.
type SchemaInfo struct {
	Version    int       `json:"version"`
	ConfigHash string    `json:"config_hash"`
	Root       string    `json:"root"`
	Fragments  int       `json:"fragments"`
	CreatedAt  time.Time `json:"created_at"`
}

func putSchemaInfo(tx *bbolt.Tx, info *SchemaInfo) error {
	data, err := json.Marshal(info)
	if err != nil {
		return err
	}
	return tx.Bucket(bucketMeta).Put(keySchemaInfo, data)
}

// GetSchemaInfo returns the snapshot description. A store that was never
// written returns a zero SchemaInfo.
func (s *BoltStore) GetSchemaInfo() (*SchemaInfo, error) {
	var info SchemaInfo
	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketMeta).Get(keySchemaInfo)
		if data == nil {
			return nil
		}
		return json.Unmarshal(data, &info)
	})
	return &info, err
}

// CheckSchema fails when the snapshot is missing or was written by a newer
// format.
func (s *BoltStore) CheckSchema() (*SchemaInfo, error) {
	info, err := s.GetSchemaInfo()
	if err != nil {
		return nil, fmt.Errorf("failed to get schema info: %w", err)
	}
	if info.Version == 0 {
		return nil, fmt.Errorf("no snapshot found")
	}
	if info.Version > CurrentSchemaVersion {
		return nil, fmt.Errorf("snapshot created by newer version (v%d > v%d)", info.Version, CurrentSchemaVersion)
	}
	return info, nil
}

// ComputeConfigHash hashes the settings that change which fragments are
// extracted. Two snapshots with equal hashes were cut the same way.
func ComputeConfigHash(cfg *config.Config) string {
	relevant := struct {
		Includes    []string `json:"includes"`
		Excludes    []string `json:"excludes"`
		Extension   string   `json:"extension"`
		Keywords    []string `json:"keywords"`
		Annotations []string `json:"annotations"`
		Modifiers   []string `json:"modifiers"`
	}{
		Includes:    cfg.Source.Includes,
		Excludes:    cfg.Source.Excludes,
		Extension:   cfg.Source.Extension,
		Keywords:    cfg.Noise.DeclarationKeywords,
		Annotations: cfg.Noise.Annotations,
		Modifiers:   cfg.Segment.Modifiers,
	}

	data, _ := json.Marshal(relevant)
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:8])
}
