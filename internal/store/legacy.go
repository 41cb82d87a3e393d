package store

import (
	"encoding/json"
	"os"

	"estatehub/internal/domain/model"
	apperrors "estatehub/internal/shared/errors"

	"go.uber.org/zap"
)

// legacyBackupSuffix is appended to the combined file once its contents have
// been redistributed.
const legacyBackupSuffix = ".backup"

// ImportLegacy reads a single combined snapshot keyed by collection name,
// splits it into the per-collection layout, and renames the source with a
// .backup suffix. Absent source means nothing to import; the call is a no-op
// and safe to repeat on every startup.
func (s *Store) ImportLegacy(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return apperrors.NewDurabilityError("legacy").WithCause(err)
	}

	var combined map[string]json.RawMessage
	if err := json.Unmarshal(data, &combined); err != nil {
		return apperrors.NewCorruptCollectionError("legacy").WithCause(err)
	}

	for rawName, rawRecords := range combined {
		name := model.Collection(rawName)
		if !name.IsValid() {
			s.logger.Warn("legacy import: skipping unknown collection",
				zap.String("collection", rawName))
			continue
		}

		records, err := Decode[map[string]interface{}](rawRecords)
		if err != nil {
			s.logger.Error("legacy import: skipping undecodable collection",
				zap.String("collection", rawName),
				zap.Error(err))
			continue
		}
		if err := Replace(s, name, records); err != nil {
			return err
		}
		s.logger.Info("legacy import: collection migrated",
			zap.String("collection", rawName),
			zap.Int("records", len(records)))
	}

	if err := os.Rename(path, path+legacyBackupSuffix); err != nil {
		return apperrors.NewDurabilityError("legacy").WithCause(err)
	}
	return nil
}
