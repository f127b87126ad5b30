package services

import (
	"os"
	"time"

	"gorm.io/gorm"

	apperrors "herdshare/internal/errors"
	"herdshare/internal/logger"
	"herdshare/internal/models"
	"herdshare/internal/seed"
	"herdshare/internal/snapshot"
)

// snapshotService exports and imports the full ledger as one versioned
// document, and bootstraps an empty database from a snapshot file or the
// seed dataset.
type snapshotService struct {
	db *gorm.DB
}

// NewSnapshotService creates a new SnapshotServicer.
func NewSnapshotService(db *gorm.DB) SnapshotServicer {
	return &snapshotService{db: db}
}

// Export serializes the entire ledger into a snapshot document.
func (s *snapshotService) Export() (*snapshot.Document, error) {
	doc := &snapshot.Document{
		Version:    snapshot.CurrentVersion,
		ExportedAt: time.Now().UTC(),
	}

	if err := s.db.Order("created_at ASC").Find(&doc.Assets).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if err := s.db.Order("created_at ASC").Find(&doc.Investments).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if err := s.db.Order("created_at ASC").Find(&doc.Farmers).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if err := s.db.Order("created_at ASC").Find(&doc.Reviews).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if err := s.db.Order("created_at ASC").Find(&doc.Users).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if err := s.db.Order("created_at ASC").Find(&doc.Favorites).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	doc.FillDefaults()
	return doc, nil
}

// Import replaces the entire ledger with the document's contents.
// Last-writer-wins: there is no merging or conflict detection, matching
// the original whole-blob overwrite semantics.
func (s *snapshotService) Import(doc *snapshot.Document) error {
	if doc == nil {
		return apperrors.ErrSnapshotInvalid
	}
	if doc.Version > snapshot.CurrentVersion {
		return apperrors.WithMessage(apperrors.ErrSnapshotInvalid, "Snapshot version is newer than this server supports")
	}
	doc.FillDefaults()

	return s.db.Transaction(func(tx *gorm.DB) error {
		wipe := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped()
		for _, model := range []interface{}{
			&models.Favorite{}, &models.FarmerReview{}, &models.Investment{},
			&models.Asset{}, &models.User{}, &models.Farmer{},
		} {
			if err := wipe.Delete(model).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
		}

		// Insert parents before children so references resolve
		if len(doc.Farmers) > 0 {
			if err := tx.Create(&doc.Farmers).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
		}
		if len(doc.Users) > 0 {
			if err := tx.Create(&doc.Users).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
		}
		if len(doc.Assets) > 0 {
			if err := tx.Create(&doc.Assets).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
		}
		if len(doc.Investments) > 0 {
			if err := tx.Create(&doc.Investments).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
		}
		if len(doc.Reviews) > 0 {
			if err := tx.Create(&doc.Reviews).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
		}
		if len(doc.Favorites) > 0 {
			if err := tx.Create(&doc.Favorites).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
		}
		return nil
	})
}

// Bootstrap populates an empty database. A snapshot file at path wins;
// a missing or unparsable file falls back to the hardcoded seed dataset.
// A database that already holds assets is left untouched.
func (s *snapshotService) Bootstrap(path string) error {
	var assetCount int64
	if err := s.db.Model(&models.Asset{}).Count(&assetCount).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if assetCount > 0 {
		return nil
	}

	doc, err := snapshot.LoadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Get().Warnw("snapshot unusable, falling back to seed data",
				"path", path, "error", err.Error())
		}
		doc = seed.Document()
	} else {
		logger.Get().Infow("bootstrapping ledger from snapshot", "path", path)
	}

	return s.Import(doc)
}
