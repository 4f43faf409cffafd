package db

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/termfx/rgx/models"
)

// ErrNotFound reports a catalog lookup that matched no pattern.
var ErrNotFound = errors.New("pattern not found")

// SavePattern upserts a pattern by name, recomputing the rendered-text
// digest.
func SavePattern(db *gorm.DB, name string, tree []byte, rendered, flags, notes string) (*models.Pattern, error) {
	sum := sha256.Sum256([]byte(rendered))
	rec := &models.Pattern{
		Name:     name,
		Tree:     tree,
		Rendered: rendered,
		Flags:    flags,
		Digest:   hex.EncodeToString(sum[:]),
		Notes:    notes,
	}
	err := db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"tree", "rendered", "flags", "digest", "notes", "updated_at",
		}),
	}).Create(rec).Error
	if err != nil {
		return nil, fmt.Errorf("failed to save pattern %q: %w", name, err)
	}
	return rec, nil
}

// GetPattern fetches one pattern by name.
func GetPattern(db *gorm.DB, name string) (*models.Pattern, error) {
	var rec models.Pattern
	err := db.Where("name = ?", name).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load pattern %q: %w", name, err)
	}
	return &rec, nil
}

// ListPatterns returns all cataloged patterns ordered by name.
func ListPatterns(db *gorm.DB) ([]models.Pattern, error) {
	var recs []models.Pattern
	if err := db.Order("name").Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("failed to list patterns: %w", err)
	}
	return recs, nil
}
