// Package models defines the catalog records for stored patterns.
package models

import (
	"time"

	"gorm.io/datatypes"
)

// Pattern is one cataloged expression: the serialized node tree plus the
// text it rendered to at save time. The catalog stores patterns, it never
// executes them.
type Pattern struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"type:varchar(255);uniqueIndex;not null"`

	// Tree is the JSON node document the pattern was built from.
	Tree datatypes.JSON `gorm:"type:jsonb;not null"`

	// Rendered is the regex text produced from Tree with Flags applied.
	Rendered string `gorm:"type:text;not null"`
	Flags    string `gorm:"type:varchar(16)"`

	// Digest is the SHA256 of Rendered, for cheap drift detection.
	Digest string `gorm:"type:varchar(64)"`

	Notes string `gorm:"type:text"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// TableName customization for a cleaner name
func (Pattern) TableName() string { return "patterns" }
