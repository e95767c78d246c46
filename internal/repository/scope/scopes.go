package scope

import "gorm.io/gorm"

// OrderByCreatedAsc returns rows oldest first. Inventory reads rely on
// this so character sheets list equipment in acquisition order.
func OrderByCreatedAsc(db *gorm.DB) *gorm.DB {
	return db.Order("created_at ASC")
}

// OrderByCreatedDesc returns rows newest first.
func OrderByCreatedDesc(db *gorm.DB) *gorm.DB {
	return db.Order("created_at DESC")
}

// WithSoftDelete includes soft-deleted rows, e.g. when restoring an
// account that signs back in through an OAuth provider.
func WithSoftDelete(db *gorm.DB) *gorm.DB {
	return db.Unscoped()
}
