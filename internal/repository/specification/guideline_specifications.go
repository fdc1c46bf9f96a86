package specification

import "gorm.io/gorm"

type ByOrganizationID struct {
	OrganizationID string
}

func (s ByOrganizationID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("organization_id = ?", s.OrganizationID)
}

type ByGuidelineID struct {
	GuidelineID string
}

func (s ByGuidelineID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("guideline_id = ?", s.GuidelineID)
}

// ActiveOnly keeps guidelines that have not been deactivated.
type ActiveOnly struct{}

func (s ActiveOnly) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_active = ?", true)
}
