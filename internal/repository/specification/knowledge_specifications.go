package specification

import "gorm.io/gorm"

type ByDocumentName struct {
	DocumentName string
}

func (s ByDocumentName) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("document_name = ?", s.DocumentName)
}
