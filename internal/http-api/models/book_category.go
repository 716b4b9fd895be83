package models

// explicit join model between books and categories
type BookCategory struct {
	BookID     string `gorm:"type:uuid;primaryKey" json:"book_id"`
	CategoryID string `gorm:"type:uuid;primaryKey" json:"category_id"`

	// Associations
	Category *Category `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE;" json:"category,omitempty"`
}

func (BookCategory) TableName() string {
	return "book_categories"
}
