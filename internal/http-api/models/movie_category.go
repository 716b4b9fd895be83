package models

// explicit join model between movies and categories
type MovieCategory struct {
	MovieID    string `gorm:"type:uuid;primaryKey" json:"movie_id"`
	CategoryID string `gorm:"type:uuid;primaryKey" json:"category_id"`

	// Associations
	Category *Category `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE;" json:"category,omitempty"`
}

func (MovieCategory) TableName() string {
	return "movie_categories"
}
