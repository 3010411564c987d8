package models

import "time"

// Post is one synced content item.
type Post struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Title     string `gorm:"size:500;index" json:"title"`
	Content   string `gorm:"type:longtext" json:"content"`
	Status    string `gorm:"size:20;default:publish" json:"status"`
	Type      string `gorm:"size:20;index;default:post" json:"type"`
	AuthorID  uint   `json:"author_id"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Terms []Term     `gorm:"many2many:post_terms" json:"terms,omitempty"`
	Meta  []PostMeta `gorm:"constraint:OnDelete:CASCADE" json:"meta,omitempty"`
}

// Term is a taxonomy entry (category or tag). Name is unique per taxonomy.
type Term struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"size:200;uniqueIndex:idx_term_name_taxonomy" json:"name"`
	Taxonomy string `gorm:"size:32;uniqueIndex:idx_term_name_taxonomy" json:"taxonomy"`
}

// PostMeta is one custom field attached to a post.
type PostMeta struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	PostID    uint   `gorm:"index" json:"post_id"`
	MetaKey   string `gorm:"size:255" json:"meta_key"`
	MetaValue string `gorm:"type:longtext" json:"meta_value"`
}
