package content

import (
	"context"
	"errors"
	"fmt"

	"post-sync/feature/content/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Taxonomies used by the sync engine.
const (
	TaxonomyCategory = "category"
	TaxonomyTag      = "post_tag"
)

// Record is the upsert payload for one content item. ID zero means create;
// non-zero targets an existing post.
type Record struct {
	ID       uint
	Title    string
	Content  string
	Status   string
	Type     string
	AuthorID uint
	TermIDs  []uint
	Meta     map[string]string
}

// Store is the content persistence boundary the sync engine talks to.
type Store interface {
	// FindByTitle returns the id of a post with the exact title and type,
	// or zero when none exists.
	FindByTitle(ctx context.Context, title, postType string) (uint, error)
	// Upsert creates or updates a post, replacing its terms and meta.
	Upsert(ctx context.Context, rec *Record) (uint, error)
	// EnsureTerms returns ids for the given names in a taxonomy, creating
	// missing terms.
	EnsureTerms(ctx context.Context, names []string, taxonomy string) ([]uint, error)
}

// GormStore is the GORM-backed content store.
type GormStore struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewStore creates a content store.
func NewStore(db *gorm.DB, logger *zap.Logger) *GormStore {
	return &GormStore{db: db, logger: logger}
}

// DB exposes the underlying connection for callers that need raw queries
// (tests, integrity tooling).
func (s *GormStore) DB() *gorm.DB { return s.db }

// Migrate creates the content tables.
func (s *GormStore) Migrate() error {
	if err := s.db.AutoMigrate(&models.Post{}, &models.Term{}, &models.PostMeta{}); err != nil {
		return fmt.Errorf("migrate content tables: %w", err)
	}
	return nil
}

// FindByTitle looks up a post by exact title and type.
func (s *GormStore) FindByTitle(ctx context.Context, title, postType string) (uint, error) {
	var post models.Post
	err := s.db.WithContext(ctx).
		Select("id").
		Where("title = ? AND type = ?", title, postType).
		First(&post).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("find post by title: %w", err)
	}
	return post.ID, nil
}

// Upsert creates or updates the post and replaces its term and meta
// associations inside one transaction.
func (s *GormStore) Upsert(ctx context.Context, rec *Record) (uint, error) {
	if rec.Title == "" {
		return 0, fmt.Errorf("upsert: empty title")
	}

	post := models.Post{
		ID:       rec.ID,
		Title:    rec.Title,
		Content:  rec.Content,
		Status:   rec.Status,
		Type:     rec.Type,
		AuthorID: rec.AuthorID,
	}
	if post.Status == "" {
		post.Status = "publish"
	}
	if post.Type == "" {
		post.Type = "post"
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if post.ID > 0 {
			result := tx.Model(&models.Post{}).Where("id = ?", post.ID).Updates(map[string]any{
				"title":     post.Title,
				"content":   post.Content,
				"status":    post.Status,
				"type":      post.Type,
				"author_id": post.AuthorID,
			})
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				// Stale id: the targeted post vanished. Create instead.
				post.ID = 0
			}
		}
		if post.ID == 0 {
			if err := tx.Create(&post).Error; err != nil {
				return err
			}
		}

		// Replace term associations.
		if err := tx.Model(&post).Association("Terms").Clear(); err != nil {
			return err
		}
		if len(rec.TermIDs) > 0 {
			var terms []models.Term
			if err := tx.Find(&terms, rec.TermIDs).Error; err != nil {
				return err
			}
			if err := tx.Model(&post).Association("Terms").Append(&terms); err != nil {
				return err
			}
		}

		// Replace meta.
		if err := tx.Where("post_id = ?", post.ID).Delete(&models.PostMeta{}).Error; err != nil {
			return err
		}
		for key, value := range rec.Meta {
			meta := models.PostMeta{PostID: post.ID, MetaKey: key, MetaValue: value}
			if err := tx.Create(&meta).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("upsert post %q: %w", rec.Title, err)
	}

	return post.ID, nil
}

// EnsureTerms resolves term names to ids, creating terms that do not exist
// yet. A name that fails to create is skipped, matching the tolerant
// behavior expected of taxonomy assignment.
func (s *GormStore) EnsureTerms(ctx context.Context, names []string, taxonomy string) ([]uint, error) {
	ids := make([]uint, 0, len(names))
	for _, name := range names {
		if name == "" {
			continue
		}

		var term models.Term
		err := s.db.WithContext(ctx).
			Where("name = ? AND taxonomy = ?", name, taxonomy).
			First(&term).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			term = models.Term{Name: name, Taxonomy: taxonomy}
			if err := s.db.WithContext(ctx).Create(&term).Error; err != nil {
				s.logger.Warn("Failed to create term",
					zap.String("name", name),
					zap.String("taxonomy", taxonomy),
					zap.Error(err),
				)
				continue
			}
		} else if err != nil {
			return nil, fmt.Errorf("lookup term %q: %w", name, err)
		}

		ids = append(ids, term.ID)
	}
	return ids, nil
}
