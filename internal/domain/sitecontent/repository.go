package sitecontent

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

type Repository interface {
	// Get returns the stored document, or nil when none was saved yet.
	Get(ctx context.Context) (*Document, error)
	Save(ctx context.Context, content Content, updatedBy string) (*Document, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Get(ctx context.Context) (*Document, error) {
	var doc Document
	err := r.db.WithContext(ctx).Where("name = ?", documentKey).First(&doc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func (r *repository) Save(ctx context.Context, content Content, updatedBy string) (*Document, error) {
	doc, err := r.Get(ctx)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		doc = &Document{Name: documentKey, Content: content, UpdatedBy: updatedBy}
		err = r.db.WithContext(ctx).Create(doc).Error
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return doc, err
		}
		// a concurrent first save won; overwrite it
		if doc, err = r.Get(ctx); err != nil {
			return nil, err
		}
	}
	doc.Content = content
	doc.UpdatedBy = updatedBy
	if err := r.db.WithContext(ctx).Save(doc).Error; err != nil {
		return nil, err
	}
	return doc, nil
}
