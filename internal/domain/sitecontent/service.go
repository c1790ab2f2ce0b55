package sitecontent

import (
	"bytes"
	"context"
	"encoding/json"

	"go.uber.org/zap"

	applogger "academy/internal/pkg/logger"
	"academy/internal/pkg/validator"
)

type Service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger *zap.Logger) *Service {
	return &Service{repo: repo, logger: applogger.OrNop(logger)}
}

// Content returns the published texts, falling back to Defaults.
func (s *Service) Content(ctx context.Context) (*Content, error) {
	doc, err := s.Document(ctx)
	if err != nil {
		return nil, err
	}
	return &doc.Content, nil
}

// Document returns the stored document with its edit metadata. Before the
// first save it carries Defaults and no id.
func (s *Service) Document(ctx context.Context) (*Document, error) {
	doc, err := s.repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return &Document{Name: documentKey, Content: Defaults()}, nil
	}
	if doc.Content.Features == nil {
		doc.Content.Features = []Feature{}
	}
	return doc, nil
}

// Replace stores content as the whole page.
func (s *Service) Replace(ctx context.Context, editorID string, content Content) (*Document, error) {
	if content.Features == nil {
		content.Features = []Feature{}
	}
	if details := validator.Validate(content); details != nil {
		return nil, ErrInvalidContent.WithDetails(details)
	}
	doc, err := s.repo.Save(ctx, content, editorID)
	if err != nil {
		return nil, err
	}
	s.logger.Info("site content replaced", zap.String("by", editorID))
	return doc, nil
}

// UpdateSection merges raw into one section. Fields absent from raw keep
// their current value; features are replaced as a whole list.
func (s *Service) UpdateSection(ctx context.Context, editorID string, section Section, raw json.RawMessage) (*Document, error) {
	current, err := s.Document(ctx)
	if err != nil {
		return nil, err
	}
	content := current.Content
	target, ok := content.target(section)
	if !ok {
		return nil, ErrUnknownSection
	}
	if section == SectionFeatures {
		// decoding into the old slice would merge stale entries
		content.Features = nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(target); err != nil {
		return nil, ErrInvalidContent.WithDetails(map[string]string{string(section): err.Error()})
	}
	if content.Features == nil {
		content.Features = []Feature{}
	}
	if details := validator.Validate(content); details != nil {
		return nil, ErrInvalidContent.WithDetails(details)
	}

	doc, err := s.repo.Save(ctx, content, editorID)
	if err != nil {
		return nil, err
	}
	s.logger.Info("site content section updated", zap.String("section", string(section)), zap.String("by", editorID))
	return doc, nil
}
