package service

import (
	"jobmatch_backend/internal/repository"
)

type CatalogService struct {
	Repo *repository.QuestionRepository
}

func NewCatalogService(repo *repository.QuestionRepository) *CatalogService {
	return &CatalogService{Repo: repo}
}

// QuestionView is the client-facing shape of a catalog entry. Options is nil
// when the question has no option rows, so the field is absent from the JSON
// rather than an empty list.
type QuestionView struct {
	ID       uint     `json:"id"`
	Text     string   `json:"text"`
	Type     string   `json:"type"`
	Required bool     `json:"required"`
	Options  []string `json:"options,omitempty"`
}

// ListActiveQuestions returns the active catalog in presentation order. There
// is no caching; a storage failure surfaces to the caller as-is.
func (s *CatalogService) ListActiveQuestions() ([]QuestionView, error) {
	qs, err := s.Repo.ListActive()
	if err != nil {
		return nil, err
	}

	views := make([]QuestionView, len(qs))
	for i, q := range qs {
		view := QuestionView{
			ID:       q.ID,
			Text:     q.Text,
			Type:     q.QuestionType,
			Required: q.Required,
		}
		if len(q.Options) > 0 {
			view.Options = make([]string, len(q.Options))
			for j, opt := range q.Options {
				view.Options[j] = opt.Label
			}
		}
		views[i] = view
	}
	return views, nil
}
