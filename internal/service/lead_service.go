package service

import (
	"encoding/json"
	"strings"
	"time"

	"jobmatch_backend/internal/model"
	"jobmatch_backend/internal/repository"
	"jobmatch_backend/internal/util"
	"jobmatch_backend/pkg/logger"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// ConsentText is the disclosure shown at submission time. It is frozen into
// every lead row so later wording changes cannot alter what was agreed to.
const ConsentText = "提携する就活エージェントへ回答内容と連絡先を提供し、エージェントから連絡を受け取ることに同意します"

type LeadService struct {
	Repo     *repository.LeadRepository
	validate *validator.Validate
}

func NewLeadService(repo *repository.LeadRepository) *LeadService {
	return &LeadService{
		Repo:     repo,
		validate: validator.New(),
	}
}

type ContactRequest struct {
	Name   string `json:"name"`
	School string `json:"school"`
	Phone  string `json:"phone"`
	Email  string `json:"email"`
}

type SubmitLeadRequest struct {
	Answers json.RawMessage `json:"answers"`
	Contact ContactRequest  `json:"contact"`
	Consent bool            `json:"consent"`
}

// RequestMeta is best-effort requester metadata; empty fields persist as NULL.
type RequestMeta struct {
	IPAddress string
	UserAgent string
}

// SubmitLead validates the payload in a fixed order (first failure wins) and
// then persists the lead header plus its answer rows as one unit of work.
func (s *LeadService) SubmitLead(req SubmitLeadRequest, meta RequestMeta) (uint, error) {
	name := strings.TrimSpace(req.Contact.Name)
	school := strings.TrimSpace(req.Contact.School)
	phone := strings.TrimSpace(req.Contact.Phone)
	email := strings.TrimSpace(req.Contact.Email)

	if name == "" {
		return 0, util.ErrNameRequired
	}
	if school == "" {
		return 0, util.ErrSchoolRequired
	}
	if phone == "" && email == "" {
		return 0, util.ErrContactRequired
	}
	if email != "" {
		if err := s.validate.Var(email, "email"); err != nil {
			return 0, util.ErrEmailInvalid
		}
	}
	if !req.Consent {
		return 0, util.ErrConsentRequired
	}

	var answers model.AnswerSet
	if len(req.Answers) > 0 {
		parsed, err := model.ParseAnswerSet(req.Answers)
		if err != nil {
			return 0, model.ErrMalformedAnswers
		}
		answers = parsed
	}

	now := time.Now()
	lead := &model.Lead{
		Name:        name,
		School:      school,
		Phone:       nullable(phone),
		Email:       nullable(email),
		Consent:     true,
		ConsentText: ConsentText,
		ConsentedAt: now,
		IPAddress:   nullable(meta.IPAddress),
		UserAgent:   nullable(meta.UserAgent),
		CreatedAt:   now,
	}

	rows := make([]model.LeadAnswer, len(answers))
	for i, rec := range answers {
		rows[i] = model.LeadAnswer{
			QuestionID:  rec.QuestionID,
			AnswerValue: rec.Value.Storage(),
			CreatedAt:   now,
		}
	}

	if err := s.Repo.CreateWithAnswers(lead, rows); err != nil {
		logger.Log.Error("lead persistence failed",
			zap.Error(err),
			zap.String("school", school),
			zap.Int("answers", len(rows)))
		return 0, util.ErrLeadSaveFailed
	}

	logger.Log.Info("lead accepted",
		zap.Uint("leadId", lead.ID),
		zap.Int("answers", len(rows)))
	return lead.ID, nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
