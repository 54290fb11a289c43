package flow

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"jobmatch_backend/internal/model"
)

// Client talks to the survey API: it loads the question catalog and implements
// Submitter against the submit endpoint.
type Client struct {
	base string
	http *http.Client
}

func NewClient(base string) *Client {
	return &Client{
		base: base,
		http: &http.Client{Timeout: 30 * time.Second},
	}
}

// NewClientWithHTTP is for tests and callers that manage their own transport.
func NewClientWithHTTP(base string, hc *http.Client) *Client {
	return &Client{base: base, http: hc}
}

type questionPayload struct {
	ID       uint     `json:"id"`
	Text     string   `json:"text"`
	Type     string   `json:"type"`
	Required bool     `json:"required"`
	Options  []string `json:"options"`
}

// FetchQuestions loads the active catalog once per session start.
func (c *Client) FetchQuestions(ctx context.Context) ([]Question, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+"/questions", nil)
	if err != nil {
		return nil, err
	}
	res, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("questions endpoint returned status %d", res.StatusCode)
	}

	var body struct {
		Questions []questionPayload `json:"questions"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, err
	}

	questions := make([]Question, len(body.Questions))
	for i, q := range body.Questions {
		questions[i] = Question{
			ID:       strconv.FormatUint(uint64(q.ID), 10),
			Text:     q.Text,
			Type:     q.Type,
			Required: q.Required,
			Options:  q.Options,
		}
	}
	return questions, nil
}

type submitPayload struct {
	Answers model.AnswerSet `json:"answers"`
	Contact contactPayload  `json:"contact"`
	Consent bool            `json:"consent"`
}

type contactPayload struct {
	Name   string `json:"name"`
	School string `json:"school"`
	Phone  string `json:"phone"`
	Email  string `json:"email"`
}

type submitResponse struct {
	OK     bool   `json:"ok"`
	LeadID uint   `json:"lead_id"`
	Error  string `json:"error"`
}

// SubmitLead posts the completed session. Answer order survives the wire
// because AnswerSet marshals as an object in insertion order.
func (c *Client) SubmitLead(ctx context.Context, answers model.AnswerSet, contact Contact, consent bool) (uint, error) {
	payload := submitPayload{
		Answers: answers,
		Contact: contactPayload{
			Name:   contact.Name,
			School: contact.School,
			Phone:  contact.Phone,
			Email:  contact.Email,
		},
		Consent: consent,
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return 0, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+"/submit", bytes.NewReader(raw))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return 0, err
	}
	defer res.Body.Close()

	var body submitResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return 0, fmt.Errorf("submit endpoint returned status %d", res.StatusCode)
	}
	if !body.OK {
		if body.Error != "" {
			return 0, fmt.Errorf("submit rejected: %s", body.Error)
		}
		return 0, fmt.Errorf("submit endpoint returned status %d", res.StatusCode)
	}
	return body.LeadID, nil
}
