package controller

import (
	"encoding/json"
	"net/http"
	"testing"

	"jobmatch_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListQuestionsOrderedAndFiltered(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.Create(&model.Question{
		Text:         "チームで働くのが好きだ",
		QuestionType: model.QuestionTypeBinary,
		Required:     true,
		Active:       true,
		SortOrder:    2,
	}).Error)
	require.NoError(t, db.Create(&model.Question{
		Text:         "希望する業界を選んでください",
		QuestionType: model.QuestionTypeSingleChoice,
		Required:     true,
		Active:       true,
		SortOrder:    1,
		Options: []model.QuestionOption{
			{Label: "IT", SortOrder: 1},
			{Label: "メーカー", SortOrder: 2},
		},
	}).Error)
	require.NoError(t, db.Create(&model.Question{
		Text:         "旧設問",
		QuestionType: model.QuestionTypeBinary,
		Active:       false,
	}).Error)

	router := newTestRouter(t, db, nil, "local")
	w := doGet(router, "/api/questions")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Questions []struct {
			ID       uint     `json:"id"`
			Text     string   `json:"text"`
			Type     string   `json:"type"`
			Required bool     `json:"required"`
			Options  []string `json:"options"`
		} `json:"questions"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	require.Len(t, resp.Questions, 2)
	assert.Equal(t, "希望する業界を選んでください", resp.Questions[0].Text)
	assert.Equal(t, "single_choice", resp.Questions[0].Type)
	assert.Equal(t, []string{"IT", "メーカー"}, resp.Questions[0].Options)
	assert.Equal(t, "チームで働くのが好きだ", resp.Questions[1].Text)
	assert.Equal(t, "binary", resp.Questions[1].Type)

	// Binary questions carry no options key at all.
	var raw struct {
		Questions []map[string]json.RawMessage `json:"questions"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
	_, present := raw.Questions[1]["options"]
	assert.False(t, present)
}

func TestListQuestionsEmptyCatalog(t *testing.T) {
	db := newTestDB(t)
	router := newTestRouter(t, db, nil, "local")

	w := doGet(router, "/api/questions")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"questions":[]}`, w.Body.String())
}
