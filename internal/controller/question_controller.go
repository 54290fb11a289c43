package controller

import (
	"net/http"

	"jobmatch_backend/internal/service"
	"jobmatch_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuestionController struct {
	Catalog *service.CatalogService
}

func NewQuestionController(catalog *service.CatalogService) *QuestionController {
	return &QuestionController{Catalog: catalog}
}

// @Summary アクティブな診断質問の一覧を取得
// @Tags 診断
// @Produce json
// @Success 200 {object} map[string][]service.QuestionView
// @Failure 500 {object} util.ErrorResponse
// @Router /api/questions [get]
func (c *QuestionController) ListQuestions(ctx *gin.Context) {
	questions, err := c.Catalog.ListActiveQuestions()
	if err != nil {
		util.InternalError(ctx, "Database error", err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"questions": questions})
}
