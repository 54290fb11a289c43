package controller

import (
	"errors"
	"net/http"

	"jobmatch_backend/internal/service"
	"jobmatch_backend/internal/util"
	"jobmatch_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
)

type ContactController struct {
	Service *service.ContactService
}

func NewContactController(svc *service.ContactService) *ContactController {
	return &ContactController{Service: svc}
}

type contactRequest struct {
	Subject string `json:"subject"`
	Content string `json:"content"`
	Email   string `json:"email"`
}

// @Summary お問い合わせを送信
// @Tags お問い合わせ
// @Accept json
// @Produce json
// @Param body body contactRequest true "件名・内容・返信先（任意）"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} util.ErrorResponse
// @Failure 500 {object} util.ErrorResponse
// @Router /api/contact [post]
func (c *ContactController) Submit(ctx *gin.Context) {
	var req contactRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "Invalid JSON payload")
		return
	}

	result, err := c.Service.Relay(req.Subject, req.Content, req.Email)
	if err != nil {
		if errors.Is(err, util.ErrMailSendFailed) {
			monitoring.ContactRelayed.WithLabelValues("failed").Inc()
			util.Fail(ctx, http.StatusInternalServerError, err.Error())
			return
		}
		util.BadRequest(ctx, err.Error())
		return
	}

	if result.Mock {
		monitoring.ContactRelayed.WithLabelValues("mock").Inc()
		util.OK(ctx, gin.H{"mock": true})
		return
	}

	monitoring.ContactRelayed.WithLabelValues("sent").Inc()
	util.OK(ctx, nil)
}
