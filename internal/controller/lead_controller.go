package controller

import (
	"errors"
	"net/http"

	"jobmatch_backend/internal/service"
	"jobmatch_backend/internal/util"
	"jobmatch_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
)

type LeadController struct {
	Service *service.LeadService
}

func NewLeadController(svc *service.LeadService) *LeadController {
	return &LeadController{Service: svc}
}

// @Summary 診断回答と連絡先を送信
// @Tags 診断
// @Accept json
// @Produce json
// @Param body body service.SubmitLeadRequest true "回答・連絡先・同意"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} util.ErrorResponse
// @Failure 500 {object} util.ErrorResponse
// @Router /api/submit [post]
func (c *LeadController) Submit(ctx *gin.Context) {
	var req service.SubmitLeadRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "Invalid JSON payload")
		return
	}

	meta := service.RequestMeta{
		IPAddress: ctx.ClientIP(),
		UserAgent: ctx.Request.UserAgent(),
	}

	leadID, err := c.Service.SubmitLead(req, meta)
	if err != nil {
		if errors.Is(err, util.ErrLeadSaveFailed) {
			util.Fail(ctx, http.StatusInternalServerError, err.Error())
			return
		}
		util.BadRequest(ctx, err.Error())
		return
	}

	monitoring.LeadsSubmitted.Inc()
	util.OK(ctx, gin.H{"lead_id": leadID})
}
