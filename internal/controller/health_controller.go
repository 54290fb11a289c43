package controller

import (
	"net/http"

	"jobmatch_backend/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type HealthController struct {
	DB *gorm.DB
}

func NewHealthController(db *gorm.DB) *HealthController {
	return &HealthController{DB: db}
}

// @Summary ヘルスチェック
// @Tags システム
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/health [get]
func (c *HealthController) HealthCheck(ctx *gin.Context) {
	sqlDB, err := c.DB.DB()
	if err != nil {
		util.Fail(ctx, http.StatusInternalServerError, "Internal server error")
		return
	}

	if err := sqlDB.Ping(); err != nil {
		util.Fail(ctx, http.StatusServiceUnavailable, "Database unavailable")
		return
	}

	util.OK(ctx, gin.H{
		"status": "ok",
		"components": gin.H{
			"database": "up",
		},
	})
}
