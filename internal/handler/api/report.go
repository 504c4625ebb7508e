package api

import (
	"net/http"

	resdto "cleansched/internal/handler/dto/response"
	"cleansched/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	reportQueries queries.ReportQueries
}

func NewReportHandler(reportQueries queries.ReportQueries) *ReportHandler {
	return &ReportHandler{
		reportQueries: reportQueries,
	}
}

// @Summary Total earnings
// @Description Sum of total_amount over bookings with completed payment
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.EarningsReportResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /reports/earnings [get]
func (h *ReportHandler) TotalEarnings(c *gin.Context) {
	report, err := h.reportQueries.TotalEarnings(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromEarningsReport(report))
}

// @Summary Top users
// @Description Users ranked by completed booking count
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.TopUserResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /reports/top-users [get]
func (h *ReportHandler) TopUsers(c *gin.Context) {
	users, err := h.reportQueries.TopUsers(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromTopUsers(users))
}
