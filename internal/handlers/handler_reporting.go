package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/officebooks/officeledger/internal/apperrors"
	"github.com/officebooks/officeledger/internal/core/domain"
	portssvc "github.com/officebooks/officeledger/internal/core/ports/services"
	"github.com/officebooks/officeledger/internal/dto"
	"github.com/officebooks/officeledger/internal/middleware"
)

// reportingHandler handles HTTP requests for financial reports.
type reportingHandler struct {
	reportService portssvc.ReportService
}

func newReportingHandler(rs portssvc.ReportService) *reportingHandler {
	return &reportingHandler{reportService: rs}
}

// registerReportingRoutes registers report routes.
func registerReportingRoutes(rg *gin.RouterGroup, reportService portssvc.ReportService) {
	h := newReportingHandler(reportService)

	reports := rg.Group("/reports")
	{
		reports.GET("", h.getReportBundle)
		reports.GET("/trial-balance", h.getTrialBalance)
		reports.GET("/income-statement", h.getIncomeStatement)
		reports.GET("/balance-sheet", h.getBalanceSheet)
	}
}

// generate parses the report query, runs the report service, and
// writes the error response itself on failure.
func (h *reportingHandler) generate(c *gin.Context) (*domain.ReportBundle, bool) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ReportRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		logger.Warn("Invalid report request", "error", err.Error())
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}

	var start, end time.Time
	if req.StartDate != "" {
		start, _ = time.Parse("2006-01-02", req.StartDate)
	}
	if req.EndDate != "" {
		end, _ = time.Parse("2006-01-02", req.EndDate)
	}

	bundle, err := h.reportService.GenerateReport(c.Request.Context(), domain.PeriodType(req.Period), start, end)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrIntegrity):
			// Corrupt journal data must never yield a plausible report.
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to generate report", "error", err.Error())
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate report"})
		}
		return nil, false
	}
	return bundle, true
}

// getReportBundle godoc
// @Summary Generate a consolidated period report
// @Description Builds trial balance, income statement, and balance sheet for the requested period in one bundle
// @Tags reports
// @Produce json
// @Param period query string true "Period specifier" Enums(current-week, current-month, current-year, weekly, monthly, yearly, custom)
// @Param startDate query string false "Custom period start (YYYY-MM-DD)"
// @Param endDate query string false "Custom period end (YYYY-MM-DD)"
// @Success 200 {object} dto.ReportBundleResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 422 {object} map[string]string "Journal data integrity violation"
// @Router /reports [get]
func (h *reportingHandler) getReportBundle(c *gin.Context) {
	bundle, ok := h.generate(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dto.ToReportBundleResponse(bundle))
}

// getTrialBalance godoc
// @Summary Generate a trial balance report
// @Tags reports
// @Produce json
// @Param period query string true "Period specifier" Enums(current-week, current-month, current-year, weekly, monthly, yearly, custom)
// @Param startDate query string false "Custom period start (YYYY-MM-DD)"
// @Param endDate query string false "Custom period end (YYYY-MM-DD)"
// @Success 200 {object} dto.TrialBalanceResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /reports/trial-balance [get]
func (h *reportingHandler) getTrialBalance(c *gin.Context) {
	bundle, ok := h.generate(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dto.ToTrialBalanceResponse(bundle.TrialBalance, bundle.Period))
}

// getIncomeStatement godoc
// @Summary Generate an income statement
// @Tags reports
// @Produce json
// @Param period query string true "Period specifier" Enums(current-week, current-month, current-year, weekly, monthly, yearly, custom)
// @Param startDate query string false "Custom period start (YYYY-MM-DD)"
// @Param endDate query string false "Custom period end (YYYY-MM-DD)"
// @Success 200 {object} dto.IncomeStatementResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /reports/income-statement [get]
func (h *reportingHandler) getIncomeStatement(c *gin.Context) {
	bundle, ok := h.generate(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dto.ToIncomeStatementResponse(bundle.IncomeStatement, bundle.Period))
}

// getBalanceSheet godoc
// @Summary Generate a balance sheet
// @Tags reports
// @Produce json
// @Param period query string true "Period specifier" Enums(current-week, current-month, current-year, weekly, monthly, yearly, custom)
// @Param startDate query string false "Custom period start (YYYY-MM-DD)"
// @Param endDate query string false "Custom period end (YYYY-MM-DD)"
// @Success 200 {object} dto.BalanceSheetResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /reports/balance-sheet [get]
func (h *reportingHandler) getBalanceSheet(c *gin.Context) {
	bundle, ok := h.generate(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dto.ToBalanceSheetResponse(bundle.BalanceSheet, bundle.Period))
}
