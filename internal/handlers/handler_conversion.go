package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/gateway_client/internal/core/domain"
	portssvc "github.com/SscSPs/gateway_client/internal/core/ports/services"
	"github.com/SscSPs/gateway_client/internal/middleware"
	"github.com/gin-gonic/gin"
)

// conversionHandler serves currency arithmetic over live gateway rates.
type conversionHandler struct {
	conversionService portssvc.ConversionSvc
	rateSource        portssvc.RateSource
}

type convertQuery struct {
	Sum  string `form:"sum" binding:"required"`
	From string `form:"from" binding:"required"`
	To   string `form:"to" binding:"required"`
}

type markupQuery struct {
	Sum      string `form:"sum" binding:"required"`
	Currency string `form:"currency" binding:"required"`
	Percent  int    `form:"percent" binding:"min=0,max=1000"`
}

type amountResponse struct {
	Amount string `json:"amount"`
}

func registerConversionRoutes(rg *gin.RouterGroup, conversionService portssvc.ConversionSvc, rateSource portssvc.RateSource) {
	h := &conversionHandler{conversionService: conversionService, rateSource: rateSource}

	rg.GET("/convert", h.convert)
	rg.GET("/markup", h.markup)
	rg.GET("/rates/:currency", h.rates)
}

// convert converts ?sum from ?from to ?to using the gateway's deposit rates.
func (h *conversionHandler) convert(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var q convertQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query: " + err.Error()})
		return
	}

	logger = logger.With(slog.String("from", q.From), slog.String("to", q.To))
	amount, err := h.conversionService.ConvertCurrency(c.Request.Context(), q.Sum, q.From, q.To, nil)
	if err != nil {
		respondError(c, logger, err, "convert amount")
		return
	}

	c.JSON(http.StatusOK, amountResponse{Amount: amount})
}

func (h *conversionHandler) markup(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var q markupQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query: " + err.Error()})
		return
	}

	amount, err := h.conversionService.AddMarkup(q.Sum, q.Currency, q.Percent)
	if err != nil {
		respondError(c, logger, err, "add markup")
		return
	}

	c.JSON(http.StatusOK, amountResponse{Amount: amount})
}

// rates proxies the gateway rate table; ?type=withdraw selects withdrawal rates.
func (h *conversionHandler) rates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	rateType := domain.RateTypeDeposit
	if c.Query("type") == string(domain.RateTypeWithdraw) {
		rateType = domain.RateTypeWithdraw
	}

	rates, err := h.rateSource.GetRates(c.Request.Context(), c.Param("currency"), rateType)
	if err != nil {
		respondError(c, logger, err, "fetch rates")
		return
	}

	if rates == nil {
		rates = []domain.Rate{}
	}
	c.JSON(http.StatusOK, rates)
}
