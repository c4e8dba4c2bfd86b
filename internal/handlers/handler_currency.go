package handlers

import (
	"net/http"

	"github.com/SscSPs/gateway_client/internal/core/domain"
	portssvc "github.com/SscSPs/gateway_client/internal/core/ports/services"
	"github.com/SscSPs/gateway_client/internal/middleware"
	"github.com/gin-gonic/gin"
)

// currencyHandler exposes the currency directory.
type currencyHandler struct {
	currencyService portssvc.CurrencySvcFacade
}

type currencyResponse struct {
	ISO       int      `json:"iso"`
	Alpha     string   `json:"alpha"`
	Name      string   `json:"name"`
	Precision int      `json:"precision"`
	Nodes     []string `json:"nodes,omitempty"`
}

func toCurrencyResponse(c domain.Currency) currencyResponse {
	return currencyResponse{ISO: c.ISO, Alpha: c.Alpha, Name: c.Name, Precision: c.Precision, Nodes: c.Nodes}
}

func registerCurrencyRoutes(rg *gin.RouterGroup, currencyService portssvc.CurrencySvcFacade) {
	h := &currencyHandler{currencyService: currencyService}

	currencies := rg.Group("/currencies")
	{
		currencies.GET("", h.listCurrencies)
		currencies.GET("/:code", h.getCurrency)
	}
}

func (h *currencyHandler) listCurrencies(c *gin.Context) {
	list := h.currencyService.List()
	resp := make([]currencyResponse, 0, len(list))
	for _, cur := range list {
		resp = append(resp, toCurrencyResponse(cur))
	}
	c.JSON(http.StatusOK, resp)
}

// getCurrency accepts an alpha code or a node alias such as usdt-eth.
func (h *currencyHandler) getCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	code := c.Param("code")

	iso, err := h.currencyService.ISO(code)
	if err != nil {
		respondError(c, logger, err, "find currency")
		return
	}

	cur, err := h.currencyService.Currency(iso)
	if err != nil {
		respondError(c, logger, err, "find currency")
		return
	}
	c.JSON(http.StatusOK, toCurrencyResponse(cur))
}
