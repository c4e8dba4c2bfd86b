package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/SscSPs/gateway_client/internal/core/domain"
	portssvc "github.com/SscSPs/gateway_client/internal/core/ports/services"
	"github.com/SscSPs/gateway_client/internal/middleware"
	"github.com/gin-gonic/gin"
)

// gatewayHandler proxies bills, withdrawals and the read-only gateway resources.
// Gateway payloads are passed through untouched.
type gatewayHandler struct {
	gatewayService portssvc.GatewaySvcFacade
}

type createBillRequest struct {
	WalletID    int    `json:"wallet_id" binding:"required,gt=0"`
	Amount      string `json:"amount" binding:"required"`
	Currency    string `json:"currency" binding:"required"`
	Lifetime    int    `json:"lifetime" binding:"min=0"`
	TrackingID  string `json:"tracking_id"`
	CallbackURL string `json:"callback_url" binding:"omitempty,url"`
	SuccessURL  string `json:"success_url" binding:"omitempty,url"`
	ErrorURL    string `json:"error_url" binding:"omitempty,url"`
	Address     string `json:"address"`
}

type createWithdrawalRequest struct {
	VirtualWalletID int    `json:"virtual_wallet_id" binding:"required,gt=0"`
	Amount          string `json:"amount" binding:"required"`
	Currency        string `json:"currency" binding:"required"`
	Address         string `json:"address" binding:"required"`
	UniqueID        int64  `json:"unique_id" binding:"required,gt=0"`
	TrackingID      string `json:"tracking_id"`
	CallbackURL     string `json:"callback_url" binding:"omitempty,url"`
	Message         string `json:"message"`
	WithFee         bool   `json:"with_fee"`
}

func registerGatewayRoutes(rg *gin.RouterGroup, gatewayService portssvc.GatewaySvcFacade) {
	h := &gatewayHandler{gatewayService: gatewayService}

	bills := rg.Group("/bills")
	{
		bills.POST("", h.createBill)
		bills.GET("", h.listBills)
		bills.GET("/:id", h.getBill)
	}

	withdrawals := rg.Group("/withdrawals")
	{
		withdrawals.POST("", h.createWithdrawal)
		withdrawals.GET("", h.listWithdrawals)
		withdrawals.GET("/:id", h.getWithdrawal)
	}

	rg.GET("/transactions", h.listTransactions)
	rg.GET("/transactions/:id", h.getTransaction)
	rg.GET("/virtual-wallets", h.listVirtualWallets)
	rg.GET("/virtual-wallets/:id", h.getVirtualWallet)
	rg.GET("/transfers", h.listTransfers)
	rg.GET("/transfers/:id", h.getTransfer)
}

func (h *gatewayHandler) createBill(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req createBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind create bill request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	bill, err := h.gatewayService.CreateBill(c.Request.Context(), domain.BillRequest{
		WalletID:    req.WalletID,
		Amount:      req.Amount,
		Currency:    req.Currency,
		Lifetime:    req.Lifetime,
		TrackingID:  req.TrackingID,
		CallbackURL: req.CallbackURL,
		SuccessURL:  req.SuccessURL,
		ErrorURL:    req.ErrorURL,
		Address:     req.Address,
	})
	if err != nil {
		respondError(c, logger, err, "create bill")
		return
	}

	logger.Info("Bill created", slog.Int("wallet", req.WalletID), slog.String("currency", req.Currency))
	respondRaw(c, http.StatusCreated, bill)
}

func (h *gatewayHandler) createWithdrawal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req createWithdrawalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind create withdrawal request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	withdrawal, err := h.gatewayService.CreateWithdrawal(c.Request.Context(), domain.WithdrawalRequest{
		VirtualWalletID: req.VirtualWalletID,
		Amount:          req.Amount,
		Currency:        req.Currency,
		Address:         req.Address,
		UniqueID:        req.UniqueID,
		TrackingID:      req.TrackingID,
		CallbackURL:     req.CallbackURL,
		Message:         req.Message,
		WithFee:         req.WithFee,
	})
	if err != nil {
		respondError(c, logger, err, "create withdrawal")
		return
	}

	logger.Info("Withdrawal created", slog.Int("virtual_wallet", req.VirtualWalletID), slog.Int64("unique_id", req.UniqueID))
	respondRaw(c, http.StatusCreated, withdrawal)
}

func (h *gatewayHandler) listBills(c *gin.Context) {
	h.list(c, "list bills", h.gatewayService.GetBills)
}

func (h *gatewayHandler) getBill(c *gin.Context) {
	h.get(c, "get bill", h.gatewayService.GetBill)
}

func (h *gatewayHandler) listWithdrawals(c *gin.Context) {
	h.list(c, "list withdrawals", h.gatewayService.GetWithdrawals)
}

func (h *gatewayHandler) getWithdrawal(c *gin.Context) {
	h.get(c, "get withdrawal", h.gatewayService.GetWithdrawal)
}

func (h *gatewayHandler) listTransactions(c *gin.Context) {
	h.list(c, "list transactions", h.gatewayService.GetTransactions)
}

func (h *gatewayHandler) getTransaction(c *gin.Context) {
	h.get(c, "get transaction", h.gatewayService.GetTransaction)
}

func (h *gatewayHandler) listVirtualWallets(c *gin.Context) {
	h.list(c, "list virtual wallets", h.gatewayService.GetVirtualWallets)
}

func (h *gatewayHandler) getVirtualWallet(c *gin.Context) {
	h.get(c, "get virtual wallet", h.gatewayService.GetVirtualWallet)
}

func (h *gatewayHandler) listTransfers(c *gin.Context) {
	h.list(c, "list transfers", h.gatewayService.GetTransfers)
}

func (h *gatewayHandler) getTransfer(c *gin.Context) {
	h.get(c, "get transfer", h.gatewayService.GetTransfer)
}

// list forwards the query string as the gateway filter and returns the whole page.
func (h *gatewayHandler) list(c *gin.Context, action string, fetch func(context.Context, url.Values) (json.RawMessage, error)) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	page, err := fetch(c.Request.Context(), c.Request.URL.Query())
	if err != nil {
		respondError(c, logger, err, action)
		return
	}
	respondRaw(c, http.StatusOK, page)
}

func (h *gatewayHandler) get(c *gin.Context, action string, fetch func(context.Context, int) (json.RawMessage, error)) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		logger.Warn("Invalid resource id", slog.String("action", action), slog.String("id", c.Param("id")))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return
	}

	item, err := fetch(c.Request.Context(), id)
	if err != nil {
		respondError(c, logger, err, action)
		return
	}
	respondRaw(c, http.StatusOK, item)
}

func respondRaw(c *gin.Context, status int, payload json.RawMessage) {
	if len(payload) == 0 {
		payload = json.RawMessage("null")
	}
	c.Data(status, "application/json; charset=utf-8", payload)
}
