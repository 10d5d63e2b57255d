package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/solwatch/solana-wallet-backend/accesslog"
	"github.com/solwatch/solana-wallet-backend/models"
	"github.com/solwatch/solana-wallet-backend/services"
)

// WalletController handles wallet-related HTTP requests
type WalletController struct {
	Wallets    *services.WalletService
	Transfers  *services.TransferService
	AccessLog  *accesslog.Logger
	WalletMode bool
}

// NewWalletController creates a new WalletController instance
func NewWalletController(wallets *services.WalletService, transfers *services.TransferService, accessLog *accesslog.Logger, walletMode bool) *WalletController {
	return &WalletController{
		Wallets:    wallets,
		Transfers:  transfers,
		AccessLog:  accessLog,
		WalletMode: walletMode,
	}
}

// Index handles GET /
func (ctrl *WalletController) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.tmpl", gin.H{
		"WalletMode": ctrl.WalletMode,
	})
}

// GetWalletInfo handles GET /get-wallet-info?address=...
func (ctrl *WalletController) GetWalletInfo(c *gin.Context) {
	address := c.Query("address")
	if address != "" {
		ctrl.AccessLog.Record(c.ClientIP(), address)
	}

	info, err := ctrl.Wallets.WalletInfo(c.Request.Context(), address)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch wallet info", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, info)
}

// GetDailyTransferTotals handles GET /get-daily-transfer-totals?address=...
func (ctrl *WalletController) GetDailyTransferTotals(c *gin.Context) {
	totals, err := ctrl.Transfers.DailyTotals(c.Request.Context(), c.Query("address"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch daily transfer totals", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, models.DailyTotalsResponse{DailyTotals: totals})
}
