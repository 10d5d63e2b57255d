package main

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/solwatch/solana-wallet-backend/accesslog"
	"github.com/solwatch/solana-wallet-backend/config"
	"github.com/solwatch/solana-wallet-backend/controllers"
	"github.com/solwatch/solana-wallet-backend/ledger"
	"github.com/solwatch/solana-wallet-backend/services"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := config.Load()
	if err != nil {
		logger.WithError(err).Fatal("failed to load configuration")
	}

	client := ledger.NewClient(cfg.RPCEndpoint)
	walletService := services.NewWalletService(cfg, client, logger)
	transferService := services.NewTransferService(cfg, client, logger)
	accessLog := accesslog.New(cfg.AccessLogPath, cfg.EnableLogging, logger)

	ctrl := controllers.NewWalletController(walletService, transferService, accessLog, cfg.WalletMode)

	router := gin.Default()
	router.LoadHTMLGlob("templates/*")
	router.Static("/static", "./static")

	router.GET("/", ctrl.Index)
	router.GET("/get-wallet-info", ctrl.GetWalletInfo)
	router.GET("/get-daily-transfer-totals", ctrl.GetDailyTransferTotals)

	logger.WithFields(logrus.Fields{
		"addr":         cfg.ListenAddr,
		"rpc_endpoint": cfg.RPCEndpoint,
		"source":       cfg.SourceWallet.String(),
	}).Info("starting server")

	if err := router.Run(cfg.ListenAddr); err != nil {
		logger.WithError(err).Fatal("failed to start server")
	}
}
