package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"amado/config"
	_ "amado/docs"
	"amado/internal/booking"
	"amado/internal/service"
	"amado/internal/transport/rest"
	"amado/internal/upstream"
	"amado/pkg/logger"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Amado API
// @version 1.0
// @description Gateway da plataforma Amado de agendamento com profissionais parceiros

// @contact.name Suporte Amado
// @contact.email suporte@amado.com.br

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
func main() {
	// Sem .env em produção a configuração vem toda do ambiente.
	_ = godotenv.Load()

	log, err := logger.NewLogger()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatal("não foi possível carregar a configuração", zap.Error(err))
	}

	client := upstream.NewClient(cfg.Upstream, log)
	cepClient := upstream.NewCEPClient(cfg.ViaCEP, log)

	registry := booking.NewRegistry(booking.Options{
		Fetcher:      client,
		FetchTimeout: cfg.Booking.FetchTimeout,
		Logger:       log,
	}, cfg.Booking.SessionTTL, log)

	stop := make(chan struct{})
	go registry.Run(stop)
	defer close(stop)

	services := service.NewServices(service.Deps{
		Upstream: client,
		CEP:      cepClient,
		Registry: registry,
		Logger:   log,
		Config:   cfg,
	})

	handler := rest.NewHandler(services, log, cfg)

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())

	handler.InitRoutes(router)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/swagger", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
	})

	srv := &http.Server{
		Addr:           ":" + cfg.HTTP.Port,
		Handler:        router,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderMB << 20,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("erro ao iniciar o servidor", zap.Error(err))
		}
	}()

	log.Info("servidor iniciado",
		zap.String("addr", srv.Addr),
		zap.String("upstream", cfg.Upstream.BaseURL),
	)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("encerrando o servidor...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("erro ao encerrar o servidor", zap.Error(err))
	}

	log.Info("servidor encerrado")
}
