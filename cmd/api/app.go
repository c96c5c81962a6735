package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/aguamarina/pos-tienda/docs" // especificação swagger gerada
	"github.com/aguamarina/pos-tienda/internal/adapter/api/controller"
	"github.com/aguamarina/pos-tienda/internal/adapter/api/route"
	"github.com/aguamarina/pos-tienda/internal/adapter/repository"
	"github.com/aguamarina/pos-tienda/internal/infrastructure/database"
	"github.com/aguamarina/pos-tienda/internal/infrastructure/session"
	"github.com/aguamarina/pos-tienda/internal/infrastructure/storage"
	"github.com/aguamarina/pos-tienda/pkg/logger"
)

// App representa a aplicação e suas dependências
type App struct {
	router *gin.Engine
	db     *database.PostgresDB
	log    logger.Logger

	authController     *controller.AuthController
	userController     *controller.UserController
	categoryController *controller.CategoryController
	sizeController     *controller.SizeController
	productController  *controller.ProductController
	posController      *controller.POSController
	uploadController   *controller.UploadController
}

// NewApp cria uma nova instância do aplicativo
func NewApp(log logger.Logger) (*App, error) {
	// Configurar banco de dados
	config := database.NewPostgresConfigFromEnv()
	db, err := database.NewPostgresDB(config)
	if err != nil {
		return nil, err
	}

	// Criar repositórios
	userRepo := repository.NewPostgresUserRepository(db)
	categoryRepo := repository.NewPostgresCategoryRepository(db)
	sizeRepo := repository.NewPostgresSizeRepository(db)
	productRepo := repository.NewPostgresProductRepository(db)
	saleRepo := repository.NewPostgresSaleRepository(db)

	// Mailbox de recibos: Redis quando configurado, memória caso contrário
	var mailbox session.Mailbox
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		redisMailbox, err := session.NewRedisMailbox(addr, os.Getenv("REDIS_PASSWORD"), 0)
		if err != nil {
			log.Warn("Redis indisponível, usando mailbox em memória", "error", err)
			mailbox = session.NewMemoryMailbox()
		} else {
			mailbox = redisMailbox
		}
	} else {
		mailbox = session.NewMemoryMailbox()
	}

	// Storage de imagens: opcional, rotas de upload respondem 503 sem ele
	var uploader storage.Uploader
	if os.Getenv("S3_BUCKET") != "" {
		s3Uploader, err := storage.NewS3UploaderFromEnv(context.Background())
		if err != nil {
			return nil, err
		}
		uploader = s3Uploader
	} else {
		log.Warn("S3_BUCKET não configurado, hospedagem de imagens desabilitada")
	}

	// Criar controllers
	authController := controller.NewAuthController(userRepo, log)
	userController := controller.NewUserController(userRepo)
	categoryController := controller.NewCategoryController(categoryRepo)
	sizeController := controller.NewSizeController(sizeRepo)
	productController := controller.NewProductController(productRepo, uploader)
	posController := controller.NewPOSController(productRepo, saleRepo, mailbox, log)
	uploadController := controller.NewUploadController(uploader)

	// Configurar router
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	// CORS liberado para o front da loja
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	return &App{
		router:             router,
		db:                 db,
		log:                log,
		authController:     authController,
		userController:     userController,
		categoryController: categoryController,
		sizeController:     sizeController,
		productController:  productController,
		posController:      posController,
		uploadController:   uploadController,
	}, nil
}

// SetupRoutes configura as rotas da aplicação
func (a *App) SetupRoutes(basePath string) {
	api := a.router.Group(basePath)

	// Health check
	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"version": "1.0.0",
		})
	})

	// Documentação Swagger
	a.router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	route.SetupAuthRoutes(api, a.authController)
	route.SetupUserRoutes(api, a.userController)
	route.SetupCatalogRoutes(api, a.categoryController, a.sizeController)
	route.SetupProductRoutes(api, a.productController)
	route.SetupPOSRoutes(api, a.posController)
	route.SetupUploadRoutes(api, a.uploadController)
}

// Start sobe o servidor HTTP e aguarda sinal de encerramento
func (a *App) Start() error {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	server := &http.Server{
		Addr:    ":" + port,
		Handler: a.router,
	}

	errCh := make(chan error, 1)
	go func() {
		a.log.Info("servidor iniciado", "port", port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		a.log.Info("encerrando servidor", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return server.Shutdown(ctx)
}

// Close libera os recursos da aplicação
func (a *App) Close() {
	if a.db != nil {
		a.db.Close()
	}
}
