package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/CPU-commits/Intranet_BDirectorio/controllers"
	"github.com/CPU-commits/Intranet_BDirectorio/db"
	"github.com/CPU-commits/Intranet_BDirectorio/middlewares"
	"github.com/CPU-commits/Intranet_BDirectorio/repositories"
	"github.com/CPU-commits/Intranet_BDirectorio/res"
	"github.com/CPU-commits/Intranet_BDirectorio/services"
	"github.com/CPU-commits/Intranet_BDirectorio/settings"
	"github.com/CPU-commits/Intranet_BDirectorio/views"
	ratelimit "github.com/JGLTechnologies/gin-rate-limit"
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/secure"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/klauspost/compress/gzhttp"
	"go.uber.org/zap"
)

const HEALTHZ_PATH = "/healthz"

type Options struct {
	Logger *zap.Logger
	// Allowed browser origin, without scheme
	ClientURL string
	// Login attempts per client per minute
	LoginRateLimit uint
	SecureCookies  bool
}

func keyFunc(c *gin.Context) string {
	return c.ClientIP()
}

func ErrorHandler(c *gin.Context, info ratelimit.Info) {
	c.Header("Retry-After", fmt.Sprintf("%.0f", time.Until(info.ResetTime).Seconds()))
	views.RenderError(c, http.StatusTooManyRequests)
}

// NewRouter wires middlewares, controllers and routes around svcs.
func NewRouter(svcs *services.Services, opts Options) *gin.Engine {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	logger := opts.Logger

	router := gin.New()
	// Proxies
	router.SetTrustedProxies([]string{"127.0.0.1"})
	router.SetHTMLTemplate(views.Templates())
	// Zap looger
	router.Use(ginzap.GinzapWithConfig(logger, &ginzap.Config{
		TimeFormat: time.RFC3339,
		UTC:        true,
		SkipPaths:  []string{HEALTHZ_PATH},
	}))
	router.Use(ginzap.RecoveryWithZap(logger, true))

	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		views.RenderError(c, http.StatusInternalServerError)
	}))
	// CORS
	if opts.ClientURL != "" {
		httpOrigin := "http://" + opts.ClientURL
		httpsOrigin := "https://" + opts.ClientURL
		router.Use(cors.New(cors.Config{
			AllowOrigins:     []string{httpOrigin, httpsOrigin},
			AllowMethods:     []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type"},
			AllowCredentials: true,
			AllowWebSockets:  false,
			MaxAge:           12 * time.Hour,
		}))
	}
	// Secure
	router.Use(secure.New(secure.Config{
		STSSeconds:            315360000,
		STSIncludeSubdomains:  true,
		FrameDeny:             true,
		ContentTypeNosniff:    true,
		BrowserXssFilter:      true,
		IENoOpen:              true,
		ReferrerPolicy:        "strict-origin-when-cross-origin",
		ContentSecurityPolicy: "default-src 'self'; style-src 'self' 'unsafe-inline'",
		IsDevelopment:         !opts.SecureCookies,
	}))
	// Validators
	InitValidators()
	// Rate limit
	loginLimit := opts.LoginRateLimit
	if loginLimit == 0 {
		loginLimit = 10
	}
	store := ratelimit.InMemoryStore(&ratelimit.InMemoryOptions{
		Rate:  time.Minute,
		Limit: loginLimit,
	})
	loginLimiter := ratelimit.RateLimiter(store, &ratelimit.Options{
		ErrorHandler: ErrorHandler,
		KeyFunc:      keyFunc,
	})
	// Routes
	csrf := middlewares.CSRF(opts.SecureCookies)
	guarded := router.Group(
		"/",
		csrf,
		middlewares.SessionGuard(svcs.Sessions),
	)
	public := router.Group("/", csrf)
	{
		// Init controllers
		usuariosController := controllers.NewUsuariosController(svcs.Usuarios)
		exportController := controllers.NewExportController(svcs.Usuarios, logger)
		authController := controllers.NewAuthController(svcs.Auth, svcs.Sessions, opts.SecureCookies)
		// Define routes
		// Usuarios
		guarded.GET("/", usuariosController.Index)
		guarded.GET("/agregar", usuariosController.NewForm)
		guarded.POST("/agregar", usuariosController.Create)
		guarded.GET("/editar/:id", usuariosController.EditForm)
		guarded.POST("/editar/:id", usuariosController.Update)
		guarded.GET(
			"/eliminar/:id",
			middlewares.CSRFQuery(),
			usuariosController.Delete,
		)
		// Export
		guarded.GET(controllers.EXPORT_PATH, exportController.Excel)
		guarded.GET(controllers.EXPORT_PDF_PATH, exportController.PDF)
		// Auth
		public.GET(middlewares.LOGIN_PATH, authController.LoginForm)
		public.POST(middlewares.LOGIN_PATH, loginLimiter, authController.Login)
		public.GET("/logout", authController.Logout)
	}
	// Route healthz
	router.GET(HEALTHZ_PATH, func(ctx *gin.Context) {
		ctx.JSON(200, &res.Response{
			Success: true,
		})
	})
	// No route
	router.NoRoute(func(ctx *gin.Context) {
		views.RenderError(ctx, http.StatusNotFound)
	})
	return router
}

func newRepository(ctx context.Context, logger *zap.Logger) (repositories.UsuarioRepository, error) {
	settingsData := settings.GetSettings()
	switch settingsData.DB_TYPE {
	case settings.DB_SQLITE:
		conn, err := db.NewConnectionSqlite(settingsData.SQLITE_PATH)
		if err != nil {
			return nil, err
		}
		logger.Info("sqlite ready", zap.String("path", settingsData.SQLITE_PATH))
		return repositories.NewSqliteUsuarioRepository(conn), nil
	case settings.DB_MONGO:
		conn, err := db.NewConnectionMongo(settingsData.MONGO_CONNECTION, settingsData.MONGO_DB)
		if err != nil {
			return nil, err
		}
		logger.Info("mongo ready", zap.String("database", settingsData.MONGO_DB))
		return repositories.NewMongoUsuarioRepository(ctx, conn.DB)
	}
	return nil, fmt.Errorf("unknown DB_TYPE %q", settingsData.DB_TYPE)
}

func Init() {
	settingsData := settings.GetSettings()
	// Zap looger
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	prod := settingsData.NODE_ENV == "prod"
	if prod {
		gin.SetMode(gin.ReleaseMode)
	}
	repository, err := newRepository(context.Background(), logger)
	if err != nil {
		logger.Fatal("store unavailable", zap.Error(err))
	}
	credentials, err := settingsData.LoadCredentials()
	if err != nil {
		logger.Fatal("credentials", zap.Error(err))
	}
	svcs, err := services.NewServices(services.Options{
		Repository:    repository,
		Credentials:   credentials,
		SessionSecret: settingsData.SESSION_SECRET_KEY,
		SessionTTL:    settingsData.SESSION_TTL,
		Logger:        logger,
	})
	if err != nil {
		logger.Fatal("services", zap.Error(err))
	}
	router := NewRouter(svcs, Options{
		Logger:         logger,
		ClientURL:      settingsData.CLIENT_URL,
		LoginRateLimit: settingsData.LOGIN_RATE_LIMIT,
		SecureCookies:  prod,
	})
	// Init server
	server := &http.Server{
		Addr:              ":" + settingsData.PORT,
		Handler:           gzhttp.GzipHandler(router),
		ReadHeaderTimeout: 10 * time.Second,
	}
	logger.Info("listening", zap.String("addr", server.Addr))
	if err := server.ListenAndServe(); err != nil {
		log.Fatalf("Error init server: %v", err)
	}
}
