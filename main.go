package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"staffhub/config"
	"staffhub/cron"
	"staffhub/database"
	departmentRepo "staffhub/database/repository/department"
	employeeRepo "staffhub/database/repository/employee"
	otpRepo "staffhub/database/repository/otp"
	sessionRepo "staffhub/database/repository/session"
	userRepo "staffhub/database/repository/user"
	"staffhub/database/seed"
	"staffhub/handlers"
	"staffhub/resolvers"
	"staffhub/routes"
	"staffhub/services/auth"
	"staffhub/services/department"
	"staffhub/services/employee"
	"staffhub/services/notification"
	"staffhub/services/session"
	"staffhub/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

type stores struct {
	users       userRepo.UserRepository
	otps        otpRepo.OTPRepository
	employees   employeeRepo.EmployeeRepository
	departments departmentRepo.DepartmentRepository
}

func openStores(ctx context.Context, logger *zap.Logger) stores {
	if config.AppConfig.StoreDriver == "memory" {
		logger.Warn("Using in-memory stores; data is lost on restart")
		return stores{
			users:       userRepo.NewMemoryUserRepo(),
			otps:        otpRepo.NewMemoryOTPRepo(),
			employees:   employeeRepo.NewMemoryEmployeeRepo(),
			departments: departmentRepo.NewMemoryDepartmentRepo(),
		}
	}

	db, err := database.InitDB(ctx)
	if err != nil {
		logger.Fatal("main: failed to connect to MongoDB", zap.Error(err))
	}
	logger.Info("Connected to MongoDB", zap.String("database", db.Name()))
	return stores{
		users:       userRepo.NewMongoUserRepo(ctx, db),
		otps:        otpRepo.NewMongoOTPRepo(ctx, db),
		employees:   employeeRepo.NewMongoEmployeeRepo(ctx, db),
		departments: departmentRepo.NewMongoDepartmentRepo(ctx, db),
	}
}

func openSessionStore(logger *zap.Logger) (sessionRepo.SessionRepository, *redis.Client) {
	if config.AppConfig.SessionStore == "memory" {
		logger.Warn("Using in-memory session store; sessions are lost on restart")
		return sessionRepo.NewMemorySessionRepo(), nil
	}
	client := utils.GetSessionCacheClient()
	return sessionRepo.NewRedisSessionRepo(client), client
}

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// repositories.
	st := openStores(ctx, logger)
	sessionStore, redisClient := openSessionStore(logger)

	if config.AppConfig.SeedOnStart {
		seeder := &seed.Seeder{
			Users:         st.users,
			Departments:   st.departments,
			Employees:     st.employees,
			AdminEmail:    config.AppConfig.AdminEmail,
			EmployeeEmail: config.AppConfig.EmployeeEmail,
		}
		if err := seeder.Run(ctx); err != nil {
			logger.Fatal("main: failed to seed database", zap.Error(err))
		}
	}

	// mail delivery.
	notificationService := &notification.DefaultNotificationService{
		Mailer: notification.NewMailer(config.AppConfig),
	}
	var (
		dispatcher  notification.OTPDispatcher = &notification.SyncOTPDispatcher{Notifications: notificationService}
		queueClient *asynq.Client
		mailWorker  *asynq.Server
	)
	if config.AppConfig.MailQueueEnabled {
		queueClient = asynq.NewClient(cron.RedisOpt())
		mailWorker = cron.InitMailWorker(notificationService)
		dispatcher = &notification.QueuedOTPDispatcher{Client: queueClient}
	}

	// services.
	sessionManager := &session.Manager{
		Store:  sessionStore,
		Secret: []byte(config.AppConfig.SessionSecret),
		TTL:    config.AppConfig.SessionTTL,
		Name:   config.AppConfig.SessionCookieName,
		Secure: config.AppConfig.SessionCookieSecure,
	}
	authService := &auth.DefaultAuthService{
		Users:      st.users,
		OTPs:       st.otps,
		Dispatcher: dispatcher,
		TTL:        config.AppConfig.OTPTTL,
		HashCost:   config.AppConfig.OTPHashCost,
		Echo:       config.AppConfig.OTPEcho,
	}
	employeeService := &employee.DefaultEmployeeService{Repo: st.employees}
	departmentService := &department.DefaultDepartmentService{
		Repo:      st.departments,
		Employees: st.employees,
	}

	resolver := resolvers.NewResolver(logger, authService, employeeService, departmentService)
	graphQLHandler := handlers.NewGraphQLHandler(resolvers.NewSchema(resolver))

	utils.StartHealthMonitor(ctx, 30*time.Second, redisClient, database.MongoClient)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Sessions:           sessionManager,
		GraphQLHandler:     graphQLHandler.ServeQuery,
		GraphQLHelpHandler: graphQLHandler.ServeHelp,
		HealthHandler:      handlers.NewHealthHandler(time.Now()),
	}
	router := routes.NewRouter(handlerBundle, config.AppConfig.AllowedOrigins(), config.AppConfig.MaxRequestsPerMin)

	// Start the HTTP server.
	srv := &http.Server{
		Addr:              "0.0.0.0:" + config.AppConfig.AppPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	logger.Sugar().Infof("Starting server on %s (env=%s)", srv.Addr, config.GetEnv())
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("main: server failed to start", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("main: server is shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("main: server forced to shutdown", zap.Error(err))
	}
	if mailWorker != nil {
		mailWorker.Shutdown()
	}
	if queueClient != nil {
		_ = queueClient.Close()
	}
	if redisClient != nil {
		_ = redisClient.Close()
	}
	if err := database.CloseDB(shutdownCtx); err != nil {
		logger.Error("main: failed to disconnect from MongoDB", zap.Error(err))
	}

	logger.Info("main: server stopped gracefully")
}
