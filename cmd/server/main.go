// cmd/server/main.go
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/lmittmann/tint"
	"github.com/rs/cors"

	"examrisk/internal/config"
	"examrisk/internal/handlers"
	"examrisk/internal/middleware"
	"examrisk/internal/repository"
	"examrisk/internal/service"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

func main() {
	//　設定ファイル読み込み用の一時的なロガー設定
	tempLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(tempLogger)
	log.Println("Log Config Loading...")

	// Configを読み込み
	if err := config.LoadConfig("./configs"); err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}

	// === 設定に基づいて slog ロガーを初期化 ===
	logLevel := new(slog.LevelVar)
	switch strings.ToLower(config.Cfg.Log.Level) {
	case "debug":
		logLevel.Set(slog.LevelDebug)
	case "info":
		logLevel.Set(slog.LevelInfo)
	case "warn", "warning":
		logLevel.Set(slog.LevelWarn)
	case "error":
		logLevel.Set(slog.LevelError)
	default:
		logLevel.Set(slog.LevelInfo)
		slog.Warn("Unknown log level specified in config, defaulting to INFO", slog.String("level", config.Cfg.Log.Level))
	}

	var handler slog.Handler
	appEnv := os.Getenv("APP_ENV")
	if strings.ToLower(appEnv) == "dev" {
		// 開発時は色付きの tint Handler を使用
		tintOpts := &tint.Options{
			Level:      logLevel,
			TimeFormat: time.RFC3339,
		}
		handler = tint.NewHandler(os.Stderr, tintOpts)
		tempLogger.Info("Using TINT log handler", slog.String("APP_ENV", appEnv))
	} else {
		jsonOpts := &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		}
		handler = slog.NewJSONHandler(os.Stderr, jsonOpts)
		tempLogger.Info("Using JSON log handler", slog.String("APP_ENV", appEnv))
	}
	logger := slog.New(handler)
	log.Println("Log Config Loaded...")

	slog.SetDefault(logger)

	slog.Info("Application starting...")

	// 2. Initialize Database Connection (GORM)
	db, err := repository.NewDB(config.Cfg.Database.URL, logger)
	if err != nil {
		slog.Error("Error initializing database", slog.Any("error", err))
		os.Exit(1)
	}
	sqlDB, err := db.DB()
	if err != nil {
		slog.Error("Error getting underlying sql.DB from GORM", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			slog.Error("Error closing database connection", slog.Any("error", err))
		} else {
			slog.Info("Database connection closed.")
		}
	}()

	// 3. Dependency Injection
	studentRepo := repository.NewGormStudentRepository()
	assessRepo := repository.NewGormAssessmentRepository()
	riskRepo := repository.NewGormRiskRepository()
	examRepo := repository.NewGormExamRepository()
	planRepo := repository.NewGormPlanRepository()

	studentService := service.NewStudentService(db, studentRepo)
	riskService := service.NewRiskService(db, studentRepo, assessRepo, riskRepo, &config.Cfg)
	assessmentService := service.NewAssessmentService(db, studentRepo, assessRepo, riskService)
	examService := service.NewExamService(db, studentRepo, examRepo)
	planService := service.NewPlanService(db, studentRepo, examRepo, riskRepo, planRepo, &config.Cfg)

	studentHandler := handlers.NewStudentHandler(studentService, logger)
	assessmentHandler := handlers.NewAssessmentHandler(assessmentService, logger)
	riskHandler := handlers.NewRiskHandler(riskService, logger)
	examHandler := handlers.NewExamHandler(examService, logger)
	planHandler := handlers.NewPlanHandler(planService, logger)

	// 4. Setup Router
	r := chi.NewRouter()

	// Middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(logger))

	// CORS 設定と適用 (設定ファイルから読み込んだ値を使用)
	corsOptions := cors.Options{
		AllowedOrigins:   config.Cfg.CORS.AllowedOrigins,
		AllowedMethods:   config.Cfg.CORS.AllowedMethods,
		AllowedHeaders:   config.Cfg.CORS.AllowedHeaders,
		ExposedHeaders:   config.Cfg.CORS.ExposedHeaders,
		AllowCredentials: config.Cfg.CORS.AllowCredentials,
		MaxAge:           config.Cfg.CORS.MaxAge,
		Debug:            false,
	}
	corsHandler := cors.New(corsOptions)
	r.Use(corsHandler.Handler)

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// API Routes
	r.Route("/api/v1", func(r chi.Router) {
		// すべてのAPIはJWT認証必須 (ログイン自体は外部のIdPが発行する想定)
		r.Group(func(r chi.Router) {
			r.Use(middleware.JWTAuthMiddleware(&config.Cfg))

			r.Route("/students", func(r chi.Router) {
				r.Post("/", studentHandler.PostStudent)
				r.Get("/", studentHandler.GetStudents)

				r.Route("/{student_id}", func(r chi.Router) {
					r.Get("/", studentHandler.GetStudent)
					r.Patch("/", studentHandler.PatchStudent)
					r.Delete("/", studentHandler.DeleteStudent)

					// Assessment routes
					r.Route("/assessments", func(r chi.Router) {
						r.Post("/", assessmentHandler.PostAssessment)
						r.Get("/", assessmentHandler.GetAssessments)
						r.Post("/import", assessmentHandler.ImportAssessments)
						r.Get("/{assessment_id}", assessmentHandler.GetAssessment)
						r.Put("/{assessment_id}", assessmentHandler.PutAssessment)
						r.Delete("/{assessment_id}", assessmentHandler.DeleteAssessment)
					})

					// Risk routes
					r.Route("/risk", func(r chi.Router) {
						r.Get("/", riskHandler.GetRisk)
						r.Post("/", riskHandler.PostRisk)
						r.Get("/history", riskHandler.GetRiskHistory)
					})

					// Exam routes
					r.Route("/exams", func(r chi.Router) {
						r.Post("/", examHandler.PostExam)
						r.Get("/", examHandler.GetExams)
						r.Get("/{exam_id}", examHandler.GetExam)
						r.Patch("/{exam_id}", examHandler.PatchExam)
						r.Delete("/{exam_id}", examHandler.DeleteExam)
					})

					// Plan routes
					r.Route("/plans", func(r chi.Router) {
						r.Post("/", planHandler.PostPlan)
						r.Get("/", planHandler.GetPlans)
						r.Post("/simulate", planHandler.PostSimulate)

						r.Route("/{plan_id}", func(r chi.Router) {
							r.Get("/", planHandler.GetPlan)
							r.Delete("/", planHandler.DeletePlan)
							r.Patch("/status", planHandler.PatchPlanStatus)
							r.Put("/weeks/{week_number}/progress", planHandler.PutWeekProgress)
						})
					})
				})
			})
		})
	})

	// Health Check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		// DB接続チェック
		ctx := r.Context()
		sqlDB, err := db.DB()
		if err != nil {
			slog.ErrorContext(ctx, "Health check failed: could not get DB object", slog.Any("error", err))
			http.Error(w, "Health check failed", http.StatusInternalServerError)
			return
		}
		err = sqlDB.PingContext(r.Context())
		if err != nil {
			slog.ErrorContext(ctx, "Health check failed: could not ping DB", slog.Any("error", err))
			http.Error(w, "Health check failed", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// 5. Start Server
	server := &http.Server{
		Addr:         config.Cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("Server listening", slog.String("port", config.Cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Could not listen on port", slog.String("port", config.Cfg.Server.Port), slog.Any("error", err))
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", slog.Any("error", err))
	}

	log.Println("Server exiting")
}
