package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/teacher-kiwi/sociogram/config"
	"github.com/teacher-kiwi/sociogram/database"
	_ "github.com/teacher-kiwi/sociogram/docs" // Swagger docs
	studentctrl "github.com/teacher-kiwi/sociogram/internal/controller/student"
	teacherctrl "github.com/teacher-kiwi/sociogram/internal/controller/teacher"
	"github.com/teacher-kiwi/sociogram/internal/logger"
	"github.com/teacher-kiwi/sociogram/internal/model"
	"github.com/teacher-kiwi/sociogram/internal/repository"
	"github.com/teacher-kiwi/sociogram/internal/service"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title Classroom Sociogram API
// @version 1.0
// @description Classroom relationship survey tool: teachers register rosters, compose weighted peer-nomination surveys, and share them with students via a short-lived token. Students submit nominations anonymously against a roster; teachers review the relationship matrix and optional AI summaries.
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
func main() {
	logger.Init()

	app := fx.New(
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			NewGinEngine,
		),

		fx.Provide(
			repository.NewClassroomRepository,
			repository.NewStudentRepository,
			repository.NewQuestionRepository,
			repository.NewSurveyRepository,
			repository.NewResponseRepository,
		),

		fx.Provide(
			service.NewTokenService,
			service.NewClassroomService,
			service.NewSurveyBuilderService,
			service.NewSurveyAccessService,
			service.NewSubmissionService,
			service.NewResultsService,
			service.NewSummaryService,
		),

		fx.Provide(
			teacherctrl.NewClassroomController,
			teacherctrl.NewSurveyController,
			teacherctrl.NewResultsController,
			studentctrl.NewSurveyController,
		),

		fx.Invoke(AutoMigrateDB),
		fx.Invoke(RegisterRoutesAndStartServer),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

// ginMode maps the GIN_MODE environment variable onto a valid gin mode,
// falling back to release for anything unset or unrecognized.
func ginMode() string {
	switch mode := os.Getenv("GIN_MODE"); mode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
		return mode
	}
	return gin.ReleaseMode
}

func NewGinEngine() *gin.Engine {
	gin.SetMode(ginMode())

	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	// The survey page is opened from a QR code on any device, so CORS stays
	// permissive like the original edge functions.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// URL: http://localhost:PORT/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer wires the API routes and manages the HTTP
// server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	classroomCtrl *teacherctrl.ClassroomController,
	surveyCtrl *teacherctrl.SurveyController,
	resultsCtrl *teacherctrl.ResultsController,
	studentSurveyCtrl *studentctrl.SurveyController,
) {
	teacherGroup := router.Group("/api/v1/teacher")
	{
		teacherGroup.POST("/classrooms", classroomCtrl.CreateClassroom)
		teacherGroup.GET("/classrooms", classroomCtrl.GetClassrooms)
		teacherGroup.GET("/classrooms/:classroom_id", classroomCtrl.GetClassroom)
		teacherGroup.PUT("/classrooms/:classroom_id", classroomCtrl.UpdateClassroom)
		teacherGroup.GET("/classrooms/:classroom_id/surveys", surveyCtrl.GetClassroomSurveys)
		teacherGroup.GET("/classrooms/:classroom_id/results", resultsCtrl.GetResults)

		teacherGroup.GET("/questions", surveyCtrl.ListQuestions)

		teacherGroup.POST("/surveys", surveyCtrl.CreateSurvey)
		teacherGroup.GET("/surveys/:survey_id", surveyCtrl.GetSurvey)
		teacherGroup.POST("/surveys/:survey_id/token", surveyCtrl.IssueToken)
		teacherGroup.GET("/surveys/:survey_id/link", surveyCtrl.GetSurveyLink)
		teacherGroup.GET("/surveys/:survey_id/qr", surveyCtrl.GetSurveyQR)

		teacherGroup.POST("/results/summary", resultsCtrl.GetSummary)
	}

	surveyGroup := router.Group("/api/v1/survey")
	{
		surveyGroup.POST("/verify", studentSurveyCtrl.VerifyToken)
		surveyGroup.POST("/students", studentSurveyCtrl.ListStudents)
		surveyGroup.POST("/data", studentSurveyCtrl.GetSurveyData)
		surveyGroup.POST("/responses", studentSurveyCtrl.SubmitResponses)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Sociogram API server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

// AutoMigrateDB migrates the schema and seeds the default question bank when
// the table has none.
func AutoMigrateDB(db *gorm.DB, questionRepo repository.QuestionRepository) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.Classroom{},
		&model.Student{},
		&model.Question{},
		&model.Survey{},
		&model.SurveyQuestion{},
		&model.RelationshipResponse{},
		&model.RelationshipResponseTarget{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}

	if err := service.SeedDefaultQuestions(questionRepo); err != nil {
		log.Error().Err(err).Msg("Default question seeding failed")
		return err
	}

	log.Info().Msg("Database migration completed successfully.")
	return nil
}
