package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"database/sql"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/lifelog/lifelog-service/internal/config"
	"github.com/lifelog/lifelog-service/internal/handler"
	"github.com/lifelog/lifelog-service/internal/middleware"
	"github.com/lifelog/lifelog-service/internal/reminder"
	"github.com/lifelog/lifelog-service/internal/repository"
	"github.com/lifelog/lifelog-service/internal/service"
	"github.com/sirupsen/logrus"
)

func main() {
	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logLevel, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	// Load configuration
	cfg, err := config.NewConfig()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	// Initialize database
	db, err := sql.Open("postgres", cfg.DBConn)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		logger.Fatalf("Failed to ping database: %v", err)
	}

	// Initialize layers
	repo := repository.NewRepository(db)
	svc := service.NewService(repo, logger, cfg)
	h := handler.NewHandler(svc, logger)

	// Event reminder scheduler, only when SMTP is configured
	if cfg.SMTPHost != "" {
		sched := reminder.NewScheduler(repo, reminder.NewSMTPMailer(cfg), logger)
		if err := sched.Start(); err != nil {
			logger.Fatalf("Failed to start reminder scheduler: %v", err)
		}
		defer sched.Stop()
	}

	// Setup router
	r := mux.NewRouter()
	r.Use(middleware.RequestLogger(logger))

	// Public routes
	r.HandleFunc("/auth/register", h.Register).Methods("POST")
	r.HandleFunc("/auth/login", h.Login).Methods("POST")

	// Protected routes
	api := r.PathPrefix("/").Subrouter()
	api.Use(middleware.AuthMiddleware(cfg))

	api.HandleFunc("/me", h.Me).Methods("GET")

	api.HandleFunc("/journal", h.CreateJournalEntry).Methods("POST")
	api.HandleFunc("/journal", h.ListJournalEntries).Methods("GET")
	api.HandleFunc("/journal/{id}", h.UpdateJournalEntry).Methods("PUT")
	api.HandleFunc("/journal/{id}", h.DeleteJournalEntry).Methods("DELETE")
	api.HandleFunc("/export/journal", h.ExportJournal).Methods("GET")

	api.HandleFunc("/moods", h.CreateMoodLog).Methods("POST")
	api.HandleFunc("/moods", h.ListMoodLogs).Methods("GET")
	api.HandleFunc("/moods/{id}", h.DeleteMoodLog).Methods("DELETE")

	api.HandleFunc("/habits", h.CreateHabit).Methods("POST")
	api.HandleFunc("/habits", h.ListHabits).Methods("GET")
	api.HandleFunc("/habits/{id}/complete", h.CompleteHabit).Methods("POST")
	api.HandleFunc("/habits/{id}", h.DeleteHabit).Methods("DELETE")

	api.HandleFunc("/todos", h.CreateTodo).Methods("POST")
	api.HandleFunc("/todos", h.ListTodos).Methods("GET")
	api.HandleFunc("/todos/{id}", h.UpdateTodo).Methods("PUT")
	api.HandleFunc("/todos/{id}", h.DeleteTodo).Methods("DELETE")

	api.HandleFunc("/workouts", h.CreateWorkout).Methods("POST")
	api.HandleFunc("/workouts", h.ListWorkouts).Methods("GET")
	api.HandleFunc("/workouts/{id}", h.DeleteWorkout).Methods("DELETE")

	api.HandleFunc("/meals", h.CreateMeal).Methods("POST")
	api.HandleFunc("/meals", h.ListMeals).Methods("GET")
	api.HandleFunc("/meals/{id}", h.DeleteMeal).Methods("DELETE")

	api.HandleFunc("/events", h.CreateEvent).Methods("POST")
	api.HandleFunc("/events", h.ListEvents).Methods("GET")
	api.HandleFunc("/events/{id}", h.UpdateEvent).Methods("PUT")
	api.HandleFunc("/events/{id}", h.DeleteEvent).Methods("DELETE")

	api.HandleFunc("/notes", h.CreateNote).Methods("POST")
	api.HandleFunc("/notes", h.ListNotes).Methods("GET")
	api.HandleFunc("/notes/{id}", h.UpdateNote).Methods("PUT")
	api.HandleFunc("/notes/{id}", h.DeleteNote).Methods("DELETE")

	api.HandleFunc("/books", h.CreateBook).Methods("POST")
	api.HandleFunc("/books", h.ListBooks).Methods("GET")
	api.HandleFunc("/books/{id}", h.UpdateBook).Methods("PUT")
	api.HandleFunc("/books/{id}", h.DeleteBook).Methods("DELETE")

	api.HandleFunc("/quotes/today", h.QuoteOfTheDay).Methods("GET")

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	logger.Infof("Starting server on %s", addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatalf("Server failed: %v", err)
	}
}
