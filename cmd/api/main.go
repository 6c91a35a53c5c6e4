package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strconv"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/anvaya-crm/leaddesk/internal/infra/database"
	"github.com/anvaya-crm/leaddesk/internal/infra/http/handlers"
	"github.com/anvaya-crm/leaddesk/internal/infra/http/middleware"
	"github.com/anvaya-crm/leaddesk/internal/infra/mail"
	"github.com/anvaya-crm/leaddesk/internal/infra/queue"
	"github.com/anvaya-crm/leaddesk/internal/usecase"
)

func main() {
	godotenv.Load()

	connString := os.Getenv("DATABASE_URL")
	if connString == "" {
		log.Fatal("DATABASE_URL is required")
	}

	db, err := database.NewConnection(connString)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(context.Background(), db); err != nil {
		log.Fatalf("database: %v", err)
	}

	// Repositories
	agentRepo := database.NewAgentRepository(db)
	leadRepo := database.NewLeadRepository(db)
	commentRepo := database.NewCommentRepository(db)
	tagRepo := database.NewTagRepository(db)

	// Lead-closed notifications are optional: without a broker the service
	// runs identically minus the agent email.
	var (
		events   usecase.EventProducer
		rabbitMQ *queue.RabbitMQ
	)
	if url := os.Getenv("RABBITMQ_URL"); url != "" {
		rabbitMQ, err = queue.NewRabbitMQ(url)
		if err != nil {
			log.Fatalf("rabbitmq: %v", err)
		}
		defer rabbitMQ.Close()
		events = queue.NewProducer(rabbitMQ.Ch)

		var sender queue.NotificationSender
		if host := os.Getenv("MAIL_HOST"); host != "" {
			port, _ := strconv.Atoi(getEnv("MAIL_PORT", "587"))
			sender = mail.NewSender(host, port,
				os.Getenv("MAIL_USER"), os.Getenv("MAIL_PASS"),
				getEnv("MAIL_FROM", "no-reply@anvaya.app"))
		}
		worker := queue.NewWorker(rabbitMQ.Ch, sender)
		go func() {
			if err := worker.Start(queue.QueueName); err != nil {
				log.Printf("worker: %v", err)
			}
		}()
	}

	// Use cases
	createLeadUC := usecase.NewCreateLeadUseCase(leadRepo, agentRepo, events)
	updateLeadUC := usecase.NewUpdateLeadUseCase(leadRepo, agentRepo, events)
	reportUC := usecase.NewReportUseCase(leadRepo)

	// Handlers
	agentHandler := handlers.NewAgentHandler(agentRepo)
	leadHandler := handlers.NewLeadHandler(createLeadUC, updateLeadUC, leadRepo)
	commentHandler := handlers.NewCommentHandler(commentRepo, leadRepo, agentRepo)
	tagHandler := handlers.NewTagHandler(tagRepo)
	reportHandler := handlers.NewReportHandler(reportUC)

	var amqpConn *amqp.Connection
	if rabbitMQ != nil {
		amqpConn = rabbitMQ.Conn
	}
	healthHandler := handlers.NewHealthHandler(db, amqpConn)

	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
	}))

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"message":"Anvaya backend server is live..."}`))
	})

	r.Post("/agents", agentHandler.HandleCreate)
	r.Get("/agents", agentHandler.HandleList)

	r.Post("/leads", leadHandler.HandleCreate)
	r.Get("/leads", leadHandler.HandleList)
	r.Put("/leads/{id}", leadHandler.HandleUpdate)
	r.Delete("/leads/{id}", leadHandler.HandleDelete)

	r.Post("/leads/{id}/comments", commentHandler.HandleCreate)
	r.Get("/leads/{id}/comments", commentHandler.HandleList)

	r.Post("/tags", tagHandler.HandleCreate)
	r.Get("/tags", tagHandler.HandleList)

	r.Get("/report/pipeline", reportHandler.HandlePipeline)
	r.Get("/report/last-week", reportHandler.HandleLastWeek)
	r.Get("/report/status-distribution", reportHandler.HandleStatusDistribution)

	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	addr := ":" + getEnv("PORT", "8080")
	log.Printf("server listening on %s", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatal(err)
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
