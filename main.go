package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"collab-api/bootstrap"
	"collab-api/db"
	"collab-api/handlers"
	"collab-api/notification"
	"collab-api/repoChat"
	"collab-api/repoNotification"
	"collab-api/security"
	"collab-api/service"
	"collab-api/storage"

	gorillaHandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/nats-io/nats.go"
	"github.com/rs/cors"
)

func main() {
	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if len(port) == 0 {
		port = "8080"
	}

	logger := log.New(os.Stdout, "[collab-api] ", log.LstdFlags)
	feedLogger := log.New(os.Stdout, "[feed-cassandra] ", log.LstdFlags)
	storageLogger := log.New(os.Stdout, "[file-hdfs] ", log.LstdFlags)

	if err := db.ConnectToMongo(); err != nil {
		logger.Fatal("Error connecting to MongoDB: ", err)
	}
	defer db.DisconnectMongo()

	notificationRepo, err := repoNotification.New(feedLogger)
	if err != nil {
		logger.Fatal(err)
	}
	defer notificationRepo.CloseSession()
	notificationRepo.CreateTables()

	chatRepo, err := repoChat.New(feedLogger)
	if err != nil {
		logger.Fatal(err)
	}
	defer chatRepo.CloseSession()
	chatRepo.CreateTables()

	natsURL := os.Getenv("NATS_URL")
	if natsURL == "" {
		natsURL = "nats://nats:4222"
	}
	nc, err := nats.Connect(natsURL)
	if err != nil {
		logger.Fatalf("Error connecting to NATS: %v", err)
	}
	defer nc.Close()

	// Attachments are optional; without HDFS_URI the routes are not
	// mounted and the delete cascade skips files.
	var fileStore *storage.FileStorage
	if os.Getenv("HDFS_URI") != "" {
		fileStore, err = storage.New(storageLogger)
		if err != nil {
			logger.Fatal(err)
		}
		defer fileStore.Close()
		_ = fileStore.CreateDirectories()
	} else {
		logger.Println("HDFS_URI not set, attachments disabled")
	}

	userRepo := db.NewUserRepo(db.Client)
	connectionRepo := db.NewConnectionRequestRepo(db.Client)
	projectRepo := db.NewProjectRepo(db.Client)
	taskRepo := db.NewTaskRepo(db.Client)
	commentRepo := db.NewCommentRepo(db.Client)
	invitationRepo := db.NewInvitationRepo(db.Client)
	conversationRepo := db.NewConversationRepo(db.Client)

	bootstrap.InsertInitialData(userRepo, projectRepo)

	var mailer service.Mailer
	if cfg, ok := notification.ConfigFromEnv(); ok {
		mailer = notification.NewMailer(cfg)
	}

	notifier := service.NewNotifier(notificationRepo, nc, logger)

	var files service.AttachmentStore
	if fileStore != nil {
		files = fileStore
	}

	userService := service.NewUserService(userRepo, mailer, logger)
	connectionService := service.NewConnectionService(userRepo, connectionRepo, notifier)
	projectService := service.NewProjectService(projectRepo, taskRepo, commentRepo, invitationRepo, userRepo, files, notifier)
	invitationService := service.NewInvitationService(projectRepo, invitationRepo, userRepo, notifier)
	taskService := service.NewTaskService(projectRepo, taskRepo)
	commentService := service.NewCommentService(projectRepo, commentRepo)
	chatService := service.NewChatService(conversationRepo, chatRepo, userRepo, notifier)
	notificationService := service.NewNotificationService(notificationRepo)

	userHandler := handlers.NewUserHandler(logger, userService)
	connectionHandler := handlers.NewConnectionHandler(logger, connectionService)
	projectHandler := handlers.NewProjectHandler(logger, projectService)
	invitationHandler := handlers.NewInvitationHandler(logger, invitationService)
	taskHandler := handlers.NewTaskHandler(logger, taskService)
	commentHandler := handlers.NewCommentHandler(logger, commentService)
	chatHandler := handlers.NewChatHandler(logger, chatService)
	notificationHandler := handlers.NewNotificationHandler(logger, notificationService)

	router := mux.NewRouter()
	api := router.PathPrefix("/api").Subrouter()

	api.HandleFunc("/users/register", userHandler.Register).Methods("POST")
	api.HandleFunc("/users/login", userHandler.Login).Methods("POST")

	authed := api.NewRoute().Subrouter()
	authed.Use(security.AuthMiddleware)

	authed.HandleFunc("/users", userHandler.GetUsers).Methods("GET")
	authed.HandleFunc("/users/{id}", userHandler.GetUser).Methods("GET")
	authed.HandleFunc("/users/{id}/settings", userHandler.UpdateSettings).Methods("PUT")

	authed.HandleFunc("/connections/request", connectionHandler.SendRequest).Methods("POST")
	authed.HandleFunc("/connections/respond", connectionHandler.Respond).Methods("POST")
	authed.HandleFunc("/connections/requests", connectionHandler.ListPending).Methods("GET")
	authed.HandleFunc("/connections", connectionHandler.ListConnections).Methods("GET")
	authed.HandleFunc("/connections/{userId}", connectionHandler.RemoveConnection).Methods("DELETE")

	authed.HandleFunc("/projects", projectHandler.CreateProject).Methods("POST")
	authed.HandleFunc("/projects", projectHandler.GetProjects).Methods("GET")
	authed.HandleFunc("/projects/{id}", projectHandler.GetProject).Methods("GET")
	authed.HandleFunc("/projects/{id}", projectHandler.UpdateProject).Methods("PUT")
	authed.HandleFunc("/projects/{id}", projectHandler.DeleteProject).Methods("DELETE")
	authed.HandleFunc("/projects/{id}/leave", projectHandler.LeaveProject).Methods("POST")
	authed.HandleFunc("/projects/{id}/remove-collaborator", projectHandler.RemoveCollaborator).Methods("POST")

	authed.HandleFunc("/projects/{id}/invite", invitationHandler.Invite).Methods("POST")
	authed.HandleFunc("/invitations/respond", invitationHandler.Respond).Methods("POST")
	authed.HandleFunc("/invitations", invitationHandler.ListInvitations).Methods("GET")

	authed.HandleFunc("/projects/{id}/tasks", taskHandler.CreateTask).Methods("POST")
	authed.HandleFunc("/projects/{id}/tasks", taskHandler.GetTasks).Methods("GET")
	authed.HandleFunc("/tasks/{id}", taskHandler.UpdateTask).Methods("PUT")
	authed.HandleFunc("/tasks/{id}", taskHandler.DeleteTask).Methods("DELETE")

	authed.HandleFunc("/projects/{id}/comments", commentHandler.AddComment).Methods("POST")
	authed.HandleFunc("/projects/{id}/comments", commentHandler.GetComments).Methods("GET")
	authed.HandleFunc("/comments/{id}", commentHandler.DeleteComment).Methods("DELETE")

	authed.HandleFunc("/conversations", chatHandler.CreateConversation).Methods("POST")
	authed.HandleFunc("/conversations", chatHandler.ListConversations).Methods("GET")
	authed.HandleFunc("/conversations/{id}/messages", chatHandler.SendMessage).Methods("POST")
	authed.HandleFunc("/conversations/{id}/messages", chatHandler.GetMessages).Methods("GET")
	authed.HandleFunc("/conversations/{id}/read", chatHandler.MarkRead).Methods("POST")

	authed.HandleFunc("/notifications", notificationHandler.GetNotifications).Methods("GET")
	authed.HandleFunc("/notifications/read", notificationHandler.MarkRead).Methods("POST")

	if fileStore != nil {
		attachmentService := service.NewAttachmentService(projectRepo, fileStore)
		storageHandler := handlers.NewStorageHandler(logger, attachmentService)
		authed.HandleFunc("/projects/{id}/files", storageHandler.UploadFile).Methods("POST")
		authed.HandleFunc("/projects/{id}/files", storageHandler.ListFiles).Methods("GET")
		authed.HandleFunc("/projects/{id}/files/{name}", storageHandler.DownloadFile).Methods("GET")
		authed.HandleFunc("/projects/{id}/files/{name}", storageHandler.DeleteFile).Methods("DELETE")
	}

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:4200"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	})

	server := &http.Server{
		Handler:      c.Handler(gorillaHandlers.LoggingHandler(os.Stdout, router)),
		Addr:         ":" + port,
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logger.Println("Server listening on port", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal(err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)

	sig := <-sigCh
	logger.Println("Received terminate, graceful shutdown", sig)

	timeoutContext, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if server.Shutdown(timeoutContext) != nil {
		logger.Fatal("Cannot gracefully shutdown...")
	}
	logger.Println("Server stopped")
}
