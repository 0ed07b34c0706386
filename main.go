package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"elo_server/controllers"
	"elo_server/routes"
	"elo_server/services"
	"elo_server/socket"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	_ = godotenv.Load()

	// Initialize the KV store collaborator
	var kv services.KVStore
	if os.Getenv("KV_BACKEND") == "memory" {
		log.Println("Using in-memory KV store")
		kv = services.NewMemoryKV()
	} else {
		log.Println("Initializing DynamoDB client...")
		dynamoClient := services.InitializeDynamoDBClient()
		kv = &services.DynamoKV{Client: dynamoClient, Table: getEnv("KV_TABLE_NAME", "EloStore")}
		log.Println("DynamoDB client initialized.")
	}

	// Initialize the Socket.IO server
	sock := socket.NewServer()
	go func() {
		if err := sock.Serve(); err != nil {
			log.Fatalf("Socket.IO serve error: %v", err)
		}
	}()
	defer sock.Close()

	// Initialize Services
	authService := &services.AuthService{
		KV:        kv,
		JWTSecret: []byte(getEnv("JWT_SECRET", "elo-dev-secret")),
		TokenTTL:  24 * time.Hour,
	}
	profileService := &services.ProfileService{KV: kv}
	chatService := services.NewChatService(kv)
	chatService.Notifier = sock
	discoverService := &services.DiscoverService{KV: kv, Notifier: sock}
	storeService := &services.StoreService{KV: kv}

	// Set up the server port
	port := getEnv("PORT", "8080")
	log.Printf("Using server port: %s\n", port)

	// Initialize the router
	r := mux.NewRouter()

	// Register welcome and health check endpoints
	r.HandleFunc("/", controllers.WelcomeHandler).Methods("GET")
	r.HandleFunc("/health", controllers.HealthCheckHandler).Methods("GET")

	// Register routes
	routes.RegisterAuthRoutes(r, authService)
	routes.RegisterProfileRoutes(r, authService, profileService)
	routes.RegisterChatRoutes(r, authService, chatService)
	routes.RegisterDiscoverRoutes(r, authService, profileService, discoverService)
	routes.RegisterStoreRoutes(r, authService, storeService)

	// Mount the realtime endpoint
	r.PathPrefix("/socket.io/").Handler(sock.Handler())

	// Add CORS middleware
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(r)

	// Start the HTTP server
	log.Printf("Starting server on port %s...\n", port)
	log.Fatal(http.ListenAndServe(":"+port, corsHandler))
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
