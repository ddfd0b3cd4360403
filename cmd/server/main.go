package main

import (
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"github.com/quizsmith/backend/internal/config"
	"github.com/quizsmith/backend/internal/genai"
	"github.com/quizsmith/backend/internal/questions"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	cfg := config.Load()

	baseURL := genai.ResolveBaseURL(cfg.ModelServiceURL)
	log.Printf("Model service URL: %s", baseURL)

	client := genai.NewClient(baseURL)
	genService := genai.NewService(client)

	sessionKey := []byte(cfg.SessionKey)
	if len(sessionKey) == 0 {
		log.Println("SESSION_KEY not set; generating a random key (sessions reset on restart)")
		sessionKey = securecookie.GenerateRandomKey(32)
		if sessionKey == nil {
			log.Fatal("Failed to generate a session key")
		}
	}
	cookies := sessions.NewCookieStore(sessionKey)
	// The store defaults to Secure+SameSite=None, which browsers drop over
	// plain HTTP; Secure stays opt-in for TLS deployments.
	cookies.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 30,
		HttpOnly: true,
		Secure:   cfg.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	}

	store := questions.NewStore()
	handler := questions.NewHandler(store, genService, cookies)

	// Setup router
	r := mux.NewRouter()
	api := r.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/questions/generate", handler.Generate).Methods("POST")
	api.HandleFunc("/questions", handler.Add).Methods("POST")
	api.HandleFunc("/questions", handler.List).Methods("GET")
	api.HandleFunc("/questions", handler.Clear).Methods("DELETE")
	api.HandleFunc("/questions/{id}", handler.Remove).Methods("DELETE")
	api.HandleFunc("/ai/status", handler.AIStatus).Methods("GET")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// CORS
	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	log.Printf("Server starting on :%s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, c.Handler(r)); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
