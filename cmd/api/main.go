package main

import (
	"log"
	"net/http"

	"github.com/rs/cors"

	"taskflow-backend/internal/analytics"
	"taskflow-backend/internal/config"
	"taskflow-backend/internal/store"
	"taskflow-backend/internal/tasks"
)

func main() {
	cfg := config.Load()

	var backing tasks.Store
	switch cfg.StoreBackend {
	case "postgres":
		pg, err := store.ConnectPostgres(cfg.ConnString())
		if err != nil {
			log.Fatal("❌ Failed to connect DB:", err)
		}
		defer pg.Close()
		log.Println("✅ Connected to PostgreSQL!")
		backing = pg
	case "file":
		f := store.NewFile(cfg.DataFile)
		log.Println("✅ Using JSON file store:", f.Path())
		backing = f
	default:
		log.Fatal("❌ Unknown STORE_BACKEND: ", cfg.StoreBackend)
	}

	journal, err := analytics.Open(cfg.EventsFile)
	if err != nil {
		// analytics must never block the API
		log.Printf("[WARN] analytics journal disabled: %v", err)
		journal = nil
	}

	svc := tasks.NewService(backing)

	mux := http.NewServeMux()

	// Health endpoint
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// ----- TASKS API -----
	mux.HandleFunc("GET /tasks", tasks.ListHandler(svc))
	mux.HandleFunc("GET /task/{id}", tasks.GetHandler(svc))
	mux.HandleFunc("GET /sort", tasks.SortHandler(svc))
	mux.HandleFunc("POST /create", tasks.CreateHandler(svc, journal))
	mux.HandleFunc("PUT /edit/{id}", tasks.UpdateHandler(svc, journal))
	mux.HandleFunc("DELETE /delete/{id}", tasks.DeleteHandler(svc, journal))

	// CORS
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	})

	handler := c.Handler(mux)

	log.Println("🚀 API server is running on", cfg.Addr())
	log.Fatal(http.ListenAndServe(cfg.Addr(), handler))
}
