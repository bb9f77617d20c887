package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"

	auth "github.com/halledega/StudWalls/internal/auth"
	importer "github.com/halledega/StudWalls/internal/importer"
	report "github.com/halledega/StudWalls/internal/report"
	repo "github.com/halledega/StudWalls/internal/repo"
	section "github.com/halledega/StudWalls/internal/section"
	studwall "github.com/halledega/StudWalls/internal/studwall"
	wood "github.com/halledega/StudWalls/internal/wood"
)

var wg sync.WaitGroup

func CORS(mux *mux.Router) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		mux.ServeHTTP(w, r)
	})
}

// openLibrary opens (and on first run seeds) the persistent material and
// section library, then loads it as the calculator's material source.
func openLibrary() (*repo.LibraryStore, *wood.MemoryLibrary) {
	dir := os.Getenv("STUDWALLS_DB_DIR")
	if dir == "" {
		dir = "."
	}
	store, err := repo.OpenLibrary(dir)
	if err != nil {
		log.Fatal("library db error:", err)
	}
	if err := store.Seed(wood.DefaultLibrary().All(), section.Catalog()); err != nil {
		log.Fatal("library seed error:", err)
	}
	lib, err := store.Library()
	if err != nil {
		log.Fatal("library load error:", err)
	}
	return store, lib
}

func HandleList(mux *mux.Router, db *sql.DB, libStore *repo.LibraryStore, lib *wood.MemoryLibrary, results *repo.ResultStore) {
	userRepo := repo.NewPostgresUserDB(db)
	tokenKey := os.Getenv("TOKEN_KEY")
	if tokenKey == "" {
		log.Fatal("TOKEN_KEY environment variable is not set")
	}

	authEnv := &auth.Authenv{JWTkey: []byte(tokenKey), Repo: userRepo}

	limiter := auth.NewIPRateLimiter(1, 3)

	api := mux.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)

	api.HandleFunc("/login", authEnv.AuthHandler).Methods("POST")
	api.HandleFunc("/register", authEnv.RegisterHandler).Methods("POST")

	secureApi := api.PathPrefix("/user").Subrouter()
	secureApi.Use(authEnv.AuthMiddleware)

	calc := studwall.NewCalculator(lib)
	studwallH := &studwall.Handler{Engine: calc}
	reportH := &report.Handler{Calc: calc}
	importH := &importer.Handler{Calc: calc}
	resultsH := &repo.ResultsHandler{Calc: calc, Store: results}
	libraryH := &repo.LibraryHandler{Store: libStore}

	secureApi.HandleFunc("/tools/studwall/calc", studwallH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/studwall/batch", studwallH.Batch).Methods("POST")
	secureApi.HandleFunc("/tools/studwall/import", importH.Walls).Methods("POST")
	secureApi.HandleFunc("/tools/studwall/report/pdf", reportH.Generate).Methods("POST")

	secureApi.HandleFunc("/tools/studwall/results", resultsH.Save).Methods("POST")
	secureApi.HandleFunc("/tools/studwall/finalize", resultsH.Finalize).Methods("POST")
	secureApi.HandleFunc("/tools/studwall/finals", resultsH.Finals).Methods("GET")

	secureApi.HandleFunc("/tools/studwall/materials", libraryH.Materials).Methods("GET")
	secureApi.HandleFunc("/tools/studwall/sections", libraryH.Sections).Methods("GET")

	mainFileServer := http.FileServer(http.Dir("./static/main"))
	mux.PathPrefix("/").
		Handler(mainFileServer)
}
func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using process environment")
	}

	db := auth.InitDB()
	defer db.Close()

	libStore, lib := openLibrary()
	defer libStore.Close()

	results, err := repo.OpenWorkingStore()
	if err != nil {
		log.Fatal("working db error:", err)
	}
	defer results.Close()

	mux := mux.NewRouter()
	log.Println("Starting server on :443")
	HandleList(mux, db, libStore, lib, results)
	handler := CORS(mux)

	server := &http.Server{
		Addr:    ":443",
		Handler: handler,
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := server.ListenAndServeTLS("server.crt", "server.key"); err != nil && err != http.ErrServerClosed {
			log.Printf("Server error: %v", err)
		}
	}()

	<-ctx.Done()
	fmt.Println("Shutdown signal received!")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")

	wg.Wait()
}
