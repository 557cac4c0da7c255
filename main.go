package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	auth "Smeltline/internal/auth"
	batch "Smeltline/internal/calc/batch"
	bolt "Smeltline/internal/calc/bolt"
	furnace "Smeltline/internal/calc/furnace"
	gear "Smeltline/internal/calc/gear"
	importer "Smeltline/internal/calc/importer"
	ladle "Smeltline/internal/calc/ladle"
	report "Smeltline/internal/calc/report"
	shaft "Smeltline/internal/calc/shaft"
	catalog "Smeltline/internal/catalog"
	profile "Smeltline/internal/profile"
	repo "Smeltline/internal/repo"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
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

func HandleList(mux *mux.Router, db *sql.DB) {
	userRepo := repo.NewPostgresUserDB(db)

	tokenKey := os.Getenv("TOKEN_KEY")
	if tokenKey == "" {
		logrus.Fatal("TOKEN_KEY environment variable is not set")
	}

	authEnv := &auth.Authenv{JWTkey: []byte(tokenKey), Repo: userRepo}
	profileH := &profile.ProfileHandler{Repo: userRepo}

	limiter := auth.NewIPRateLimiter(1, 3)

	api := mux.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)

	api.HandleFunc("/login", authEnv.AuthHandler).Methods("POST")
	api.HandleFunc("/register", authEnv.RegisterHandler).Methods("POST")

	secureApi := api.PathPrefix("/user").Subrouter()
	secureApi.Use(authEnv.AuthMiddleware)

	secureApi.HandleFunc("/profile", profileH.GetProfile).Methods("GET")
	secureApi.HandleFunc("/profile", profileH.UpdateProfile).Methods("PATCH", "PUT")
	secureApi.HandleFunc("/profile/{id:[0-9]+}", profileH.GetProfile).Methods("GET")

	catalogH := &catalog.Handler{}
	secureApi.HandleFunc("/catalog/furnace", catalogH.Furnaces).Methods("GET")
	secureApi.HandleFunc("/catalog/materials", catalogH.Materials).Methods("GET")
	secureApi.HandleFunc("/catalog/threads", catalogH.ThreadTable).Methods("GET")

	sessions := furnace.NewStore()
	furnaceH := &furnace.Handler{Sessions: sessions}
	secureApi.HandleFunc("/tools/furnace/session", furnaceH.CreateSession).Methods("POST")
	secureApi.HandleFunc("/tools/furnace/override", furnaceH.Override).Methods("POST")
	secureApi.HandleFunc("/tools/furnace/state", furnaceH.State).Methods("GET")

	ladleH := &ladle.Handler{}
	shaftH := &shaft.Handler{}
	gearH := &gear.Handler{}
	boltH := &bolt.Handler{}
	batchH := &batch.Handler{}
	importerH := &importer.Handler{}
	reportH := &report.Handler{Sessions: sessions}

	secureApi.HandleFunc("/tools/ladle/calc", ladleH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/shaft/calc", shaftH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/gear/calc", gearH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/bolt/calc", boltH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/furnace/batch", batchH.Furnace).Methods("POST")
	secureApi.HandleFunc("/tools/furnace/import", importerH.Furnace).Methods("POST")
	secureApi.HandleFunc("/tools/report/pdf", reportH.GeneratePDF).Methods("POST")
	secureApi.HandleFunc("/tools/report/xlsx", reportH.GenerateXLSX).Methods("POST")
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := godotenv.Load(); err != nil {
		logrus.Info("no .env file, using process environment")
	}

	if path := os.Getenv("CATALOG_PATH"); path != "" {
		if err := catalog.LoadOverlay(path); err != nil {
			logrus.WithError(err).Fatal("loading catalog overlay")
		}
	}

	db := auth.InitDB()
	defer db.Close()

	router := mux.NewRouter()
	HandleList(router, db)
	handler := CORS(router)

	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = ":8443"
	}

	server := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		logrus.WithField("addr", addr).Info("starting server")
		cert, key := os.Getenv("TLS_CERT"), os.Getenv("TLS_KEY")
		var err error
		if cert != "" && key != "" {
			err = server.ListenAndServeTLS(cert, key)
		} else {
			err = server.ListenAndServe()
		}
		if err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("server error")
		}
	}()

	<-ctx.Done()
	logrus.Info("shutdown signal received, closing active connections")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Fatal("server shutdown")
	}
	logrus.Info("server stopped")

	wg.Wait()
}
