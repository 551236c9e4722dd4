package main

import (
	"flag"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/clinicdir/directory-data-service/internal/system/config"
	"github.com/clinicdir/directory-data-service/internal/system/constants"
	"github.com/clinicdir/directory-data-service/internal/system/database/document"
	dbprovider "github.com/clinicdir/directory-data-service/internal/system/database/provider"
	"github.com/clinicdir/directory-data-service/internal/system/log"
	"github.com/clinicdir/directory-data-service/internal/system/managers"
	"github.com/clinicdir/directory-data-service/internal/system/workers"
)

func main() {
	ddsHome := getDDSHome()
	const configFile = "repository/conf/deployment.yaml"

	envFiles, _ := filepath.Glob("config/*.env")
	_ = godotenv.Load(envFiles...)

	// Load the configuration file
	ddsConfig, err := config.LoadConfig(ddsHome, configFile)
	if err != nil {
		stdlog.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize runtime configurations.
	if err := config.InitializeDDSRuntime(ddsHome, ddsConfig); err != nil {
		stdlog.Fatalf("Failed to initialize runtime: %v", err)
	}

	// Initialize logger
	if err := log.Init(ddsConfig.Log.LogLevel); err != nil {
		stdlog.Fatalf("Failed to initialize logger: %v", err)
	}
	logger := log.GetLogger()

	// Apply the listing schema when a bootstrap script is shipped alongside
	// the deployment config.
	const schemaFile = "repository/dbscripts/listing.sql"
	if _, statErr := os.Stat(filepath.Join(ddsHome, schemaFile)); statErr == nil {
		dbClient, dbErr := dbprovider.NewDBProvider().GetDBClient()
		if dbErr != nil {
			logger.Fatal("Failed to connect to the datasource", log.Error(dbErr))
		}
		if err := dbClient.InitDatabase(ddsHome, schemaFile); err != nil {
			logger.Warn("Failed to apply listing schema", log.Error(err))
		}
	}

	// Connect the draft document store.
	document.Connect(ddsConfig.DocumentStore.URI, ddsConfig.DocumentStore.Database)

	// Start the bulk import queue.
	workers.StartImportWorker()

	serverAddr := fmt.Sprintf("%s:%d", ddsConfig.Addr.Host, ddsConfig.Addr.Port)
	mux := enableCORS(initMultiplexer())

	ln, err := net.Listen("tcp", serverAddr)
	if err != nil {
		logger.Fatal("Failed to start listener", log.Error(err))
	}
	logger.Info(fmt.Sprintf("Directory data service started on: %v", serverAddr))

	server := &http.Server{Handler: mux}
	if err := server.Serve(ln); err != nil {
		logger.Error("Failed to serve requests", log.Error(err))
	}
}

// initMultiplexer initializes the HTTP multiplexer and registers the services.
func initMultiplexer() *http.ServeMux {

	mux := http.NewServeMux()
	serviceManager := managers.NewServiceManager(mux)

	// Register the services.
	if err := serviceManager.RegisterServices(constants.ApiBasePath); err != nil {
		log.GetLogger().Error("Failed to register the services", log.Error(err))
	}

	return mux
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS, PATCH")
		w.Header().Set("Access-Control-Allow-Headers", "*")
		w.Header().Set("Access-Control-Expose-Headers", "Content-Length")
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func getDDSHome() string {

	projectHome := ""
	projectHomeFlag := flag.String("ddsHome", "", "Path to the directory data service home directory")
	flag.Parse()

	if *projectHomeFlag != "" {
		projectHome = *projectHomeFlag
	} else {
		// If no command line argument is provided, use the current working directory.
		dir, dirErr := os.Getwd()
		if dirErr != nil {
			stdlog.Fatalf("Failed to get current working directory: %v", dirErr)
		}
		projectHome = dir
	}

	return projectHome
}
