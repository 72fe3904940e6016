package main

import (
	"flag"
	"fmt"
	"log"

	"mysql-mcp-server/mcp"

	_ "github.com/denisenkom/go-mssqldb"
	_ "github.com/go-sql-driver/mysql"
	_ "github.com/godror/godror"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"github.com/sirupsen/logrus"
)

func main() {
	envFile := flag.String("env-file", "", "dotenv file to load before reading the environment (default .env)")
	flag.Parse()

	if *envFile != "" {
		if err := godotenv.Load(*envFile); err != nil {
			log.Fatalf("Error loading %s: %v", *envFile, err)
		}
	} else {
		_ = godotenv.Load()
	}

	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	logger, cleanup, err := mcp.NewLogger()
	if err != nil {
		return fmt.Errorf("error setting up logger: %w", err)
	}
	defer cleanup()

	cfg, err := mcp.LoadConfig()
	if err != nil {
		logger.WithError(err).Error("Missing or invalid database configuration. MYSQL_USER, MYSQL_PASSWORD and MYSQL_DATABASE are required")
		return fmt.Errorf("error loading configuration: %w", err)
	}

	// Define MCP Server
	mcpServer, err := mcp.NewMcpServer(cfg, logger)
	if err != nil {
		return fmt.Errorf("error setting up MCP server: %w", err)
	}

	logger.WithFields(logrus.Fields{
		"driver":   cfg.Driver,
		"host":     cfg.Host,
		"database": cfg.Database,
	}).Info("Starting MySQL MCP server")

	// Start server in stdio
	if err = mcpServer.Start(); err != nil {
		logger.WithError(err).Error("Server error")
		return fmt.Errorf("error starting server: %w", err)
	}
	return nil
}
