// Package main runs the dashboard context MCP server over stdio.
// The same tools are mounted on the main service at /mcp over HTTP.
package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/2beens/lifearchitect/internal"
	"github.com/2beens/lifearchitect/internal/architect"
	architectmcp "github.com/2beens/lifearchitect/internal/architect/mcp"
	"github.com/2beens/lifearchitect/internal/config"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path to TOML config file")
	flag.Parse()

	// stdout carries the protocol
	log.SetOutput(os.Stderr)

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	loc, err := cfg.Location()
	if err != nil {
		log.Fatalf("config timezone: %v", err)
	}

	ctx := context.Background()
	stateStore, err := internal.OpenStateStore(ctx, internal.StateStoreParams{
		Config:           cfg,
		RedisPassword:    os.Getenv("LIFEARCHITECT_REDIS_PASS"),
		PostgresPassword: os.Getenv("LIFEARCHITECT_POSTGRES_PASS"),
	})
	if err != nil {
		log.Fatalf("open state store: %v", err)
	}
	defer stateStore.Close()

	service, err := architect.NewService(ctx, architect.Params{
		Store:    stateStore.Store,
		Location: loc,
	})
	if err != nil {
		log.Fatalf("dashboard service: %v", err)
	}
	defer service.Close()

	server := architectmcp.NewServer(service, stateStore.Store)
	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		log.Fatal(err)
	}
}
