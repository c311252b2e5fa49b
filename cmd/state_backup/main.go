package main

import (
	"context"
	"flag"
	"log"
	"os"
	"strings"
	"time"

	"github.com/2beens/lifearchitect/internal"
	"github.com/2beens/lifearchitect/internal/backup"
	"github.com/2beens/lifearchitect/internal/config"
	"gopkg.in/natefinch/lumberjack.v2"
)

// dashboard state google drive backup cmd

func main() {
	env := flag.String("env", "production", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path to TOML config file")
	credentialsFile := flag.String(
		"gd-creds",
		"./lifearchitect-drive-credentials.json",
		"google drive service account credentials json",
	)
	logsPath := flag.String("logs-path", "/var/log/lifearchitect/state-backup.log", "logs file path (empty for stdout)")
	list := flag.Bool("list", false, "only list existing backups")
	flag.Parse()

	loggingSetup(*logsPath)

	log.Println("starting dashboard state backup ...")

	if *credentialsFile == "" {
		log.Fatalln("google drive credentials json not specified")
	}
	credentialsFileBytes, err := os.ReadFile(*credentialsFile)
	if err != nil {
		log.Fatalf("unable to read credentials file: %v", err)
	}

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	remote, err := backup.NewDriveRemote(ctx, credentialsFileBytes)
	if err != nil {
		log.Fatalf("google drive remote: %s", err)
	}

	stateStore, err := internal.OpenStateStore(ctx, internal.StateStoreParams{
		Config:           cfg,
		RedisPassword:    os.Getenv("LIFEARCHITECT_REDIS_PASS"),
		PostgresPassword: os.Getenv("LIFEARCHITECT_POSTGRES_PASS"),
	})
	if err != nil {
		log.Fatalf("open state store: %s", err)
	}
	defer stateStore.Close()

	s := backup.NewService(remote, stateStore.Store, nil, time.Now)

	if *list {
		files, err := s.Files(ctx)
		if err != nil {
			log.Fatalf("list backups: %s", err)
		}
		for _, f := range files {
			log.Printf("%s\t%s\t%d bytes", f.CreatedTime, f.Name, f.Size)
		}
		log.Printf("%d backups found", len(files))
		return
	}

	fileID, err := s.DoBackup(ctx)
	if err != nil {
		log.Fatalf("%+v", err)
	}
	log.Printf("backup done, file id: %s", fileID)
}

func loggingSetup(logFileName string) {
	if logFileName == "" {
		log.SetOutput(os.Stdout)
		return
	}

	if !strings.HasSuffix(logFileName, ".log") {
		logFileName += ".log"
	}

	log.SetOutput(&lumberjack.Logger{
		Filename:  logFileName,
		MaxSize:   50,    // megabytes
		LocalTime: false, // false -> use UTC
		Compress:  true,
	})
}
