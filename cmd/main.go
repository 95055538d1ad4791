package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go_todo_api/config"
	"go_todo_api/server"
	"go_todo_api/services/todolist"
	"go_todo_api/sqlstorage"
)

const shutdownTimeout = 5 * time.Second

func main() {
	cfg := config.New()

	storage, err := sqlstorage.New(cfg)
	if err != nil {
		log.Fatal(err)
	}

	defer storage.Close()

	todoService := todolist.New(storage)

	apiServer := server.New(cfg, todoService)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := apiServer.Start(); err != nil {
			if errors.Is(err, http.ErrServerClosed) {
				log.Println("Server stopped.")
			} else {
				log.Fatal(err)
			}
		}
	}()

	log.Printf("Service started on port %s (%s).\n", cfg.Port, cfg.DBDriver)

	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := apiServer.Stop(ctx); err != nil {
		log.Println("Stop:", err)
	}

	log.Println("Service stopped.")
}
