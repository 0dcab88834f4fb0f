package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Kostiantyn78/ImageHub/internal/config"
	"github.com/Kostiantyn78/ImageHub/internal/db"
	"github.com/Kostiantyn78/ImageHub/internal/mail"
	"github.com/Kostiantyn78/ImageHub/internal/modules"
	"github.com/Kostiantyn78/ImageHub/internal/platform/cloud"
	"github.com/Kostiantyn78/ImageHub/internal/redisx"
	"github.com/Kostiantyn78/ImageHub/internal/router"

	"github.com/gin-gonic/gin"
)

func main() {
	configDir := flag.String("config", "", "directory holding config.yaml")
	flag.Parse()

	config.InitConfig(*configDir)
	cfg := config.Get()

	gdb, err := db.Open(cfg.Database)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer redisx.Close()

	gateway, err := cloud.NewCloudinaryGateway(cfg.Cloudinary)
	if err != nil {
		log.Fatalf("init media gateway: %v", err)
	}

	appModules := modules.New(gdb, gateway, mail.NewSMTPSender())

	gin.SetMode(cfg.Server.Mode)
	r := gin.Default()
	router.NewRouter(appModules).Init(r)

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: r,
	}

	go func() {
		log.Printf("listening on :%s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server: %s", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("forced shutdown: ", err)
	}
	log.Println("server exited")
}
