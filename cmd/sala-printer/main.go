package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"

	"github.com/phapquanghoasen/sala-printer/internal/config"
	"github.com/phapquanghoasen/sala-printer/internal/discovery"
	"github.com/phapquanghoasen/sala-printer/internal/format"
	"github.com/phapquanghoasen/sala-printer/internal/layout"
	"github.com/phapquanghoasen/sala-printer/internal/model"
	"github.com/phapquanghoasen/sala-printer/internal/printer"
	"github.com/phapquanghoasen/sala-printer/internal/store"
	"github.com/phapquanghoasen/sala-printer/internal/watcher"
)

const (
	appName    = "Sala Printer"
	configFile = "config/config.json"
)

// --- Main ---

func main() {
	configPath := flag.String("config", configFile, "path to the agent config file")
	discover := flag.Bool("discover", false, "scan the local subnet for printers and exit")
	flag.Parse()

	if *discover {
		fmt.Println("Scanning local subnet for printers...")
		ips, err := discovery.Scan(model.DefaultPrinterPort)
		if err != nil {
			log.Fatal("Discovery error:", err)
		}
		for _, ip := range ips {
			fmt.Printf("Found printer at %s:%d\n", ip, model.DefaultPrinterPort)
		}
		if len(ips) == 0 {
			fmt.Println("No printers found.")
		}
		return
	}

	cfg, err := config.LoadOrSetup(*configPath)
	if err != nil {
		log.Fatal("Config error:", err)
	}

	ctx := context.Background()
	app, err := firebase.NewApp(ctx,
		&firebase.Config{ProjectID: cfg.ProjectID},
		option.WithCredentialsFile(cfg.CredentialsFile),
	)
	if err != nil {
		log.Fatal("Firebase error:", err)
	}
	client, err := app.Firestore(ctx)
	if err != nil {
		log.Fatal("Firestore error:", err)
	}
	defer client.Close()

	fs := store.NewFirestore(client, cfg.UID)

	engine, err := layout.NewEngine(layout.DefaultConfig(), format.VND)
	if err != nil {
		log.Fatal("Layout error:", err)
	}
	pr := printer.New(fs, engine, printer.WithTimeout(cfg.SendTimeout()))

	watchers := []*watcher.Watcher{
		watcher.Start(fs, model.JobClient, pr.PrintClient),
		watcher.Start(fs, model.JobKitchen, pr.PrintKitchen),
	}
	log.Printf("--- %s running. Watching %d print queues ---", appName, len(watchers))

	// Wait for interrupt to exit cleanly
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c
	fmt.Println("\nShutting down...")
	for _, w := range watchers {
		w.Stop()
	}
}
