package main

import (
	"bufio"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/gorilla/handlers"

	"github.com/wzshiming/handoff/pkg/accesslog"
	"github.com/wzshiming/handoff/pkg/grpcverify"
	"github.com/wzshiming/handoff/pkg/handoff"
	"github.com/wzshiming/handoff/pkg/httpverify"
	"github.com/wzshiming/handoff/pkg/server"
	"github.com/wzshiming/handoff/pkg/storage"
)

// Config holds the server configuration
type Config struct {
	Addr       string
	DataDir    string
	ConfigFile string
	Region     string
	HTTPMode   bool
}

// loadSettings reads a config file of handoff_* key=value lines. Blank
// lines and lines starting with # are skipped.
func loadSettings(path string) (map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	settings := make(map[string]string)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		settings[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return settings, scanner.Err()
}

// createServer creates and configures the gateway
func createServer(cfg *Config) (http.Handler, error) {
	base := handoff.DefaultConfig()
	base.GRPCMode = !cfg.HTTPMode
	store := handoff.NewStore(base)

	if cfg.ConfigFile != "" {
		settings, err := loadSettings(cfg.ConfigFile)
		if err != nil {
			return nil, err
		}
		if err := store.Apply(settings); err != nil {
			return nil, err
		}
	}

	snapshot := store.Load()
	var verifier handoff.Verifier
	if snapshot.GRPCMode {
		client, err := grpcverify.New(snapshot)
		if err != nil {
			return nil, err
		}
		store.Watch(client.ConfigChanged)
		verifier = client
		log.Printf("Dispatching to authenticator over gRPC at %s", snapshot.GRPCURI)
	} else {
		client := httpverify.New(snapshot)
		store.Watch(client.ConfigChanged)
		verifier = client
		log.Printf("Dispatching to authenticator over HTTP at %s", snapshot.HTTPURI)
	}

	engine := handoff.NewEngine(store, verifier)

	st, err := storage.NewStorage(cfg.DataDir)
	if err != nil {
		return nil, err
	}

	// Runtime settings are reloaded on SIGHUP. A bad file leaves the
	// current snapshot in place.
	if cfg.ConfigFile != "" {
		hup := make(chan os.Signal, 1)
		signal.Notify(hup, syscall.SIGHUP)
		go func() {
			for range hup {
				settings, err := loadSettings(cfg.ConfigFile)
				if err != nil {
					log.Printf("Config reload failed: %v", err)
					continue
				}
				if err := store.Apply(settings); err != nil {
					log.Printf("Config reload rejected: %v", err)
					continue
				}
				log.Printf("Config reloaded from %s", cfg.ConfigFile)
			}
		}()
	}

	s3 := server.NewS3Handler(st, engine, server.WithRegion(cfg.Region))

	var handler http.Handler = accesslog.NewLogger(s3, log.Default())
	handler = handlers.RecoveryHandler(handlers.PrintRecoveryStack(true))(handler)
	return handler, nil
}

func main() {
	cfg := &Config{}
	flag.StringVar(&cfg.Addr, "addr", ":8080", "Address to listen on")
	flag.StringVar(&cfg.DataDir, "data-dir", "./data", "Directory to store data")
	flag.StringVar(&cfg.ConfigFile, "config", "", "Path to handoff settings file (key=value lines, reloaded on SIGHUP)")
	flag.StringVar(&cfg.Region, "region", "us-east-1", "Region reported to clients")
	flag.BoolVar(&cfg.HTTPMode, "http-authenticator", false, "Dispatch to the authenticator over HTTP instead of gRPC")
	flag.Parse()

	handler, err := createServer(cfg)
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}

	log.Printf("Listening on %s, data in %s", cfg.Addr, cfg.DataDir)
	if err := http.ListenAndServe(cfg.Addr, handler); err != nil {
		log.Fatal(err)
	}
}
