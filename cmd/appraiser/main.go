package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"CraneAppraiser/internal/config"
	"CraneAppraiser/internal/model"
	"CraneAppraiser/internal/recorder"
	"CraneAppraiser/internal/refdata"
	"CraneAppraiser/internal/report"
	"CraneAppraiser/internal/scheduler"
	"CraneAppraiser/internal/valuation"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] CraneAppraiser starting...")

	if err := godotenv.Load(); err != nil {
		log.Println("[INFO] no .env file found, using environment variables")
	}

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Reference sources: curated YAML tables plus whichever listings feed
	// is configured.
	yamlSrc := &refdata.YAMLSource{
		TrendPath:   cfg.Reference.TrendFile,
		ProfilePath: cfg.Reference.ProfileFile,
		IntelPath:   cfg.Reference.IntelFile,
	}
	var listings refdata.ListingsSource
	if cfg.Reference.ListingsAPI.BaseURL != "" {
		listings = refdata.NewAPIListingsSource(cfg.Reference.ListingsAPI.BaseURL, cfg.Reference.ListingsAPI.APIKey)
	} else {
		listings = &refdata.WorkbookSource{Path: cfg.Reference.ListingsWorkbook}
	}
	log.Printf("[INFO] listings source: %s", listings.Name())

	loader := &refdata.Loader{
		Trend:       yamlSrc,
		Listings:    listings,
		Performance: yamlSrc,
		Intel:       yamlSrc,
		CachePath:   cfg.Reference.CacheFile,
	}

	// Initial snapshot load
	store := refdata.NewStore(loader.Load())
	engine := valuation.NewEngine()

	// Init recorder
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	// One-shot mode: appraise a request file and exit.
	if len(os.Args) > 1 {
		if err := appraiseFile(os.Args[1], engine, store, rec); err != nil {
			log.Fatalf("[FATAL] %v", err)
		}
		return
	}

	// Serve mode: keep the refresh scheduler running for an embedding
	// API layer.
	sched := scheduler.NewScheduler(loader, store, rec)
	if err := sched.Register(cfg.Schedule.RefreshCron); err != nil {
		log.Fatalf("[FATAL] register refresh task: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	log.Println("[INFO] CraneAppraiser is running. Press Ctrl+C to stop.")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
}

// appraiseFile runs a single appraisal from a YAML request file.
func appraiseFile(path string, engine *valuation.Engine, store *refdata.Store, rec recorder.Recorder) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read request: %w", err)
	}
	spec, err := model.ParseEquipmentRequest(data)
	if err != nil {
		return fmt.Errorf("invalid request: %w", err)
	}

	result := engine.Appraise(spec, store.Active())

	requestID := uuid.NewString()
	if err := rec.RecordAppraisal(&recorder.AppraisalRecord{
		RequestID: requestID,
		Spec:      spec,
		Result:    result,
	}); err != nil {
		log.Printf("[WARN] record appraisal: %v", err)
	}

	fmt.Print(report.FormatAppraisal(spec, result))
	log.Printf("[INFO] appraisal %s complete: estimated $%.0f, confidence %d",
		requestID, result.EstimatedValue, result.ConfidenceScore)
	return nil
}
