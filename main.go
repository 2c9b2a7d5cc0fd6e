package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"meetlottery/internal/config"
	"meetlottery/internal/domain"
	"meetlottery/internal/eventbus"
	"meetlottery/internal/lottery"
	"meetlottery/internal/roster"
	"meetlottery/internal/scrape"
	"meetlottery/internal/ui"
)

func main() {
	// Parse command line arguments
	var (
		source     string
		configPath string
		thinking   float64
		logPath    string
	)
	flag.StringVar(&source, "source", "", "Meeting page, JSON endpoint or websocket URL to read participants from")
	flag.StringVar(&configPath, "config", "", "Path to the config file (TOML, or YAML for .yaml/.yml)")
	flag.Float64Var(&thinking, "thinking", -1, "Thinking time in seconds before the winner is shown")
	flag.StringVar(&logPath, "log", "meetlottery.log", "Path to the log file")
	flag.Parse()

	if source == "" && flag.NArg() > 0 {
		source = flag.Arg(0)
	}

	// Set up logging
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	// A missing .env is fine
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("Could not load .env: %v", err)
	}

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Create event bus
	bus := eventbus.New()
	defer bus.Close()

	configSvc := config.NewConfigServiceWithBus(bus, configPath)
	cfg := loadConfig(configSvc)
	autosave := cfg.UISettings.Autosave

	// Flags win over the config file and the environment
	if source != "" {
		cfg.Source.Location = source
	}
	if thinking >= 0 {
		cfg.ThinkingSeconds = config.ClampThinkingSeconds(thinking)
	}

	// Save the thinking time when it is changed from the UI. Only that key
	// is written; flag and environment overrides stay out of the file.
	bus.Subscribe(eventbus.EventConfigChanged, func(e eventbus.DomainEvent) {
		event, ok := e.(domain.ConfigChangedEvent)
		if !ok || !autosave {
			return
		}
		err := configSvc.Update(func(stored *config.Config) {
			stored.ThinkingSeconds = event.ThinkingSeconds
		})
		if err != nil {
			log.Printf("Failed to save config: %v", err)
			bus.Publish(domain.ErrorEvent{Message: "Could not save settings", Err: err})
		} else {
			log.Printf("Config saved to %s", configSvc.Path())
		}
	})

	// Initialize services
	src := scrape.NewSource(scrape.Options{
		Location: cfg.Source.Location,
		Format:   cfg.Source.Format,
		Timeout:  time.Duration(cfg.Source.TimeoutSeconds * float64(time.Second)),
		Selectors: scrape.Selectors{
			Names:      cfg.Source.NameSelector,
			Avatars:    cfg.Source.AvatarSelector,
			AvatarAttr: cfg.Source.AvatarAttr,
			Online:     cfg.Source.OnlineSelector,
		},
	})
	log.Printf("Using %s source %q", src.Name(), cfg.Source.Location)

	bridge := scrape.NewBridge(src, bus)
	store := roster.NewStore(bus)
	engine := lottery.NewEngine(bus)

	// Create UI model
	uiModel := ui.NewModel(bus, cfg, store, engine, bridge)
	uiModel.SetContext(ctx)

	p := tea.NewProgram(uiModel, tea.WithAltScreen(), tea.WithContext(ctx))
	uiModel.SetProgram(p)

	// Create event channel for UI
	eventChan := make(chan eventbus.DomainEvent, 100)
	forwardEvent := func(e eventbus.DomainEvent) {
		select {
		case eventChan <- e:
		default:
			log.Println("Event channel full, dropping event")
		}
	}
	for _, eventType := range []eventbus.EventType{
		eventbus.EventSelectionStarted,
		eventbus.EventSelectionCompleted,
		eventbus.EventSelectionCancelled,
		eventbus.EventScrapeUnavailable,
		eventbus.EventConfigSaved,
		eventbus.EventError,
	} {
		bus.Subscribe(eventType, forwardEvent)
	}

	// Start forwarding events to UI in background
	go func() {
		for event := range eventChan {
			p.Send(ui.EventMsg{Event: event})
		}
	}()

	// Handle interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	// Run the UI
	log.Printf("Starting UI...")
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		log.Printf("Error running program: %v", err)
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
	log.Printf("UI exited normally")

	shutdown(cancel, engine, bridge)
}

// shutdown stops pending work. cancel must run before the bridge is waited
// on: a source without a timeout only returns once its context is done.
func shutdown(cancel context.CancelFunc, engine *lottery.Engine, bridge *scrape.Bridge) {
	engine.CancelPending()
	cancel()
	bridge.Wait()
}

// loadConfig loads the config file, falling back to defaults on error
func loadConfig(configSvc config.ConfigService) *config.Config {
	cfg, err := configSvc.Load()
	if err != nil {
		log.Printf("Error loading config: %v", err)
		cfg = config.DefaultConfig()
		if err := config.ApplyEnv(cfg); err != nil {
			log.Printf("Error applying environment: %v", err)
		}
		return cfg
	}
	log.Printf("Loaded config from %s", configSvc.Path())
	return cfg
}
