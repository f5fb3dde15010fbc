package cli

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"selectkit/internal/catalog"
	"selectkit/internal/config"
	"selectkit/internal/domain"
	"selectkit/internal/eventbus"
	"selectkit/internal/logging"
	"selectkit/internal/selection"
)

var errNoCatalog = errors.New("no catalog: pass a catalog file, set `catalog` or `count` in the config, or use --count")

// flags shared by the picker and the summary command
type sessionFlags struct {
	configPath string
	mode       string
	layout     string
	columns    int
	count      int
	selected   []string
	disabled   []string
}

func (f *sessionFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVarP(&f.configPath, "config", "c", "", "config file (default ./"+config.FileName+" when present)")
	fs.StringVar(&f.mode, "mode", "", "selection mode: single or multi")
	fs.StringVar(&f.layout, "layout", "", "item layout: list or grid")
	fs.IntVar(&f.columns, "columns", 0, "grid columns")
	fs.IntVar(&f.count, "count", 0, "use a range catalog of this many items instead of a file")
	fs.StringSliceVar(&f.selected, "select", nil, "initially selected ids")
	fs.StringSliceVar(&f.disabled, "disable", nil, "ids that cannot be selected")
}

// session is everything a command needs to drive the engine
type session struct {
	cfg     *config.Config
	catalog *catalog.Catalog
	ctrl    *selection.Controller
	bus     eventbus.EventBus
	logs    io.Closer
}

// Close releases the log file
func (s *session) Close() error {
	return s.logs.Close()
}

// loadConfig reads the explicit config, the local one if present, or defaults
func (f *sessionFlags) loadConfig(bus eventbus.EventBus) (*config.Config, error) {
	svc := config.NewConfigServiceWithBus(bus)

	path := f.configPath
	if path == "" {
		if _, err := os.Stat(config.FileName); err != nil {
			return config.DefaultConfig(), nil
		}
		path = config.FileName
	}

	return svc.LoadFromPath(path)
}

// override applies flags that were set on the command line
func (f *sessionFlags) override(cmd *cobra.Command, cfg *config.Config) error {
	fs := cmd.Flags()
	if fs.Changed("mode") {
		cfg.Mode = f.mode
	}
	if fs.Changed("layout") {
		cfg.Layout = f.layout
	}
	if fs.Changed("columns") {
		cfg.Columns = f.columns
	}
	if fs.Changed("count") {
		cfg.Count = f.count
		cfg.Catalog = ""
	}
	if fs.Changed("select") {
		cfg.Selected = f.selected
	}
	if fs.Changed("disable") {
		cfg.Disabled = append(cfg.Disabled, f.disabled...)
	}
	return cfg.Validate()
}

func (f *sessionFlags) open(cmd *cobra.Command, args []string) (*session, error) {
	bus := eventbus.New()

	// the log file is only known once the config is read
	loadedFrom := ""
	unsub := bus.Subscribe(eventbus.EventConfigLoaded, func(e eventbus.DomainEvent) {
		loadedFrom = e.(eventbus.ConfigLoadedEvent).Path
	})
	cfg, err := f.loadConfig(bus)
	unsub()
	if err != nil {
		return nil, err
	}
	if err := f.override(cmd, cfg); err != nil {
		return nil, err
	}
	if len(args) > 0 {
		cfg.Catalog = args[0]
	}

	logs := logging.Setup(cfg.Log)
	if loadedFrom != "" {
		log.Printf("Loaded config from %s", loadedFrom)
	} else {
		log.Printf("Using default config")
	}

	bus.Subscribe(eventbus.EventError, func(e eventbus.DomainEvent) {
		ev := e.(eventbus.ErrorEvent)
		log.Printf("ERROR: %s: %v", ev.Message, ev.Err)
	})
	bus.Subscribe(eventbus.EventCatalogLoaded, func(e eventbus.DomainEvent) {
		ev := e.(eventbus.CatalogLoadedEvent)
		log.Printf("Catalog %s: %d items of %d", ev.Source, ev.Items, ev.Total)
	})
	bus.Subscribe(eventbus.EventSelectionChanged, func(e eventbus.DomainEvent) {
		ev := e.(eventbus.SelectionChangedEvent)
		log.Printf("Selection v%d: %s %v -> %d selected", ev.Version, ev.Action, ev.TargetIDs, len(ev.Selected))
	})

	cat, source, err := openCatalog(cfg)
	if err != nil {
		bus.Publish(eventbus.ErrorEvent{Message: "failed to open catalog", Err: err})
		logs.Close()
		return nil, err
	}
	cat.Disable(cfg.Disabled...)
	bus.Publish(eventbus.CatalogLoadedEvent{Source: source, Items: len(cat.IDs()), Total: cat.Len()})

	ctrl := selection.NewController(cfg.SelectionMode(), cat.Constraints(), cfg.Selected...)
	ctrl.SetBus(bus)

	return &session{cfg: cfg, catalog: cat, ctrl: ctrl, bus: bus, logs: logs}, nil
}

func openCatalog(cfg *config.Config) (*catalog.Catalog, string, error) {
	switch {
	case cfg.Catalog != "":
		cat, err := catalog.Load(cfg.Catalog)
		if err != nil {
			return nil, "", err
		}
		return cat, cfg.Catalog, nil
	case cfg.Count > 0:
		cat, err := catalog.NewRange(cfg.Count)
		if err != nil {
			return nil, "", err
		}
		return cat, fmt.Sprintf("range(%d)", cfg.Count), nil
	default:
		return nil, "", errNoCatalog
	}
}

func (s *session) layout() domain.Layout {
	return domain.Layout(s.cfg.Layout)
}
