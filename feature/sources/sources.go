package sources

import (
	"fmt"
	"os"

	"pass-finder/core/availability"
	"pass-finder/core/transport"
	"pass-finder/feature/sources/bibliocommons"
	"pass-finder/feature/sources/scrape"
	"pass-finder/feature/sources/vega"

	"github.com/goccy/go-yaml"
	"go.uber.org/zap"
)

// New builds one source per adapter kind. The scrape source is left out when the
// browser scrape is disabled.
func New(cfg Config, scrapeCfg scrape.Config, logger *zap.Logger) map[availability.Kind]availability.Source {
	client := transport.NewClient(cfg.HTTP)

	srcs := map[availability.Kind]availability.Source{
		availability.KindBiblioCommons: bibliocommons.New(cfg.BiblioCommonsURL, client, logger),
		availability.KindVega:          vega.New(cfg.VegaURL, client, logger),
	}
	if scrapeCfg.Enabled {
		scraper := scrape.NewScraper(scrape.NewChromeLauncher(scrapeCfg), logger)
		srcs[availability.KindScrape] = scrape.NewSource(scraper, logger)
	}
	return srcs
}

// systemsFile is the YAML layout of a library system table.
type systemsFile struct {
	Systems []availability.SystemConfig `yaml:"systems"`
}

// LoadSystems returns the library system table from path, or the built-in table when
// path is empty.
func LoadSystems(path string) ([]availability.SystemConfig, error) {
	if path == "" {
		return availability.DefaultSystems(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read systems file: %w", err)
	}
	return ParseSystems(data)
}

// ParseSystems decodes a YAML library system table.
func ParseSystems(data []byte) ([]availability.SystemConfig, error) {
	var f systemsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse systems file: %w", err)
	}
	if len(f.Systems) == 0 {
		return nil, fmt.Errorf("systems file lists no library systems")
	}
	return f.Systems, nil
}

// EngineConfig assembles the orchestrator configuration.
func EngineConfig(cfg Config, systems []availability.SystemConfig) availability.Config {
	return availability.Config{
		Systems:        systems,
		SourceTimeout:  cfg.FetchTimeout(),
		MaxConcurrency: cfg.MaxConcurrency,
	}
}
