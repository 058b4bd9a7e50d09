package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"saarthi-api/internal/config"
	"saarthi-api/internal/export"
	"saarthi-api/internal/models"
	"saarthi-api/internal/pacing"
	"saarthi-api/internal/safety"
	"saarthi-api/internal/service"
	"saarthi-api/internal/tomtom"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	from := flag.String("from", "", "Start address")
	to := flag.String("to", "", "Destination address")
	kmlPath := flag.String("kml", "", "Write the scored routes to this KML file")
	configDir := flag.String("config", "configs", "Directory holding app.env")
	flag.Parse()

	if *from == "" || *to == "" {
		fmt.Println("Error: --from and --to flags are required")
		os.Exit(1)
	}

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	cfg, err := config.LoadConfig(*configDir)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(level)
	}

	tables, err := safety.LoadTables(cfg.HeuristicsFile)
	if err != nil {
		fmt.Printf("Error loading heuristics: %v\n", err)
		os.Exit(1)
	}

	clock, err := cfg.PeakClock()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	client := tomtom.NewClient(cfg.TomTomAPIKey,
		tomtom.WithBaseURL(cfg.TomTomBaseURL),
		tomtom.WithCountrySet(cfg.TomTomCountrySet),
		tomtom.WithTimeout(cfg.ProviderTimeout),
		tomtom.WithPacer(pacing.NewPacer(cfg.ProviderMinInterval)),
	)
	collector := safety.NewCollector(client, tables, safety.WithClock(clock))
	routes := service.NewRouteService(client, collector,
		service.WithSampleCount(cfg.RouteSamplePoints),
		service.WithPointDelay(cfg.RoutePointDelay),
	)
	search := service.NewRouteSearchService(service.NewGeoCodeService(client), routes)

	fmt.Printf("Scoring routes from %q to %q\n", *from, *to)

	result, err := search.SearchRoutes(ctx, *from, *to)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	printResult(result)

	if *kmlPath != "" {
		if err := writeKML(*kmlPath, result); err != nil {
			fmt.Printf("Error writing KML: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %d routes to %s\n", len(result.Options), *kmlPath)
	}
}

func printResult(result *models.RouteSearchResult) {
	fmt.Printf("From: %s (%.5f, %.5f)\n", result.Start.Address, result.Start.Latitude, result.Start.Longitude)
	fmt.Printf("To:   %s (%.5f, %.5f)\n", result.End.Address, result.End.Latitude, result.End.Longitude)

	for _, opt := range result.Options {
		fmt.Printf("\n%s: %d/100 %s, %s, %s\n", opt.Description, opt.Safety.OverallScore, opt.SafetyDescription, opt.Distance, opt.Duration)
		f := opt.Safety.Factors
		fmt.Printf("  lighting %d, density %d, police %d, hospitals %d, road %d, incidents %d, area %d\n",
			f.Lighting, f.PopulationDensity, f.PoliceStations, f.Hospitals, f.RoadType, f.TrafficIncidents, f.AreaSafety)
		if len(opt.Safety.Warnings) > 0 {
			fmt.Printf("  warnings: %s\n", strings.Join(opt.Safety.Warnings, "; "))
		}
		fmt.Printf("  advice:   %s\n", strings.Join(opt.Safety.Recommendations, "; "))
		fmt.Printf("  pros:     %s\n", strings.Join(opt.Advantages, "; "))
		fmt.Printf("  cons:     %s\n", strings.Join(opt.Disadvantages, "; "))
	}
}

func writeKML(path string, result *models.RouteSearchResult) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := export.WriteKML(f, result); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
