package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"
	kongdotenv "github.com/titusjaka/kong-dotenv-go"

	"github.com/lox/weatherlookup/internal/api"
	"github.com/lox/weatherlookup/internal/display"
	"github.com/lox/weatherlookup/internal/store"
	"github.com/lox/weatherlookup/internal/ui"
	"github.com/lox/weatherlookup/internal/weather"
)

type CLI struct {
	EnvFile kongdotenv.ENVFileConfig `kong:"optional,name=env-file,default='.env',help='Path to .env file'"`

	SourceFlags `embed:""`

	Serve  ServeCmd  `cmd:"" default:"1" help:"Run the web server."`
	Lookup LookupCmd `cmd:"" help:"Print the weather for a city and exit."`
	TUI    TUICmd    `cmd:"" name:"tui" help:"Interactive terminal UI."`
}

// SourceFlags select and configure the weather source.
type SourceFlags struct {
	Source         string        `name:"source" env:"WEATHER_SOURCE" default:"mock" enum:"mock,openweathermap" help:"Weather source (mock, openweathermap)."`
	APIKey         string        `name:"api-key" env:"OPENWEATHERMAP_API_KEY" help:"OpenWeatherMap API key."`
	MockDelay      time.Duration `name:"mock-delay" env:"MOCK_DELAY" default:"1s" help:"Simulated latency of the mock source."`
	MockSeed       uint64        `name:"mock-seed" env:"MOCK_SEED" default:"0" help:"Seed for reproducible mock data (0 seeds from the clock)."`
	ForecastLabels string        `name:"forecast-labels" env:"FORECAST_LABELS" default:"fixed" enum:"fixed,actual" help:"Mock forecast day labels (fixed, actual)."`
}

func (f *SourceFlags) build() (weather.Source, error) {
	labels, err := weather.ParseLabelMode(f.ForecastLabels)
	if err != nil {
		return nil, err
	}
	return weather.New(weather.Config{
		Kind:           f.Source,
		APIKey:         f.APIKey,
		MockDelay:      f.MockDelay,
		MockSeed:       f.MockSeed,
		ForecastLabels: labels,
	})
}

type ServeCmd struct {
	Port        string `name:"port" env:"PORT" default:"8080" help:"HTTP server port."`
	DBPath      string `name:"db" env:"DB_PATH" default:"data/weatherlookup.db" help:"Path to SQLite database."`
	DefaultCity string `name:"default-city" env:"DEFAULT_CITY" default:"New York" help:"City shown when none is requested."`
}

func (c *ServeCmd) Run(flags *SourceFlags) error {
	source, err := flags.build()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(c.DBPath), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	db, err := store.Open(c.DBPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	st := store.New(db)
	if err := st.Migrate(); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	log.Println("database migrated")

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	server := api.NewServer(st, source, c.Port, c.DefaultCity)
	log.Printf("starting server on :%s (source %s)", c.Port, source.Name())
	return server.Run(ctx)
}

type LookupCmd struct {
	City    string        `arg:"" help:"City to look up."`
	Unit    string        `name:"unit" short:"u" default:"celsius" enum:"celsius,fahrenheit" help:"Temperature unit."`
	Timeout time.Duration `name:"timeout" default:"15s" help:"Give up after this long."`
}

func (c *LookupCmd) Run(flags *SourceFlags) error {
	source, err := flags.build()
	if err != nil {
		return err
	}
	unit, err := display.ParseUnit(c.Unit)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	ctx, cancelTimeout := context.WithTimeout(ctx, c.Timeout)
	defer cancelTimeout()

	resp, err := source.Fetch(ctx, c.City)
	if err != nil {
		return fmt.Errorf("lookup %q: %w", c.City, err)
	}
	fmt.Println(ui.RenderCards(display.Build(resp, unit)))
	return nil
}

type TUICmd struct {
	City string `arg:"" optional:"" env:"DEFAULT_CITY" default:"New York" help:"City to show on start."`
	Unit string `name:"unit" short:"u" default:"celsius" enum:"celsius,fahrenheit" help:"Temperature unit."`
}

func (c *TUICmd) Run(flags *SourceFlags) error {
	source, err := flags.build()
	if err != nil {
		return err
	}
	unit, err := display.ParseUnit(c.Unit)
	if err != nil {
		return err
	}

	// keep log output from tearing the alt screen
	log.SetOutput(io.Discard)

	p := tea.NewProgram(ui.NewModel(source, unit, c.City), tea.WithAltScreen())
	_, err = p.Run()
	return err
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("weatherlookup"),
		kong.Description("Current conditions and forecasts for any city."),
		kong.UsageOnError(),
	)
	if err := ctx.Run(&cli.SourceFlags); err != nil {
		log.Fatalf("%s: %v", ctx.Command(), err)
	}
}
