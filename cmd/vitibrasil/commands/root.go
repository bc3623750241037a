// Package commands CLI para consultar Vitibrasil sin pasar por la API HTTP.
package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jhoicas/vitivinicultura-api/internal/infrastructure/vitibrasil"
	"github.com/jhoicas/vitivinicultura-api/pkg/logger"
)

type globalFlags struct {
	baseURL     string
	timeout     time.Duration
	concurrency int
	maxYears    int
	logLevel    string
}

// NewRootCmd construye el árbol de comandos.
func NewRootCmd() *cobra.Command {
	g := &globalFlags{}
	root := &cobra.Command{
		Use:           "vitibrasil",
		Short:         "vitibrasil consulta las tablas de Embrapa Vitibrasil desde la terminal.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&g.baseURL, "base-url", envOr("SCRAPER_BASE_URL", "http://vitibrasil.cnpuv.embrapa.br"), "URL base de Vitibrasil")
	root.PersistentFlags().DurationVar(&g.timeout, "timeout", 30*time.Second, "timeout por petición")
	root.PersistentFlags().IntVar(&g.concurrency, "concurrency", 4, "años consultados en paralelo")
	root.PersistentFlags().IntVar(&g.maxYears, "max-years", vitibrasil.DefaultMaxYears, "máximo de años por consulta")
	root.PersistentFlags().StringVar(&g.logLevel, "log-level", "warn", "nivel de log (stderr)")

	root.AddCommand(newFetchCmd(g), newCategoriesCmd())
	return root
}

// ExecuteContext ejecuta la CLI y termina el proceso con código 1 si falla.
func ExecuteContext(ctx context.Context) {
	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func (g *globalFlags) scraper(cmd *cobra.Command) (*vitibrasil.Scraper, error) {
	log := logger.New(logger.Config{Env: "development", Level: g.logLevel, Out: cmd.ErrOrStderr()})
	return vitibrasil.New(vitibrasil.Options{
		BaseURL:     g.baseURL,
		Timeout:     g.timeout,
		Concurrency: g.concurrency,
		MaxYears:    g.maxYears,
		UserAgent:   "vitibrasil-cli/1.0",
	}, vitibrasil.DefaultCatalog(), log.Named("vitibrasil"))
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
