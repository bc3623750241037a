package commands

import (
	"fmt"
	"os"
	"strconv"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/jhoicas/vitivinicultura-api/internal/application/dto"
	"github.com/jhoicas/vitivinicultura-api/internal/application/viticulture"
	"github.com/jhoicas/vitivinicultura-api/internal/infrastructure/pdf"
	"github.com/jhoicas/vitivinicultura-api/internal/infrastructure/vitibrasil"
	"github.com/jhoicas/vitivinicultura-api/internal/infrastructure/xmlexport"
)

const cliSubject = "cli"

func newFetchCmd(g *globalFlags) *cobra.Command {
	var (
		startYear   int
		endYear     int
		subcategory string
		format      string
		out         string
	)
	cmd := &cobra.Command{
		Use:   "fetch <categoria> [--start-year N] [--end-year N] [--subcategory S] [--format json|xml|pdf] [--out archivo]",
		Short: "Descarga una categoría con las mismas reglas de validación que la API.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scraper, err := g.scraper(cmd)
			if err != nil {
				return err
			}
			renderers := map[string]viticulture.DatasetRenderer{
				"xml": xmlexport.NewRenderer(),
				"pdf": pdf.NewMarotoPDFGenerator("vitibrasil-cli"),
			}
			uc := viticulture.NewQueryUseCase(
				viticulture.NewValidator(vitibrasil.DefaultCatalog()), scraper, renderers, nil, nil,
			)

			q := dto.DataQuery{Category: args[0], Format: format}
			flags := cmd.Flags()
			if flags.Changed("subcategory") {
				q.Subcategory = &subcategory
			}
			if flags.Changed("start-year") {
				s := strconv.Itoa(startYear)
				q.StartYear = &s
			}
			if flags.Changed("end-year") {
				s := strconv.Itoa(endYear)
				q.EndYear = &s
			}

			res, err := uc.Execute(cmd.Context(), cliSubject, q)
			if err != nil {
				return err
			}
			body := res.Body
			if body == nil {
				if body, err = json.MarshalIndent(res.Dataset, "", "  "); err != nil {
					return err
				}
				body = append(body, '\n')
			}

			if out == "" {
				if _, err := cmd.OutOrStdout().Write(body); err != nil {
					return fmt.Errorf("escribir salida: %w", err)
				}
				return nil
			}
			return writeFile(out, body)
		},
	}
	cmd.Flags().IntVar(&startYear, "start-year", viticulture.DefaultStartYear, "año inicial")
	cmd.Flags().IntVar(&endYear, "end-year", viticulture.DefaultEndYear, "año final")
	cmd.Flags().StringVar(&subcategory, "subcategory", "", "subcategoría (obligatoria en processamento, importacao y exportacao)")
	cmd.Flags().StringVar(&format, "format", viticulture.FormatJSON, "json | xml | pdf")
	cmd.Flags().StringVarP(&out, "out", "o", "", "archivo de salida (por defecto stdout)")
	return cmd
}

// writeFile devuelve también el error de Close.
func writeFile(path string, body []byte) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := f.Write(body); err != nil {
		_ = f.Close()
		return fmt.Errorf("escribir %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("cerrar %s: %w", path, err)
	}
	return nil
}

func newCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "Lista las categorías y subcategorías válidas.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			for _, spec := range vitibrasil.DefaultCatalog().Categories() {
				fmt.Fprintln(w, spec.Name)
				for _, sub := range spec.Subcategories {
					fmt.Fprintf(w, "  %s\n", sub)
				}
			}
			return nil
		},
	}
}
