// exportreport vuelca el reporte de existencias a un archivo .xlsx sin
// levantar el servidor HTTP.
package main

import (
	"flag"
	"os"

	"github.com/exporthub/exporthub-api/internal/infrastructure/excel"
	"github.com/exporthub/exporthub-api/internal/infrastructure/memory"
	"github.com/exporthub/exporthub-api/pkg/logger"
)

func main() {
	out := flag.String("o", "stock.xlsx", "ruta del archivo de salida")
	onlyAlerts := flag.Bool("alerts", false, "incluir solo existencias en alerta")
	flag.Parse()

	log := logger.New(logger.Config{Env: "development", Level: "info"})

	store := memory.NewSeeded()
	items, err := store.Stock().ListItems()
	if err != nil {
		log.Fatal().Err(err).Msg("cargar existencias")
	}
	if *onlyAlerts {
		filtered := items[:0]
		for _, it := range items {
			if it.IsLow() {
				filtered = append(filtered, it)
			}
		}
		items = filtered
	}

	data, err := excel.NewStockReportGenerator().Generate(items)
	if err != nil {
		log.Fatal().Err(err).Msg("generar reporte")
	}
	if err := os.WriteFile(*out, data, 0o644); err != nil {
		log.Fatal().Err(err).Msg("escribir archivo")
	}

	log.Info().Str("file", *out).Int("items", len(items)).Msg("reporte generado")
}
