// Dumps the current business state to an .xlsx workbook: orders, inventory,
// finance sheets plus the executive summary.
package main

import (
	"github.com/spf13/viper"

	"bitbucket.org/khakhrafoods/operations_backend/config"
	"bitbucket.org/khakhrafoods/operations_backend/models/reports"
	"bitbucket.org/khakhrafoods/operations_backend/store"
)

func main() {
	logger := config.GetLogger()

	viper.SetDefault("data_dir", "data")
	viper.SetDefault("export_path", "khakhra-all.xlsx")
	viper.SetEnvPrefix("khakhra")
	viper.AutomaticEnv()
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig()

	db, err := config.OpenStateDB(viper.GetString("data_dir"))
	if err != nil {
		logger.WithError(err).Fatal("failed to open state db")
	}
	defer config.CloseStateDB()

	s, err := store.NewStore(db, logger)
	if err != nil {
		logger.WithError(err).Fatal("failed to load store")
	}

	exportPath := viper.GetString("export_path")
	if err := reports.ExportWorkbook(s.State(), exportPath); err != nil {
		logger.WithError(err).Fatal("failed to write workbook")
	}
	logger.WithField("path", exportPath).Info("workbook written")
}
