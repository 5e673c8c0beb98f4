// Seeds a data directory with the demo dataset by opening the store, which
// writes the default state when the blob key is absent. Safe to run against
// an existing directory: a present blob is left alone.
package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"bitbucket.org/khakhrafoods/operations_backend/config"
	"bitbucket.org/khakhrafoods/operations_backend/store"
)

func main() {
	logger := config.GetLogger()

	viper.SetDefault("data_dir", "data")
	viper.SetEnvPrefix("khakhra")
	viper.AutomaticEnv()
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig()

	dataDir := viper.GetString("data_dir")

	db, err := config.OpenStateDB(dataDir)
	if err != nil {
		logger.WithError(err).Fatal("failed to open state db")
	}
	defer config.CloseStateDB()

	s, err := store.NewStore(db, logger)
	if err != nil {
		logger.WithError(err).Fatal("failed to load store")
	}

	state := s.State()
	logger.WithFields(logrus.Fields{
		"dataDir":       dataDir,
		"customers":     len(state.Customers),
		"products":      len(state.Products),
		"rawMaterials":  len(state.Inventory.RawMaterials),
		"finishedGoods": len(state.Inventory.FinishedGoods),
		"orders":        len(state.Orders),
		"expenses":      len(state.Expenses),
		"invoices":      len(state.Invoices),
	}).Info("store ready")
}
