package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/mobiledger/backend/internal/domain/catalog"
	"github.com/mobiledger/backend/internal/domain/identity"
	"github.com/mobiledger/backend/internal/domain/ledger"
	"github.com/mobiledger/backend/internal/domain/partner"
	"github.com/mobiledger/backend/internal/domain/payment"
	"github.com/mobiledger/backend/internal/domain/trade"
	"github.com/mobiledger/backend/internal/infrastructure/config"
	"github.com/mobiledger/backend/internal/infrastructure/logger"
	"github.com/mobiledger/backend/internal/infrastructure/persistence"
)

func main() {
	dryRun := flag.Bool("dry-run", false, "print the tables that would be migrated and exit")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load configuration:", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to initialize logger:", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	models := []any{
		&identity.User{},
		&catalog.Brand{},
		&catalog.Model{},
		&partner.Shop{},
		&partner.Supplier{},
		&trade.PurchaseRecord{},
		&trade.SaleRecord{},
		&trade.Incentive{},
		&ledger.Device{},
		&payment.Payment{},
	}

	if *dryRun {
		for _, model := range models {
			fmt.Printf("%T\n", model)
		}
		return
	}

	db, err := persistence.NewDatabase(&cfg.Database)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	defer func() { _ = db.Close() }()

	log.Info("running migrations", zap.Int("models", len(models)))
	if err := db.DB.AutoMigrate(models...); err != nil {
		log.Fatal("migration failed", zap.Error(err))
	}
	log.Info("migrations complete")
}
