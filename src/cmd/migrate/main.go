package main

import (
	"fmt"
	"os"

	"marketplace-service/src/internal/config"
	"marketplace-service/src/internal/entity"
	"marketplace-service/src/pkg/databases/sqldb"
	"marketplace-service/src/pkg/log"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// migrate creates or updates the schema the service reads and writes.
func main() {
	viperConfig := config.NewViper()
	log.InitLogger(viperConfig)
	appLog := log.GetLogger()

	var dialector gorm.Dialector
	dsn := viperConfig.GetString("database.dsn")
	switch driver := viperConfig.GetString("database.driver"); driver {
	case sqldb.DriverMySQL:
		dialector = mysql.Open(dsn)
	case sqldb.DriverPostgres:
		dialector = postgres.Open(dsn)
	default:
		appLog.Error("migrate", fmt.Sprintf("unsupported database driver %q", driver), "main", "")
		os.Exit(1)
	}

	db, err := gorm.Open(dialector, &gorm.Config{Logger: logger.Default.LogMode(logger.Warn)})
	if err != nil {
		appLog.Error("migrate", fmt.Sprintf("open database: %v", err), "main", "")
		os.Exit(1)
	}

	err = db.AutoMigrate(
		&entity.MainCategory{},
		&entity.FoodCategory{},
		&entity.EventCategory{},
		&entity.Restaurant{},
		&entity.RestaurantImage{},
		&entity.RestaurantMainCategoryMap{},
		&entity.RestaurantFoodCategoryMap{},
		&entity.RestaurantEventCategoryMap{},
		&entity.Review{},
		&entity.Package{},
		&entity.PackageDetail{},
		&entity.Order{},
		&entity.Blog{},
	)
	if err != nil {
		appLog.Error("migrate", fmt.Sprintf("auto migrate: %v", err), "main", "")
		os.Exit(1)
	}
	appLog.Info("migrate", "schema is up to date", "main", "")
}
