package config

import (
	"fmt"

	"oraconsoleapi/pkg/logger"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// DB is the global GORM database instance used for the local store.
var DB *gorm.DB

// ConnectDB opens the local store with the configured driver.
func ConnectDB() error {
	dialector, err := storeDialector()
	if err != nil {
		return err
	}

	logger.Infof("Connecting to %s store", Cfg.StoreDriver)
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		logger.Errorf("GORM connection failed: %v", err)
		return err
	}
	logger.Infof("GORM connected successfully to %s store", Cfg.StoreDriver)

	DB = db
	return nil
}

func storeDialector() (gorm.Dialector, error) {
	switch Cfg.StoreDriver {
	case "sqlite", "":
		return sqlite.Open(Cfg.StorePath + "?_busy_timeout=5000"), nil
	case "mysql":
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			Cfg.DBUser, Cfg.DBPass, Cfg.DBHost, Cfg.DBPort, Cfg.DBName)
		return mysql.Open(dsn), nil
	case "postgres":
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=disable TimeZone=UTC",
			Cfg.DBHost, Cfg.DBUser, Cfg.DBPass, Cfg.DBName, Cfg.DBPort)
		return postgres.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported STORE_DRIVER %q", Cfg.StoreDriver)
	}
}
