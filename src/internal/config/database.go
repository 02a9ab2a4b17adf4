package config

import (
	"marketplace-service/src/pkg/databases/sqldb"
	"marketplace-service/src/pkg/log"

	"github.com/spf13/viper"
)

func NewDatabase(viper *viper.Viper, log log.Log) sqldb.DBInterface {
	db, err := sqldb.InitConnection(viper, log)
	if err != nil {
		log.Error("database init", err.Error(), "config", "")
		return sqldb.New(nil, 0)
	}

	return db
}
