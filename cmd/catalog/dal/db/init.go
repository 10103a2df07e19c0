package db

import (
	"PartyHub.com/config"
	"PartyHub.com/pkg/utils"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// Init builds the Storage backend selected in the config. The handle is
// returned rather than stashed in a package global so main can wire it
// into the services explicitly.
func Init() (Storage, error) {
	switch config.ConfigInfo.Storage.Backend {
	case "mysql":
		dsn := utils.GetMysqlDsn()
		gormDB, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
			PrepareStmt:            true,
			SkipDefaultTransaction: true,
		})
		if err != nil {
			return nil, err
		}
		if err := gormDB.AutoMigrate(&userPO{}, &videoPO{}, &commentPO{}, &videoLikePO{}); err != nil {
			return nil, err
		}
		logrus.Infof("catalog storage: mysql (%s)", config.ConfigInfo.Mysql.Addr)
		return NewMysqlStorage(gormDB), nil
	default:
		logrus.Info("catalog storage: in-memory")
		return NewMemoryStorage(), nil
	}
}
