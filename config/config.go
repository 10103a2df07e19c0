package config

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

var ConfigInfo config

func Init() {
	viper.SetConfigType("yaml")
	viper.SetConfigName("config.yml")

	configPaths := []string{
		"./config",
		"../config",
		"../../config",
		".",
	}
	for _, path := range configPaths {
		viper.AddConfigPath(path)
	}

	viper.SetDefault("server.addr", "0.0.0.0:8888")
	viper.SetDefault("auth.default_user_id", "firebase-user")
	viper.SetDefault("storage.backend", "memory")
	viper.SetDefault("mysql.charset", "utf8mb4")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			logrus.Warnf("config file not found, using defaults: %v", err)
		} else {
			logrus.Errorf("config error: %v", err)
			return
		}
	} else {
		logrus.Infof("Successfully read config file: %s", viper.ConfigFileUsed())
	}

	ConfigInfo.Server.Addr = viper.GetString("server.addr")
	ConfigInfo.Auth.DefaultUserId = viper.GetString("auth.default_user_id")
	ConfigInfo.Storage.Backend = viper.GetString("storage.backend")

	ConfigInfo.Mysql.Addr = viper.GetString("mysql.addr")
	ConfigInfo.Mysql.Database = viper.GetString("mysql.database")
	ConfigInfo.Mysql.Username = viper.GetString("mysql.username")
	ConfigInfo.Mysql.Password = viper.GetString("mysql.password")
	ConfigInfo.Mysql.Charset = viper.GetString("mysql.charset")

	ConfigInfo.Redis.Addr = viper.GetString("redis.addr")
	ConfigInfo.Redis.Password = viper.GetString("redis.password")
	ConfigInfo.Redis.DB = viper.GetInt("redis.db")

	ConfigInfo.RabbitMQ.URL = viper.GetString("rabbitmq.url")

	ConfigInfo.Minio.Endpoint = viper.GetString("minio.endpoint")
	ConfigInfo.Minio.AccessKey = viper.GetString("minio.access_key")
	ConfigInfo.Minio.SecretKey = viper.GetString("minio.secret_key")
	ConfigInfo.Minio.Bucket = viper.GetString("minio.bucket")
	ConfigInfo.Minio.UseSSL = viper.GetBool("minio.use_ssl")
	ConfigInfo.Minio.PublicURL = viper.GetString("minio.public_url")
}
