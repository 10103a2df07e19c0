package config

type config struct {
	Server   server
	Auth     auth
	Storage  storage
	Mysql    mysql
	Redis    redis
	RabbitMQ rabbitmq
	Minio    minio
}

type server struct {
	Addr string
}

type auth struct {
	DefaultUserId string
}

type storage struct {
	Backend string // "memory" or "mysql"
}

type mysql struct {
	Addr     string
	Database string
	Username string
	Password string
	Charset  string
}

type redis struct {
	Addr     string
	Password string
	DB       int
}

type rabbitmq struct {
	URL string
}

type minio struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
	PublicURL string
}
