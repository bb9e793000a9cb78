package config

type Config struct {
	Environment Environment
	Log         Log
	HTTP        HTTPServer

	TokenFile    string `env:"TOKEN_FILE" envDefault:"token.json"`
	DatabasePath string `env:"DATABASE_PATH" envDefault:"sync.db"`

	BigCommerce BigCommerce `envPrefix:"BIGCOMMERCE_"`
	CareCloud   CareCloud   `envPrefix:"CARECLOUD_"`
}

type BigCommerce struct {
	BaseApiURL  string `env:"BASE_API_URL" envDefault:"https://api.bigcommerce.com"`
	StoreHash   string `env:"STORE_HASH"`
	AccessToken string `env:"TOKEN"`
}

type CareCloud struct {
	BaseApiURL            string `env:"BASE_API_URL"`
	Login                 string `env:"LOGIN"`
	Password              string `env:"PASSWORD"`
	ExternalApplicationID string `env:"EXTERNAL_APPLICATION_ID"`
	CustomerSourceID      string `env:"CUSTOMER_SOURCE_ID"`
	PurchaseItemTypeID    string `env:"PURCHASE_ITEM_TYPE_ID"`
	PurchaseTypeID        string `env:"PURCHASE_TYPE_ID"`
	StoreID               string `env:"STORE_ID"`
}

type Environment struct {
	Name string `env:"ENVIRONMENT" envDefault:"development"`
}

type Log struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type HTTPServer struct {
	Host string `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port string `env:"HTTP_PORT" envDefault:"8080"`
}
