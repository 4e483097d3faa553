package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	DataSourceCSV      = "csv"
	DataSourceDatabase = "database"

	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

var tableNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)?$`)

// ValidTableName indica se o nome é um identificador simples, opcionalmente qualificado pelo schema
func ValidTableName(name string) bool {
	return tableNamePattern.MatchString(name)
}

type Config struct {
	App            App            `mapstructure:",squash"`
	Server         Server         `mapstructure:",squash"`
	Dataset        Dataset        `mapstructure:",squash"`
	Database       Database       `mapstructure:",squash"`
	DatasetRefresh DatasetRefresh `mapstructure:",squash"`
	Auth           Auth           `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	Env      string `mapstructure:"app_env"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Dataset struct {
	Source string `mapstructure:"data_source"`
	File   string `mapstructure:"data_file"`
	Table  string `mapstructure:"dataset_table"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Host     string `mapstructure:"database_host"`
	Port     string `mapstructure:"database_port"`
	User     string `mapstructure:"database_user"`
	Password string `mapstructure:"database_password"`
	Name     string `mapstructure:"database_name"`
	SSLMode  string `mapstructure:"database_sslmode"`
}

type DatasetRefresh struct {
	CronSchedule string `mapstructure:"dataset_refresh_cron"`
	Enabled      bool   `mapstructure:"dataset_refresh_enabled"`
}

type Auth struct {
	Secret            string        `mapstructure:"auth_secret"`
	AdminUsername     string        `mapstructure:"admin_username"`
	AdminPasswordHash string        `mapstructure:"admin_password_hash"`
	TokenTTL          time.Duration `mapstructure:"auth_token_ttl"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	viper.SetDefault("LOG_LEVEL", "debug")
	viper.SetDefault("APP_ENV", "development")

	viper.SetDefault("DATA_SOURCE", DataSourceCSV)
	viper.SetDefault("DATA_FILE", "vendas.csv")
	viper.SetDefault("DATASET_TABLE", "vendas_analitico")

	viper.SetDefault("DATABASE_DRIVER", DriverPostgres)
	viper.SetDefault("DATABASE_HOST", "localhost")
	viper.SetDefault("DATABASE_PORT", "5432")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_NAME", "vendas")
	viper.SetDefault("DATABASE_SSLMODE", "disable")

	viper.SetDefault("DATASET_REFRESH_CRON", "0 5 * * *") // Todos os dias às 5h da manhã
	viper.SetDefault("DATASET_REFRESH_ENABLED", false)

	viper.SetDefault("AUTH_SECRET", "")
	viper.SetDefault("ADMIN_USERNAME", "admin")
	viper.SetDefault("ADMIN_PASSWORD_HASH", "")
	viper.SetDefault("AUTH_TOKEN_TTL", "12h")
}

func NewConfig() (*Config, error) {
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	config.Database.DSN = BuildDSN(config.Database)

	return config, nil
}

// Validate verifica combinações de configuração que impedem a inicialização
func (c *Config) Validate() error {
	if c.Dataset.Table != "" && !ValidTableName(c.Dataset.Table) {
		return fmt.Errorf("config: DATASET_TABLE inválido: %q", c.Dataset.Table)
	}

	switch c.Dataset.Source {
	case DataSourceCSV:
		if c.Dataset.File == "" {
			return fmt.Errorf("config: DATA_FILE é obrigatório quando DATA_SOURCE=%s", DataSourceCSV)
		}
	case DataSourceDatabase:
		if c.Database.Driver != DriverPostgres && c.Database.Driver != DriverSQLite {
			return fmt.Errorf("config: DATABASE_DRIVER inválido: %q", c.Database.Driver)
		}
		if c.Dataset.Table == "" {
			return fmt.Errorf("config: DATASET_TABLE é obrigatório quando DATA_SOURCE=%s", DataSourceDatabase)
		}
	default:
		return fmt.Errorf("config: DATA_SOURCE inválido: %q (use %s ou %s)", c.Dataset.Source, DataSourceCSV, DataSourceDatabase)
	}

	return nil
}

// BuildDSN monta a string de conexão a partir das credenciais. Para sqlite, o nome do banco é o caminho do arquivo.
func BuildDSN(db Database) string {
	if db.Driver == DriverSQLite {
		return db.Name
	}

	dsn := url.URL{
		Scheme: db.Driver,
		User:   url.UserPassword(db.User, db.Password),
		Host:   fmt.Sprintf("%s:%s", db.Host, db.Port),
		Path:   "/" + db.Name,
	}
	if db.SSLMode != "" {
		dsn.RawQuery = url.Values{"sslmode": []string{db.SSLMode}}.Encode()
	}

	return dsn.String()
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
