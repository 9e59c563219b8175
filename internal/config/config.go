package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App             App             `mapstructure:",squash"`
	Server          Server          `mapstructure:",squash"`
	Database        Database        `mapstructure:",squash"`
	Auth            Auth            `mapstructure:",squash"`
	GoogleOAuth     GoogleOAuth     `mapstructure:",squash"`
	GoogleAds       GoogleAds       `mapstructure:",squash"`
	Gemini          Gemini          `mapstructure:",squash"`
	PerformanceSync PerformanceSync `mapstructure:",squash"`
	SecretKey       string          `mapstructure:"secret_key"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	ConnMaxLifetime time.Duration `mapstructure:"database_conn_max_lifetime"`
	DSN             string        `mapstructure:"-"`
	Driver          string        `mapstructure:"database_driver"`
	MaxOpenConns    int           `mapstructure:"database_max_open_conns"`
	Password        string        `mapstructure:"database_password"`
	URL             string        `mapstructure:"database_url"`
	User            string        `mapstructure:"database_user"`
}

type App struct {
	LogLevel    string   `mapstructure:"log_level"`
	FrontendURL string   `mapstructure:"frontend_url"`
	AdminEmails []string `mapstructure:"admin_emails"`
}

type Auth struct {
	TokenTTL time.Duration `mapstructure:"auth_token_ttl"`
}

type GoogleOAuth struct {
	ClientID           string        `mapstructure:"google_oauth_client_id"`
	ClientSecret       string        `mapstructure:"google_oauth_client_secret"`
	RedirectURI        string        `mapstructure:"google_oauth_redirect_uri"`
	AgenticRedirectURI string        `mapstructure:"google_oauth_agentic_redirect_uri"`
	Scopes             []string      `mapstructure:"google_oauth_scopes"`
	AuthURL            string        `mapstructure:"google_oauth_auth_url"`
	TokenURL           string        `mapstructure:"google_oauth_token_url"`
	UserinfoURL        string        `mapstructure:"google_oauth_userinfo_url"`
	StateTTL           time.Duration `mapstructure:"google_oauth_state_ttl"`
}

type GoogleAds struct {
	BaseURL string `mapstructure:"google_ads_base_url"`
	URL     string `mapstructure:"-"`
	Version string `mapstructure:"google_ads_version"`
}

type Gemini struct {
	BaseURL        string `mapstructure:"gemini_base_url"`
	APIKey         string `mapstructure:"gemini_api_key"`
	Model          string `mapstructure:"gemini_model"`
	EmbeddingModel string `mapstructure:"gemini_embedding_model"`
	MaxRetries     int    `mapstructure:"gemini_max_retries"`
}

type PerformanceSync struct {
	CronSchedule        string `mapstructure:"performance_sync_cron"`
	RequestDelaySeconds int    `mapstructure:"performance_sync_request_delay_seconds"`
	MaxConcurrentJobs   int    `mapstructure:"performance_sync_max_concurrent_jobs"`
	RetentionDays       int    `mapstructure:"performance_sync_retention_days"`
	Enabled             bool   `mapstructure:"performance_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/dotler")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 10) // Pool dividido entre a API e o agendador
	viper.SetDefault("DATABASE_CONN_MAX_LIFETIME", "30m")

	viper.SetDefault("SECRET_KEY", "your_secret_key")
	viper.SetDefault("AUTH_TOKEN_TTL", "24h")

	viper.SetDefault("FRONTEND_URL", "http://localhost:3000")
	viper.SetDefault("ADMIN_EMAILS", "")

	viper.SetDefault("GOOGLE_OAUTH_CLIENT_ID", "your_client_id")
	viper.SetDefault("GOOGLE_OAUTH_CLIENT_SECRET", "your_client_secret")
	viper.SetDefault("GOOGLE_OAUTH_REDIRECT_URI", "http://localhost:8000/oauth2/callback")
	viper.SetDefault("GOOGLE_OAUTH_AGENTIC_REDIRECT_URI", "http://localhost:8000/oauth2/callback")
	viper.SetDefault("GOOGLE_OAUTH_SCOPES", "https://www.googleapis.com/auth/adwords,https://www.googleapis.com/auth/userinfo.email")
	viper.SetDefault("GOOGLE_OAUTH_AUTH_URL", "https://accounts.google.com/o/oauth2/v2/auth")
	viper.SetDefault("GOOGLE_OAUTH_TOKEN_URL", "https://oauth2.googleapis.com/token")
	viper.SetDefault("GOOGLE_OAUTH_USERINFO_URL", "https://www.googleapis.com/oauth2/v2/userinfo")
	viper.SetDefault("GOOGLE_OAUTH_STATE_TTL", "15m") // Janela entre o redirect e o callback

	viper.SetDefault("GOOGLE_ADS_BASE_URL", "https://googleads.googleapis.com")
	viper.SetDefault("GOOGLE_ADS_VERSION", "v17")

	viper.SetDefault("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com/v1beta")
	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("GEMINI_MODEL", "gemini-2.0-flash-exp")
	viper.SetDefault("GEMINI_EMBEDDING_MODEL", "text-embedding-004")
	viper.SetDefault("GEMINI_MAX_RETRIES", 3)

	// Defaults para sincronização de desempenho de campanhas
	viper.SetDefault("PERFORMANCE_SYNC_CRON", "0 6 * * *")        // Todos os dias às 6h da manhã
	viper.SetDefault("PERFORMANCE_SYNC_REQUEST_DELAY_SECONDS", 2) // 2 segundos entre requisições
	viper.SetDefault("PERFORMANCE_SYNC_MAX_CONCURRENT_JOBS", 3)   // 3 jobs concorrentes
	viper.SetDefault("PERFORMANCE_SYNC_RETENTION_DAYS", 180)      // Snapshots mais antigos são removidos
	viper.SetDefault("PERFORMANCE_SYNC_ENABLED", false)           // Habilitar sincronização de desempenho

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
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

	config.GoogleAds.URL = fmt.Sprintf("%s/%s", config.GoogleAds.BaseURL, config.GoogleAds.Version)

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	// Obter diretório atual
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../.env"),            // Diretório acima
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		logrus.Info("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
