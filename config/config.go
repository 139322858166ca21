package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix префикс переменных окружения
const EnvPrefix = "SENTIMENT"

type Config struct {
	Telegram TelegramConfig `mapstructure:"telegram"`
	Server   ServerConfig   `mapstructure:"server"`
	Log      LogConfig      `mapstructure:"log"`
	Engines  EnginesConfig  `mapstructure:"engines"`
	FER      FERConfig      `mapstructure:"fer"`
	OMDB     OMDBConfig     `mapstructure:"omdb"`
	Cache    CacheConfig    `mapstructure:"cache"`
	Minio    MinioConfig    `mapstructure:"minio"`
	MQTT     MQTTConfig     `mapstructure:"mqtt"`
}

type TelegramConfig struct {
	Token string `mapstructure:"token"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

// Addr возвращает адрес для net/http
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// LogConfig уровень, формат (json, console) и вывод (stdout, stderr, путь к файлу)
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}

// EnginesConfig набор движков и адрес сервиса моделей
type EnginesConfig struct {
	Enabled   string        `mapstructure:"enabled"`
	ModelsURL string        `mapstructure:"models_url"`
	Timeout   time.Duration `mapstructure:"timeout"`
}

// EnabledNames возвращает список включённых движков из CSV
func (e EnginesConfig) EnabledNames() []string {
	var out []string
	for _, name := range strings.Split(e.Enabled, ",") {
		if name = strings.ToLower(strings.TrimSpace(name)); name != "" {
			out = append(out, name)
		}
	}
	return out
}

// IsEnabled сообщает, включён ли движок с данным именем
func (e EnginesConfig) IsEnabled(name string) bool {
	for _, n := range e.EnabledNames() {
		if n == name {
			return true
		}
	}
	return false
}

// FERConfig пути к каскаду лиц и ONNX-модели эмоций.
// MaxPixels ограничивает Width*Height входного фото до декодирования.
type FERConfig struct {
	CascadePath  string `mapstructure:"cascade_path"`
	ModelPath    string `mapstructure:"model_path"`
	MetadataPath string `mapstructure:"metadata_path"`
	MinFaceSize  int    `mapstructure:"min_face_size"`
	MaxPixels    int    `mapstructure:"max_pixels"`
}

type OMDBConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	APIKey  string        `mapstructure:"api_key"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type CacheConfig struct {
	Capacity int `mapstructure:"capacity"`
}

// MinioConfig хранилище размеченных фото; пустой Endpoint отключает его
type MinioConfig struct {
	Endpoint      string `mapstructure:"endpoint"`
	AccessKey     string `mapstructure:"access_key"`
	SecretKey     string `mapstructure:"secret_key"`
	Bucket        string `mapstructure:"bucket"`
	UseSSL        bool   `mapstructure:"use_ssl"`
	PublicBaseURL string `mapstructure:"public_base_url"`
}

// MQTTConfig шина событий; пустой Host отключает публикацию
type MQTTConfig struct {
	Host      string `mapstructure:"host"`
	Port      int    `mapstructure:"port"`
	Username  string `mapstructure:"username"`
	Password  string `mapstructure:"password"`
	ClientID  string `mapstructure:"client_id"`
	BaseTopic string `mapstructure:"base_topic"`
}

// Load читает .env, config.yaml (если есть) и переменные окружения SENTIMENT_*
func Load() (*Config, error) {
	// Загружаем .env файл (игнорируем ошибку если файла нет)
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// TELEGRAM_TOKEN оставлен для совместимости со старыми .env
	if err := v.BindEnv("telegram.token", EnvPrefix+"_TELEGRAM_TOKEN", "TELEGRAM_TOKEN"); err != nil {
		return nil, fmt.Errorf("bind telegram token: %w", err)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("telegram.token", "")

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "release")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("log.output", "stderr")

	v.SetDefault("engines.enabled", "vader,textblob,flair,text2emotion,fer")
	v.SetDefault("engines.models_url", "http://localhost:8000")
	v.SetDefault("engines.timeout", 10*time.Second)

	v.SetDefault("fer.cascade_path", "models/haarcascade_frontalface_default.xml")
	v.SetDefault("fer.model_path", "models/fer.onnx")
	v.SetDefault("fer.metadata_path", "models/fer_metadata.json")
	v.SetDefault("fer.min_face_size", 48)
	v.SetDefault("fer.max_pixels", 40_000_000)

	v.SetDefault("omdb.base_url", "http://www.omdbapi.com")
	v.SetDefault("omdb.api_key", "")
	v.SetDefault("omdb.timeout", 10*time.Second)

	v.SetDefault("cache.capacity", 1)

	v.SetDefault("minio.endpoint", "")
	v.SetDefault("minio.access_key", "")
	v.SetDefault("minio.secret_key", "")
	v.SetDefault("minio.bucket", "sentiment-faces")
	v.SetDefault("minio.use_ssl", false)
	v.SetDefault("minio.public_base_url", "")

	v.SetDefault("mqtt.host", "")
	v.SetDefault("mqtt.port", 1883)
	v.SetDefault("mqtt.username", "")
	v.SetDefault("mqtt.password", "")
	v.SetDefault("mqtt.client_id", "sentiment-bot")
	v.SetDefault("mqtt.base_topic", "sentiment")
}
