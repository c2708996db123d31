package config

import (
	"errors"
	"time"

	"github.com/spf13/viper"
)

const (
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendSqlite = "sqlite"
	BackendRedis  = "redis"
)

type Configuration struct {
	// Addr is the address the HTTP server listens on.
	Addr string
	// StorageBackend picks where the board's slots live: memory, file,
	// sqlite or redis.
	StorageBackend string
	// FsRoot is the root of the directory holding the board's slots when
	// the file backend is used.
	FsRoot string
	// DbUrl is the path to the sqlite database file. Also used by the
	// refresh queue, which keeps its tasks in sqlite regardless of the
	// chosen slot backend.
	DbUrl string
	// MigrationsFolder holds the sqlite schema migrations.
	MigrationsFolder string
	RedisAddr        string
	// TemplatesEndpoint is the base URL of the template lookup API.
	// Overridden in tests; the default is Discord's public endpoint.
	TemplatesEndpoint string
	// UsersKey, PostsKey and SessionKey name the three storage slots. The
	// defaults match the keys the original front end used.
	UsersKey   string
	PostsKey   string
	SessionKey string
	// SessionSecret keys the session cookies.
	SessionSecret string
	// RefreshInterval is how often posted templates have their usage
	// counts re-fetched.
	RefreshInterval time.Duration
	// Debug, if true, will make the application log all HTTP requests and
	// other events.
	Debug bool
}

func ReadConfig() (Configuration, error) {
	viper.AddConfigPath(".")
	viper.SetConfigName("templateboard")
	viper.SetConfigType("yaml")
	viper.SetEnvPrefix("templateboard")
	viper.AutomaticEnv()
	// sessionsecret has no default, so AutomaticEnv alone never surfaces it
	// to Unmarshal; it has to be bound by name.
	viper.BindEnv("sessionsecret")

	viper.SetDefault("addr", ":8080")
	viper.SetDefault("storagebackend", BackendFile)
	viper.SetDefault("fsroot", "data")
	viper.SetDefault("dburl", "templateboard.db")
	viper.SetDefault("migrationsfolder", "migrations")
	viper.SetDefault("redisaddr", "localhost:6379")
	viper.SetDefault("templatesendpoint", "https://discord.com/api/v9/guilds/templates")
	viper.SetDefault("userskey", "discord-template-users-v1")
	viper.SetDefault("postskey", "discord-template-posts-v2")
	viper.SetDefault("sessionkey", "discord-template-session-v1")
	viper.SetDefault("refreshinterval", 12*time.Hour)
	viper.SetDefault("debug", false)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Configuration{}, err
		}
	}

	var config Configuration
	if err := viper.Unmarshal(&config); err != nil {
		return Configuration{}, err
	}

	if config.SessionSecret == "" {
		return Configuration{}, errors.New("sessionsecret must be set")
	}

	return config, nil
}
