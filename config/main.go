package config

import (
	"errors"
	"strings"

	"github.com/jchavannes/jgo/jerr"
	"github.com/spf13/viper"
)

const (
	DefaultDbPath      = "tweets.db"
	DefaultSummarySize = 217
	EnvPrefix          = "TWEETPARSE"
)

type Config struct {
	DbPath      string  `mapstructure:"DB_PATH"`
	Verbose     bool    `mapstructure:"VERBOSE"`
	StopOnError bool    `mapstructure:"STOP_ON_ERROR"`
	Summary     Summary `mapstructure:"SUMMARY"`
}

type Summary struct {
	Link  bool `mapstructure:"LINK"`
	Date  bool `mapstructure:"DATE"`
	Media bool `mapstructure:"MEDIA"`
	Size  int  `mapstructure:"SIZE"`
}

var _config Config

// InitConfig reads config.yaml from the working directory if present. Environment variables
// such as TWEETPARSE_DB_PATH or TWEETPARSE_SUMMARY_SIZE override it.
func InitConfig() error {
	viper.SetConfigName("config")
	viper.AddConfigPath(".")
	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	viper.SetDefault("DB_PATH", DefaultDbPath)
	viper.SetDefault("VERBOSE", false)
	viper.SetDefault("STOP_ON_ERROR", false)
	viper.SetDefault("SUMMARY.LINK", true)
	viper.SetDefault("SUMMARY.DATE", false)
	viper.SetDefault("SUMMARY.MEDIA", true)
	viper.SetDefault("SUMMARY.SIZE", DefaultSummarySize)
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return jerr.Get("error reading config", err)
		}
	}
	if err := viper.Unmarshal(&_config); err != nil {
		return jerr.Get("error unmarshalling config", err)
	}
	return nil
}

func GetConfig() Config {
	return _config
}

func GetSummaryConfig() Summary {
	if _config.Summary.Size <= 0 {
		_config.Summary.Size = DefaultSummarySize
	}
	return _config.Summary
}
