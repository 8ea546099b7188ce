package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig
	Logger LoggerConfig
	Quiz   QuizConfig
	Export ExportConfig
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type LoggerConfig struct {
	Level string `yaml:"level"`
	Env   string `yaml:"env"`
}

type QuizConfig struct {
	BankPath string `yaml:"bank_path"`
}

type ExportConfig struct {
	FilenamePrefix string `yaml:"filename_prefix"`
	SummarySheet   string `yaml:"summary_sheet"`
	DetailSheet    string `yaml:"detail_sheet"`
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Add config paths based on environment
	if os.Getenv("ENV") == "test" {
		viper.AddConfigPath("../../configs")
		viper.AddConfigPath("../../")
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("./configs")
	}

	viper.AutomaticEnv()

	viper.SetDefault("server.port", 8090)
	viper.SetDefault("server.read_timeout", 20)
	viper.SetDefault("server.write_timeout", 20)
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.env", "development")
	viper.SetDefault("quiz.bank_path", "configs/questions.yaml")
	viper.SetDefault("export.filename_prefix", "Scratch測驗結果")
	viper.SetDefault("export.summary_sheet", "測驗摘要")
	viper.SetDefault("export.detail_sheet", "詳細答案")

	if err := viper.ReadInConfig(); err != nil {
		// Defaults cover every setting; a missing config file is fine.
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	config := &Config{
		Server: ServerConfig{
			Port:         viper.GetInt("server.port"),
			ReadTimeout:  viper.GetDuration("server.read_timeout") * time.Second,
			WriteTimeout: viper.GetDuration("server.write_timeout") * time.Second,
		},
		Logger: LoggerConfig{
			Level: viper.GetString("logger.level"),
			Env:   viper.GetString("logger.env"),
		},
		Quiz: QuizConfig{
			BankPath: viper.GetString("quiz.bank_path"),
		},
		Export: ExportConfig{
			FilenamePrefix: viper.GetString("export.filename_prefix"),
			SummarySheet:   viper.GetString("export.summary_sheet"),
			DetailSheet:    viper.GetString("export.detail_sheet"),
		},
	}

	// Override with environment variables if set
	if port := os.Getenv("SERVER_PORT"); port != "" {
		config.Server.Port = viper.GetInt("SERVER_PORT")
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		config.Logger.Level = level
	}
	if env := os.Getenv("ENV"); env != "" {
		config.Logger.Env = env
	}
	if bankPath := os.Getenv("QUIZ_BANK_PATH"); bankPath != "" {
		config.Quiz.BankPath = bankPath
	}

	return config, nil
}
