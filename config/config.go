package config

import (
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Server struct {
	Port string `yaml:"port" env:"PORT" env-default:"8080"`
	Env  string `yaml:"env" env:"ENV" env-default:"development"`
}

type OpenAI struct {
	OpenAIAPIKey     string  `env:"OPENAI_API_KEY"`
	OpenAIModel      string  `yaml:"openai_model" env:"OPENAI_MODEL" env-default:"gpt-4o-mini"`
	OpenAIBaseURL    string  `yaml:"open_ai_base_url" env:"OPENAI_BASE_URL"`
	ModelTemperature float32 `yaml:"model_temperature" env:"MODEL_TEMPERATURE" env-default:"0.7"`
	TokenBudget      int     `yaml:"token_budget" env:"TOKEN_BUDGET" env-default:"3500"`
}

type Storage struct {
	RedisEndpoint string `yaml:"redis_endpoint" env:"REDIS_ENDPOINT"`
	SQLitePath    string `yaml:"sqlite_path" env:"SQLITE_PATH"`
}

type Config struct {
	Server  Server  `yaml:"server"`
	OpenAI  OpenAI  `yaml:"openai"`
	Storage Storage `yaml:"storage"`
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Env != "production"
}

func LoadConfig(cfgPath string) (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if cfgPath != "" {
		if err := cleanenv.ReadConfig(cfgPath, &cfg); err != nil {
			return nil, err
		}
	}
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
