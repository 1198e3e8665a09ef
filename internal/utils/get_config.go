package utils

import (
	"log"
	"os"
	"strconv"

	"gopkg.in/yaml.v2"
)

type Config struct {
	// Database configuration
	DBUser     string `yaml:"DB_USER"`
	DBName     string `yaml:"DB_NAME"`
	DBPassword string `yaml:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT"`
	DBHost     string `yaml:"DB_HOST"`

	// Device tokens
	JWTSecret string `yaml:"JWT_SECRET"`

	// Server configuration
	Port                 string `yaml:"PORT"`
	AllowedOrigins       string `yaml:"ALLOWED_ORIGINS"`
	RateLimitWindowMS    string `yaml:"RATE_LIMIT_WINDOW_MS"`
	RateLimitMaxRequests string `yaml:"RATE_LIMIT_MAX_REQUESTS"`
	MaxImageSizeMB       string `yaml:"MAX_IMAGE_SIZE_MB"`

	// AWS S3 configuration
	AWSS3Bucket  string `yaml:"AWS_S3_BUCKET"`
	AWSS3Region  string `yaml:"AWS_S3_REGION"`
	AWSAccessKey string `yaml:"AWS_ACCESS_KEY"`
	AWSSecretKey string `yaml:"AWS_SECRET_KEY"`

	// Gemini API configuration
	GeminiAPIKey  string `yaml:"GEMINI_API_KEY"`
	GeminiModel   string `yaml:"GEMINI_MODEL"`
	GeminiBaseURL string `yaml:"GEMINI_BASE_URL"`
}

var defaults = map[string]string{
	"PORT":                    "3000",
	"GEMINI_MODEL":            "gemini-1.5-flash",
	"RATE_LIMIT_WINDOW_MS":    "900000",
	"RATE_LIMIT_MAX_REQUESTS": "100",
	"MAX_IMAGE_SIZE_MB":       "10",
}

var config Config

// LoadConfig reads config.yaml, or the file named by CONFIG_PATH. A missing file is not
// fatal: environment variables and defaults still apply.
func LoadConfig() {
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "config.yaml"
	}

	config = Config{}
	file, err := os.ReadFile(path)
	if err != nil {
		log.Printf("Error reading YAML file: %s\n", err)
		return
	}

	err = yaml.Unmarshal(file, &config)
	if err != nil {
		log.Printf("Error parsing YAML file: %s\n", err)
		return
	}
}

// GetConfig resolves a key from the environment first, then the YAML file, then the
// built-in default.
func GetConfig(key string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	if v := fromFile(key); v != "" {
		return v
	}
	return defaults[key]
}

// GetConfigInt is GetConfig for numeric keys. Unparseable values fall back to def.
func GetConfigInt(key string, def int) int {
	v, err := strconv.Atoi(GetConfig(key))
	if err != nil {
		return def
	}
	return v
}

func fromFile(key string) string {
	switch key {
	case "DB_USER":
		return config.DBUser
	case "DB_NAME":
		return config.DBName
	case "DB_PASSWORD":
		return config.DBPassword
	case "DB_PORT":
		return config.DBPort
	case "DB_HOST":
		return config.DBHost
	case "JWT_SECRET":
		return config.JWTSecret
	case "PORT":
		return config.Port
	case "ALLOWED_ORIGINS":
		return config.AllowedOrigins
	case "RATE_LIMIT_WINDOW_MS":
		return config.RateLimitWindowMS
	case "RATE_LIMIT_MAX_REQUESTS":
		return config.RateLimitMaxRequests
	case "MAX_IMAGE_SIZE_MB":
		return config.MaxImageSizeMB
	case "AWS_S3_BUCKET":
		return config.AWSS3Bucket
	case "AWS_S3_REGION":
		return config.AWSS3Region
	case "AWS_ACCESS_KEY":
		return config.AWSAccessKey
	case "AWS_SECRET_KEY":
		return config.AWSSecretKey
	case "GEMINI_API_KEY":
		return config.GeminiAPIKey
	case "GEMINI_MODEL":
		return config.GeminiModel
	case "GEMINI_BASE_URL":
		return config.GeminiBaseURL
	default:
		return ""
	}
}
