package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port         int
	StoreBackend string // "file" or "postgres"
	DataFile     string
	EventsFile   string

	DBHost     string
	DBPort     int
	DBUser     string
	DBPassword string
	DBName     string

	OpenAIKey     string
	OpenAIModel   string
	OpenAIBaseURL string
	DocsDir       string
}

func Load() *Config {
	// .env is optional, same as running with plain env vars
	_ = godotenv.Load()

	port, err := strconv.Atoi(os.Getenv("PORT"))
	if err != nil {
		port = 8080 // fallback
	}

	dbPort, err := strconv.Atoi(os.Getenv("DB_PORT"))
	if err != nil {
		dbPort = 5432 // fallback
	}

	backend := os.Getenv("STORE_BACKEND")
	if backend == "" {
		backend = "file"
	}

	dataFile := os.Getenv("DATA_FILE")
	if dataFile == "" {
		dataFile = "data/tasks.json"
	}

	eventsFile := os.Getenv("EVENTS_FILE")
	if eventsFile == "" {
		eventsFile = "data/events.jsonl"
	}

	model := os.Getenv("OPENAI_MODEL")
	if model == "" {
		model = "gpt-4o-mini"
	}

	baseURL := os.Getenv("OPENAI_BASE_URL")
	if baseURL == "" {
		baseURL = "https://api.openai.com/v1"
	}

	docsDir := os.Getenv("DOCS_DIR")
	if docsDir == "" {
		docsDir = "docs/generated"
	}

	return &Config{
		Port:         port,
		StoreBackend: backend,
		DataFile:     dataFile,
		EventsFile:   eventsFile,

		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     dbPort,
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),

		OpenAIKey:     os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:   model,
		OpenAIBaseURL: baseURL,
		DocsDir:       docsDir,
	}
}

func (c *Config) ConnString() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName,
	)
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
