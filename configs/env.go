package configs

import (
	"os"

	"github.com/joho/godotenv"
)

// loadEnv pulls in .env when present; deployed environments set
// variables directly, so a missing file is not an error.
func loadEnv() {
	_ = godotenv.Load()
}

func EnvMongoURI() string {
	loadEnv()
	return os.Getenv("MONGODB_URI")
}

func EnvJWTSecret() string {
	loadEnv()
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "your-secret-key"
	}
	return secret
}

func EnvPort() string {
	loadEnv()
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	return port
}
