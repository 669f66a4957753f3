// Package config loads application configuration from the environment.
// A .env file is honored in development.
package config

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Firebase FirebaseConfig
	Admin    AdminConfig
}

type ServerConfig struct {
	Port      string
	Env       string
	StaticDir string // built frontend; SPA fallback is served from here
}

// FirebaseConfig locates service-account credentials. A local credentials
// file wins; otherwise the FIREBASE_* variables are assembled into a
// credential, with escaped newlines in the private key unescaped.
type FirebaseConfig struct {
	ProjectID       string
	CredentialsPath string
	PrivateKeyID    string
	PrivateKey      string
	ClientEmail     string
	ClientID        string
	ClientCertURL   string
	StorageBucket   string
}

type AdminConfig struct {
	Key            string // shared key exchanged for an admin token
	SigningKey     string // JWT signing key
	Issuer         string
	TokenTTLMinute int
}

// Load reads configuration from the environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Printf(".env not loaded: %v", err)
	}

	projectID := getEnv("FIREBASE_PROJECT_ID", "")
	return &Config{
		Server: ServerConfig{
			Port:      getEnv("PORT", "3000"),
			Env:       getEnv("ENV", "development"),
			StaticDir: getEnv("STATIC_DIR", "dist"),
		},
		Firebase: FirebaseConfig{
			ProjectID:       projectID,
			CredentialsPath: getEnv("FIREBASE_CREDENTIALS_PATH", "firebase-service-account.json"),
			PrivateKeyID:    getEnv("FIREBASE_PRIVATE_KEY_ID", ""),
			PrivateKey:      getEnv("FIREBASE_PRIVATE_KEY", ""),
			ClientEmail:     getEnv("FIREBASE_CLIENT_EMAIL", ""),
			ClientID:        getEnv("FIREBASE_CLIENT_ID", ""),
			ClientCertURL:   getEnv("FIREBASE_CLIENT_X509_CERT_URL", ""),
			StorageBucket:   getEnv("FIREBASE_STORAGE_BUCKET", defaultBucket(projectID)),
		},
		Admin: AdminConfig{
			Key:            getEnv("ADMIN_KEY", ""),
			SigningKey:     getEnv("ADMIN_TOKEN_SIGNING_KEY", ""),
			Issuer:         getEnv("ADMIN_TOKEN_ISSUER", "loopify"),
			TokenTTLMinute: getEnvInt("ADMIN_TOKEN_TTL_MINUTES", 60),
		},
	}
}

// HasCredentialsFile reports whether the local service-account file exists.
func (f FirebaseConfig) HasCredentialsFile() bool {
	if f.CredentialsPath == "" {
		return false
	}
	_, err := os.Stat(f.CredentialsPath)
	return err == nil
}

// HasEnvCredentials reports whether the environment carries a complete
// service-account credential.
func (f FirebaseConfig) HasEnvCredentials() bool {
	return f.ProjectID != "" && f.PrivateKey != "" && f.ClientEmail != ""
}

// CredentialsJSON assembles a service-account credential from the
// environment variables. Escaped newlines in the private key are
// unescaped before use.
func (f FirebaseConfig) CredentialsJSON() ([]byte, error) {
	if !f.HasEnvCredentials() {
		return nil, fmt.Errorf("incomplete firebase credentials: project id, private key and client email are required")
	}
	account := map[string]string{
		"type":                        "service_account",
		"project_id":                  f.ProjectID,
		"private_key_id":              f.PrivateKeyID,
		"private_key":                 strings.ReplaceAll(f.PrivateKey, `\n`, "\n"),
		"client_email":                f.ClientEmail,
		"client_id":                   f.ClientID,
		"auth_uri":                    "https://accounts.google.com/o/oauth2/auth",
		"token_uri":                   "https://oauth2.googleapis.com/token",
		"auth_provider_x509_cert_url": "https://www.googleapis.com/oauth2/v1/certs",
		"client_x509_cert_url":        f.ClientCertURL,
	}
	return json.Marshal(account)
}

func defaultBucket(projectID string) string {
	if projectID == "" {
		return ""
	}
	return projectID + ".appspot.com"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
