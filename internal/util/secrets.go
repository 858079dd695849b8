package util

import (
	"fmt"
	"os"
)

type DbSecrets struct {
	Host     string
	Port     string
	User     string
	Password string
	DbName   string
}

func (s DbSecrets) ToConnectionStr() string {
	return fmt.Sprintf(
		"user=%s password=%s host=%s port=%s dbname=%s sslmode=disable",
		s.User, s.Password, s.Host, s.Port, s.DbName,
	)
}

type Secrets struct {
	Db                DbSecrets
	SupabaseJwtSecret string
	JupiterBaseUrl    string
	// mint of the neutral asset every planned swap settles through
	SettlementAsset string
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func LoadSecrets() (*Secrets, error) {
	secrets := &Secrets{
		Db: DbSecrets{
			Host:     envOr("DB_HOST", "localhost"),
			Port:     envOr("DB_PORT", "5432"),
			User:     envOr("DB_USER", "postgres"),
			Password: os.Getenv("DB_PASSWORD"),
			DbName:   envOr("DB_NAME", "stablefolio"),
		},
		SupabaseJwtSecret: os.Getenv("SUPABASE_JWT_SECRET"),
		JupiterBaseUrl:    envOr("JUPITER_BASE_URL", "https://quote-api.jup.ag/v6"),
		SettlementAsset:   envOr("SETTLEMENT_ASSET", "EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v"),
	}
	if secrets.Db.Password == "" {
		return nil, fmt.Errorf("missing required env var DB_PASSWORD")
	}

	return secrets, nil
}
