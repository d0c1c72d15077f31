package config

import (
	"fmt"
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

// envPrefix is prepended, with an underscore, to every upper-cased key.
const envPrefix = "GOPHGATE"

// newViper returns a viper instance seeded with the values in defaults and
// bound to GOPHGATE_* environment variables. When path is not empty the
// JSON or YAML file there is read too; the format follows the extension.
func newViper(defaults *Config, path string) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault("http_addr", defaults.HTTPAddr)
	v.SetDefault("grpc_addr", defaults.GRPCAddr)
	v.SetDefault("database_driver", defaults.DatabaseDriver)
	v.SetDefault("database_dsn", defaults.DatabaseDSN)
	v.SetDefault("redis_url", defaults.RedisURL)
	v.SetDefault("user_cache_ttl", defaults.UserCacheTTL)
	v.SetDefault("secret_key", defaults.SecretKey)
	v.SetDefault("signing_algorithm", defaults.SigningAlgorithm)
	v.SetDefault("token_issuer", defaults.TokenIssuer)
	v.SetDefault("access_token_validity_duration", defaults.AccessTokenValidityDuration)
	v.SetDefault("bcrypt_cost", defaults.BcryptCost)
	v.SetDefault("require_active_account", defaults.RequireActiveAccount)
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("log_format", defaults.LogFormat)
	v.SetDefault("admin_email", defaults.AdminEmail)
	v.SetDefault("admin_password", defaults.AdminPassword)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}
	return v, nil
}

// fromViper reads every setting out of v. Environment wins over the file,
// which wins over the defaults.
func fromViper(v *viper.Viper) (*Config, error) {
	c := &Config{
		HTTPAddr:         v.GetString("http_addr"),
		GRPCAddr:         v.GetString("grpc_addr"),
		DatabaseDriver:   v.GetString("database_driver"),
		DatabaseDSN:      v.GetString("database_dsn"),
		RedisURL:         v.GetString("redis_url"),
		SecretKey:        v.GetString("secret_key"),
		SigningAlgorithm: v.GetString("signing_algorithm"),
		TokenIssuer:      v.GetString("token_issuer"),
		LogLevel:         v.GetString("log_level"),
		LogFormat:        v.GetString("log_format"),
		AdminEmail:       v.GetString("admin_email"),
		AdminPassword:    v.GetString("admin_password"),
	}

	// Malformed values are errors, not zero.
	var err error
	if c.UserCacheTTL, err = cast.ToDurationE(v.Get("user_cache_ttl")); err != nil {
		return nil, fmt.Errorf("user_cache_ttl: %w", err)
	}
	if c.AccessTokenValidityDuration, err = cast.ToDurationE(v.Get("access_token_validity_duration")); err != nil {
		return nil, fmt.Errorf("access_token_validity_duration: %w", err)
	}
	if c.BcryptCost, err = cast.ToIntE(v.Get("bcrypt_cost")); err != nil {
		return nil, fmt.Errorf("bcrypt_cost: %w", err)
	}
	if c.RequireActiveAccount, err = cast.ToBoolE(v.Get("require_active_account")); err != nil {
		return nil, fmt.Errorf("require_active_account: %w", err)
	}
	return c, nil
}
