package repository

import "os"

// tableFromEnv resolves a table name from the environment, falling back
// to the well-known default so local setups need no configuration.
func tableFromEnv(envKey, def string) string {
	if v := os.Getenv(envKey); v != "" {
		return v
	}
	return def
}
