package environment_variables

import (
	"fmt"
	"os"
	"reflect"
	"strings"
)

type EnvironmentVariable struct {
	ASSET_STORE_BASE_URL   string
	ASSET_STORE_API_KEY    string
	ASSET_STORE_API_SECRET string
	PGN_FOLDER_PREFIX      string
	ADMIN_API_KEY          string
	CACHE_TYPE             string
	ALLOWED_CORS_HOSTS     []string
	PREFETCH_LEVELS        []string
}

func (ev *EnvironmentVariable) LoadFromEnv() {
	v := reflect.ValueOf(ev).Elem()
	t := v.Type()
	for i := 0; i < v.NumField(); i++ {
		field := t.Field(i)
		envKey := field.Name
		envValue := os.Getenv(envKey)
		if envValue == "" {
			fmt.Printf("Missing SYSENV: %s\n", envKey)
			continue
		}
		switch v.Field(i).Kind() {
		case reflect.String:
			v.Field(i).SetString(envValue)
		case reflect.Slice:
			parts := strings.Split(envValue, ",")
			values := make([]string, 0, len(parts))
			for _, part := range parts {
				if trimmed := strings.TrimSpace(part); trimmed != "" {
					values = append(values, trimmed)
				}
			}
			v.Field(i).Set(reflect.ValueOf(values))
		}
	}
}

// Singleton
var EnvironmentVariables = EnvironmentVariable{}
