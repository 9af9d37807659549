package util

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// GetEnv returns the ENV variable with the given key or defaultVal if unset.
func GetEnv(key string, defaultVal string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return defaultVal
}

// GetEnvAsInt returns the ENV variable parsed as int or defaultVal.
func GetEnvAsInt(key string, defaultVal int) int {
	v, ok := os.LookupEnv(key)
	if !ok {
		return defaultVal
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return defaultVal
	}
	return i
}

// GetEnvAsBool returns the ENV variable parsed via strconv.ParseBool or
// defaultVal.
func GetEnvAsBool(key string, defaultVal bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok {
		return defaultVal
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return defaultVal
	}
	return b
}

// GetEnvAsDuration returns the ENV variable parsed via time.ParseDuration or
// defaultVal.
func GetEnvAsDuration(key string, defaultVal time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok {
		return defaultVal
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return defaultVal
	}
	return d
}

// GetEnvAsStringArr returns the ENV variable split by separator (default ",")
// or defaultVal if unset or empty.
func GetEnvAsStringArr(key string, defaultVal []string, separator ...string) []string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return defaultVal
	}

	sep := ","
	if len(separator) >= 1 {
		sep = separator[0]
	}

	parts := strings.Split(v, sep)
	res := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			res = append(res, p)
		}
	}
	return res
}
