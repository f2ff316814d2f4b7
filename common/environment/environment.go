package environment

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// GetString gets the environment var as a string
func GetString(varName string, defaultValue string) string {
	val, _ := os.LookupEnv(varName)
	if val == "" {
		return defaultValue
	}

	return val
}

// GetInt64 gets the env var as an int
func GetInt64(varName string, defaultValue int64) int64 {
	val, ok := os.LookupEnv(varName)
	if !ok {
		return defaultValue
	}

	iVal, err := strconv.ParseInt(strings.TrimSpace(val), 10, 64)
	if err != nil {
		return defaultValue
	}

	return iVal
}

// GetUint64 gets the env var as an unsigned int, used for seeds
func GetUint64(varName string, defaultValue uint64) uint64 {
	val, ok := os.LookupEnv(varName)
	if !ok {
		return defaultValue
	}

	uVal, err := strconv.ParseUint(strings.TrimSpace(val), 10, 64)
	if err != nil {
		return defaultValue
	}

	return uVal
}

// GetSeconds gets the env var as a number of seconds
func GetSeconds(varName string, defaultSeconds int64) time.Duration {
	return time.Duration(GetInt64(varName, defaultSeconds)) * time.Second
}

// GetBool gets the env var as a boolean
func GetBool(varName string, defaultValue bool) bool {
	val, _ := os.LookupEnv(varName)
	if strings.ToLower(val) == "true" {
		return true
	}
	if strings.ToLower(val) == "false" {
		return false
	}

	return defaultValue
}
