package config

import (
	"os"
	"path/filepath"
)

// Redis Config
const REDIS_DB_ADDRESS = "redis:6379"
const REDIS_DB_PASSWORD = ""
const REDIS_DB = 0

// Navi (directions provider) config
const NAVI_ENDPOINT_BASE_V1 = "https://apis-navi.kakaomobility.com/v1"
const NAVI_AUTH_SCHEME = "KakaoAK"

// Recommendation provider config
const RECOMMEND_ENDPOINT_BASE = "https://recommend.discountmap.app/api"

// Map session config
const SPLASH_DELAY_SECONDS = 2
const DEFAULT_POSITION_LAT = 37.5665
const DEFAULT_POSITION_LNG = 126.978

// Auth config
const TOKEN_TTL_MINUTES = 60

// Resources file paths
const RESOURCES_PATH_PREFIX = "resources"
const VENUES_SEED_RESOURCE = "venues.json"
const ROUTE_RESPONSE_RESOURCE = "route_response.json"
const RECOMMEND_RESPONSE_RESOURCE = "recommend_response.json"

// NaviAPIKey reads the directions provider key from the environment.
func NaviAPIKey() string {
	return os.Getenv("NAVI_REST_API_KEY")
}

// JWTSecret reads the token signing secret from the environment.
func JWTSecret() string {
	return os.Getenv("JWT_SECRET")
}

// BaseDir returns the absolute path of the project root directory
func BaseDir() string {
	// Check if PROJECT_ROOT is set
	if root := os.Getenv("PROJECT_ROOT"); root != "" {
		return root
	}

	// Default to the current working directory
	wd, err := os.Getwd()
	if err != nil {
		panic("Unable to determine working directory: " + err.Error())
	}

	return wd
}

func GetResourcePath(resource_file string) string {
	return filepath.Join(BaseDir(), RESOURCES_PATH_PREFIX, resource_file)
}
