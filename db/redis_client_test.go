package db_test

import (
	"context"
	"encoding/json"
	"testing"

	"dm-server/db"
)

// Test the Set and Get methods for the MockRedisClient
func TestRedisClient_SetAndGet(t *testing.T) {
	tests := []struct {
		name   string
		client db.RedisClient
	}{
		{"MockRedisClient", db.NewMockRedisClient(context.Background())},
		// Replace with a real Redis client configuration for integration testing
		// {"GeoRedisClient", db.NewGeoRedisClient(context.Background(), realRedisClient)},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			key := "test-key"
			value := "test-value"

			// Act
			err := test.client.Set(key, value)
			if err != nil {
				t.Fatalf("Set failed: %v", err)
			}

			retrieved, err := test.client.Get(key)
			if err != nil {
				t.Fatalf("Get failed: %v", err)
			}

			// Assert
			if retrieved != value {
				t.Errorf("Expected %s, got %s", value, retrieved)
			}
		})
	}
}

// Test AddLocationWithJSON and GetLocationsWithinRadius for MockRedisClient
func TestRedisClient_AddLocationWithJSONAndGetLocationsWithinRadius(t *testing.T) {
	client := db.NewMockRedisClient(context.Background())

	geoKey := "venues"
	memberKey := "venue123"
	latitude, longitude := 35.8682, 128.5987
	radius := 1000.0

	venue := map[string]string{
		"id":   "venue123",
		"name": "Test Venue",
	}

	// Act
	err := client.AddLocationWithJSON(context.Background(), geoKey, memberKey, latitude, longitude, venue)
	if err != nil {
		t.Fatalf("AddLocationWithJSON failed: %v", err)
	}

	results, err := client.GetLocationsWithinRadius(geoKey, latitude, longitude, radius)
	if err != nil {
		t.Fatalf("GetLocationsWithinRadius failed: %v", err)
	}

	// Assert
	if len(results) != 1 {
		t.Fatalf("Expected 1 result, got %d", len(results))
	}

	var retrievedVenue map[string]string
	err = json.Unmarshal([]byte(results[0]), &retrievedVenue)
	if err != nil {
		t.Fatalf("Failed to unmarshal JSON: %v", err)
	}

	if retrievedVenue["id"] != "venue123" {
		t.Errorf("Expected venue ID 'venue123', got '%s'", retrievedVenue["id"])
	}
}

// Test set operations for MockRedisClient
func TestRedisClient_SetOperations(t *testing.T) {
	client := db.NewMockRedisClient(context.Background())
	key := "favorites_v1:user1"

	if err := client.SAdd(key, "venue1"); err != nil {
		t.Fatalf("SAdd failed: %v", err)
	}
	if err := client.SAdd(key, "venue2"); err != nil {
		t.Fatalf("SAdd failed: %v", err)
	}

	isMember, err := client.SIsMember(key, "venue1")
	if err != nil {
		t.Fatalf("SIsMember failed: %v", err)
	}
	if !isMember {
		t.Errorf("Expected venue1 to be a member")
	}

	members, err := client.SMembers(key)
	if err != nil {
		t.Fatalf("SMembers failed: %v", err)
	}
	if len(members) != 2 {
		t.Errorf("Expected 2 members, got %d", len(members))
	}

	if err := client.SRem(key, "venue1"); err != nil {
		t.Fatalf("SRem failed: %v", err)
	}
	isMember, _ = client.SIsMember(key, "venue1")
	if isMember {
		t.Errorf("Expected venue1 to be removed")
	}
}

// Test Keys and Del for MockRedisClient
func TestRedisClient_KeysAndDel(t *testing.T) {
	client := db.NewMockRedisClient(context.Background())

	_ = client.Set("auth_storage_v1:01011112222", "{}")
	_ = client.Set("auth_storage_v1:01033334444", "{}")
	_ = client.Set("unrelated", "x")

	keys, err := client.Keys("auth_storage_v1:*")
	if err != nil {
		t.Fatalf("Keys failed: %v", err)
	}
	if len(keys) != 2 {
		t.Errorf("Expected 2 keys, got %d", len(keys))
	}

	if err := client.Del("auth_storage_v1:01011112222"); err != nil {
		t.Fatalf("Del failed: %v", err)
	}
	if _, err := client.Get("auth_storage_v1:01011112222"); err == nil {
		t.Errorf("Expected deleted key to be missing")
	}
}

// Test Ping for MockRedisClient
func TestRedisClient_Ping(t *testing.T) {
	client := db.NewMockRedisClient(context.Background())
	if err := client.Ping(); err != nil {
		t.Errorf("Ping failed: %v", err)
	}
}
