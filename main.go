package main

import (
	"fmt"
	"log"
	"os"

	"dm-server/api/navi"
	"dm-server/db"
	"dm-server/di"
	"dm-server/models"
	"dm-server/util"

	"github.com/joho/godotenv"
)

func testRedisClient(redisClient db.RedisClient) db.RedisClient {
	// Set a key-value pair
	if err := redisClient.Set("mykey", "myvalue"); err != nil {
		log.Fatalf("Failed to set key: %v", err)
	}

	// Get the value for the key
	val, err := redisClient.Get("mykey")
	if err != nil {
		log.Fatalf("Failed to get key: %v", err)
	}
	fmt.Printf("mykey: %s\n", val)

	return redisClient
}

func testMockedNaviAPIClient(naviApiClient navi.NaviAPI) {
	log.Println("Running: testMockedNaviAPIClient")
	origin := models.Point{Lat: 37.5665, Lng: 126.978}
	destination := models.Point{Lat: 37.5512, Lng: 126.9882}

	response, err := naviApiClient.RequestRoute(origin, destination)
	if err != nil {
		log.Println("Error while running testMockedNaviAPIClient: ", err)
		return
	}

	section := response.Section()
	if section == nil {
		log.Println("Route response carried no section")
		return
	}

	path := util.DecodeRoads(section.Roads)
	log.Printf("Decoded %d path points", len(path))
	util.PlotRoutePath(path, "route_path.html")
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "prod"
	}

	container := di.NewContainer(env)

	// testRedisClient(container.RedisClient)
	// testMockedNaviAPIClient(container.NaviAPI)

	fmt.Println("seeding venues!")
	if err := container.VenuesSeederService.SeedFromResources(); err != nil {
		log.Printf("Venue seed failed: %v", err)
	}

	fmt.Println("starting server!")
	container.DMHttpServer.Start()
	fmt.Println("server stopped!")
}
