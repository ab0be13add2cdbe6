package di

import (
	"context"
	"fmt"
	"log"

	"dm-server/api"
	"dm-server/api/navi"
	"dm-server/api/recommend"
	"dm-server/config"
	"dm-server/dao/redis"
	"dm-server/db"
	"dm-server/server"
	"dm-server/server/handlers"
	services "dm-server/service"

	goredis "github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
)

// Container holds all application dependencies.
type Container struct {
	RedisClient          db.RedisClient
	RedisVenueDao        *redis.RedisVenueDAO
	RedisFavoriteDao     *redis.RedisFavoriteDAO
	RedisUserDao         *redis.RedisUserDAO
	RedisSessionDao      *redis.RedisSessionDAO
	NaviAPI              navi.NaviAPI
	RecommendAPI         recommend.RecommendAPI
	VenueService         *services.VenueService
	AuthService          *services.AuthService
	FavoriteService      *services.FavoriteService
	MapSessionService    *services.MapSessionService
	VenuesSeederService  *services.VenuesSeederService
	VenueHandler         *handlers.VenueHandler
	AuthHandler          *handlers.AuthHandler
	FavoriteHandler      *handlers.FavoriteHandler
	SessionHandler       *handlers.SessionHandler
	MuxRouter            *mux.Router
	Router               *server.Router
	DMHttpServer         *server.DMHttpServer
}

// NewContainer initializes and wires up all dependencies. env "prod"
// uses the real Redis instance and provider APIs; anything else runs
// fully in-memory with fixture-backed provider mocks.
func NewContainer(env string) *Container {
	log.Printf("initializing container - env: %s", env)
	ctx := context.Background()

	var redisClient db.RedisClient
	if env != "prod" {
		log.Printf("Using in-memory redis client")
		redisClient = db.NewMockRedisClient(ctx)
	} else {
		redisInternalClient := goredis.NewClient(&goredis.Options{
			Addr:     config.REDIS_DB_ADDRESS,
			Password: config.REDIS_DB_PASSWORD,
			DB:       config.REDIS_DB,
		})
		redisClient = db.NewGeoRedisClient(ctx, redisInternalClient)
		if err := redisClient.Ping(); err != nil {
			panic(fmt.Sprintf("Failed to connect to Redis: %v", err))
		}
	}

	// DAOs
	redisVenueDao := redis.NewRedisVenueDAO(redisClient)
	redisFavoriteDao := redis.NewRedisFavoriteDAO(redisClient)
	redisUserDao := redis.NewRedisUserDAO(redisClient)
	redisSessionDao := redis.NewRedisSessionDAO(redisClient)

	// Provider APIs - mocks read bundled fixture responses
	var naviApiClient navi.NaviAPI
	var recommendApiClient recommend.RecommendAPI
	if env != "prod" {
		log.Printf("Using mock navi api")
		naviApiClient = navi.NewNaviApiClientMock()
		recommendApiClient = recommend.NewRecommendApiClientMock()
	} else {
		log.Printf("Using prod navi api")
		naviApiClient = navi.NewNaviApiClient(api.NewHTTPClient(config.NAVI_ENDPOINT_BASE_V1))
		naviApiClient.SetCredentials(config.NaviAPIKey())
		recommendApiClient = recommend.NewRecommendApiClient(api.NewHTTPClient(config.RECOMMEND_ENDPOINT_BASE))
	}

	// Service layer
	venueService := services.NewVenueService(redisVenueDao)
	authService := services.NewAuthService(redisUserDao, redisSessionDao)
	favoriteService := services.NewFavoriteService(redisFavoriteDao, redisVenueDao)
	mapSessionService := services.NewMapSessionService(
		venueService,
		favoriteService,
		authService,
		recommendApiClient,
		func() *services.RouteService { return services.NewRouteService(naviApiClient) },
	)
	venuesSeederService := services.NewVenuesSeederService(redisVenueDao)

	// HTTP layer
	venueHandler := handlers.NewVenueHandler(venueService)
	authHandler := handlers.NewAuthHandler(authService)
	favoriteHandler := handlers.NewFavoriteHandler(favoriteService)
	sessionHandler := handlers.NewSessionHandler(mapSessionService)

	muxRouter := mux.NewRouter()
	router := server.NewRouter(venueHandler, authHandler, favoriteHandler, sessionHandler, muxRouter)
	dmHttpServer := server.NewDMHttpServer(router, muxRouter)

	return &Container{
		RedisClient:         redisClient,
		RedisVenueDao:       redisVenueDao,
		RedisFavoriteDao:    redisFavoriteDao,
		RedisUserDao:        redisUserDao,
		RedisSessionDao:     redisSessionDao,
		NaviAPI:             naviApiClient,
		RecommendAPI:        recommendApiClient,
		VenueService:        venueService,
		AuthService:         authService,
		FavoriteService:     favoriteService,
		MapSessionService:   mapSessionService,
		VenuesSeederService: venuesSeederService,
		VenueHandler:        venueHandler,
		AuthHandler:         authHandler,
		FavoriteHandler:     favoriteHandler,
		SessionHandler:      sessionHandler,
		MuxRouter:           muxRouter,
		Router:              router,
		DMHttpServer:        dmHttpServer,
	}
}
