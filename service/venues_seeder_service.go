package services

import (
	"log"

	"dm-server/config"
	"dm-server/dao/redis"
	"dm-server/util"
)

// VenuesSeederService loads the bundled venue catalog into the geo index
// at startup so the map has data before any operator tooling runs.
type VenuesSeederService struct {
	venueDao *redis.RedisVenueDAO
}

// NewVenuesSeederService constructs a new seeder with its dependencies.
func NewVenuesSeederService(venueDao *redis.RedisVenueDAO) *VenuesSeederService {
	return &VenuesSeederService{
		venueDao: venueDao,
	}
}

// SeedFromResources reads the venue catalog resource file, dedupes it by
// ID and name, and upserts every entry. Individual upsert failures are
// logged and skipped; only a parse failure aborts the seed.
func (vs *VenuesSeederService) SeedFromResources() error {
	path := config.GetResourcePath(config.VENUES_SEED_RESOURCE)
	venues, err := util.ReadVenuesFromJSON(path)
	if err != nil {
		log.Printf("[VenuesSeederService] Failed to read venue catalog %s: %v", path, err)
		return err
	}

	seenIDs := make(map[string]struct{})
	seenNames := make(map[string]struct{})
	seeded := 0

	log.Printf("[VenuesSeederService] Seeding %d venues from %s", len(venues), path)
	for _, v := range venues {
		if _, dup := seenIDs[v.VenueID]; dup {
			log.Printf("[VenuesSeederService] Skipping duplicate venue ID=%s", v.VenueID)
			continue
		}
		if _, dup := seenNames[v.VenueName]; dup {
			log.Printf("[VenuesSeederService] Skipping duplicate venue Name=%q", v.VenueName)
			continue
		}
		seenIDs[v.VenueID] = struct{}{}
		seenNames[v.VenueName] = struct{}{}

		if err := vs.venueDao.UpsertVenue(v); err != nil {
			log.Printf("[VenuesSeederService] Upsert failed for %s: %v", v.VenueID, err)
			continue
		}
		seeded++
	}

	log.Printf("[VenuesSeederService] Seeded %d/%d venues", seeded, len(venues))
	return nil
}
