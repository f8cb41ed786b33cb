// Seeds the venues table. Venues are read-only for the booking service
// itself, so they are provisioned here instead of through the API.
//
// Usage:
//
//	seed                      # inserts the default venue set
//	seed "Gym=150" "Hall=300" # inserts the given name=price pairs
package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"meethere/cmd"
	"meethere/internal/adapters/out/postgres"
	"meethere/internal/adapters/out/postgres/venuerepo"
	"meethere/internal/core/domain/model/venue"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type venueSpec struct {
	name  string
	price int
}

var defaultVenues = []venueSpec{
	{"Basketball Court", 150},
	{"Badminton Hall", 100},
	{"Conference Room A", 200},
	{"Auditorium", 500},
}

func main() {
	configs := getConfigs()

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err = gormDB.AutoMigrate(&venuerepo.VenueDTO{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	specs := defaultVenues
	if len(os.Args) > 1 {
		specs, err = parseSpecs(os.Args[1:])
		if err != nil {
			log.Fatalf("Invalid venue argument: %v", err)
		}
	}

	if err = seedVenues(gormDB, specs); err != nil {
		log.Fatalf("Failed to seed venues: %v", err)
	}

	log.Infof("Seeded %d venues", len(specs))
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Fatalf("Error loading .env file")
	}
	return cmd.Config{
		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     os.Getenv("DB_PORT"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		DBSslMode:  os.Getenv("DB_SSLMODE"),
	}
}

func parseSpecs(args []string) ([]venueSpec, error) {
	specs := make([]venueSpec, 0, len(args))
	for _, arg := range args {
		name, rawPrice, found := strings.Cut(arg, "=")
		if !found {
			return nil, fmt.Errorf("%q is not in name=price form", arg)
		}
		price, err := strconv.Atoi(rawPrice)
		if err != nil {
			return nil, fmt.Errorf("%q has a non-numeric price", arg)
		}
		specs = append(specs, venueSpec{name: name, price: price})
	}
	return specs, nil
}

func seedVenues(gormDB *gorm.DB, specs []venueSpec) error {
	ctx := context.Background()
	uow := postgres.NewGormUnitOfWorkFactory(gormDB).Create()

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	for _, spec := range specs {
		newVenue, err := venue.NewVenue(spec.name, spec.price)
		if err != nil {
			return err
		}
		if err = uow.VenueRepository().Add(ctx, newVenue); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
