package main

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"realestate_api/internal/adapters/observability"
	"realestate_api/internal/app"
	"realestate_api/internal/domain"
	"realestate_api/internal/shared"
	"realestate_api/internal/storage/mongodb"
)

const seedWorkers = 4

var seedOwners = []domain.OwnerInput{
	{Name: "John Smith", Email: "john.smith@email.com", Phone: "+1-555-0101"},
	{Name: "Sarah Johnson", Email: "sarah.johnson@email.com", Phone: "+1-555-0102"},
	{Name: "Michael Brown", Email: "michael.brown@email.com", Phone: "+1-555-0103"},
	{Name: "Emily Davis", Email: "emily.davis@email.com", Phone: "+1-555-0104"},
	{Name: "David Wilson", Email: "david.wilson@email.com", Phone: "+1-555-0105"},
}

// seedProperties[i] belongs to seedOwners[i%len(seedOwners)].
var seedProperties = []domain.PropertyInput{
	{Name: "Modern Downtown Apartment", Address: "123 Main Street, New York, NY 10001", Price: 450000, Image: "https://images.example.com/prop-downtown-apt.jpg"},
	{Name: "Suburban Family House", Address: "456 Oak Avenue, Austin, TX 78701", Price: 650000, Image: "https://images.example.com/prop-family-house.jpg"},
	{Name: "Beachfront Condo", Address: "789 Ocean Drive, Miami, FL 33139", Price: 890000, Image: "https://images.example.com/prop-beach-condo.jpg"},
	{Name: "Mountain View Cabin", Address: "321 Pine Trail, Denver, CO 80202", Price: 350000, Image: "https://images.example.com/prop-cabin.jpg"},
	{Name: "Luxury Penthouse", Address: "654 Skyline Boulevard, San Francisco, CA 94105", Price: 2100000, Image: "https://images.example.com/prop-penthouse.jpg"},
	{Name: "Historic Brownstone", Address: "987 Heritage Lane, Boston, MA 02108", Price: 1250000, Image: "https://images.example.com/prop-brownstone.jpg"},
	{Name: "Garden Cottage", Address: "147 Rose Garden Way, Portland, OR 97201", Price: 425000, Image: "https://images.example.com/prop-cottage.jpg"},
	{Name: "Lakeside Villa", Address: "258 Lakeshore Road, Seattle, WA 98101", Price: 980000, Image: "https://images.example.com/prop-villa.jpg"},
	{Name: "City Loft", Address: "369 Industrial Street, Chicago, IL 60601", Price: 520000, Image: "https://images.example.com/prop-loft.jpg"},
	{Name: "Desert Ranch", Address: "741 Cactus Road, Phoenix, AZ 85001", Price: 780000, Image: "https://images.example.com/prop-ranch.jpg"},
}

func main() {
	cfg := shared.Load()
	log.Logger = observability.NewLogger(cfg.AppEnv)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	client, err := mongodb.Connect(ctx, cfg.MongoURI)
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connect failed")
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	db := client.Database(cfg.MongoDB)
	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("index bootstrap failed")
	}

	props := mongodb.NewPropertyRepo(db)
	owners := mongodb.NewOwnerRepo(db)
	// nil cache: the seeder runs before the API serves anything
	cmd := app.NewCommandService(props, owners, nil)

	// idempotent: skip when data is already present
	n, err := props.Count(ctx, domain.PropertyFilter{})
	if err != nil {
		log.Fatal().Err(err).Msg("count properties failed")
	}
	if n > 0 {
		log.Info().Int64("properties", n).Msg("data already seeded, nothing to do")
		return
	}

	ownerIDs := make([]string, 0, len(seedOwners))
	for _, in := range seedOwners {
		in := in
		o, err := cmd.CreateOwner(ctx, &in)
		if err != nil {
			log.Fatal().Str("email", in.Email).Err(err).Msg("seed owner failed")
		}
		ownerIDs = append(ownerIDs, o.ID)
		log.Info().Str("id", o.ID).Str("name", o.Name).Msg("owner seeded")
	}

	sem := semaphore.NewWeighted(seedWorkers)
	var wg sync.WaitGroup

	for i, in := range seedProperties {
		in := in
		in.OwnerID = ownerIDs[i%len(ownerIDs)]

		if err := sem.Acquire(ctx, 1); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}
		wg.Add(1)
		go func(in domain.PropertyInput) {
			defer wg.Done()
			defer sem.Release(1)

			p, err := cmd.CreateProperty(ctx, &in)
			if err != nil {
				log.Warn().Str("name", in.Name).Err(err).Msg("seed property failed")
				return
			}
			log.Info().Str("id", p.ID).Str("name", p.Name).Msg("property seeded")
		}(in)
	}

	wg.Wait()
	log.Info().Msg("seeding completed")
}
