package main

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/franciscosanchezn/pizza-shop-api/internal/config"
	"github.com/franciscosanchezn/pizza-shop-api/internal/database"
	"github.com/franciscosanchezn/pizza-shop-api/internal/models"
	"github.com/franciscosanchezn/pizza-shop-api/internal/services"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

// Seeds the configured database with a few pizzas for local development.
//
//	go run ./scripts/seed_pizzas.go -names "Margherita,Pepperoni"
func main() {
	names := flag.String("names", "Margherita,Pepperoni,Vegetarian", "Comma separated pizza names")
	force := flag.Bool("force", false, "Seed even if the table already has rows")
	flag.Parse()

	_ = godotenv.Load()

	conf, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.InitDatabase(conf.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.WithError(err).Error("Failed to close database")
		}
	}()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	ctx := context.Background()
	svc := services.NewPizzaService(db)

	existing, err := svc.GetAllPizzas(ctx)
	if err != nil {
		log.Fatalf("Failed to list pizzas: %v", err)
	}
	if len(existing) > 0 && !*force {
		fmt.Printf("Database already holds %d pizzas, use -force to add more\n", len(existing))
		return
	}

	for _, name := range strings.Split(*names, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		pizza, err := svc.AddPizza(ctx, models.NewPizza(models.NewPizzaID(), name))
		if err != nil {
			log.Fatalf("Failed to seed %q: %v", name, err)
		}
		fmt.Printf("%s\t%s\n", pizza.UUID, pizza.PizzaName)
	}
}
