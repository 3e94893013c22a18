package main

import (
	"encoding/json"
	"log"
	"os"

	"quickie-be/internal/entity"
	"quickie-be/internal/model"
	"quickie-be/pkg/database"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func mustJSON(v interface{}) datatypes.JSON {
	raw, err := json.Marshal(v)
	if err != nil {
		log.Fatalf("Error: Failed to marshal seed data: %v", err)
	}
	return datatypes.JSON(raw)
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	color.Cyan("Seeding Quickie catalog...")

	seedAdmin(db)
	perfumes := seedPerfumes(db)
	seedMachines(db, perfumes)

	color.Green("Seeding completed!")
}

func seedAdmin(db *gorm.DB) {
	email := os.Getenv("SEED_ADMIN_EMAIL")
	if email == "" {
		email = "admin@quickie.local"
	}

	var existing model.User
	if err := db.Where("email = ?", email).First(&existing).Error; err == nil {
		color.Yellow("Admin '%s' already exists, skipping...", email)
		return
	}

	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if password == "" {
		password = "admin12345"
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Error: Failed to hash admin password: %v", err)
	}
	hashStr := string(hash)

	admin := model.User{
		Email:         email,
		FullName:      "Quickie Admin",
		PasswordHash:  &hashStr,
		Role:          "admin",
		Status:        "active",
		EmailVerified: true,
	}

	if err := db.Create(&admin).Error; err != nil {
		log.Fatalf("Error: Failed to create admin user: %v", err)
	}
	color.Green("Created admin user: %s", email)
}

func seedPerfumes(db *gorm.DB) []model.Perfume {
	perfumes := []model.Perfume{
		{
			Name:        "Midnight Oud",
			Brand:       "Maison Noire",
			Description: "A dense, smoky oud wrapped in rose and saffron.",
			Price:       185,
			Tags:        mustJSON([]string{"woody", "oriental", "evening"}),
			NoteGroups: mustJSON([]entity.PerfumeNoteGroup{
				{Label: "top", Notes: []entity.PerfumeNote{{Name: "saffron", Weight: 40}, {Name: "raspberry", Weight: 20}}},
				{Label: "middle", Notes: []entity.PerfumeNote{{Name: "rose", Weight: 60}}},
				{Label: "base", Notes: []entity.PerfumeNote{{Name: "oud", Weight: 80}, {Name: "amber", Weight: 30}}},
			}),
		},
		{
			Name:        "Citrus Veil",
			Brand:       "Atelier Sol",
			Description: "Sparkling bergamot over a clean musk base.",
			Price:       95,
			Tags:        mustJSON([]string{"citrus", "fresh", "daytime"}),
			NoteGroups: mustJSON([]entity.PerfumeNoteGroup{
				{Label: "top", Notes: []entity.PerfumeNote{{Name: "bergamot", Weight: 70}, {Name: "lemon", Weight: 40}}},
				{Label: "middle", Notes: []entity.PerfumeNote{{Name: "neroli", Weight: 35}}},
				{Label: "base", Notes: []entity.PerfumeNote{{Name: "white musk", Weight: 50}}},
			}),
		},
		{
			Name:        "Vanille Sauvage",
			Brand:       "Maison Noire",
			Description: "Bourbon vanilla roughened with vetiver and leather.",
			Price:       140,
			Tags:        mustJSON([]string{"gourmand", "warm", "evening"}),
			NoteGroups: mustJSON([]entity.PerfumeNoteGroup{
				{Label: "top", Notes: []entity.PerfumeNote{{Name: "pink pepper", Weight: 25}}},
				{Label: "middle", Notes: []entity.PerfumeNote{{Name: "vanilla", Weight: 75}}},
				{Label: "base", Notes: []entity.PerfumeNote{{Name: "vetiver", Weight: 45}, {Name: "leather", Weight: 30}}},
			}),
		},
		{
			Name:        "Jardin Bleu",
			Brand:       "Atelier Sol",
			Description: "Dew-covered fig leaves and sea salt.",
			Price:       110,
			Tags:        mustJSON([]string{"green", "fresh", "unisex"}),
			NoteGroups: mustJSON([]entity.PerfumeNoteGroup{
				{Label: "top", Notes: []entity.PerfumeNote{{Name: "fig leaf", Weight: 65}}},
				{Label: "middle", Notes: []entity.PerfumeNote{{Name: "sea salt", Weight: 40}, {Name: "jasmine", Weight: 25}}},
				{Label: "base", Notes: []entity.PerfumeNote{{Name: "cedar", Weight: 55}}},
			}),
		},
	}

	out := make([]model.Perfume, 0, len(perfumes))
	for _, p := range perfumes {
		var existing model.Perfume
		if err := db.Where("name = ? AND brand = ?", p.Name, p.Brand).First(&existing).Error; err == nil {
			color.Yellow("Perfume '%s' already exists, skipping...", p.Name)
			out = append(out, existing)
			continue
		}

		if err := db.Create(&p).Error; err != nil {
			log.Printf("Error creating perfume '%s': %v", p.Name, err)
			continue
		}
		color.Green("Created perfume: %s (%s)", p.Name, p.Brand)
		out = append(out, p)
	}
	return out
}

func seedMachines(db *gorm.DB, perfumes []model.Perfume) {
	stock := make([]entity.StockEntry, 0, len(perfumes))
	for i, p := range perfumes {
		stock = append(stock, entity.StockEntry{PerfumeId: p.Id, Quantity: 3 + i})
	}

	machines := []model.VendingMachine{
		{
			Name:      "Quickie Central Station",
			Address:   "1 Station Plaza",
			Latitude:  48.8809,
			Longitude: 2.3553,
			Status:    "active",
			Stock:     mustJSON(stock),
		},
		{
			Name:      "Quickie Riverside Mall",
			Address:   "42 Quai des Parfums",
			Latitude:  48.8530,
			Longitude: 2.3499,
			Status:    "active",
			Stock:     mustJSON(stock),
		},
	}

	for _, m := range machines {
		var existing model.VendingMachine
		if err := db.Where("name = ?", m.Name).First(&existing).Error; err == nil {
			color.Yellow("Machine '%s' already exists, skipping...", m.Name)
			continue
		}

		if err := db.Create(&m).Error; err != nil {
			log.Printf("Error creating machine '%s': %v", m.Name, err)
			continue
		}
		color.Green("Created vending machine: %s", m.Name)
	}
}
