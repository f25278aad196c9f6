package main

import (
	"context"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"skillswap/internal/config"
	"skillswap/internal/db"
	"skillswap/internal/model"
)

type seedUser struct {
	Name     string
	Email    string
	Location string
	Admin    bool
	Offered  []string
	Wanted   []string
}

var seedSkills = []struct {
	Name        string
	Description string
}{
	{"Guitar", "Acoustic and electric guitar lessons"},
	{"Spanish", "Conversational Spanish practice"},
	{"Photography", "Composition, lighting and editing basics"},
	{"Cooking", "Home cooking and meal planning"},
	{"Web Development", "HTML, CSS and JavaScript fundamentals"},
	{"Yoga", "Beginner friendly yoga sessions"},
	{"Chess", "Openings, tactics and endgame study"},
	{"Graphic Design", "Logos, posters and brand identity"},
}

var seedUsers = []seedUser{
	{
		Name:     "Marc Demo",
		Email:    "marc@example.com",
		Location: "Barcelona",
		Offered:  []string{"Guitar", "Chess"},
		Wanted:   []string{"Spanish", "Cooking"},
	},
	{
		Name:     "Joe Williams",
		Email:    "joe@example.com",
		Location: "London",
		Offered:  []string{"Spanish", "Cooking"},
		Wanted:   []string{"Guitar", "Photography"},
	},
	{
		Name:     "Mitchell Admin",
		Email:    "admin@example.com",
		Location: "Remote",
		Admin:    true,
		Offered:  []string{"Web Development"},
		Wanted:   []string{"Yoga"},
	},
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Skill{},
		&model.UserSkillOffered{},
		&model.UserSkillWanted{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()

	skillsByName, err := seedCatalog(ctx, gormDB)
	if err != nil {
		log.Fatalf("Failed to seed skill catalog: %v", err)
	}
	log.Printf("Seeded %d catalog skills", len(skillsByName))

	created, err := seedDemoUsers(ctx, gormDB, skillsByName)
	if err != nil {
		log.Fatalf("Failed to seed users: %v", err)
	}
	log.Printf("Seed complete: %d users created", created)
}

func seedCatalog(ctx context.Context, gormDB *gorm.DB) (map[string]model.Skill, error) {
	byName := make(map[string]model.Skill, len(seedSkills))
	for _, s := range seedSkills {
		desc := s.Description
		skill := model.Skill{Name: s.Name, Description: &desc}
		err := gormDB.WithContext(ctx).
			Where("name = ?", s.Name).
			FirstOrCreate(&skill).Error
		if err != nil {
			return nil, err
		}
		byName[s.Name] = skill
	}
	return byName, nil
}

func seedDemoUsers(ctx context.Context, gormDB *gorm.DB, skillsByName map[string]model.Skill) (int, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
	if err != nil {
		return 0, err
	}

	created := 0
	for _, su := range seedUsers {
		var existing model.User
		err := gormDB.WithContext(ctx).Where("email = ?", su.Email).First(&existing).Error
		if err == nil {
			log.Printf("User %s already exists, skipping", su.Email)
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return created, err
		}

		role := model.RoleUser
		if su.Admin {
			role = model.RoleAdmin
		}
		location := su.Location
		user := model.User{
			Name:         su.Name,
			Email:        su.Email,
			PasswordHash: string(hash),
			Role:         role,
			Location:     &location,
			IsPublic:     true,
		}
		for _, name := range su.Offered {
			user.SkillsOffered = append(user.SkillsOffered, skillsByName[name])
		}
		for _, name := range su.Wanted {
			user.SkillsWanted = append(user.SkillsWanted, skillsByName[name])
		}

		if err := gormDB.WithContext(ctx).Create(&user).Error; err != nil {
			return created, err
		}
		log.Printf("Created user %s (%s)", su.Name, su.Email)
		created++
	}
	return created, nil
}
