package main

import (
	"context"
	"fmt"
	"time"

	"github.com/harmonia/academy-backend/internal/config"
	"github.com/harmonia/academy-backend/internal/database"
	"github.com/harmonia/academy-backend/internal/logger"
	"github.com/harmonia/academy-backend/internal/model"
	"github.com/harmonia/academy-backend/internal/repository"
)

// Seeds a demo catalog: a handful of instructors plus an approved class
// for each, so a fresh install has something to list and enroll in.
func main() {
	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	userRepo := repository.NewUserRepository(pool)
	classRepo := repository.NewClassRepository(pool)

	instructorRole := model.RoleInstructor
	instructors := []model.User{
		{Email: "clara.bennett@harmonia.academy", Name: "Clara Bennett", Role: &instructorRole},
		{Email: "marcus.vidal@harmonia.academy", Name: "Marcus Vidal", Role: &instructorRole},
		{Email: "yuna.park@harmonia.academy", Name: "Yuna Park", Role: &instructorRole},
	}

	classes := []model.ClassOffering{
		{Title: "Beginner Violin", InstructorName: "Clara Bennett", InstructorEmail: "clara.bennett@harmonia.academy", Price: 89.99, AvailableSeats: 20},
		{Title: "Jazz Piano Improvisation", InstructorName: "Marcus Vidal", InstructorEmail: "marcus.vidal@harmonia.academy", Price: 129.50, AvailableSeats: 12},
		{Title: "Vocal Technique Fundamentals", InstructorName: "Yuna Park", InstructorEmail: "yuna.park@harmonia.academy", Price: 74.00, AvailableSeats: 25},
	}

	fmt.Println("=== Seeding demo catalog ===")

	for i := range instructors {
		if err := userRepo.Upsert(ctx, &instructors[i]); err != nil {
			log.Fatal().Err(err).Str("email", instructors[i].Email).Msg("Failed to seed instructor")
		}
		fmt.Printf("Instructor: %s\n", instructors[i].Email)
	}

	for i := range classes {
		if err := classRepo.Create(ctx, &classes[i]); err != nil {
			log.Fatal().Err(err).Str("title", classes[i].Title).Msg("Failed to seed class")
		}
		if _, err := classRepo.SetStatus(ctx, classes[i].ID, model.StatusApproved); err != nil {
			log.Fatal().Err(err).Str("title", classes[i].Title).Msg("Failed to approve class")
		}
		fmt.Printf("Class: %s (%s)\n", classes[i].Title, classes[i].ID)
	}

	fmt.Println("Done.")
}
