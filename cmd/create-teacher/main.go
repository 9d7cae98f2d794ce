package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"syscall"

	"github.com/schoolhub/schoolhub-server/internal/config"
	"github.com/schoolhub/schoolhub-server/internal/database"
	"github.com/schoolhub/schoolhub-server/internal/logger"
	"github.com/schoolhub/schoolhub-server/internal/model"
	"github.com/schoolhub/schoolhub-server/internal/repository"
	"github.com/schoolhub/schoolhub-server/internal/service"
	"golang.org/x/term"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)

	ctx := context.Background()

	// ─── Open SQLite Store ─────────────────────────────────────────────
	db, err := database.NewSQLiteDB(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open store")
	}
	defer db.Close()

	if err := database.Bootstrap(ctx, db, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("Failed to bootstrap store")
	}

	// ─── Initialize Service ────────────────────────────────────────────
	userRepo := repository.NewUserRepository(db)
	teacherRepo := repository.NewTeacherRepository(db)
	authService := service.NewAuthService(userRepo, cfg.BcryptCost)

	// ─── CLI Input ─────────────────────────────────────────────────────
	reader := bufio.NewReader(os.Stdin)

	fmt.Println("=== Create New Teacher Account ===")

	// Name (doubles as the login username)
	fmt.Print("Enter Name: ")
	name, _ := reader.ReadString('\n')
	name = strings.TrimSpace(name)
	if name == "" {
		fmt.Println("Error: Name is required")
		return
	}

	// Subject
	fmt.Print("Enter Subject: ")
	subject, _ := reader.ReadString('\n')
	subject = strings.TrimSpace(subject)
	if subject == "" {
		fmt.Println("Error: Subject is required")
		return
	}

	// Password
	fmt.Print("Enter Password: ")
	bytePassword, err := term.ReadPassword(int(syscall.Stdin))
	if err != nil {
		fmt.Println("\nError reading password")
		return
	}
	password := string(bytePassword)
	fmt.Println() // Newline after password input
	if len(password) < 6 {
		fmt.Println("Error: Password must be at least 6 characters")
		return
	}

	// Class ID (optional)
	fmt.Print("Enter Class ID (empty for no class): ")
	classIDStr, _ := reader.ReadString('\n')
	classIDStr = strings.TrimSpace(classIDStr)
	var classID *int
	if classIDStr != "" {
		p, err := strconv.Atoi(classIDStr)
		if err != nil {
			fmt.Println("Error: Class ID must be a number")
			return
		}
		classID = &p
	}

	// ─── Logic ─────────────────────────────────────────────────────────

	hash, err := authService.HashPassword(password)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to hash password")
	}

	user := &model.User{Username: name, PasswordHash: hash, Role: model.RoleTeacher}
	if err := userRepo.Create(ctx, user); err != nil {
		log.Fatal().Err(err).Msg("Failed to create login account")
	}

	teacher := &model.Teacher{Name: name, Subject: subject, ClassID: classID}
	if err := teacherRepo.Create(ctx, teacher); err != nil {
		log.Fatal().Err(err).Msg("Failed to create teacher record")
	}

	fmt.Printf("\nSuccess! Teacher '%s' (%s) created with ID: %d\n", teacher.Name, teacher.Subject, teacher.ID)
}
