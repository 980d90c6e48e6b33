package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"syscall"
	"time"

	"github.com/learnflow/gateway/internal/config"
	"github.com/learnflow/gateway/internal/database"
	"github.com/learnflow/gateway/internal/logger"
	"github.com/learnflow/gateway/internal/model"
	"github.com/learnflow/gateway/internal/service"
	"github.com/learnflow/gateway/internal/session"
	"github.com/learnflow/gateway/internal/upstream"
	"golang.org/x/term"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)

	ctx := context.Background()

	// ─── Pick Session Store ────────────────────────────────────────────
	var store session.Store
	if cfg.RedisURL != "" {
		rdb, err := database.NewRedisClient(ctx, cfg, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer rdb.Close()
		store = session.NewRedisStore(rdb, time.Duration(cfg.CookieMaxAge)*time.Second)
	} else {
		store = session.NewFileStore(cfg.SessionFile)
	}

	// ─── Initialize Service ────────────────────────────────────────────
	client := upstream.NewClient(cfg.BackendBaseURL, log)
	authService := service.NewAuthService(client, store, log)

	// ─── CLI Input ─────────────────────────────────────────────────────
	reader := bufio.NewReader(os.Stdin)

	fmt.Println("=== Open Gateway Session ===")

	// Email
	fmt.Print("Enter Email: ")
	email, _ := reader.ReadString('\n')
	email = strings.TrimSpace(email)
	if email == "" {
		fmt.Println("Error: Email is required")
		return
	}

	// Role
	fmt.Print("Enter Role (student/teacher, default student): ")
	roleStr, _ := reader.ReadString('\n')
	roleStr = strings.TrimSpace(roleStr)
	role := model.RoleStudent
	if roleStr != "" {
		role = model.Role(roleStr)
		if !role.Valid() {
			fmt.Println("Error: Role must be 'student' or 'teacher'")
			return
		}
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
	if password == "" {
		fmt.Println("Error: Password is required")
		return
	}

	// ─── Logic ─────────────────────────────────────────────────────────
	user, token, ok := authService.Login(ctx, email, password, role)
	if !ok {
		log.Fatal().Str("email", email).Msg("Login rejected by backend")
	}

	fmt.Printf("\nSuccess! Session opened for '%s' (%s) with ID: %d\n", user.Name, user.Email, user.ID)
	fmt.Printf("Token: %s\n", token)
}
