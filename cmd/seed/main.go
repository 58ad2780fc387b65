package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/jsabonet/milagre-car-site-sub000/config"
	"github.com/jsabonet/milagre-car-site-sub000/fixtures"
	"github.com/jsabonet/milagre-car-site-sub000/models"
	"github.com/jsabonet/milagre-car-site-sub000/services"
)

// init loads environment variables
func init() {
	_ = godotenv.Load()
}

// main creates a super admin account and optionally loads demo inventory.
// Usage: go run ./cmd/seed [--fixtures path|default] [--skip-admin]
func main() {
	var (
		fixturesPath string
		skipAdmin    bool
	)

	root := &cobra.Command{
		Use:   "seed",
		Short: "Create the first super admin and load demo inventory",
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Println("════════════════════════════════════════════════════════════")
			fmt.Println("MILAGRE CAR - Seeder")
			fmt.Println("════════════════════════════════════════════════════════════")
			fmt.Println()

			config.InitDB()
			defer config.CloseDB()
			log.Println("✓ Connected to database")

			if err := config.Gorm.AutoMigrate(&models.Category{}, &models.Car{}, &models.Admin{}); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}

			if !skipAdmin {
				if err := seedSuperAdmin(cmd.Context(), bufio.NewReader(os.Stdin)); err != nil {
					return err
				}
			}
			if fixturesPath != "" {
				return seedInventory(cmd.Context(), fixturesPath)
			}
			return nil
		},
	}
	root.Flags().StringVar(&fixturesPath, "fixtures", "", `YAML inventory to load ("default" for the bundled demo stock)`)
	root.Flags().BoolVar(&skipAdmin, "skip-admin", false, "Do not prompt for a super admin")

	if err := root.ExecuteContext(context.Background()); err != nil {
		log.Fatalf("❌ %v", err)
	}
}

func seedSuperAdmin(ctx context.Context, in *bufio.Reader) error {
	email, password, name := getAdminCredentials(in)

	// Check if admin already exists
	var existingAdmin models.Admin
	err := config.Gorm.WithContext(ctx).Where("email = ?", email).First(&existingAdmin).Error
	if err == nil {
		return fmt.Errorf("admin with email '%s' already exists", email)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("database error: %w", err)
	}
	log.Printf("✓ Email '%s' is available", email)

	// Hash password
	passwordHash, err := services.GetAdminAuthService().HashPassword(password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	log.Println("✓ Password hashed securely")

	superAdmin := models.Admin{
		Email:        email,
		Name:         name,
		PasswordHash: passwordHash,
		Role:         "super_admin",
		Status:       "active",
	}
	if err := config.Gorm.WithContext(ctx).Create(&superAdmin).Error; err != nil {
		return fmt.Errorf("create super admin: %w", err)
	}

	fmt.Println()
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("✅ Super Admin Created Successfully!")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Printf("ID:    %s\n", superAdmin.ID)
	fmt.Printf("Email: %s\n", superAdmin.Email)
	fmt.Printf("Name:  %s\n", superAdmin.Name)
	fmt.Printf("Role:  %s\n", superAdmin.Role)
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Println("1. Start the server: go run main.go")
	fmt.Println("2. Login at POST /api/v1/admin/login with email and password")
	fmt.Println("3. Use the returned token for authenticated requests")
	fmt.Println()
	return nil
}

func seedInventory(ctx context.Context, path string) error {
	var (
		inv fixtures.Inventory
		err error
	)
	if path == "default" {
		inv, err = fixtures.Default()
	} else {
		var data []byte
		if data, err = os.ReadFile(path); err != nil {
			return fmt.Errorf("read fixtures: %w", err)
		}
		inv, err = fixtures.Parse(data)
	}
	if err != nil {
		return err
	}

	n, err := fixtures.Apply(ctx, config.Gorm, inv)
	if err != nil {
		return fmt.Errorf("load fixtures: %w", err)
	}
	log.Printf("✅ Loaded %d categories and %d cars", len(inv.Categories), n)
	return nil
}

// getAdminCredentials prompts user for admin details
func getAdminCredentials(in *bufio.Reader) (email, password, name string) {
	fmt.Println("Enter Super Admin Details:")
	fmt.Println()

	authService := services.GetAdminAuthService()

	email = prompt(in, "Email: ", "❌ Email cannot be empty", func(s string) bool { return s != "" })
	name = prompt(in, "Name: ", "❌ Name cannot be empty", func(s string) bool { return s != "" })
	password = prompt(in, "Password (min 8 characters): ", "❌ Password must be at least 8 characters", authService.ValidatePassword)
	prompt(in, "Confirm Password: ", "❌ Passwords do not match", func(s string) bool { return s == password })

	fmt.Println()
	return email, password, name
}

func prompt(in *bufio.Reader, label, invalid string, ok func(string) bool) string {
	for {
		fmt.Print(label)
		line, err := in.ReadString('\n')
		value := strings.TrimSpace(line)
		if ok(value) {
			return value
		}
		if err != nil {
			log.Fatalf("❌ input closed: %v", err)
		}
		fmt.Println(invalid)
	}
}
