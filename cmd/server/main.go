// @title           ImmoWächter HTTP Service API
// @version         1.0
// @description     Maintenance deadline tracking and risk classification for property owners
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.email  support@immowaechter.at

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8080
// @BasePath  /api

// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Enter the token with the `Bearer: ` prefix
package main

import (
	"fmt"
	"log"
	"os"
	"runtime"

	"immowaechter-http-service/internal/app/routes"
	"immowaechter-http-service/internal/domain/models"
	"immowaechter-http-service/internal/domain/services"
	"immowaechter-http-service/internal/infrastructure/config"
	"immowaechter-http-service/internal/infrastructure/database"
	"immowaechter-http-service/utils"

	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func main() {
	runtime.GOMAXPROCS(runtime.NumCPU())

	if err := config.SetupLogger(); err != nil {
		fmt.Printf("failed to set up logging: %v\n", err)
		os.Exit(1)
	}

	// Environment variables may also come from the deployment, so a
	// missing .env file is not fatal
	if err := godotenv.Load(); err != nil {
		config.Warning("could not load .env file: %v", err)
	} else {
		config.Info("loaded .env file")
	}

	cfg := config.GetConfig()

	pool, err := database.NewConnectionPool(cfg)
	if err != nil {
		log.Fatalf("failed to create database connection pool: %v", err)
	}
	db := pool.GetDB()

	switch cfg.DBMigrationMode {
	case "drop":
		log.Println("warning: running in drop mode, all tables will be dropped and recreated")
		if err := dropAndRecreateTables(db); err != nil {
			log.Fatalf("drop and recreate failed: %v", err)
		}
	default:
		log.Println("running standard migration, only new columns and tables are added")
		if err := autoMigrate(db); err != nil {
			log.Fatalf("migration failed: %v", err)
		}
	}

	seedConsequenceData(db, cfg)
	ensureAdminExists(db, cfg)

	redisClient := redis.NewClient(&redis.Options{
		Addr: cfg.GetRedisAddr(),
		DB:   cfg.RedisDB,
	})

	r := routes.SetupRouter(db, cfg, redisClient)

	port := cfg.ServerPort
	printSystemInfo(pool)

	config.Info("server listening on http://0.0.0.0:%s", port)
	if err := r.Run("0.0.0.0:" + port); err != nil {
		config.Error("server failed: %v", err)
		os.Exit(1)
	}
}

// autoMigrate migrates all models, adding new columns and tables only
func autoMigrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Owner{},
		&models.Property{},
		&models.Component{},
		&models.MaintenanceLog{},
		&models.ConsequenceRecord{},
		&models.Notification{},
		&models.PushSubscription{},
		&models.RiskSnapshot{},
		&models.WaitlistEntry{},
	)
	if err != nil {
		return err
	}

	fmt.Println("Database migration completed")
	return nil
}

// dropAndRecreateTables drops every table and migrates from scratch
func dropAndRecreateTables(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get DB connection: %w", err)
	}

	if _, err := sqlDB.Exec("SET FOREIGN_KEY_CHECKS = 0"); err != nil {
		log.Printf("failed to disable foreign key checks: %v", err)
	}
	defer sqlDB.Exec("SET FOREIGN_KEY_CHECKS = 1")

	tables := []string{
		"owners", "properties", "components", "maintenance_logs",
		"consequence_records", "notifications", "push_subscriptions",
		"risk_snapshots", "waitlist_entries",
	}

	for _, table := range tables {
		log.Printf("dropping table: %s", table)
		if _, err := sqlDB.Exec(fmt.Sprintf("DROP TABLE IF EXISTS %s", table)); err != nil {
			log.Printf("failed to drop table %s: %v", table, err)
		}
	}

	return autoMigrate(db)
}

// seedConsequenceData loads the consequence reference data. Seeding is
// idempotent, existing rows are kept.
func seedConsequenceData(db *gorm.DB, cfg *config.Config) {
	consequenceService := services.NewConsequenceService(db, cfg)
	if err := consequenceService.Seed(); err != nil {
		log.Fatalf("failed to seed consequence data: %v", err)
	}
}

// ensureAdminExists creates the default admin account on first start
func ensureAdminExists(db *gorm.DB, cfg *config.Config) {
	var count int64
	db.Model(&models.Owner{}).Where("role = ?", "admin").Count(&count)

	if count == 0 {
		password := cfg.DefaultAdminPassword
		if password == "" {
			password = utils.RandomToken(12)
			log.Printf("no admin password configured, generated one: %s", password)
		}

		hash, err := utils.HashPassword(password)
		if err != nil {
			log.Fatalf("failed to hash admin password: %v", err)
		}

		admin := models.Owner{
			Email:        cfg.DefaultAdminEmail,
			PasswordHash: hash,
			Name:         "Administrator",
			Role:         "admin",
		}

		if err := db.Create(&admin).Error; err != nil {
			log.Fatalf("failed to create default admin account: %v", err)
		}

		log.Println("created default admin account")
	}
}

// printSystemInfo logs pool and runtime statistics at startup
func printSystemInfo(pool *database.ConnectionPool) {
	stats, err := pool.Stats()
	if err == nil {
		log.Printf("database connection pool: %+v", stats)
	}

	log.Printf("CPU cores: %d", runtime.NumCPU())
	log.Printf("goroutines: %d", runtime.NumGoroutine())

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	log.Printf("memory: Alloc=%v MiB, TotalAlloc=%v MiB, Sys=%v MiB",
		m.Alloc/1024/1024, m.TotalAlloc/1024/1024, m.Sys/1024/1024)
}
