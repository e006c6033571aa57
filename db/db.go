package db

import (
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/adrienb3106/fridgey-backend/config"
	"github.com/adrienb3106/fridgey-backend/models"
)

var DB *gorm.DB

// allModels lists every entity AutoMigrate manages, in dependency order.
var allModels = []any{
	&models.User{},
	&models.Group{},
	&models.UserGroup{},
	&models.Item{},
	&models.Stock{},
	&models.StockMovement{},
}

// Connect opens the database connection described by cfg and stores it
// in the package-level handle. TranslateError turns driver-specific
// constraint failures into gorm.ErrDuplicatedKey / ErrForeignKeyViolated
// so handlers can map them to status codes.
func Connect(cfg *config.Config) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort,
	)
	database, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal("Failed to connect to the database: ", err)
	}
	DB = database
	fmt.Println("Connected to the database")
}

func GetDB() *gorm.DB {
	return DB
}

// MakeMigration creates or updates the schema for all entities.
func MakeMigration(database *gorm.DB) {
	if err := database.AutoMigrate(allModels...); err != nil {
		log.Fatal("Failed to migrate database: ", err)
	}
	fmt.Println("Database migrated successfully")
}
