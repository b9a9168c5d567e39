// provision es el paso explícito de despliegue: crea los índices del
// catálogo y la cuenta de administrador por defecto si no existe
// ninguna. Es idempotente y seguro de ejecutar en cada despliegue; dos
// ejecuciones concurrentes se resuelven por el índice único.
package main

import (
	"context"
	"errors"
	"log"
	"time"

	"eyewear-catalog/internal/auth"
	"eyewear-catalog/internal/config"
	"eyewear-catalog/internal/database"
	"eyewear-catalog/internal/models"
	"eyewear-catalog/internal/repository"
)

func main() {
	cfg := config.LoadConfig()

	client, err := database.Connect(cfg.MongoURI)
	if err != nil {
		log.Fatalf("failed to connect to mongo: %v", err)
	}
	defer client.Disconnect(context.Background())
	db := client.Database(cfg.MongoDB)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := database.EnsureIndexes(ctx, db); err != nil {
		log.Fatalf("failed to create indexes: %v", err)
	}
	log.Println("indexes ready")

	adminRepo := repository.NewAdminRepository(db.Collection(database.AdminsCollection))

	exists, err := adminRepo.RoleExists(ctx, models.RoleAdmin)
	if err != nil {
		log.Fatalf("failed to check for existing admin: %v", err)
	}
	if exists {
		log.Println("admin account already present, nothing to do")
		return
	}

	if cfg.AdminPassword == "" {
		log.Fatal("ADMIN_PASSWORD must be set to create the default admin account")
	}

	tokens := auth.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL)
	service := auth.NewService(adminRepo, tokens)

	admin, err := service.Register(ctx, models.AdminCreate{
		Username: cfg.AdminUsername,
		Email:    cfg.AdminEmail,
		Password: cfg.AdminPassword,
		Role:     models.RoleAdmin,
	})
	if err != nil {
		// Otra ejecución ganó la carrera: el estado deseado ya existe.
		if errors.Is(err, repository.ErrConflict) {
			log.Println("default admin already created by a concurrent run")
			return
		}
		log.Fatalf("failed to create default admin: %v", err)
	}
	log.Printf("default admin created: %s (%s)", admin.Username, admin.Email)
}
