package migration

import (
	"Tastebook-Backend/entities"
	"fmt"

	"gorm.io/gorm"
)

// Migrate creates the tables, the read-only views and, on postgres, the named
// aggregate functions the social repository delegates to. The views use
// portable SQL so sqlite test databases get the same read surface.
func Migrate(db *gorm.DB) error {
	if db.Dialector.Name() == "postgres" {
		db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`)
	}

	if err := db.AutoMigrate(
		&entities.User{},
		&entities.Profile{},
		&entities.Recipe{},
		&entities.Comment{},
		&entities.Like{},
	); err != nil {
		return fmt.Errorf("error migrating tables: %w", err)
	}

	if err := createViews(db); err != nil {
		return err
	}

	if db.Dialector.Name() == "postgres" {
		if err := createAggregateFunctions(db); err != nil {
			return err
		}
	}

	return nil
}

func createViews(db *gorm.DB) error {
	db.Exec(`DROP VIEW IF EXISTS comments_with_users`)
	if err := db.Exec(`
		CREATE VIEW comments_with_users AS
		SELECT c.id, c.created_at, c.updated_at, c.content, c.parent_id,
		       c.recipe_id, c.user_id, p.username, p.full_name
		FROM comments c
		JOIN profiles p ON p.id = c.user_id
	`).Error; err != nil {
		return fmt.Errorf("error creating comments_with_users view: %w", err)
	}

	db.Exec(`DROP VIEW IF EXISTS recipe_stats`)
	if err := db.Exec(`
		CREATE VIEW recipe_stats AS
		SELECT r.id AS recipe_id, r.title,
		       (SELECT COUNT(*) FROM likes l WHERE l.recipe_id = r.id) AS like_count,
		       (SELECT COUNT(*) FROM comments c WHERE c.recipe_id = r.id) AS comment_count,
		       r.created_at
		FROM recipes r
	`).Error; err != nil {
		return fmt.Errorf("error creating recipe_stats view: %w", err)
	}

	return nil
}

func createAggregateFunctions(db *gorm.DB) error {
	statements := []string{
		`CREATE OR REPLACE FUNCTION get_recipe_like_count(recipe_uuid uuid) RETURNS bigint AS $$
			SELECT COUNT(*) FROM likes WHERE recipe_id = recipe_uuid
		$$ LANGUAGE sql STABLE`,
		`CREATE OR REPLACE FUNCTION get_recipe_comment_count(recipe_uuid uuid) RETURNS bigint AS $$
			SELECT COUNT(*) FROM comments WHERE recipe_id = recipe_uuid
		$$ LANGUAGE sql STABLE`,
		`CREATE OR REPLACE FUNCTION has_user_liked_recipe(recipe_uuid uuid, user_uuid uuid) RETURNS boolean AS $$
			SELECT EXISTS (SELECT 1 FROM likes WHERE recipe_id = recipe_uuid AND user_id = user_uuid)
		$$ LANGUAGE sql STABLE`,
	}

	for _, stmt := range statements {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("error creating aggregate function: %w", err)
		}
	}
	return nil
}
