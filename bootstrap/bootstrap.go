package bootstrap

import (
	"context"
	"fmt"
	"os"
	"time"

	"collab-api/db"
	"collab-api/models"

	"golang.org/x/crypto/bcrypt"
)

// InsertInitialData seeds a couple of demo accounts and a project so
// a fresh environment has something to click on. Runs only with
// ENABLE_BOOTSTRAP=true and only into an empty database.
func InsertInitialData(users *db.UserRepo, projects *db.ProjectRepo) {
	if os.Getenv("ENABLE_BOOTSTRAP") != "true" {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	existing, err := users.List(ctx)
	if err != nil {
		fmt.Println("Error counting users:", err)
		return
	}
	if len(existing) > 0 {
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("Password1"), bcrypt.DefaultCost)
	if err != nil {
		fmt.Println("Error hashing bootstrap password:", err)
		return
	}

	var ids []string
	for i := 1; i <= 3; i++ {
		user := models.NewUser(
			fmt.Sprintf("Demo%d", i),
			"User",
			fmt.Sprintf("+3816000000%d", i),
			fmt.Sprintf("demo%d@example.com", i),
			string(hashed),
		)
		id, err := users.Insert(ctx, user)
		if err != nil {
			fmt.Println("Error inserting initial users:", err)
			return
		}
		ids = append(ids, id)
	}

	project := models.Project{
		Title:         "Demo project",
		Description:   "Seeded by bootstrap",
		OwnerID:       ids[0],
		Collaborators: []string{ids[0]},
		Status:        "active",
		CreatedAt:     time.Now().UTC(),
	}
	if _, err := projects.Insert(ctx, project); err != nil {
		fmt.Println("Error inserting initial project:", err)
		return
	}

	fmt.Println("Inserted initial users and project")
}
