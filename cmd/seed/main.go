package main

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"time"

	"recipebook/internal/model"
	"recipebook/pkg/config"
	"recipebook/pkg/database"
	"recipebook/pkg/logger"
	"recipebook/pkg/s3"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.New()
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	s3Client, err := s3.NewClient(cfg)
	if err != nil {
		log.Error("Failed to create S3 client: %v", err)
		panic(err)
	}

	if err := seedDatabase(db, s3Client, log); err != nil {
		log.Error("Failed to seed database: %v", err)
		panic(err)
	}

	log.Info("Database seeded successfully!")
}

var seedCategories = []struct {
	name        string
	description string
}{
	{"Breakfast", "Start-of-day dishes"},
	{"Lunch", "Midday meals"},
	{"Dinner", "Evening mains"},
	{"Dessert", "Sweets and baking"},
	{"Snacks", "Quick bites"},
}

var seedRecipes = []struct {
	title        string
	description  string
	ingredients  string
	instructions string
	category     string
}{
	{"Shakshuka", "Eggs poached in spiced tomato sauce", "eggs, tomatoes, peppers, cumin, paprika", "Simmer the sauce, crack in the eggs, cover until set.", "Breakfast"},
	{"Miso Ramen", "Weeknight ramen with a miso broth", "noodles, miso paste, stock, scallions, egg", "Whisk miso into hot stock, cook noodles, assemble.", "Dinner"},
	{"Caesar Salad", "Classic salad with homemade dressing", "romaine, parmesan, croutons, anchovies, egg yolk", "Whisk the dressing, toss with leaves, top with croutons.", "Lunch"},
	{"Banana Bread", "One-bowl banana bread", "bananas, flour, butter, sugar, eggs", "Mash, mix, bake at 175C for 55 minutes.", "Dessert"},
	{"Hummus", "Smooth chickpea hummus", "chickpeas, tahini, lemon, garlic, olive oil", "Blend everything until smooth, adjust salt and lemon.", "Snacks"},
	{"Pancakes", "Fluffy buttermilk pancakes", "flour, buttermilk, eggs, baking powder", "Mix wet into dry, rest the batter, fry on medium heat.", "Breakfast"},
}

func seedDatabase(db *gorm.DB, s3Client *s3.Client, log *logger.Logger) error {
	httpClient := &http.Client{
		Timeout: 30 * time.Second,
	}

	categoryIDs := make(map[string]string, len(seedCategories))
	for _, c := range seedCategories {
		var existing model.CategoryModel
		if err := db.Where("name = ?", c.name).First(&existing).Error; err == nil {
			categoryIDs[c.name] = existing.ID
			continue
		}

		category := &model.CategoryModel{Name: c.name, Description: c.description}
		if err := db.Create(category).Error; err != nil {
			return fmt.Errorf("failed to create category %s: %w", c.name, err)
		}
		categoryIDs[c.name] = category.ID
		log.Info("Created category: %s", c.name)
	}

	testUsers := []struct {
		email    string
		username string
		password string
	}{
		{"alice@test.com", "alice_cooks", "password123"},
		{"bob@test.com", "bob_bakes", "password123"},
		{"charlie@test.com", "charlie_grills", "password123"},
		{"diana@test.com", "diana_dines", "password123"},
	}

	userIDs := make([]string, 0, len(testUsers))
	for _, u := range testUsers {
		var existing model.UserModel
		if err := db.Where("email = ? OR username = ?", u.email, u.username).First(&existing).Error; err == nil {
			log.Info("User %s already exists, skipping", u.username)
			userIDs = append(userIDs, existing.ID)
			continue
		}

		hashed, _ := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		user := &model.UserModel{
			Email:    u.email,
			Username: u.username,
			Password: string(hashed),
		}
		if err := db.Create(user).Error; err != nil {
			log.Error("Failed to create user %s: %v", u.username, err)
			continue
		}
		log.Info("Created user: %s (%s)", user.Username, user.Email)
		userIDs = append(userIDs, user.ID)
	}

	for i, r := range seedRecipes {
		authorID := userIDs[i%len(userIDs)]

		var existing model.RecipeModel
		if err := db.Where("title = ? AND author_id = ?", r.title, authorID).First(&existing).Error; err == nil {
			continue
		}

		categoryID := categoryIDs[r.category]
		recipe := &model.RecipeModel{
			AuthorID:     authorID,
			Title:        r.title,
			Description:  r.description,
			Ingredients:  r.ingredients,
			Instructions: r.instructions,
			CategoryID:   &categoryID,
		}

		if url, err := uploadPlaceholderImage(s3Client, httpClient, authorID, i, log); err != nil {
			log.Error("Skipping image for %s: %v", r.title, err)
		} else {
			recipe.ImageURL = url
		}

		if err := db.Create(recipe).Error; err != nil {
			log.Error("Failed to create recipe %s: %v", r.title, err)
			continue
		}
		log.Info("Created recipe: %s", r.title)

		// A couple of likes and a comment per recipe from other seed users.
		for j, userID := range userIDs {
			if userID == authorID || j > 1 {
				continue
			}
			like := &model.LikeModel{UserID: userID, RecipeID: recipe.ID}
			if err := db.Create(like).Error; err != nil {
				log.Error("Failed to create like: %v", err)
			}
		}
		commenterID := userIDs[(i+1)%len(userIDs)]
		if commenterID != authorID {
			comment := &model.CommentModel{
				RecipeID: recipe.ID,
				AuthorID: commenterID,
				Content:  fmt.Sprintf("Tried %s, turned out great!", r.title),
			}
			if err := db.Create(comment).Error; err != nil {
				log.Error("Failed to create comment: %v", err)
			}
		}
	}

	for i := 0; i < len(userIDs); i++ {
		for j := i + 1; j < len(userIDs); j++ {
			var existing model.FollowModel
			if err := db.Where("follower_id = ? AND following_id = ?", userIDs[i], userIDs[j]).First(&existing).Error; err == nil {
				continue
			}
			follow := &model.FollowModel{FollowerID: userIDs[i], FollowingID: userIDs[j]}
			if err := db.Create(follow).Error; err != nil {
				log.Error("Failed to create follow: %v", err)
			}
		}
	}

	log.Info("Created test follows")
	return nil
}

func uploadPlaceholderImage(s3Client *s3.Client, httpClient *http.Client, userID string, index int, log *logger.Logger) (string, error) {
	imageURL := fmt.Sprintf("https://picsum.photos/seed/recipe%d/800/600.jpg", index)

	log.Info("Fetching placeholder image from %s", imageURL)
	resp, err := httpClient.Get(imageURL)
	if err != nil {
		return "", fmt.Errorf("failed to fetch image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("image API returned status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read image data: %w", err)
	}
	if len(data) == 0 {
		return "", fmt.Errorf("received empty image data")
	}

	fileKey := fmt.Sprintf("recipes/%s/seed_%d.jpg", userID, index)
	url, err := s3Client.UploadFile(fileKey, bytes.NewReader(data), "image/jpeg")
	if err != nil {
		return "", fmt.Errorf("failed to upload image to S3: %w", err)
	}

	log.Info("Image uploaded: %s", url)
	return url, nil
}
