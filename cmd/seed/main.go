package main

import (
	"fmt"

	"github.com/AndreiVed/Social-Media-API/internal/model"
	"github.com/AndreiVed/Social-Media-API/pkg/config"
	"github.com/AndreiVed/Social-Media-API/pkg/database"
	"github.com/AndreiVed/Social-Media-API/pkg/logger"

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

	if err := seedDatabase(db, log); err != nil {
		log.Error("Failed to seed database: %v", err)
		panic(err)
	}

	log.Info("Database seeded successfully!")
}

func seedDatabase(db *gorm.DB, log *logger.Logger) error {
	testUsers := []struct {
		email     string
		password  string
		firstName string
		lastName  string
		city      string
		country   string
	}{
		{"alice@test.com", "password123", "Alice", "Nguyen", "Berlin", "Germany"},
		{"bob@test.com", "password123", "Bob", "Schmidt", "Hamburg", "Germany"},
		{"charlie@test.com", "password123", "Charlie", "Kim", "Seoul", "South Korea"},
		{"diana@test.com", "password123", "Diana", "Lopez", "Madrid", "Spain"},
		{"eve@test.com", "password123", "Eve", "Okafor", "Lagos", "Nigeria"},
	}

	userIDs := make([]string, 0, len(testUsers))
	for _, tu := range testUsers {
		var existing model.UserModel
		if err := db.Where("email = ?", tu.email).First(&existing).Error; err == nil {
			userIDs = append(userIDs, existing.ID)
			continue
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(tu.password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}

		user := model.UserModel{
			Email:    tu.email,
			Password: string(hashed),
			Profile: &model.ProfileModel{
				FirstName: tu.firstName,
				LastName:  tu.lastName,
				City:      tu.city,
				Country:   tu.country,
			},
		}
		if err := db.Create(&user).Error; err != nil {
			return err
		}

		log.Info("Created user %s", tu.email)
		userIDs = append(userIDs, user.ID)
	}

	// Everyone follows alice, alice follows bob
	for _, followerID := range userIDs[1:] {
		follow := model.FollowModel{FollowerID: followerID, FolloweeID: userIDs[0]}
		if err := db.Where("follower_id = ? AND followee_id = ?", follow.FollowerID, follow.FolloweeID).
			FirstOrCreate(&follow).Error; err != nil {
			return err
		}
	}
	aliceFollowsBob := model.FollowModel{FollowerID: userIDs[0], FolloweeID: userIDs[1]}
	if err := db.Where("follower_id = ? AND followee_id = ?", aliceFollowsBob.FollowerID, aliceFollowsBob.FolloweeID).
		FirstOrCreate(&aliceFollowsBob).Error; err != nil {
		return err
	}

	testPosts := []struct {
		authorIdx int
		title     string
		content   string
		hashtags  []string
	}{
		{0, "Morning in Berlin", "Sunrise over the Spree never gets old.", []string{"travel", "berlin"}},
		{0, "Coffee notes", "Trying a new roastery near Alexanderplatz.", []string{"coffee"}},
		{1, "Harbour walk", "Wind, gulls and container ships.", []string{"travel", "hamburg"}},
		{2, "Street food tour", "Tteokbokki stalls in Myeongdong are unbeatable.", []string{"food", "seoul"}},
		{3, "Weekend hike", "Sierra de Guadarrama, clear skies all day.", []string{"hiking"}},
	}

	for _, tp := range testPosts {
		var existing model.PostModel
		if err := db.Where("title = ?", tp.title).First(&existing).Error; err == nil {
			continue
		}

		hashtags := make([]model.HashtagModel, 0, len(tp.hashtags))
		for _, name := range tp.hashtags {
			var tag model.HashtagModel
			if err := db.Where("name = ?", name).First(&tag).Error; err != nil {
				tag = model.HashtagModel{Name: name}
				if err := db.Create(&tag).Error; err != nil {
					return err
				}
			}
			hashtags = append(hashtags, tag)
		}

		post := model.PostModel{
			UserID:   userIDs[tp.authorIdx],
			Title:    tp.title,
			Content:  tp.content,
			Hashtags: hashtags,
		}
		if err := db.Create(&post).Error; err != nil {
			return err
		}

		log.Info("Created post %q", tp.title)

		comment := model.CommentModel{
			PostID:  post.ID,
			UserID:  userIDs[(tp.authorIdx+1)%len(userIDs)],
			Content: "Great post!",
		}
		if err := db.Create(&comment).Error; err != nil {
			return err
		}

		reaction := model.ReactionModel{
			UserID: userIDs[(tp.authorIdx+2)%len(userIDs)],
			PostID: post.ID,
			Kind:   "LIKE",
		}
		if err := db.Create(&reaction).Error; err != nil {
			return err
		}
	}

	return nil
}
