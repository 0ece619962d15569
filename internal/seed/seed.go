package seed

import (
	"fmt"
	"log"

	"devconnector/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Seeder fills the database with a connected set of demo users.
type Seeder struct {
	db      *gorm.DB
	factory *Factory
}

// Result counts what a seeding run created.
type Result struct {
	Users    int
	Profiles int
	Posts    int
	Likes    int
	Comments int
}

func NewSeeder(db *gorm.DB, f *Factory) *Seeder {
	return &Seeder{db: db, factory: f}
}

// ClearAll deletes every row, children first.
func (s *Seeder) ClearAll() error {
	tables := []any{
		&models.Like{}, &models.Comment{}, &models.Post{},
		&models.Experience{}, &models.Education{}, &models.Profile{},
		&models.User{},
	}
	for _, t := range tables {
		if err := s.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(t).Error; err != nil {
			return fmt.Errorf("clear %T: %w", t, err)
		}
	}
	log.Println("cleared existing data")
	return nil
}

// Run creates numUsers users, most with a profile, and numPosts posts spread
// across them. Each post gets likes and comments from other users.
func (s *Seeder) Run(numUsers, numPosts int) (*Result, error) {
	if numUsers <= 0 {
		return nil, fmt.Errorf("need at least one user, got %d", numUsers)
	}

	res := &Result{}
	users := make([]*models.User, 0, numUsers)
	for range numUsers {
		u, err := s.factory.CreateUser()
		if err != nil {
			return nil, fmt.Errorf("create user: %w", err)
		}
		users = append(users, u)

		// roughly one in five users never fills in a profile
		if gofakeit.Number(1, 5) == 1 {
			continue
		}
		if _, err := s.factory.CreateProfile(u); err != nil {
			return nil, fmt.Errorf("create profile for user %d: %w", u.ID, err)
		}
		res.Profiles++
	}
	res.Users = len(users)

	for i := range numPosts {
		author := users[i%len(users)]
		post, err := s.factory.CreatePost(author)
		if err != nil {
			return nil, fmt.Errorf("create post: %w", err)
		}
		res.Posts++

		for _, u := range users {
			if u.ID == author.ID {
				continue
			}
			if gofakeit.Number(1, 3) == 1 {
				tx := s.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&models.Like{PostID: post.ID, UserID: u.ID})
				if tx.Error != nil {
					return nil, fmt.Errorf("like post %d: %w", post.ID, tx.Error)
				}
				res.Likes += int(tx.RowsAffected)
			}
			if gofakeit.Number(1, 6) == 1 {
				if _, err := s.factory.CreateComment(post, u); err != nil {
					return nil, fmt.Errorf("comment on post %d: %w", post.ID, err)
				}
				res.Comments++
			}
		}
	}

	log.Printf("seeded %d users, %d profiles, %d posts, %d likes, %d comments",
		res.Users, res.Profiles, res.Posts, res.Likes, res.Comments)
	return res, nil
}
