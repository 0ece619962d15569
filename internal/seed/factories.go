// Package seed creates demo data for local development and tests.
package seed

import (
	"fmt"
	"strings"
	"time"

	"devconnector/internal/models"
	"devconnector/internal/service"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// DefaultPassword is the password of every seeded user.
const DefaultPassword = "password123"

var statuses = []string{
	"Developer", "Junior Developer", "Senior Developer", "Manager",
	"Student or Learning", "Instructor or Teacher", "Intern",
}

// Options tunes how much data the factory generates.
type Options struct {
	// SkipBcrypt stores a cheap hash so large seeds stay fast. Seeded users
	// still log in with DefaultPassword.
	SkipBcrypt bool
	// MaxDays spreads post dates over the given number of past days.
	MaxDays int
}

// Factory builds domain entities and persists them.
type Factory struct {
	db       *gorm.DB
	opts     Options
	password string
}

// NewFactory returns a Factory writing to db. A zero seed picks a random one.
func NewFactory(db *gorm.DB, opts Options, seed int64) (*Factory, error) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	gofakeit.Seed(seed)

	cost := bcrypt.DefaultCost
	if opts.SkipBcrypt {
		cost = bcrypt.MinCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(DefaultPassword), cost)
	if err != nil {
		return nil, fmt.Errorf("hash seed password: %w", err)
	}
	if opts.MaxDays <= 0 {
		opts.MaxDays = 90
	}
	return &Factory{db: db, opts: opts, password: string(hash)}, nil
}

// CreateUser persists a random user. Overrides run before saving.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	email := strings.ToLower(fmt.Sprintf("%s.%d@%s", gofakeit.Username(), gofakeit.Number(100, 999), gofakeit.DomainName()))
	user := &models.User{
		Name:     gofakeit.Name(),
		Email:    email,
		Password: f.password,
		Avatar:   service.GravatarURL(email),
	}
	for _, override := range overrides {
		override(user)
	}

	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreateProfile persists a random profile with experience and education for user.
func (f *Factory) CreateProfile(user *models.User) (*models.Profile, error) {
	skills := make([]string, 0, 4)
	for range gofakeit.Number(2, 4) {
		skills = append(skills, gofakeit.ProgrammingLanguage())
	}

	handle := strings.ToLower(strings.ReplaceAll(user.Name, " ", ""))
	profile := &models.Profile{
		UserID:         user.ID,
		Company:        gofakeit.Company(),
		Website:        gofakeit.URL(),
		Location:       gofakeit.City(),
		Status:         gofakeit.RandomString(statuses),
		Skills:         service.NormalizeSkills(strings.Join(skills, ",")),
		Bio:            gofakeit.Sentence(12),
		GitHubUsername: handle,
		Social: models.SocialLinks{
			Twitter:  "https://twitter.com/" + handle,
			LinkedIn: "https://linkedin.com/in/" + handle,
		},
	}
	if err := f.db.Omit("Experience", "Education").Create(profile).Error; err != nil {
		return nil, err
	}

	start := gofakeit.DateRange(time.Now().AddDate(-10, 0, 0), time.Now().AddDate(-2, 0, 0))
	for i := range gofakeit.Number(1, 3) {
		from := start.AddDate(i*2, 0, 0)
		exp := &models.Experience{
			ProfileID:   profile.ID,
			Title:       gofakeit.JobTitle(),
			Company:     gofakeit.Company(),
			Location:    gofakeit.City(),
			From:        from,
			Description: gofakeit.Sentence(10),
		}
		if i == 0 {
			exp.Current = true
		} else {
			to := from.AddDate(2, 0, 0)
			exp.To = &to
		}
		if err := f.db.Create(exp).Error; err != nil {
			return nil, err
		}
	}

	graduated := start.AddDate(-1, 0, 0)
	edu := &models.Education{
		ProfileID:    profile.ID,
		School:       gofakeit.Company() + " University",
		Degree:       gofakeit.RandomString([]string{"BSc", "MSc", "BA", "Bootcamp"}),
		FieldOfStudy: gofakeit.JobDescriptor(),
		From:         graduated.AddDate(-4, 0, 0),
		To:           &graduated,
	}
	if err := f.db.Create(edu).Error; err != nil {
		return nil, err
	}

	profile.Education = []models.Education{*edu}
	return profile, nil
}

// CreatePost persists a random post by author dated within the last MaxDays.
func (f *Factory) CreatePost(author *models.User) (*models.Post, error) {
	post := &models.Post{
		UserID:    author.ID,
		Text:      gofakeit.Paragraph(1, 3, 12, " "),
		Name:      author.Name,
		Avatar:    author.Avatar,
		CreatedAt: f.pastTime(),
	}
	if err := f.db.Omit("Likes", "Comments").Create(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

// CreateComment persists a random comment by author on post.
func (f *Factory) CreateComment(post *models.Post, author *models.User) (*models.Comment, error) {
	comment := &models.Comment{
		PostID:    post.ID,
		UserID:    author.ID,
		Text:      gofakeit.Sentence(gofakeit.Number(4, 14)),
		Name:      author.Name,
		Avatar:    author.Avatar,
		CreatedAt: post.CreatedAt.Add(time.Duration(gofakeit.Number(1, 600)) * time.Minute),
	}
	if err := f.db.Create(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

func (f *Factory) pastTime() time.Time {
	back := time.Duration(gofakeit.Number(0, f.opts.MaxDays*24*60)) * time.Minute
	return time.Now().Add(-back)
}
