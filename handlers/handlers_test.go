package handlers_test

import (
	"context"
	"fmt"
	"mime/multipart"

	"app/config"
	"app/database"
	"app/handlers"
	"app/models"
	"app/routes"

	"github.com/gofiber/fiber/v2"
)

const testSecret = "test-secret"

// --- In-memory fakes ---

type fakeUserStore struct {
	users  map[string]models.User // keyed by username
	nextID int
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[string]models.User{}, nextID: 1}
}

func (s *fakeUserStore) CreateUser(_ context.Context, username, passwordHash string) (models.User, error) {
	if _, ok := s.users[username]; ok {
		return models.User{}, database.ErrUsernameTaken
	}
	user := models.User{
		ID:           fmt.Sprintf("user-%d", s.nextID),
		Username:     username,
		PasswordHash: passwordHash,
	}
	s.nextID++
	s.users[username] = user
	return user, nil
}

func (s *fakeUserStore) GetUserByUsername(_ context.Context, username string) (models.User, error) {
	user, ok := s.users[username]
	if !ok {
		return models.User{}, database.ErrNotFound
	}
	return user, nil
}

func (s *fakeUserStore) ListUsers(_ context.Context) ([]models.User, error) {
	users := []models.User{}
	for _, user := range s.users {
		user.PasswordHash = ""
		users = append(users, user)
	}
	return users, nil
}

type fakeBasicStore struct {
	records     map[string]models.Basic
	nextID      int
	updateCalls int
}

func newFakeBasicStore() *fakeBasicStore {
	return &fakeBasicStore{records: map[string]models.Basic{}, nextID: 1}
}

func applyInput(basic *models.Basic, in models.BasicInput) {
	basic.Logo = in.Logo
	basic.HeroImage = in.HeroImage
	basic.Navbar = in.Navbar
	basic.CountTitle1 = in.CountTitle1
	basic.CountValue1 = in.CountValue1
	basic.CountTitle2 = in.CountTitle2
	basic.CountValue2 = in.CountValue2
	basic.CountTitle3 = in.CountTitle3
	basic.CountValue3 = in.CountValue3
	basic.CountTitle4 = in.CountTitle4
	basic.CountValue4 = in.CountValue4
	basic.Headline = in.Headline
	basic.Desc = in.Desc
}

func (s *fakeBasicStore) CreateBasic(_ context.Context, in models.BasicInput) (models.Basic, error) {
	basic := models.Basic{ID: fmt.Sprintf("basic-%d", s.nextID)}
	s.nextID++
	applyInput(&basic, in)
	s.records[basic.ID] = basic
	return basic, nil
}

func (s *fakeBasicStore) ListBasics(_ context.Context) ([]models.Basic, error) {
	basics := []models.Basic{}
	for _, basic := range s.records {
		basics = append(basics, basic)
	}
	return basics, nil
}

func (s *fakeBasicStore) GetBasic(_ context.Context, id string) (models.Basic, error) {
	basic, ok := s.records[id]
	if !ok {
		return models.Basic{}, database.ErrNotFound
	}
	return basic, nil
}

func (s *fakeBasicStore) UpdateBasic(_ context.Context, id string, in models.BasicInput) (models.Basic, error) {
	s.updateCalls++
	basic, ok := s.records[id]
	if !ok {
		return models.Basic{}, database.ErrNotFound
	}
	applyInput(&basic, in)
	s.records[id] = basic
	return basic, nil
}

func (s *fakeBasicStore) DeleteBasic(_ context.Context, id string) error {
	if _, ok := s.records[id]; !ok {
		return database.ErrNotFound
	}
	delete(s.records, id)
	return nil
}

type fakeFileStore struct {
	saved []string
}

func (s *fakeFileStore) Save(file *multipart.FileHeader) (string, error) {
	path := "uploads/fake-" + file.Filename
	s.saved = append(s.saved, path)
	return path, nil
}

// newTestApp wires a Fiber app around the fakes, mirroring main.
func newTestApp(users handlers.UserStore, basics handlers.BasicStore, files handlers.FileStore) *fiber.App {
	app := fiber.New()
	h := handlers.New(users, basics, files, config.Config{JWTSecret: testSecret})
	routes.SetupRoutes(app, h)
	return app
}
