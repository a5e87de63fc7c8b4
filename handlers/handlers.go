package handlers

import (
	"context"
	"mime/multipart"

	"app/config"
	"app/models"
)

// UserStore is the persistence surface the auth handlers depend on.
type UserStore interface {
	CreateUser(ctx context.Context, username, passwordHash string) (models.User, error)
	GetUserByUsername(ctx context.Context, username string) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
}

// BasicStore is the persistence surface for site configuration records.
type BasicStore interface {
	CreateBasic(ctx context.Context, in models.BasicInput) (models.Basic, error)
	ListBasics(ctx context.Context) ([]models.Basic, error)
	GetBasic(ctx context.Context, id string) (models.Basic, error)
	UpdateBasic(ctx context.Context, id string, in models.BasicInput) (models.Basic, error)
	DeleteBasic(ctx context.Context, id string) error
}

// FileStore persists uploaded binary content and returns its public path.
type FileStore interface {
	Save(file *multipart.FileHeader) (string, error)
}

// Handler bundles the stores and configuration behind the HTTP routes.
// Tests construct one around in-memory fakes.
type Handler struct {
	Users  UserStore
	Basics BasicStore
	Files  FileStore
	Config config.Config
}

func New(users UserStore, basics BasicStore, files FileStore, cfg config.Config) *Handler {
	return &Handler{Users: users, Basics: basics, Files: files, Config: cfg}
}
