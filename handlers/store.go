package handlers

import (
	"context"

	"masterboxer.com/project-forum/models"
)

// Store is the storage the handlers depend on. *database.Store satisfies it.
type Store interface {
	Ping(ctx context.Context) error
	ListPosts(ctx context.Context) ([]models.Post, error)
	CreatePost(ctx context.Context, text, username string) (int64, error)
	GetPost(ctx context.Context, id int64) (models.Post, error)
	EditPost(ctx context.Context, id int64, text string) error
	DeletePost(ctx context.Context, id int64) error
	ListPostsByUsername(ctx context.Context, username string) ([]models.Post, error)
	ListComments(ctx context.Context, parentID int64) ([]models.Comment, error)
	CreateComment(ctx context.Context, parentID int64, text, username string) (int64, error)
}
