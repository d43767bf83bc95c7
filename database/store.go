package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"masterboxer.com/project-forum/models"
)

// ErrPostNotFound is returned by GetPost when no row has the requested id.
var ErrPostNotFound = errors.New("post not found")

// Store runs CRUD queries against the posts and comments tables. It does no
// business validation; callers check required fields and existence.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Ping reports whether the underlying database answers.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Store) ListPosts(ctx context.Context) ([]models.Post, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, score, text, username
		FROM posts
		ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return scanPosts(rows)
}

// CreatePost inserts a post with score 0 and returns its id.
func (s *Store) CreatePost(ctx context.Context, text, username string) (int64, error) {
	var id int64
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO posts (score, text, username)
		VALUES (0, $1, $2)
		RETURNING id`,
		text, username,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("create post: %w", err)
	}
	return id, nil
}

func (s *Store) GetPost(ctx context.Context, id int64) (models.Post, error) {
	var p models.Post
	err := s.db.QueryRowContext(ctx, `
		SELECT id, score, text, username
		FROM posts
		WHERE id = $1`, id,
	).Scan(&p.ID, &p.Score, &p.Text, &p.Username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Post{}, ErrPostNotFound
		}
		return models.Post{}, fmt.Errorf("get post %d: %w", id, err)
	}
	return p, nil
}

// EditPost replaces the text of post id. A missing id is not an error.
func (s *Store) EditPost(ctx context.Context, id int64, text string) error {
	if _, err := s.db.ExecContext(ctx, `UPDATE posts SET text = $1 WHERE id = $2`, text, id); err != nil {
		return fmt.Errorf("edit post %d: %w", id, err)
	}
	return nil
}

// DeletePost removes post id if present. Comments that reference it stay.
func (s *Store) DeletePost(ctx context.Context, id int64) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM posts WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete post %d: %w", id, err)
	}
	return nil
}

func (s *Store) ListPostsByUsername(ctx context.Context, username string) ([]models.Post, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, score, text, username
		FROM posts
		WHERE username = $1
		ORDER BY id ASC`, username)
	if err != nil {
		return nil, fmt.Errorf("list posts by %q: %w", username, err)
	}
	return scanPosts(rows)
}

func (s *Store) ListComments(ctx context.Context, parentID int64) ([]models.Comment, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, parent, score, text, username
		FROM comments
		WHERE parent = $1
		ORDER BY id ASC`, parentID)
	if err != nil {
		return nil, fmt.Errorf("list comments for post %d: %w", parentID, err)
	}
	defer rows.Close()

	comments := make([]models.Comment, 0)
	for rows.Next() {
		var c models.Comment
		if err := rows.Scan(&c.ID, &c.Parent, &c.Score, &c.Text, &c.Username); err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate comments: %w", err)
	}
	return comments, nil
}

// CreateComment inserts a comment on parentID with score 0 and returns its id.
// Comment ids come from their own sequence, independent of post ids.
func (s *Store) CreateComment(ctx context.Context, parentID int64, text, username string) (int64, error) {
	var id int64
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO comments (parent, score, text, username)
		VALUES ($1, 0, $2, $3)
		RETURNING id`,
		parentID, text, username,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("create comment on post %d: %w", parentID, err)
	}
	return id, nil
}

func scanPosts(rows *sql.Rows) ([]models.Post, error) {
	defer rows.Close()

	posts := make([]models.Post, 0)
	for rows.Next() {
		var p models.Post
		if err := rows.Scan(&p.ID, &p.Score, &p.Text, &p.Username); err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate posts: %w", err)
	}
	return posts, nil
}
