package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"ecolearn/internal/feed"
	"ecolearn/internal/models"
	"ecolearn/internal/repositories"

	"github.com/go-playground/validator/v10"
)

// Author identifies who is acting on the board, as read from the session token.
type Author struct {
	Name   string
	Role   models.Role
	School string
}

// PostInput holds the client-editable fields of a post.
type PostInput struct {
	Content     string            `json:"content" validate:"required,nonblank,max=5000"`
	Images      []string          `json:"images" validate:"max=10,dive,max=2048"`
	Visibility  models.Visibility `json:"visibility" validate:"omitempty,oneof=public school class"`
	TargetGroup string            `json:"targetGroup" validate:"max=255"`
}

// PostService handles the community board.
type PostService struct {
	repo      repositories.PostRepository
	publisher EventPublisher
	validate  *validator.Validate
}

// NewPostService creates a new PostService. publisher may be nil.
func NewPostService(repo repositories.PostRepository, publisher EventPublisher) *PostService {
	return &PostService{
		repo:      repo,
		publisher: publisher,
		validate:  newValidator(),
	}
}

// List returns every post, most recent first.
func (s *PostService) List() ([]models.Post, error) {
	return s.repo.GetAll()
}

// Feed returns the posts visible to viewer under selector.
func (s *PostService) Feed(viewer feed.Viewer, selector string) ([]models.Post, error) {
	posts, err := s.repo.GetAll()
	if err != nil {
		return nil, err
	}
	return feed.Filter(posts, viewer, selector), nil
}

// Create publishes a new post in the author's school.
func (s *PostService) Create(author Author, in PostInput) (*models.Post, error) {
	if err := validateStruct(s.validate, in); err != nil {
		return nil, err
	}
	visibility := in.Visibility
	if visibility == "" {
		visibility = models.VisibilityPublic
	}
	if err := feed.CheckVisibility(visibility, in.TargetGroup); err != nil {
		return nil, feedError(err)
	}

	post := &models.Post{
		AuthorName: author.Name,
		AuthorRole: author.Role,
		School:     author.School,
		Content:    in.Content,
		Images:     in.Images,
		Comments:   []models.Comment{},
		Visibility: visibility,
		CreatedAt:  time.Now().UTC(),
	}
	if visibility == models.VisibilityClass {
		post.TargetGroup = in.TargetGroup
	}
	if err := s.repo.Create(post); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	publish(s.publisher, EventPostCreated, map[string]interface{}{
		"postId":     post.ID,
		"school":     post.School,
		"visibility": post.Visibility,
	})
	return post, nil
}

// Update edits one of the actor's posts.
func (s *PostService) Update(actor Author, id string, in PostInput) (*models.Post, error) {
	if err := validateStruct(s.validate, in); err != nil {
		return nil, err
	}
	return s.mutate(id, feed.EditPost{
		Actor:       actor.Name,
		Content:     in.Content,
		Images:      in.Images,
		Visibility:  in.Visibility,
		TargetGroup: in.TargetGroup,
	})
}

// Delete removes one of the actor's posts.
func (s *PostService) Delete(actor Author, id string) error {
	post, err := s.get(id)
	if err != nil {
		return err
	}
	if !feed.CanModify(post.AuthorName, actor.Name) {
		return ErrNotAuthor
	}
	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrPostNotFound
		}
		return fmt.Errorf("failed to delete post %s: %w", id, err)
	}
	return nil
}

// AddComment appends a comment by actor.
func (s *PostService) AddComment(actor Author, id, text string) (*models.Post, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrMissingCommentText
	}
	return s.mutate(id, feed.AddComment{
		AuthorName: actor.Name,
		AuthorRole: actor.Role,
		Text:       text,
		At:         time.Now().UTC(),
	})
}

// EditComment rewrites one of the actor's comments.
func (s *PostService) EditComment(actor Author, id, commentID, text string) (*models.Post, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrMissingCommentText
	}
	return s.mutate(id, feed.EditComment{Actor: actor.Name, CommentID: commentID, Text: text})
}

// DeleteComment removes one of the actor's comments.
func (s *PostService) DeleteComment(actor Author, id, commentID string) (*models.Post, error) {
	return s.mutate(id, feed.DeleteComment{Actor: actor.Name, CommentID: commentID})
}

// Like adds a like to a post.
func (s *PostService) Like(id string) (*models.Post, error) {
	return s.mutate(id, feed.Like{})
}

// Unlike removes a like from a post.
func (s *PostService) Unlike(id string) (*models.Post, error) {
	return s.mutate(id, feed.Unlike{})
}

// mutate loads a post, applies action and replaces the stored document.
func (s *PostService) mutate(id string, action feed.Action) (*models.Post, error) {
	post, err := s.get(id)
	if err != nil {
		return nil, err
	}
	next, err := feed.Apply(*post, action)
	if err != nil {
		return nil, feedError(err)
	}
	if err := s.repo.Replace(&next); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to save post %s: %w", id, err)
	}
	return &next, nil
}

func (s *PostService) get(id string) (*models.Post, error) {
	post, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to load post %s: %w", id, err)
	}
	return post, nil
}

// feedError maps reducer errors to service errors.
func feedError(err error) error {
	switch {
	case errors.Is(err, feed.ErrNotAuthor):
		return ErrNotAuthor
	case errors.Is(err, feed.ErrCommentNotFound):
		return ErrCommentNotFound
	case errors.Is(err, feed.ErrMissingTargetGroup), errors.Is(err, feed.ErrInvalidVisibility):
		return newError(ErrValidation, err.Error())
	}
	return err
}
