package feed

import (
	"errors"
	"strings"
	"time"

	"ecolearn/internal/models"

	"github.com/google/uuid"
)

var (
	// ErrNotAuthor is returned when the actor did not write the post or comment.
	ErrNotAuthor = errors.New("only the author can change this")
	// ErrCommentNotFound is returned when an action names a comment the post does not hold.
	ErrCommentNotFound = errors.New("comment not found")
	// ErrMissingTargetGroup is returned for class posts without a target group.
	ErrMissingTargetGroup = errors.New("targetGroup is required for class visibility")
	// ErrInvalidVisibility is returned for unknown visibilities.
	ErrInvalidVisibility = errors.New("visibility must be one of public, school, class")
)

// CanModify reports whether actor may edit or delete something written by author.
//
// This compares display names, not verified identities: two users sharing a
// name can edit each other's posts. Comparing stored user IDs taken from the
// session token would close that gap.
func CanModify(author, actor string) bool {
	return actor != "" && author == actor
}

// CheckVisibility enforces that class-scoped posts carry a target group.
func CheckVisibility(v models.Visibility, targetGroup string) error {
	if !v.Valid() {
		return ErrInvalidVisibility
	}
	if v == models.VisibilityClass && strings.TrimSpace(targetGroup) == "" {
		return ErrMissingTargetGroup
	}
	return nil
}

// Action is a single mutation of a post.
type Action interface {
	apply(p *models.Post) error
}

// Apply returns a copy of post with action applied. post itself is never modified.
func Apply(post models.Post, action Action) (models.Post, error) {
	next := post
	next.Images = append([]string(nil), post.Images...)
	next.Comments = append([]models.Comment{}, post.Comments...)
	if err := action.apply(&next); err != nil {
		return post, err
	}
	return next, nil
}

// EditPost replaces the editable fields of a post.
type EditPost struct {
	Actor       string
	Content     string
	Images      []string
	Visibility  models.Visibility
	TargetGroup string
}

func (a EditPost) apply(p *models.Post) error {
	if !CanModify(p.AuthorName, a.Actor) {
		return ErrNotAuthor
	}
	visibility := a.Visibility
	if visibility == "" {
		visibility = p.Visibility
	}
	if err := CheckVisibility(visibility, a.TargetGroup); err != nil {
		return err
	}
	p.Content = a.Content
	p.Images = append([]string(nil), a.Images...)
	p.Visibility = visibility
	p.TargetGroup = ""
	if visibility == models.VisibilityClass {
		p.TargetGroup = a.TargetGroup
	}
	return nil
}

// AddComment appends a comment. Anyone who can see a post may comment on it.
type AddComment struct {
	AuthorName string
	AuthorRole models.Role
	Text       string
	At         time.Time
}

func (a AddComment) apply(p *models.Post) error {
	p.Comments = append(p.Comments, models.Comment{
		ID:         uuid.New().String(),
		AuthorName: a.AuthorName,
		AuthorRole: a.AuthorRole,
		Text:       a.Text,
		CreatedAt:  a.At,
	})
	return nil
}

// EditComment rewrites the text of one of the actor's comments.
type EditComment struct {
	Actor     string
	CommentID string
	Text      string
}

func (a EditComment) apply(p *models.Post) error {
	i := commentIndex(p, a.CommentID)
	if i < 0 {
		return ErrCommentNotFound
	}
	if !CanModify(p.Comments[i].AuthorName, a.Actor) {
		return ErrNotAuthor
	}
	p.Comments[i].Text = a.Text
	return nil
}

// DeleteComment removes one of the actor's comments.
type DeleteComment struct {
	Actor     string
	CommentID string
}

func (a DeleteComment) apply(p *models.Post) error {
	i := commentIndex(p, a.CommentID)
	if i < 0 {
		return ErrCommentNotFound
	}
	if !CanModify(p.Comments[i].AuthorName, a.Actor) {
		return ErrNotAuthor
	}
	p.Comments = append(p.Comments[:i], p.Comments[i+1:]...)
	return nil
}

// Like adds one like.
type Like struct{}

func (Like) apply(p *models.Post) error {
	p.Likes++
	return nil
}

// Unlike removes one like, never going below zero.
type Unlike struct{}

func (Unlike) apply(p *models.Post) error {
	if p.Likes > 0 {
		p.Likes--
	}
	return nil
}

func commentIndex(p *models.Post, id string) int {
	for i, c := range p.Comments {
		if c.ID == id {
			return i
		}
	}
	return -1
}
