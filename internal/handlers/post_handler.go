package handlers

import (
	"ecolearn/internal/feed"
	"ecolearn/internal/middleware"
	"ecolearn/internal/services"

	"github.com/gofiber/fiber/v2"
)

// PostHandler handles HTTP requests for the community board.
type PostHandler struct {
	service *services.PostService
}

// NewPostHandler creates a new PostHandler.
func NewPostHandler(service *services.PostService) *PostHandler {
	return &PostHandler{
		service: service,
	}
}

// RegisterRoutes registers the post routes. Everything but the full listing
// goes through auth.
func (h *PostHandler) RegisterRoutes(router fiber.Router, auth fiber.Handler) {
	postRoutes := router.Group("/posts")
	postRoutes.Get("/", h.HandleListPosts)
	postRoutes.Get("/feed", auth, h.HandleFeed)
	postRoutes.Post("/", auth, h.HandleCreatePost)
	postRoutes.Put("/:id", auth, h.HandleUpdatePost)
	postRoutes.Delete("/:id", auth, h.HandleDeletePost)
	postRoutes.Post("/:id/comments", auth, h.HandleAddComment)
	postRoutes.Put("/:id/comments/:commentId", auth, h.HandleEditComment)
	postRoutes.Delete("/:id/comments/:commentId", auth, h.HandleDeleteComment)
	postRoutes.Post("/:id/like", auth, h.HandleLike)
	postRoutes.Delete("/:id/like", auth, h.HandleUnlike)
}

// HandleListPosts returns every post, most recent first.
func (h *PostHandler) HandleListPosts(c *fiber.Ctx) error {
	posts, err := h.service.List()
	if err != nil {
		return respondError(c, err, "listing posts")
	}
	return c.JSON(posts)
}

// HandleFeed returns the posts visible to the caller under ?feed=. The
// caller's class is not stored on the account and comes from ?class=.
func (h *PostHandler) HandleFeed(c *fiber.Ctx) error {
	author := middleware.CurrentAuthor(c)
	viewer := feed.Viewer{
		Role:   author.Role,
		School: author.School,
		Class:  c.Query("class"),
	}
	posts, err := h.service.Feed(viewer, c.Query("feed", feed.SelectorPublic))
	if err != nil {
		return respondError(c, err, "loading feed")
	}
	return c.JSON(posts)
}

// HandleCreatePost creates a post authored by the caller.
func (h *PostHandler) HandleCreatePost(c *fiber.Ctx) error {
	var req services.PostInput
	if ok, err := parseBody(c, &req, "create post"); !ok {
		return err
	}
	post, err := h.service.Create(middleware.CurrentAuthor(c), req)
	if err != nil {
		return respondError(c, err, "creating post")
	}
	return c.Status(fiber.StatusCreated).JSON(post)
}

// HandleUpdatePost edits one of the caller's posts.
func (h *PostHandler) HandleUpdatePost(c *fiber.Ctx) error {
	var req services.PostInput
	if ok, err := parseBody(c, &req, "update post"); !ok {
		return err
	}
	post, err := h.service.Update(middleware.CurrentAuthor(c), c.Params("id"), req)
	if err != nil {
		return respondError(c, err, "updating post")
	}
	return c.JSON(post)
}

// HandleDeletePost deletes one of the caller's posts.
func (h *PostHandler) HandleDeletePost(c *fiber.Ctx) error {
	postID := c.Params("id")
	if err := h.service.Delete(middleware.CurrentAuthor(c), postID); err != nil {
		return respondError(c, err, "deleting post")
	}
	return c.JSON(fiber.Map{
		"message": "Post deleted successfully",
		"id":      postID,
	})
}

type commentRequest struct {
	Text string `json:"text"`
}

// HandleAddComment adds a comment by the caller.
func (h *PostHandler) HandleAddComment(c *fiber.Ctx) error {
	var req commentRequest
	if ok, err := parseBody(c, &req, "add comment"); !ok {
		return err
	}
	post, err := h.service.AddComment(middleware.CurrentAuthor(c), c.Params("id"), req.Text)
	if err != nil {
		return respondError(c, err, "adding comment")
	}
	return c.Status(fiber.StatusCreated).JSON(post)
}

// HandleEditComment edits one of the caller's comments.
func (h *PostHandler) HandleEditComment(c *fiber.Ctx) error {
	var req commentRequest
	if ok, err := parseBody(c, &req, "edit comment"); !ok {
		return err
	}
	post, err := h.service.EditComment(middleware.CurrentAuthor(c), c.Params("id"), c.Params("commentId"), req.Text)
	if err != nil {
		return respondError(c, err, "editing comment")
	}
	return c.JSON(post)
}

// HandleDeleteComment deletes one of the caller's comments.
func (h *PostHandler) HandleDeleteComment(c *fiber.Ctx) error {
	post, err := h.service.DeleteComment(middleware.CurrentAuthor(c), c.Params("id"), c.Params("commentId"))
	if err != nil {
		return respondError(c, err, "deleting comment")
	}
	return c.JSON(post)
}

// HandleLike adds a like.
func (h *PostHandler) HandleLike(c *fiber.Ctx) error {
	post, err := h.service.Like(c.Params("id"))
	if err != nil {
		return respondError(c, err, "liking post")
	}
	return c.JSON(post)
}

// HandleUnlike removes a like.
func (h *PostHandler) HandleUnlike(c *fiber.Ctx) error {
	post, err := h.service.Unlike(c.Params("id"))
	if err != nil {
		return respondError(c, err, "unliking post")
	}
	return c.JSON(post)
}
