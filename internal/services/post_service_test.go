package services_test

import (
	"testing"

	"ecolearn/internal/feed"
	"ecolearn/internal/models"
	"ecolearn/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var ada = services.Author{Name: "Ada", Role: models.RoleTeacher, School: "Roosevelt High"}

func adaPost() *models.Post {
	return &models.Post{
		ID:         "p1",
		AuthorName: "Ada",
		AuthorRole: models.RoleTeacher,
		School:     "Roosevelt High",
		Content:    "Beach cleanup this weekend",
		Visibility: models.VisibilitySchool,
		Comments:   []models.Comment{{ID: "c1", AuthorName: "Bob", Text: "Count me in"}},
	}
}

func TestPostService_Create(t *testing.T) {
	mockRepo := new(MockPostRepository)
	publisher := new(MockPublisher)
	service := services.NewPostService(mockRepo, publisher)

	mockRepo.On("Create", mock.AnythingOfType("*models.Post")).Run(func(args mock.Arguments) {
		args.Get(0).(*models.Post).ID = "generated"
	}).Return(nil).Once()
	publisher.On("PublishEvent", services.EventPostCreated, mock.Anything).Return(nil).Once()

	post, err := service.Create(ada, services.PostInput{Content: "Planted a tree", Images: []string{"tree.png"}})
	require.NoError(t, err)
	assert.Equal(t, "generated", post.ID)
	assert.Equal(t, "Ada", post.AuthorName)
	assert.Equal(t, models.RoleTeacher, post.AuthorRole)
	assert.Equal(t, "Roosevelt High", post.School)
	assert.Equal(t, models.VisibilityPublic, post.Visibility)
	assert.NotNil(t, post.Comments)
	assert.False(t, post.CreatedAt.IsZero())

	mockRepo.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestPostService_CreateValidation(t *testing.T) {
	mockRepo := new(MockPostRepository)
	service := services.NewPostService(mockRepo, nil)

	_, err := service.Create(ada, services.PostInput{Content: "   "})
	assert.ErrorIs(t, err, services.ErrValidation)
	assert.Equal(t, "content is required", err.Error())

	_, err = service.Create(ada, services.PostInput{Content: "hi", Visibility: models.VisibilityClass})
	assert.ErrorIs(t, err, services.ErrValidation)
	assert.Contains(t, err.Error(), "targetGroup")

	_, err = service.Create(ada, services.PostInput{Content: "hi", Visibility: "friends"})
	assert.ErrorIs(t, err, services.ErrValidation)
	assert.Equal(t, "visibility must be one of public, school, class", err.Error())

	mockRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestPostService_Feed(t *testing.T) {
	mockRepo := new(MockPostRepository)
	service := services.NewPostService(mockRepo, nil)

	posts := []models.Post{
		{ID: "p1", School: "Roosevelt High", Visibility: models.VisibilityClass, TargetGroup: "Ms. Smith - 5th Grade"},
		{ID: "p2", School: "Roosevelt High", Visibility: models.VisibilityPublic},
	}
	mockRepo.On("GetAll").Return(posts, nil).Twice()

	inClass, err := service.Feed(feed.Viewer{Role: models.RoleStudent, School: "Roosevelt High", Class: "Ms. Smith - 5th Grade"}, feed.SelectorMyClass)
	require.NoError(t, err)
	require.Len(t, inClass, 1)
	assert.Equal(t, "p1", inClass[0].ID)

	otherClass, err := service.Feed(feed.Viewer{Role: models.RoleStudent, School: "Roosevelt High", Class: "Mr. Lee"}, feed.SelectorMyClass)
	require.NoError(t, err)
	assert.Empty(t, otherClass)
	mockRepo.AssertExpectations(t)
}

func TestPostService_UpdateOnlyByAuthor(t *testing.T) {
	mockRepo := new(MockPostRepository)
	service := services.NewPostService(mockRepo, nil)

	mockRepo.On("GetByID", "p1").Return(adaPost(), nil).Twice()
	mockRepo.On("Replace", mock.MatchedBy(func(p *models.Post) bool {
		return p.Content == "Cleanup moved to Sunday"
	})).Return(nil).Once()

	updated, err := service.Update(ada, "p1", services.PostInput{Content: "Cleanup moved to Sunday"})
	require.NoError(t, err)
	assert.Equal(t, models.VisibilitySchool, updated.Visibility)

	_, err = service.Update(services.Author{Name: "Mallory"}, "p1", services.PostInput{Content: "hacked"})
	assert.ErrorIs(t, err, services.ErrNotAuthor)
	assert.ErrorIs(t, err, services.ErrForbidden)
	mockRepo.AssertExpectations(t)
}

func TestPostService_Delete(t *testing.T) {
	mockRepo := new(MockPostRepository)
	service := services.NewPostService(mockRepo, nil)

	mockRepo.On("GetByID", "p1").Return(adaPost(), nil).Twice()
	mockRepo.On("Delete", "p1").Return(nil).Once()
	mockRepo.On("GetByID", "missing").Return(nil, notFound("missing")).Once()

	assert.ErrorIs(t, service.Delete(services.Author{Name: "Bob"}, "p1"), services.ErrNotAuthor)
	assert.NoError(t, service.Delete(ada, "p1"))
	assert.ErrorIs(t, service.Delete(ada, "missing"), services.ErrPostNotFound)
	mockRepo.AssertExpectations(t)
}

func TestPostService_Comments(t *testing.T) {
	mockRepo := new(MockPostRepository)
	service := services.NewPostService(mockRepo, nil)
	bob := services.Author{Name: "Bob", Role: models.RoleStudent}

	mockRepo.On("GetByID", "p1").Return(adaPost(), nil)
	mockRepo.On("Replace", mock.AnythingOfType("*models.Post")).Return(nil)

	post, err := service.AddComment(bob, "p1", "Bringing gloves")
	require.NoError(t, err)
	require.Len(t, post.Comments, 2)
	assert.Equal(t, "Bob", post.Comments[1].AuthorName)
	assert.Equal(t, models.RoleStudent, post.Comments[1].AuthorRole)

	_, err = service.AddComment(bob, "p1", "  ")
	assert.ErrorIs(t, err, services.ErrMissingCommentText)

	post, err = service.EditComment(bob, "p1", "c1", "Count me and my sister in")
	require.NoError(t, err)
	assert.Equal(t, "Count me and my sister in", post.Comments[0].Text)

	_, err = service.EditComment(ada, "p1", "c1", "no")
	assert.ErrorIs(t, err, services.ErrNotAuthor)

	_, err = service.DeleteComment(bob, "p1", "nope")
	assert.ErrorIs(t, err, services.ErrCommentNotFound)

	post, err = service.DeleteComment(bob, "p1", "c1")
	require.NoError(t, err)
	assert.Empty(t, post.Comments)
}

func TestPostService_Likes(t *testing.T) {
	mockRepo := new(MockPostRepository)
	service := services.NewPostService(mockRepo, nil)

	mockRepo.On("GetByID", "p1").Return(adaPost(), nil)
	mockRepo.On("Replace", mock.AnythingOfType("*models.Post")).Return(nil)

	post, err := service.Like("p1")
	require.NoError(t, err)
	assert.Equal(t, 1, post.Likes)

	post, err = service.Unlike("p1")
	require.NoError(t, err)
	assert.Equal(t, 0, post.Likes)
}
