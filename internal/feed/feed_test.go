package feed_test

import (
	"testing"

	"ecolearn/internal/feed"
	"ecolearn/internal/models"

	"github.com/stretchr/testify/assert"
)

func samplePosts() []models.Post {
	return []models.Post{
		{ID: "p1", School: "Roosevelt High", Visibility: models.VisibilityPublic},
		{ID: "p2", School: "Roosevelt High", Visibility: models.VisibilitySchool},
		{ID: "p3", School: "Roosevelt High", Visibility: models.VisibilityClass, TargetGroup: "Ms. Smith - 5th Grade"},
		{ID: "p4", School: "Lincoln Elementary", Visibility: models.VisibilityPublic},
		{ID: "p5", School: "Lincoln Elementary", Visibility: models.VisibilityClass, TargetGroup: "Mr. Lee - 3rd Grade"},
		{ID: "p6", School: "Lincoln Elementary", Visibility: models.VisibilitySchool},
	}
}

func ids(posts []models.Post) []string {
	out := []string{}
	for _, p := range posts {
		out = append(out, p.ID)
	}
	return out
}

func TestFilter(t *testing.T) {
	student := feed.Viewer{Role: models.RoleStudent, School: "Roosevelt High", Class: "Ms. Smith - 5th Grade"}
	moderator := feed.Viewer{Role: models.RoleModerator}

	tests := []struct {
		name     string
		viewer   feed.Viewer
		selector string
		want     []string
	}{
		{"public ignores viewer", feed.Viewer{}, feed.SelectorPublic, []string{"p1", "p4"}},
		{"my school", student, feed.SelectorMySchool, []string{"p1", "p2"}},
		{"my class", student, feed.SelectorMyClass, []string{"p3"}},
		{"other class", feed.Viewer{Role: models.RoleStudent, School: "Roosevelt High", Class: "Mr. Lee - 3rd Grade"}, feed.SelectorMyClass, []string{}},
		{"class needs matching school", feed.Viewer{School: "Lincoln Elementary", Class: "Ms. Smith - 5th Grade"}, feed.SelectorMyClass, []string{}},
		{"my school without school", feed.Viewer{Role: models.RoleStudent}, feed.SelectorMySchool, []string{}},
		{"moderator school override", moderator, "Roosevelt High", []string{"p1", "p2", "p3"}},
		{"moderator class override", moderator, "Mr. Lee - 3rd Grade", []string{"p5"}},
		{"non-moderator arbitrary selector", student, "Roosevelt High", []string{}},
		{"moderator empty selector", moderator, "", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(feed.Filter(samplePosts(), tt.viewer, tt.selector)))
		})
	}
}

func TestFilter_Idempotent(t *testing.T) {
	posts := samplePosts()
	viewer := feed.Viewer{Role: models.RoleTeacher, School: "Lincoln Elementary"}

	first := feed.Filter(posts, viewer, feed.SelectorMySchool)
	second := feed.Filter(posts, viewer, feed.SelectorMySchool)

	assert.Equal(t, first, second)
	assert.Equal(t, samplePosts(), posts)
}

func TestFilter_NeverNil(t *testing.T) {
	assert.NotNil(t, feed.Filter(nil, feed.Viewer{}, "nope"))
}
