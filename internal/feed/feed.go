// Package feed decides which community posts a viewer sees and applies
// post mutations as pure reducer steps.
package feed

import "ecolearn/internal/models"

// Feed selectors every viewer may use. Moderators may also pass any school
// name or class name.
const (
	SelectorPublic   = "public"
	SelectorMySchool = "mySchool"
	SelectorMyClass  = "myClass"
)

// Viewer is the context a feed is evaluated for.
type Viewer struct {
	Role   models.Role
	School string
	Class  string
}

// Filter returns the posts visible to viewer under selector, in their original
// order. Unknown combinations yield an empty, non-nil slice.
func Filter(posts []models.Post, viewer Viewer, selector string) []models.Post {
	match := matcher(viewer, selector)
	out := []models.Post{}
	if match == nil {
		return out
	}
	for _, p := range posts {
		if match(p) {
			out = append(out, p)
		}
	}
	return out
}

func matcher(viewer Viewer, selector string) func(models.Post) bool {
	switch selector {
	case SelectorPublic:
		return func(p models.Post) bool {
			return p.Visibility == models.VisibilityPublic
		}
	case SelectorMySchool:
		if viewer.School == "" {
			return nil
		}
		return func(p models.Post) bool {
			return p.School == viewer.School &&
				(p.Visibility == models.VisibilitySchool || p.Visibility == models.VisibilityPublic)
		}
	case SelectorMyClass:
		if viewer.School == "" || viewer.Class == "" {
			return nil
		}
		return func(p models.Post) bool {
			return p.School == viewer.School &&
				p.Visibility == models.VisibilityClass &&
				p.TargetGroup == viewer.Class
		}
	}

	if viewer.Role != models.RoleModerator || selector == "" {
		return nil
	}
	// A moderator's selector is a school or a class name; visibility is ignored.
	return func(p models.Post) bool {
		return p.School == selector || p.TargetGroup == selector
	}
}
