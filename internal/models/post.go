package models

import "time"

// Visibility controls which feeds a post appears in.
type Visibility string

const (
	VisibilityPublic Visibility = "public"
	VisibilitySchool Visibility = "school"
	VisibilityClass  Visibility = "class"
)

// Valid reports whether v is one of the known visibilities.
func (v Visibility) Valid() bool {
	switch v {
	case VisibilityPublic, VisibilitySchool, VisibilityClass:
		return true
	}
	return false
}

// Comment is a reply stored inside its parent post.
type Comment struct {
	ID         string    `json:"id"`
	AuthorName string    `json:"authorName"`
	AuthorRole Role      `json:"authorRole"`
	Text       string    `json:"text"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Post is an environmental-action post shared on the community board.
// Comments and images are kept inside the post document.
type Post struct {
	ID          string     `json:"id" gorm:"primaryKey;type:varchar(36)"`
	AuthorName  string     `json:"authorName" gorm:"type:varchar(255)"`
	AuthorRole  Role       `json:"authorRole" gorm:"type:varchar(32)"`
	School      string     `json:"school" gorm:"index;type:varchar(255)"`
	Content     string     `json:"content" gorm:"type:text"`
	Images      []string   `json:"images" gorm:"serializer:json"`
	Likes       int        `json:"likes"`
	Comments    []Comment  `json:"comments" gorm:"serializer:json"`
	Visibility  Visibility `json:"visibility" gorm:"type:varchar(16)"`
	TargetGroup string     `json:"targetGroup,omitempty" gorm:"type:varchar(255)"`
	CreatedAt   time.Time  `json:"createdAt" gorm:"index"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}
