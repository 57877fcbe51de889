package comment

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const AnonymousAuthor = "Anonymous"

// Comment is a page-scoped annotation on a poster. PosterID is a plain
// string reference, not a database-enforced relation; the orphan sweep
// cleans up after purged posters.
type Comment struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	PosterID  string             `bson:"posterId" json:"posterId"`
	Page      int                `bson:"page" json:"page"`
	Text      string             `bson:"text" json:"text"`
	Author    string             `bson:"author" json:"author"`
	Timestamp time.Time          `bson:"timestamp" json:"timestamp"`
}

// NewComment stamps the creation time server-side and defaults a blank
// author to Anonymous.
func NewComment(posterID string, page int, text, author string) *Comment {
	author = strings.TrimSpace(author)
	if author == "" {
		author = AnonymousAuthor
	}

	return &Comment{
		PosterID:  posterID,
		Page:      page,
		Text:      strings.TrimSpace(text),
		Author:    author,
		Timestamp: time.Now().UTC(),
	}
}
