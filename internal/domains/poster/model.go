package poster

import (
	"strings"
	"time"

	"github.com/rs/xid"
)

const AnonymousAuthor = "Anonymous"

// Poster is one uploaded slide deck. The PDF bytes live in blob
// storage; FileURL is the public reference the viewer renders from.
//
// ID is an xid: time-prefixed, so the natural sort order of ids follows
// creation order.
type Poster struct {
	ID         string     `bson:"_id" json:"id"`
	Title      string     `bson:"title" json:"title"`
	Author     string     `bson:"author" json:"author"`
	FileURL    string     `bson:"fileUrl" json:"fileUrl"`
	PageCount  int        `bson:"pageCount,omitempty" json:"pageCount,omitempty"`
	UploadedAt time.Time  `bson:"uploadedAt" json:"uploadedAt"`
	DeletedAt  *time.Time `bson:"deletedAt,omitempty" json:"deletedAt,omitempty"`
}

// NewPoster stamps id and upload time server-side. A blank author
// defaults to Anonymous; title and fileURL are validated upstream.
func NewPoster(title, author, fileURL string, pageCount int) *Poster {
	author = strings.TrimSpace(author)
	if author == "" {
		author = AnonymousAuthor
	}

	return &Poster{
		ID:         xid.New().String(),
		Title:      strings.TrimSpace(title),
		Author:     author,
		FileURL:    fileURL,
		PageCount:  pageCount,
		UploadedAt: time.Now().UTC(),
	}
}

func (p *Poster) IsDeleted() bool {
	return p.DeletedAt != nil
}

// MarkDeleted flags the poster as trashed. Hard removal happens later
// in the purge job once the retention window passes.
func (p *Poster) MarkDeleted(at time.Time) {
	t := at.UTC()
	p.DeletedAt = &t
}
