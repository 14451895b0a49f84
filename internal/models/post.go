// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Post is a short text authored by a user. Author name, username and gender
// are copied in at creation time and never refreshed.
type Post struct {
	ID        uint                         `gorm:"primaryKey" json:"id"`
	UserID    uint                         `gorm:"not null;index" json:"user"`
	Text      string                       `gorm:"type:text;not null" json:"text"`
	Name      string                       `gorm:"size:50" json:"name"`
	Username  string                       `gorm:"size:50" json:"username"`
	Gender    Gender                       `gorm:"size:10" json:"gender"`
	Likes     datatypes.JSONSlice[Like]    `json:"likes"`
	Comments  datatypes.JSONSlice[Comment] `json:"comments"`
	Version   uint                         `gorm:"not null;default:1" json:"-"`
	CreatedAt time.Time                    `json:"date"`
}

// Like records that a user liked a post. At most one per user per post.
type Like struct {
	ID     string `json:"id"`
	UserID uint   `json:"user"`
}

// EntryID implements nested.Entry.
func (l Like) EntryID() string { return l.ID }

// Comment is stored newest first on its post.
type Comment struct {
	ID        string    `json:"id"`
	UserID    uint      `json:"user"`
	Text      string    `json:"text"`
	Name      string    `json:"name"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"date"`
}

// EntryID implements nested.Entry.
func (c Comment) EntryID() string { return c.ID }

// AfterFind replaces NULL collections with empty ones so clients always see arrays.
func (p *Post) AfterFind(_ *gorm.DB) error {
	p.ensureCollections()
	return nil
}

func (p *Post) BeforeCreate(_ *gorm.DB) error {
	p.ensureCollections()
	return nil
}

func (p *Post) ensureCollections() {
	if p.Likes == nil {
		p.Likes = datatypes.JSONSlice[Like]{}
	}
	if p.Comments == nil {
		p.Comments = datatypes.JSONSlice[Comment]{}
	}
}

func (p *Post) GetVersion() uint  { return p.Version }
func (p *Post) SetVersion(v uint) { p.Version = v }

// HasLiked reports whether userID already has a like on the post.
func (p *Post) HasLiked(userID uint) bool {
	return p.likeIndex(userID) >= 0
}

func (p *Post) likeIndex(userID uint) int {
	for i, l := range p.Likes {
		if l.UserID == userID {
			return i
		}
	}
	return -1
}

// LikeIDFor returns the id of userID's like, if any.
func (p *Post) LikeIDFor(userID uint) (string, bool) {
	i := p.likeIndex(userID)
	if i < 0 {
		return "", false
	}
	return p.Likes[i].ID, true
}
