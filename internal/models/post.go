package models

import (
	"slices"
	"time"
)

type Comment struct {
	ID         string    `json:"id"`
	AuthorID   string    `json:"author_id"`
	AuthorName string    `json:"author_name"`
	Text       string    `json:"text"`
	CreatedAt  time.Time `json:"created_at"`
}

// Author identifies the user who shared a post. Seller-authored updates
// have no author.
type Author struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Company   string  `json:"company,omitempty"`
	AvatarURL *string `json:"avatar_url,omitempty"`
}

type Post struct {
	ID           string    `json:"id"`
	SellerID     string    `json:"seller_id"`
	SolutionID   string    `json:"solution_id"`
	Content      string    `json:"content"`
	Likes        int       `json:"likes"`
	IsLiked      bool      `json:"is_liked"`
	Bookmarks    int       `json:"bookmarks"`
	IsBookmarked bool      `json:"is_bookmarked"`
	Comments     []Comment `json:"comments"`
	Author       *Author   `json:"author,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

func (p *Post) GetID() string {
	return p.ID
}

func (p *Post) Clone() *Post {
	if p == nil {
		return nil
	}
	c := *p
	c.Comments = slices.Clone(p.Comments)
	if p.Author != nil {
		a := *p.Author
		if a.AvatarURL != nil {
			avatar := *a.AvatarURL
			a.AvatarURL = &avatar
		}
		c.Author = &a
	}
	return &c
}

// ToggleLike flips IsLiked and moves Likes in the same direction.
func (p *Post) ToggleLike() {
	if p.IsLiked {
		p.Likes--
	} else {
		p.Likes++
	}
	p.IsLiked = !p.IsLiked
}

// ToggleBookmark flips IsBookmarked and moves Bookmarks in the same direction.
func (p *Post) ToggleBookmark() {
	if p.IsBookmarked {
		p.Bookmarks--
	} else {
		p.Bookmarks++
	}
	p.IsBookmarked = !p.IsBookmarked
}

func AuthorFromUser(u *User) *Author {
	a := &Author{ID: u.ID, Name: u.Name, Company: u.Company}
	if u.AvatarURL != nil {
		avatar := *u.AvatarURL
		a.AvatarURL = &avatar
	}
	return a
}
