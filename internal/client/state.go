package client

import (
	"github.com/cypherskull/hyperconnect/internal/models"
	"github.com/cypherskull/hyperconnect/internal/services"
)

// State is the client's local copy of everything the backend serves.
type State struct {
	// CurrentUser is who logged in. ActingAs differs from it only while an
	// admin impersonates another user.
	CurrentUser *models.User
	ActingAs    *models.User

	Users             []*models.User
	Sellers           []*models.Seller
	Posts             []*models.Post
	Enterprises       []*models.Enterprise
	Inbox             []*models.InboxItem
	AccessConfig      []*models.AccessConfig
	MonetizationRules []*models.MonetizationRule
}

func (s State) LoggedIn() bool {
	return s.CurrentUser != nil
}

func (s State) Impersonating() bool {
	return s.CurrentUser != nil && s.ActingAs != nil && s.CurrentUser.ID != s.ActingAs.ID
}

type cloner[T any] interface {
	GetID() string
	Clone() T
}

func cloneAll[T cloner[T]](in []T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	for i, v := range in {
		out[i] = v.Clone()
	}
	return out
}

func (s State) clone() State {
	return State{
		CurrentUser:       s.CurrentUser.Clone(),
		ActingAs:          s.ActingAs.Clone(),
		Users:             cloneAll(s.Users),
		Sellers:           cloneAll(s.Sellers),
		Posts:             cloneAll(s.Posts),
		Enterprises:       cloneAll(s.Enterprises),
		Inbox:             cloneAll(s.Inbox),
		AccessConfig:      cloneAll(s.AccessConfig),
		MonetizationRules: cloneAll(s.MonetizationRules),
	}
}

func find[T cloner[T]](rows []T, id string) (T, bool) {
	for _, r := range rows {
		if r.GetID() == id {
			return r, true
		}
	}
	var zero T
	return zero, false
}

// replace swaps in v at the position of the row with the same id, or
// appends it.
func replace[T cloner[T]](rows []T, v T) []T {
	for i, r := range rows {
		if r.GetID() == v.GetID() {
			rows[i] = v.Clone()
			return rows
		}
	}
	return append(rows, v.Clone())
}

func (s *State) post(id string) *models.Post {
	p, _ := find(s.Posts, id)
	return p
}

func (s *State) seller(id string) *models.Seller {
	v, _ := find(s.Sellers, id)
	return v
}

func (s *State) user(id string) *models.User {
	u, _ := find(s.Users, id)
	return u
}

// putUser stores u in the user list and refreshes the session views that
// point at the same account.
func (s *State) putUser(u *models.User) {
	if u == nil {
		return
	}
	s.Users = replace(s.Users, u)
	if s.CurrentUser != nil && s.CurrentUser.ID == u.ID {
		s.CurrentUser = u.Clone()
	}
	if s.ActingAs != nil && s.ActingAs.ID == u.ID {
		s.ActingAs = u.Clone()
	}
}

func (s *State) putSeller(v *models.Seller) {
	if v != nil {
		s.Sellers = replace(s.Sellers, v)
	}
}

func (s *State) putPost(p *models.Post) {
	if p != nil {
		s.Posts = replace(s.Posts, p)
	}
}

func (s *State) putInboxItem(item *models.InboxItem) {
	if item != nil {
		s.Inbox = replace(s.Inbox, item)
	}
}

func (s *State) load(data *services.InitialData, authenticated *models.User) {
	s.CurrentUser = authenticated.Clone()
	s.ActingAs = data.CurrentUser.Clone()
	s.Users = cloneAll(data.Users)
	s.Sellers = cloneAll(data.Sellers)
	s.Posts = cloneAll(data.Posts)
	s.Enterprises = cloneAll(data.Enterprises)
	s.Inbox = cloneAll(data.Inbox)
	s.AccessConfig = cloneAll(data.AccessConfig)
	s.MonetizationRules = cloneAll(data.MonetizationRules)
}
