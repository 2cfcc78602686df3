// Package store is the in-memory data store behind the mock API.
package store

import (
	"github.com/cypherskull/hyperconnect/internal/models"
)

// Repository exposes one Collection per entity type. Operations receive it
// by injection so tests can swap in their own.
type Repository interface {
	Users() Collection[*models.User]
	Sellers() Collection[*models.Seller]
	Posts() Collection[*models.Post]
	Enterprises() Collection[*models.Enterprise]
	Inbox() Collection[*models.InboxItem]
	AccessConfig() Collection[*models.AccessConfig]
	MonetizationRules() Collection[*models.MonetizationRule]
}

// Snapshot is a full, ordered dump of a Repository.
type Snapshot struct {
	Users             []*models.User             `json:"users"`
	Sellers           []*models.Seller           `json:"sellers"`
	Posts             []*models.Post             `json:"posts"`
	Enterprises       []*models.Enterprise       `json:"enterprises"`
	Inbox             []*models.InboxItem        `json:"inbox"`
	AccessConfig      []*models.AccessConfig     `json:"access_config"`
	MonetizationRules []*models.MonetizationRule `json:"monetization_rules"`
}

func (s *Snapshot) Empty() bool {
	return len(s.Users) == 0 && len(s.Sellers) == 0 && len(s.Posts) == 0 &&
		len(s.Enterprises) == 0 && len(s.Inbox) == 0 &&
		len(s.AccessConfig) == 0 && len(s.MonetizationRules) == 0
}

type MemoryStore struct {
	users       *Table[*models.User]
	sellers     *Table[*models.Seller]
	posts       *Table[*models.Post]
	enterprises *Table[*models.Enterprise]
	inbox       *Table[*models.InboxItem]
	access      *Table[*models.AccessConfig]
	rules       *Table[*models.MonetizationRule]
}

func NewMemoryStore() *MemoryStore {
	return FromSnapshot(Snapshot{})
}

func FromSnapshot(s Snapshot) *MemoryStore {
	return &MemoryStore{
		users:       NewTable(s.Users...),
		sellers:     NewTable(s.Sellers...),
		posts:       NewTable(s.Posts...),
		enterprises: NewTable(s.Enterprises...),
		inbox:       NewTable(s.Inbox...),
		access:      NewTable(s.AccessConfig...),
		rules:       NewTable(s.MonetizationRules...),
	}
}

func (m *MemoryStore) Users() Collection[*models.User]             { return m.users }
func (m *MemoryStore) Sellers() Collection[*models.Seller]         { return m.sellers }
func (m *MemoryStore) Posts() Collection[*models.Post]             { return m.posts }
func (m *MemoryStore) Enterprises() Collection[*models.Enterprise] { return m.enterprises }
func (m *MemoryStore) Inbox() Collection[*models.InboxItem]        { return m.inbox }

func (m *MemoryStore) AccessConfig() Collection[*models.AccessConfig] {
	return m.access
}

func (m *MemoryStore) MonetizationRules() Collection[*models.MonetizationRule] {
	return m.rules
}

// Dump copies every collection of repo into a Snapshot.
func Dump(repo Repository) Snapshot {
	return Snapshot{
		Users:             repo.Users().List(),
		Sellers:           repo.Sellers().List(),
		Posts:             repo.Posts().List(),
		Enterprises:       repo.Enterprises().List(),
		Inbox:             repo.Inbox().List(),
		AccessConfig:      repo.AccessConfig().List(),
		MonetizationRules: repo.MonetizationRules().List(),
	}
}
