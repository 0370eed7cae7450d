package storage

import (
	"errors"

	"github.com/uushop/shopping-list-go/internal/models"
)

// Sentinel errors shared by all Store implementations.
var (
	ErrNotFound  = errors.New("not found")
	ErrDuplicate = errors.New("duplicate")
)

// Item sort orders accepted by ListItems.
const (
	SortPosition  = "position"
	SortCreatedAt = "createdAt"
	SortChecked   = "checked"
)

// ListSummary is the projection returned by ListsForUser: the lists the user
// is a member of together with the user's role on each.
type ListSummary struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Role  string `json:"role"`
}

// Store is the persistence boundary for all command handlers. Implementations
// must keep the (list, user) membership pair unique and treat the
// list+owner-membership create and the list delete+membership cascade as
// single units of work.
type Store interface {
	// Users
	CreateUser(user *models.User) error
	FindUserByID(id string) (*models.User, error)
	FindUserByEmail(email string) (*models.User, error)

	// Shopping lists
	CreateListWithOwner(list *models.ShoppingList, owner *models.Membership) error
	FindListByID(id string) (*models.ShoppingList, error)
	UpdateList(list *models.ShoppingList) error
	DeleteListCascade(id string) error
	ListsForUser(userID string, pageIndex, pageSize int) ([]ListSummary, int64, error)

	// Memberships
	CreateMembership(m *models.Membership) error
	FindMembership(listID, userID string) (*models.Membership, error)
	ListMembers(listID string) ([]models.Membership, error)

	// List items
	CreateItem(item *models.ListItem) error
	FindItemByID(id string) (*models.ListItem, error)
	UpdateItem(item *models.ListItem) error
	CountItems(listID string) (int64, error)
	ListItems(listID string, onlyUnchecked bool, sort string) ([]models.ListItem, error)
}
