package storage

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/uushop/shopping-list-go/internal/models"
)

// MemoryStore implements Store on process-local slices guarded by one mutex,
// scanned linearly for filters. It backs tests and small single-process
// deployments; handlers never see the underlying collections.
type MemoryStore struct {
	mu          sync.Mutex
	users       []models.User
	lists       []models.ShoppingList
	memberships []models.Membership
	items       []models.ListItem
}

// NewMemoryStore returns an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func fillID(id *string) {
	if *id == "" {
		*id = uuid.NewString()
	}
}

// CreateUser inserts a user; ErrDuplicate on a taken email
func (s *MemoryStore) CreateUser(user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].Email == user.Email {
			return ErrDuplicate
		}
	}
	fillID(&user.ID)
	now := time.Now()
	user.CreatedAt, user.UpdatedAt = now, now
	s.users = append(s.users, *user)
	return nil
}

// FindUserByID looks a user up by id
func (s *MemoryStore) FindUserByID(id string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].ID == id {
			user := s.users[i]
			return &user, nil
		}
	}
	return nil, ErrNotFound
}

// FindUserByEmail looks a user up by email
func (s *MemoryStore) FindUserByEmail(email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].Email == email {
			user := s.users[i]
			return &user, nil
		}
	}
	return nil, ErrNotFound
}

// CreateListWithOwner inserts the list and its owner membership under one
// lock acquisition, so the pair is visible atomically
func (s *MemoryStore) CreateListWithOwner(list *models.ShoppingList, owner *models.Membership) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	fillID(&list.ID)
	now := time.Now()
	list.CreatedAt, list.UpdatedAt = now, now
	s.lists = append(s.lists, *list)

	fillID(&owner.ID)
	owner.ListID = list.ID
	owner.CreatedAt = now
	s.memberships = append(s.memberships, *owner)
	return nil
}

// FindListByID looks a shopping list up by id
func (s *MemoryStore) FindListByID(id string) (*models.ShoppingList, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.lists {
		if s.lists[i].ID == id {
			list := s.lists[i]
			return &list, nil
		}
	}
	return nil, ErrNotFound
}

// UpdateList replaces the stored list
func (s *MemoryStore) UpdateList(list *models.ShoppingList) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.lists {
		if s.lists[i].ID == list.ID {
			list.UpdatedAt = time.Now()
			s.lists[i] = *list
			return nil
		}
	}
	return ErrNotFound
}

// DeleteListCascade removes the list and its memberships.
// Items are left in place, mirroring the GORM store.
func (s *MemoryStore) DeleteListCascade(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	found := false
	lists := s.lists[:0]
	for i := range s.lists {
		if s.lists[i].ID == id {
			found = true
			continue
		}
		lists = append(lists, s.lists[i])
	}
	if !found {
		return ErrNotFound
	}
	s.lists = lists

	memberships := s.memberships[:0]
	for i := range s.memberships {
		if s.memberships[i].ListID == id {
			continue
		}
		memberships = append(memberships, s.memberships[i])
	}
	s.memberships = memberships
	return nil
}

// ListsForUser joins the user's memberships to lists and paginates
func (s *MemoryStore) ListsForUser(userID string, pageIndex, pageSize int) ([]ListSummary, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	all := []ListSummary{}
	for i := range s.memberships {
		m := &s.memberships[i]
		if m.UserID != userID {
			continue
		}
		for j := range s.lists {
			if s.lists[j].ID == m.ListID {
				all = append(all, ListSummary{ID: s.lists[j].ID, Title: s.lists[j].Title, Role: m.Role})
				break
			}
		}
	}

	total := int64(len(all))
	start := pageIndex * pageSize
	if start >= len(all) {
		return []ListSummary{}, total, nil
	}
	end := start + pageSize
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], total, nil
}

// CreateMembership inserts a membership; ErrDuplicate when the (list, user)
// pair already exists
func (s *MemoryStore) CreateMembership(m *models.Membership) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.memberships {
		if s.memberships[i].ListID == m.ListID && s.memberships[i].UserID == m.UserID {
			return ErrDuplicate
		}
	}
	fillID(&m.ID)
	m.CreatedAt = time.Now()
	s.memberships = append(s.memberships, *m)
	return nil
}

// FindMembership looks a membership up by its (list, user) pair
func (s *MemoryStore) FindMembership(listID, userID string) (*models.Membership, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.memberships {
		if s.memberships[i].ListID == listID && s.memberships[i].UserID == userID {
			m := s.memberships[i]
			return &m, nil
		}
	}
	return nil, ErrNotFound
}

// ListMembers returns all memberships of a list
func (s *MemoryStore) ListMembers(listID string) ([]models.Membership, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	members := []models.Membership{}
	for i := range s.memberships {
		if s.memberships[i].ListID == listID {
			members = append(members, s.memberships[i])
		}
	}
	return members, nil
}

// CreateItem inserts a list item
func (s *MemoryStore) CreateItem(item *models.ListItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	fillID(&item.ID)
	item.CreatedAt = time.Now()
	s.items = append(s.items, *item)
	return nil
}

// FindItemByID looks a list item up by id
func (s *MemoryStore) FindItemByID(id string) (*models.ListItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			item := s.items[i]
			return &item, nil
		}
	}
	return nil, ErrNotFound
}

// UpdateItem replaces the stored item
func (s *MemoryStore) UpdateItem(item *models.ListItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == item.ID {
			s.items[i] = *item
			return nil
		}
	}
	return ErrNotFound
}

// CountItems returns the number of items in a list
func (s *MemoryStore) CountItems(listID string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var count int64
	for i := range s.items {
		if s.items[i].ListID == listID {
			count++
		}
	}
	return count, nil
}

// ListItems returns the items of a list, optionally unchecked-only, in the
// requested sort order
func (s *MemoryStore) ListItems(listID string, onlyUnchecked bool, sortOrder string) ([]models.ListItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := []models.ListItem{}
	for i := range s.items {
		if s.items[i].ListID != listID {
			continue
		}
		if onlyUnchecked && s.items[i].IsChecked {
			continue
		}
		items = append(items, s.items[i])
	}

	switch sortOrder {
	case SortCreatedAt:
		sort.SliceStable(items, func(a, b int) bool {
			return items[a].CreatedAt.Before(items[b].CreatedAt)
		})
	case SortChecked:
		sort.SliceStable(items, func(a, b int) bool {
			if items[a].IsChecked != items[b].IsChecked {
				return !items[a].IsChecked
			}
			return items[a].Position < items[b].Position
		})
	default:
		sort.SliceStable(items, func(a, b int) bool {
			return items[a].Position < items[b].Position
		})
	}

	return items, nil
}
