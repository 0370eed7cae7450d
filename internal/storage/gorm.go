package storage

import (
	"errors"

	"github.com/uushop/shopping-list-go/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// GormStore implements Store on a GORM connection (mysql, postgres, sqlite
// or sqlserver, see internal/database).
type GormStore struct {
	db *gorm.DB
}

// NewGormStore wraps an open GORM connection
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// quiet returns a session that does not log expected not-found misses
func (s *GormStore) quiet() *gorm.DB {
	return s.db.Session(&gorm.Session{Logger: s.db.Logger.LogMode(logger.Silent)})
}

func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicate
	default:
		return err
	}
}

// CreateUser inserts a user; ErrDuplicate on a taken email
func (s *GormStore) CreateUser(user *models.User) error {
	return translate(s.db.Create(user).Error)
}

// FindUserByID looks a user up by primary key
func (s *GormStore) FindUserByID(id string) (*models.User, error) {
	var user models.User
	if err := s.quiet().Where("id = ?", id).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

// FindUserByEmail looks a user up by unique email
func (s *GormStore) FindUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.quiet().Where("email = ?", email).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

// CreateListWithOwner inserts the list and its owner membership in one
// transaction so a failure cannot leave an orphaned list behind
func (s *GormStore) CreateListWithOwner(list *models.ShoppingList, owner *models.Membership) error {
	return translate(s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(list).Error; err != nil {
			return err
		}
		owner.ListID = list.ID
		return tx.Create(owner).Error
	}))
}

// FindListByID looks a shopping list up by primary key
func (s *GormStore) FindListByID(id string) (*models.ShoppingList, error) {
	var list models.ShoppingList
	if err := s.quiet().Where("id = ?", id).First(&list).Error; err != nil {
		return nil, translate(err)
	}
	return &list, nil
}

// UpdateList saves mutated list fields
func (s *GormStore) UpdateList(list *models.ShoppingList) error {
	return translate(s.db.Save(list).Error)
}

// DeleteListCascade removes the list and its memberships in one transaction.
// TODO: decide whether list items should be removed here as well; they are
// currently left in place.
func (s *GormStore) DeleteListCascade(id string) error {
	return translate(s.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ?", id).Delete(&models.ShoppingList{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Where("list_id = ?", id).Delete(&models.Membership{}).Error
	}))
}

// ListsForUser joins the user's memberships to their lists, projecting
// {id, title, role}. Total is the unpaginated match count.
func (s *GormStore) ListsForUser(userID string, pageIndex, pageSize int) ([]ListSummary, int64, error) {
	// Session makes the base query reusable for both the count and the page
	base := s.db.Table("memberships").
		Joins("JOIN shopping_lists ON shopping_lists.id = memberships.list_id").
		Where("memberships.user_id = ?", userID).
		Session(&gorm.Session{})

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	summaries := []ListSummary{}
	err := base.
		Select("shopping_lists.id AS id, shopping_lists.title AS title, memberships.role AS role").
		Order("memberships.created_at, shopping_lists.id").
		Offset(pageIndex * pageSize).
		Limit(pageSize).
		Scan(&summaries).Error
	if err != nil {
		return nil, 0, err
	}

	return summaries, total, nil
}

// CreateMembership inserts a membership; ErrDuplicate when the (list, user)
// pair already exists
func (s *GormStore) CreateMembership(m *models.Membership) error {
	return translate(s.db.Create(m).Error)
}

// FindMembership looks a membership up by its (list, user) pair
func (s *GormStore) FindMembership(listID, userID string) (*models.Membership, error) {
	var m models.Membership
	err := s.quiet().Where("list_id = ? AND user_id = ?", listID, userID).First(&m).Error
	if err != nil {
		return nil, translate(err)
	}
	return &m, nil
}

// ListMembers returns all memberships of a list
func (s *GormStore) ListMembers(listID string) ([]models.Membership, error) {
	members := []models.Membership{}
	err := s.db.Where("list_id = ?", listID).Order("created_at, id").Find(&members).Error
	if err != nil {
		return nil, err
	}
	return members, nil
}

// CreateItem inserts a list item
func (s *GormStore) CreateItem(item *models.ListItem) error {
	return translate(s.db.Create(item).Error)
}

// FindItemByID looks a list item up by primary key
func (s *GormStore) FindItemByID(id string) (*models.ListItem, error) {
	var item models.ListItem
	if err := s.quiet().Where("id = ?", id).First(&item).Error; err != nil {
		return nil, translate(err)
	}
	return &item, nil
}

// UpdateItem saves mutated item fields
func (s *GormStore) UpdateItem(item *models.ListItem) error {
	return translate(s.db.Save(item).Error)
}

// CountItems returns the number of items in a list
func (s *GormStore) CountItems(listID string) (int64, error) {
	var count int64
	err := s.db.Model(&models.ListItem{}).Where("list_id = ?", listID).Count(&count).Error
	return count, err
}

// ListItems returns the items of a list, optionally unchecked-only, in the
// requested sort order
func (s *GormStore) ListItems(listID string, onlyUnchecked bool, sort string) ([]models.ListItem, error) {
	query := s.db.Where("list_id = ?", listID)
	if onlyUnchecked {
		query = query.Where("is_checked = ?", false)
	}

	switch sort {
	case SortCreatedAt:
		query = query.Order("created_at, id")
	case SortChecked:
		// unchecked before checked
		query = query.Order("is_checked, position")
	default:
		query = query.Order("position, id")
	}

	items := []models.ListItem{}
	if err := query.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}
