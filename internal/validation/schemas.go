package validation

// One DtoIn schema per command. Constraint tags mirror the documented command
// contract; optional fields are pointers so an absent value can be told apart
// from a zero one. Defaults are applied by the Defaults methods, and only
// after a successful Check — a failed validation never partially applies
// defaults. Unknown input fields are ignored by the body/query parsers
// (permissive policy, asserted by tests).

// Pagination defaults and bounds.
const (
	DefaultPageIndex = 0
	DefaultPageSize  = 50
)

// UserCreateName is the structured name of a new user
type UserCreateName struct {
	First string `json:"first" validate:"required,max=100"`
	Last  string `json:"last" validate:"required,max=100"`
}

// UserCreateDtoIn is the input of user.create
type UserCreateDtoIn struct {
	Email string         `json:"email" validate:"required,email"`
	Name  UserCreateName `json:"name" validate:"required"`
}

// UserGetDtoIn is the input of user.get
type UserGetDtoIn struct {
	ID string `query:"id" json:"id" validate:"required"`
}

// InviteDtoIn is a single pending invite on shoppingList.create
type InviteDtoIn struct {
	Email string `json:"email" validate:"required,email"`
	Token string `json:"token"`
}

// ShoppingListCreateDtoIn is the input of shoppingList.create
type ShoppingListCreateDtoIn struct {
	Title       string        `json:"title" validate:"required,max=200"`
	Description string        `json:"description" validate:"omitempty,max=1000"`
	Invites     []InviteDtoIn `json:"invites" validate:"omitempty,dive"`
}

// ShoppingListGetDtoIn is the input of shoppingList.get
type ShoppingListGetDtoIn struct {
	ID string `query:"id" json:"id" validate:"required"`
}

// ShoppingListListMyDtoIn is the input of shoppingList.listMy
type ShoppingListListMyDtoIn struct {
	PageIndex *int `query:"pageIndex" json:"pageIndex" validate:"omitempty,min=0"`
	PageSize  *int `query:"pageSize" json:"pageSize" validate:"omitempty,min=1,max=100"`
}

// Defaults fills pagination defaults after a successful Check
func (d *ShoppingListListMyDtoIn) Defaults() (pageIndex, pageSize int) {
	pageIndex, pageSize = DefaultPageIndex, DefaultPageSize
	if d.PageIndex != nil {
		pageIndex = *d.PageIndex
	}
	if d.PageSize != nil {
		pageSize = *d.PageSize
	}
	return pageIndex, pageSize
}

// ShoppingListUpdateDtoIn is the input of shoppingList.update
type ShoppingListUpdateDtoIn struct {
	ID          string  `json:"id" validate:"required"`
	Title       *string `json:"title" validate:"omitempty,min=1,max=200"`
	Description *string `json:"description" validate:"omitempty,max=1000"`
}

// ShoppingListDeleteDtoIn is the input of shoppingList.delete
type ShoppingListDeleteDtoIn struct {
	ID string `json:"id" validate:"required"`
}

// MembershipAddUserDtoIn is the input of membership.addUser
type MembershipAddUserDtoIn struct {
	ListID string `json:"listId" validate:"required"`
	UserID string `json:"userId" validate:"required"`
	Role   string `json:"role" validate:"required,oneof=owner editor viewer"`
}

// MembershipGetListMembersDtoIn is the input of membership.getListMembers
type MembershipGetListMembersDtoIn struct {
	ListID string `query:"listId" json:"listId" validate:"required"`
}

// QuantityDtoIn is the optional amount on listItem.create
type QuantityDtoIn struct {
	Value float64 `json:"value" validate:"required,gt=0"`
	Unit  string  `json:"unit" validate:"required,max=50"`
}

// ListItemCreateDtoIn is the input of listItem.create
type ListItemCreateDtoIn struct {
	ListID   string         `json:"listId" validate:"required"`
	Name     string         `json:"name" validate:"required,max=200"`
	Quantity *QuantityDtoIn `json:"quantity" validate:"omitempty"`
	Note     string         `json:"note" validate:"omitempty,max=1000"`
	Position *int           `json:"position" validate:"omitempty,min=0"`
}

// ListItemCheckDtoIn is the input of listItem.check
type ListItemCheckDtoIn struct {
	ID        string `json:"id" validate:"required"`
	IsChecked *bool  `json:"isChecked" validate:"required"`
}

// ListItemListDtoIn is the input of listItem.list
type ListItemListDtoIn struct {
	ListID        string `query:"listId" json:"listId" validate:"required"`
	Sort          string `query:"sort" json:"sort" validate:"omitempty,oneof=position createdAt checked"`
	OnlyUnchecked *bool  `query:"onlyUnchecked" json:"onlyUnchecked"`
}

// Defaults fills sort and filter defaults after a successful Check
func (d *ListItemListDtoIn) Defaults() (sort string, onlyUnchecked bool) {
	sort = "position"
	if d.Sort != "" {
		sort = d.Sort
	}
	if d.OnlyUnchecked != nil {
		onlyUnchecked = *d.OnlyUnchecked
	}
	return sort, onlyUnchecked
}
