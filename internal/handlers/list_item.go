package handlers

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/uushop/shopping-list-go/internal/middleware"
	"github.com/uushop/shopping-list-go/internal/models"
	"github.com/uushop/shopping-list-go/internal/storage"
	"github.com/uushop/shopping-list-go/internal/types"
	"github.com/uushop/shopping-list-go/internal/utils"
	"github.com/uushop/shopping-list-go/internal/validation"
)

// ListItemHandler handles the listItem.* commands
type ListItemHandler struct {
	Store storage.Store
}

// ItemDto is a single list item as returned by the listItem.* commands
type ItemDto struct {
	ID        string           `json:"id"`
	ListID    string           `json:"listId"`
	CreatedBy string           `json:"createdBy"`
	Name      string           `json:"name"`
	Quantity  *models.Quantity `json:"quantity"`
	Note      string           `json:"note"`
	IsChecked bool             `json:"isChecked"`
	CheckedBy *string          `json:"checkedBy"`
	Position  int              `json:"position"`
	CreatedAt time.Time        `json:"createdAt"`
}

// ListItemDto is the output of the listItem single-entity commands
type ListItemDto struct {
	ItemDto
	UUAppErrorMap types.ErrorMap `json:"uuAppErrorMap"`
}

// ListItemListDto is the output of listItem.list
type ListItemListDto struct {
	Items         []ItemDto      `json:"items"`
	UUAppErrorMap types.ErrorMap `json:"uuAppErrorMap"`
}

func itemDto(item *models.ListItem) (ItemDto, error) {
	quantity, err := item.GetQuantity()
	if err != nil {
		return ItemDto{}, err
	}
	return ItemDto{
		ID:        item.ID,
		ListID:    item.ListID,
		CreatedBy: item.CreatedBy,
		Name:      item.Name,
		Quantity:  quantity,
		Note:      item.Note,
		IsChecked: item.IsChecked,
		CheckedBy: item.CheckedBy,
		Position:  item.Position,
		CreatedAt: item.CreatedAt,
	}, nil
}

// CreateListItem handles POST /listItem/create
// @Summary Create a list item
// @Description Create an item in an existing list; position defaults to the current item count of the list
// @Tags ListItem
// @Accept json
// @Produce json
// @Param body body validation.ListItemCreateDtoIn true "Item to create"
// @Success 200 {object} ListItemDto
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /listItem/create [post]
func (h *ListItemHandler) CreateListItem(c *fiber.Ctx) error {
	const command = "listItemCreate"
	identity := middleware.IdentityFrom(c)

	var dtoIn validation.ListItemCreateDtoIn
	if ok, err := bindBody(c, command, &dtoIn); !ok {
		return err
	}

	if _, err := h.Store.FindListByID(dtoIn.ListID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return listDoesNotExist(c, command, dtoIn.ListID)
		}
		return internalError(c, command, err)
	}

	position := 0
	if dtoIn.Position != nil {
		position = *dtoIn.Position
	} else {
		// Append to the end: the position of a new item is the number of
		// items already in the list
		count, err := h.Store.CountItems(dtoIn.ListID)
		if err != nil {
			return internalError(c, command, err)
		}
		position = int(count)
	}

	item := &models.ListItem{
		ListID:    dtoIn.ListID,
		CreatedBy: identity.ID,
		Name:      dtoIn.Name,
		Note:      dtoIn.Note,
		IsChecked: false,
		CheckedBy: nil,
		Position:  position,
	}

	var quantity *models.Quantity
	if dtoIn.Quantity != nil {
		quantity = &models.Quantity{Value: dtoIn.Quantity.Value, Unit: dtoIn.Quantity.Unit}
	}
	if err := item.SetQuantity(quantity); err != nil {
		return internalError(c, command, err)
	}

	if err := h.Store.CreateItem(item); err != nil {
		return internalError(c, command, err)
	}

	dto, err := itemDto(item)
	if err != nil {
		return internalError(c, command, err)
	}
	return c.JSON(ListItemDto{ItemDto: dto, UUAppErrorMap: types.NewErrorMap()})
}

// CheckListItem handles POST /listItem/check
// @Summary Check or uncheck a list item
// @Description Set the checked state; checking records the caller as checkedBy, unchecking clears it
// @Tags ListItem
// @Accept json
// @Produce json
// @Param body body validation.ListItemCheckDtoIn true "Item and target state"
// @Success 200 {object} ListItemDto
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /listItem/check [post]
func (h *ListItemHandler) CheckListItem(c *fiber.Ctx) error {
	const command = "listItemCheck"
	identity := middleware.IdentityFrom(c)

	var dtoIn validation.ListItemCheckDtoIn
	if ok, err := bindBody(c, command, &dtoIn); !ok {
		return err
	}

	item, err := h.Store.FindItemByID(dtoIn.ID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return utils.CommandError(c, fiber.StatusNotFound, command+"/itemDoesNotExist",
				fmt.Sprintf("List item with id '%s' does not exist.", dtoIn.ID))
		}
		return internalError(c, command, err)
	}

	item.IsChecked = *dtoIn.IsChecked
	if item.IsChecked {
		checkedBy := identity.ID
		item.CheckedBy = &checkedBy
	} else {
		// Unchecking clears checkedBy regardless of who checked the item
		item.CheckedBy = nil
	}

	if err := h.Store.UpdateItem(item); err != nil {
		return internalError(c, command, err)
	}

	dto, err := itemDto(item)
	if err != nil {
		return internalError(c, command, err)
	}
	return c.JSON(ListItemDto{ItemDto: dto, UUAppErrorMap: types.NewErrorMap()})
}

// ListListItems handles GET /listItem/list
// @Summary List items of a list
// @Description List items, optionally unchecked-only, sorted by position, createdAt or checked state
// @Tags ListItem
// @Produce json
// @Param listId query string true "List id"
// @Param sort query string false "Sort order: position, createdAt or checked (default position)"
// @Param onlyUnchecked query bool false "Return unchecked items only (default false)"
// @Success 200 {object} ListItemListDto
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Router /listItem/list [get]
func (h *ListItemHandler) ListListItems(c *fiber.Ctx) error {
	const command = "listItemList"

	var dtoIn validation.ListItemListDtoIn
	if ok, err := bindQuery(c, command, &dtoIn); !ok {
		return err
	}
	sortOrder, onlyUnchecked := dtoIn.Defaults()

	items, err := h.Store.ListItems(dtoIn.ListID, onlyUnchecked, sortOrder)
	if err != nil {
		return internalError(c, command, err)
	}

	dtos := make([]ItemDto, 0, len(items))
	for i := range items {
		dto, err := itemDto(&items[i])
		if err != nil {
			return internalError(c, command, err)
		}
		dtos = append(dtos, dto)
	}

	return c.JSON(ListItemListDto{
		Items:         dtos,
		UUAppErrorMap: types.NewErrorMap(),
	})
}
