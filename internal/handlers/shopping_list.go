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

// ShoppingListHandler handles the shoppingList.* commands
type ShoppingListHandler struct {
	Store storage.Store
}

// ShoppingListDto is the output of the shoppingList single-entity commands
type ShoppingListDto struct {
	ID            string          `json:"id"`
	OwnerID       string          `json:"ownerId"`
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	Invites       []models.Invite `json:"invites"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
	UUAppErrorMap types.ErrorMap  `json:"uuAppErrorMap"`
}

// PageInfo is the pagination envelope of list commands
type PageInfo struct {
	PageIndex int   `json:"pageIndex"`
	PageSize  int   `json:"pageSize"`
	Total     int64 `json:"total"`
}

// ShoppingListListMyDto is the output of shoppingList.listMy
type ShoppingListListMyDto struct {
	ItemList      []storage.ListSummary `json:"itemList"`
	PageInfo      PageInfo              `json:"pageInfo"`
	UUAppErrorMap types.ErrorMap        `json:"uuAppErrorMap"`
}

func shoppingListDto(list *models.ShoppingList) (ShoppingListDto, error) {
	invites, err := list.GetInvites()
	if err != nil {
		return ShoppingListDto{}, err
	}
	return ShoppingListDto{
		ID:            list.ID,
		OwnerID:       list.OwnerID,
		Title:         list.Title,
		Description:   list.Description,
		Invites:       invites,
		CreatedAt:     list.CreatedAt,
		UpdatedAt:     list.UpdatedAt,
		UUAppErrorMap: types.NewErrorMap(),
	}, nil
}

// canManageList reports whether the caller may mutate or delete the list:
// the list owner, or the elevated Authorities profile
func canManageList(identity *middleware.Identity, list *models.ShoppingList) bool {
	return identity.ID == list.OwnerID || identity.Profile == middleware.ProfileAuthorities
}

func listDoesNotExist(c *fiber.Ctx, command, id string) error {
	return utils.CommandError(c, fiber.StatusNotFound, command+"/listDoesNotExist",
		fmt.Sprintf("Shopping list with id '%s' does not exist.", id))
}

// CreateShoppingList handles POST /shoppingList/create
// @Summary Create a shopping list
// @Description Create a shopping list; the caller becomes its owner and an owner membership is created with it
// @Tags ShoppingList
// @Accept json
// @Produce json
// @Param body body validation.ShoppingListCreateDtoIn true "List to create"
// @Success 200 {object} ShoppingListDto
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Router /shoppingList/create [post]
func (h *ShoppingListHandler) CreateShoppingList(c *fiber.Ctx) error {
	const command = "shoppingListCreate"
	identity := middleware.IdentityFrom(c)

	var dtoIn validation.ShoppingListCreateDtoIn
	if ok, err := bindBody(c, command, &dtoIn); !ok {
		return err
	}

	list := &models.ShoppingList{
		OwnerID:     identity.ID,
		Title:       dtoIn.Title,
		Description: dtoIn.Description,
	}
	invites := make([]models.Invite, 0, len(dtoIn.Invites))
	for _, invite := range dtoIn.Invites {
		invites = append(invites, models.Invite{Email: invite.Email, Token: invite.Token})
	}
	if err := list.SetInvites(invites); err != nil {
		return internalError(c, command, err)
	}

	owner := &models.Membership{
		UserID: identity.ID,
		Role:   models.RoleOwner,
	}

	if err := h.Store.CreateListWithOwner(list, owner); err != nil {
		return internalError(c, command, err)
	}

	dto, err := shoppingListDto(list)
	if err != nil {
		return internalError(c, command, err)
	}
	return c.JSON(dto)
}

// GetShoppingList handles GET /shoppingList/get
// @Summary Get a shopping list
// @Description Get a shopping list by id
// @Tags ShoppingList
// @Produce json
// @Param id query string true "List id"
// @Success 200 {object} ShoppingListDto
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /shoppingList/get [get]
func (h *ShoppingListHandler) GetShoppingList(c *fiber.Ctx) error {
	const command = "shoppingListGet"

	var dtoIn validation.ShoppingListGetDtoIn
	if ok, err := bindQuery(c, command, &dtoIn); !ok {
		return err
	}

	list, err := h.Store.FindListByID(dtoIn.ID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return listDoesNotExist(c, command, dtoIn.ID)
		}
		return internalError(c, command, err)
	}

	dto, err := shoppingListDto(list)
	if err != nil {
		return internalError(c, command, err)
	}
	return c.JSON(dto)
}

// ListMyShoppingLists handles GET /shoppingList/listMy
// @Summary List the caller's shopping lists
// @Description List the lists the caller is a member of, with the caller's role on each
// @Tags ShoppingList
// @Produce json
// @Param pageIndex query int false "Page index (default 0)"
// @Param pageSize query int false "Page size (default 50, max 100)"
// @Success 200 {object} ShoppingListListMyDto
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Router /shoppingList/listMy [get]
func (h *ShoppingListHandler) ListMyShoppingLists(c *fiber.Ctx) error {
	const command = "shoppingListListMy"
	identity := middleware.IdentityFrom(c)

	var dtoIn validation.ShoppingListListMyDtoIn
	if ok, err := bindQuery(c, command, &dtoIn); !ok {
		return err
	}
	pageIndex, pageSize := dtoIn.Defaults()

	summaries, total, err := h.Store.ListsForUser(identity.ID, pageIndex, pageSize)
	if err != nil {
		return internalError(c, command, err)
	}

	return c.JSON(ShoppingListListMyDto{
		ItemList: summaries,
		PageInfo: PageInfo{
			PageIndex: pageIndex,
			PageSize:  pageSize,
			Total:     total,
		},
		UUAppErrorMap: types.NewErrorMap(),
	})
}

// UpdateShoppingList handles POST /shoppingList/update
// @Summary Update a shopping list
// @Description Update title or description; permitted to the owner and the Authorities profile only
// @Tags ShoppingList
// @Accept json
// @Produce json
// @Param body body validation.ShoppingListUpdateDtoIn true "Fields to update"
// @Success 200 {object} ShoppingListDto
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /shoppingList/update [post]
func (h *ShoppingListHandler) UpdateShoppingList(c *fiber.Ctx) error {
	const command = "shoppingListUpdate"
	identity := middleware.IdentityFrom(c)

	var dtoIn validation.ShoppingListUpdateDtoIn
	if ok, err := bindBody(c, command, &dtoIn); !ok {
		return err
	}

	list, err := h.Store.FindListByID(dtoIn.ID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return listDoesNotExist(c, command, dtoIn.ID)
		}
		return internalError(c, command, err)
	}

	if !canManageList(identity, list) {
		return utils.CommandError(c, fiber.StatusForbidden, "system/unauthorized",
			"Only the list owner may update this list.")
	}

	if dtoIn.Title != nil {
		list.Title = *dtoIn.Title
	}
	if dtoIn.Description != nil {
		list.Description = *dtoIn.Description
	}

	if err := h.Store.UpdateList(list); err != nil {
		return internalError(c, command, err)
	}

	dto, err := shoppingListDto(list)
	if err != nil {
		return internalError(c, command, err)
	}
	return c.JSON(dto)
}

// DeleteShoppingList handles POST /shoppingList/delete
// @Summary Delete a shopping list
// @Description Delete a list and its memberships; permitted to the owner and the Authorities profile only
// @Tags ShoppingList
// @Accept json
// @Produce json
// @Param body body validation.ShoppingListDeleteDtoIn true "List to delete"
// @Success 200 {object} ShoppingListDto
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /shoppingList/delete [post]
func (h *ShoppingListHandler) DeleteShoppingList(c *fiber.Ctx) error {
	const command = "shoppingListDelete"
	identity := middleware.IdentityFrom(c)

	var dtoIn validation.ShoppingListDeleteDtoIn
	if ok, err := bindBody(c, command, &dtoIn); !ok {
		return err
	}

	list, err := h.Store.FindListByID(dtoIn.ID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return listDoesNotExist(c, command, dtoIn.ID)
		}
		return internalError(c, command, err)
	}

	if !canManageList(identity, list) {
		return utils.CommandError(c, fiber.StatusForbidden, "system/unauthorized",
			"Only the list owner may delete this list.")
	}

	if err := h.Store.DeleteListCascade(list.ID); err != nil && !errors.Is(err, storage.ErrNotFound) {
		return internalError(c, command, err)
	}

	dto, err := shoppingListDto(list)
	if err != nil {
		return internalError(c, command, err)
	}
	return c.JSON(dto)
}
