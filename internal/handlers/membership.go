package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/uushop/shopping-list-go/internal/models"
	"github.com/uushop/shopping-list-go/internal/storage"
	"github.com/uushop/shopping-list-go/internal/types"
	"github.com/uushop/shopping-list-go/internal/utils"
	"github.com/uushop/shopping-list-go/internal/validation"
)

// MembershipHandler handles the membership.* commands
type MembershipHandler struct {
	Store storage.Store
}

// MembershipDto is the output of membership.addUser
type MembershipDto struct {
	ID            string         `json:"id"`
	ListID        string         `json:"listId"`
	UserID        string         `json:"userId"`
	Role          string         `json:"role"`
	CreatedAt     time.Time      `json:"createdAt"`
	UUAppErrorMap types.ErrorMap `json:"uuAppErrorMap"`
}

// MemberDto is a single member in membership.getListMembers
type MemberDto struct {
	ID        string    `json:"id"`
	ListID    string    `json:"listId"`
	UserID    string    `json:"userId"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// ListMembersDto is the output of membership.getListMembers
type ListMembersDto struct {
	Members       []MemberDto    `json:"members"`
	UUAppErrorMap types.ErrorMap `json:"uuAppErrorMap"`
}

// AddUserToList handles POST /membership/addUser
// @Summary Add a user to a list
// @Description Create a membership; the (list, user) pair must not already exist
// @Tags Membership
// @Accept json
// @Produce json
// @Param body body validation.MembershipAddUserDtoIn true "Membership to create"
// @Success 200 {object} MembershipDto
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /membership/addUser [post]
func (h *MembershipHandler) AddUserToList(c *fiber.Ctx) error {
	const command = "membershipAddUser"

	var dtoIn validation.MembershipAddUserDtoIn
	if ok, err := bindBody(c, command, &dtoIn); !ok {
		return err
	}

	if _, err := h.Store.FindListByID(dtoIn.ListID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return listDoesNotExist(c, command, dtoIn.ListID)
		}
		return internalError(c, command, err)
	}

	if _, err := h.Store.FindMembership(dtoIn.ListID, dtoIn.UserID); err == nil {
		return utils.CommandError(c, fiber.StatusBadRequest, command+"/alreadyMember",
			"User is already member of this list.")
	} else if !errors.Is(err, storage.ErrNotFound) {
		return internalError(c, command, err)
	}

	membership := &models.Membership{
		ListID: dtoIn.ListID,
		UserID: dtoIn.UserID,
		Role:   dtoIn.Role,
	}

	if err := h.Store.CreateMembership(membership); err != nil {
		// Lost a race with a concurrent add of the same pair
		if errors.Is(err, storage.ErrDuplicate) {
			return utils.CommandError(c, fiber.StatusBadRequest, command+"/alreadyMember",
				"User is already member of this list.")
		}
		return internalError(c, command, err)
	}

	return c.JSON(MembershipDto{
		ID:            membership.ID,
		ListID:        membership.ListID,
		UserID:        membership.UserID,
		Role:          membership.Role,
		CreatedAt:     membership.CreatedAt,
		UUAppErrorMap: types.NewErrorMap(),
	})
}

// GetListMembers handles GET /membership/getListMembers
// @Summary Get list members
// @Description Get all memberships of a list
// @Tags Membership
// @Produce json
// @Param listId query string true "List id"
// @Success 200 {object} ListMembersDto
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Router /membership/getListMembers [get]
func (h *MembershipHandler) GetListMembers(c *fiber.Ctx) error {
	const command = "membershipGetListMembers"

	var dtoIn validation.MembershipGetListMembersDtoIn
	if ok, err := bindQuery(c, command, &dtoIn); !ok {
		return err
	}

	memberships, err := h.Store.ListMembers(dtoIn.ListID)
	if err != nil {
		return internalError(c, command, err)
	}

	members := make([]MemberDto, 0, len(memberships))
	for _, m := range memberships {
		members = append(members, MemberDto{
			ID:        m.ID,
			ListID:    m.ListID,
			UserID:    m.UserID,
			Role:      m.Role,
			CreatedAt: m.CreatedAt,
		})
	}

	return c.JSON(ListMembersDto{
		Members:       members,
		UUAppErrorMap: types.NewErrorMap(),
	})
}
