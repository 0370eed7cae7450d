package handlers

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/uushop/shopping-list-go/internal/models"
	"github.com/uushop/shopping-list-go/internal/storage"
	"github.com/uushop/shopping-list-go/internal/types"
	"github.com/uushop/shopping-list-go/internal/utils"
	"github.com/uushop/shopping-list-go/internal/validation"
)

// UserHandler handles the user.* commands
type UserHandler struct {
	Store storage.Store
}

// UserNameDto is the structured name in user DTOs
type UserNameDto struct {
	First string `json:"first"`
	Last  string `json:"last"`
	Full  string `json:"full"`
}

// UserDto is the output of the user.* commands
type UserDto struct {
	ID            string         `json:"id"`
	Email         string         `json:"email"`
	Name          UserNameDto    `json:"name"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
	UUAppErrorMap types.ErrorMap `json:"uuAppErrorMap"`
}

func userDto(user *models.User) UserDto {
	return UserDto{
		ID:    user.ID,
		Email: user.Email,
		Name: UserNameDto{
			First: user.NameFirst,
			Last:  user.NameLast,
			Full:  user.NameFull,
		},
		CreatedAt:     user.CreatedAt,
		UpdatedAt:     user.UpdatedAt,
		UUAppErrorMap: types.NewErrorMap(),
	}
}

// CreateUser handles POST /user/create
// @Summary Create a user
// @Description Create a user with a globally unique email
// @Tags User
// @Accept json
// @Produce json
// @Param body body validation.UserCreateDtoIn true "User to create"
// @Success 200 {object} UserDto
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Router /user/create [post]
func (h *UserHandler) CreateUser(c *fiber.Ctx) error {
	const command = "userCreate"

	var dtoIn validation.UserCreateDtoIn
	if ok, err := bindBody(c, command, &dtoIn); !ok {
		return err
	}

	if _, err := h.Store.FindUserByEmail(dtoIn.Email); err == nil {
		return utils.CommandError(c, fiber.StatusBadRequest, command+"/emailNotUnique",
			fmt.Sprintf("User with email '%s' already exists.", dtoIn.Email))
	} else if !errors.Is(err, storage.ErrNotFound) {
		return internalError(c, command, err)
	}

	user := &models.User{
		Email:     dtoIn.Email,
		NameFirst: dtoIn.Name.First,
		NameLast:  dtoIn.Name.Last,
		NameFull:  dtoIn.Name.First + " " + dtoIn.Name.Last,
	}

	if err := h.Store.CreateUser(user); err != nil {
		// Lost a race with a concurrent create on the same email
		if errors.Is(err, storage.ErrDuplicate) {
			return utils.CommandError(c, fiber.StatusBadRequest, command+"/emailNotUnique",
				fmt.Sprintf("User with email '%s' already exists.", dtoIn.Email))
		}
		return internalError(c, command, err)
	}

	return c.JSON(userDto(user))
}

// GetUser handles GET /user/get
// @Summary Get a user
// @Description Get a user by id
// @Tags User
// @Produce json
// @Param id query string true "User id"
// @Success 200 {object} UserDto
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /user/get [get]
func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	const command = "userGet"

	var dtoIn validation.UserGetDtoIn
	if ok, err := bindQuery(c, command, &dtoIn); !ok {
		return err
	}

	user, err := h.Store.FindUserByID(dtoIn.ID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return utils.CommandError(c, fiber.StatusNotFound, command+"/userDoesNotExist",
				fmt.Sprintf("User with id '%s' does not exist.", dtoIn.ID))
		}
		return internalError(c, command, err)
	}

	return c.JSON(userDto(user))
}
