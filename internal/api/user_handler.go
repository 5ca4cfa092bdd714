package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"jobsearch/internal/auth"
	"jobsearch/internal/database"
	"jobsearch/internal/errcode"
	"jobsearch/internal/ident"
	"jobsearch/internal/schema"
	"jobsearch/internal/store"
)

const duplicateUserDetail = "User with this email already exists"

// UserHandler 处理求职者资料，支持整体替换与部分更新。
type UserHandler struct {
	store UserStore
}

func NewUserHandler(store UserStore) *UserHandler {
	return &UserHandler{store: store}
}

func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.store.ListUsers(c.Request.Context())
	if err != nil {
		Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, mapSlice(users, newUserResponse))
}

// CreateUser 保存新用户；email 已被使用时返回 DUPLICATE_KEY。
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req schema.UserInput
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, schema.BindError(err))
		return
	}

	ctx := c.Request.Context()
	_, err := h.store.FindUserByEmail(ctx, *req.Email)
	switch {
	case err == nil:
		Fail(c, errcode.New(errcode.DuplicateKey, duplicateUserDetail))
		return
	case !errors.Is(err, store.ErrNotFound):
		Fail(c, err)
		return
	}

	user, err := buildUser(req)
	if err != nil {
		Fail(c, err)
		return
	}
	if err := h.store.CreateUser(ctx, &user); err != nil {
		Fail(c, duplicate(err, duplicateUserDetail))
		return
	}

	c.JSON(http.StatusOK, newUserResponse(user))
}

func (h *UserHandler) GetUser(c *gin.Context) {
	id, err := ident.Decode(c.Param("id"))
	if err != nil {
		Fail(c, err)
		return
	}

	user, err := h.store.GetUser(c.Request.Context(), id)
	if err != nil {
		Fail(c, notFound(err, "User not found"))
		return
	}
	c.JSON(http.StatusOK, newUserResponse(*user))
}

// ReplaceUser 用完整的新资料覆盖用户，_id 保持不变。
func (h *UserHandler) ReplaceUser(c *gin.Context) {
	id, ok := h.existingUserID(c)
	if !ok {
		return
	}

	var req schema.UserInput
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, schema.BindError(err))
		return
	}

	user, err := buildUser(req)
	if err != nil {
		Fail(c, err)
		return
	}
	if err := h.store.ReplaceUser(c.Request.Context(), id, &user); err != nil {
		Fail(c, duplicate(notFound(err, "User not found"), duplicateUserDetail))
		return
	}

	c.JSON(http.StatusOK, newUserResponse(user))
}

// PatchUser 仅更新请求体中出现的字段，字段需符合 User 结构。
func (h *UserHandler) PatchUser(c *gin.Context) {
	id, ok := h.existingUserID(c)
	if !ok {
		return
	}

	var body map[string]json.RawMessage
	if err := c.ShouldBindJSON(&body); err != nil {
		Fail(c, schema.BindError(err))
		return
	}

	set, err := schema.ParseUserPatch(body)
	if err != nil {
		Fail(c, err)
		return
	}
	if password, ok := set["password"].(string); ok {
		hashed, err := auth.HashPassword(password)
		if err != nil {
			Fail(c, err)
			return
		}
		set["password"] = hashed
	}

	user, err := h.store.PatchUser(c.Request.Context(), id, set)
	if err != nil {
		Fail(c, duplicate(notFound(err, "User not found"), duplicateUserDetail))
		return
	}
	c.JSON(http.StatusOK, newUserResponse(*user))
}

// existingUserID decodes the path id and confirms the user exists, writing the
// failure response itself when it does not.
func (h *UserHandler) existingUserID(c *gin.Context) (primitive.ObjectID, bool) {
	id, err := ident.Decode(c.Param("id"))
	if err != nil {
		Fail(c, err)
		return primitive.NilObjectID, false
	}
	if err := h.ensureUser(c.Request.Context(), id); err != nil {
		Fail(c, err)
		return primitive.NilObjectID, false
	}
	return id, true
}

func (h *UserHandler) ensureUser(ctx context.Context, id primitive.ObjectID) error {
	_, err := h.store.GetUser(ctx, id)
	return notFound(err, "User not found")
}

func buildUser(req schema.UserInput) (database.User, error) {
	if err := schema.CheckPassword(*req.Password); err != nil {
		return database.User{}, err
	}
	hashed, err := auth.HashPassword(*req.Password)
	if err != nil {
		return database.User{}, err
	}
	return req.Build(hashed), nil
}
