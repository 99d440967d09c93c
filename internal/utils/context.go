package utils

import (
	"fmt"

	"github.com/carelink-dev/carelink/internal/middleware"
	"github.com/carelink-dev/carelink/internal/types"
	"github.com/gin-gonic/gin"
)

func GetCurrentUser(ctx *gin.Context) (middleware.AuthenticatedUser, error) {
	user, exists := ctx.Get(types.ContextUserKey)

	if !exists {
		return middleware.AuthenticatedUser{}, fmt.Errorf("user not authenticated")
	}

	authenticatedUser, ok := user.(middleware.AuthenticatedUser)

	if !ok {
		return middleware.AuthenticatedUser{}, fmt.Errorf("invalid user type in context")
	}

	return authenticatedUser, nil
}

func GetCurrentUserID(ctx *gin.Context) (uint, error) {
	user, err := GetCurrentUser(ctx)

	if err != nil {
		return 0, err
	}

	return user.ID, nil
}

func GetRequestID(ctx *gin.Context) string {
	rid, _ := ctx.Get(types.ContextRequestIDKey)
	if s, ok := rid.(string); ok {
		return s
	}
	return ""
}
