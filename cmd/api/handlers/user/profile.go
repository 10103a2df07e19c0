package handlers

import (
	"context"

	"PartyHub.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
)

// GetCurrentUser handles GET /api/auth/user. The identity middleware has
// already ensured the record exists.
func GetCurrentUser(ctx context.Context, c *app.RequestContext) {
	userId := c.GetString("user_id")

	user, err := userService.GetUser(ctx, userId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, user)
}
