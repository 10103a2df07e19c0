package handlers

import (
	"context"

	"PartyHub.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
)

// LikeList handles GET /api/user/likes for the current identity.
func LikeList(ctx context.Context, c *app.RequestContext) {
	userId := c.GetString("user_id")

	likes, err := likeService.GetUserLikes(ctx, userId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, likes)
}
