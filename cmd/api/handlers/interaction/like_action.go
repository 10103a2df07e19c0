package handlers

import (
	"context"

	"PartyHub.com/pkg/errno"
	"PartyHub.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/app"
)

// LikeAction handles POST /api/videos/:id/like and answers with the new
// liked/unliked state.
func LikeAction(ctx context.Context, c *app.RequestContext) {
	videoId, err := utils.ConvertStringToInt64(c.Param("id"))
	if err != nil {
		SendResponse(c, errno.ParamErr.WithMessage("id must be an integer"), nil)
		return
	}
	userId := c.GetString("user_id")

	isLiked, err := likeService.ToggleLike(ctx, videoId, userId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, map[string]interface{}{"isLiked": isLiked})
}
