package handlers

import (
	"context"

	"PartyHub.com/pkg/errno"
	"PartyHub.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/app"
)

// DeleteVideo handles DELETE /api/videos/:id, owner only.
func DeleteVideo(ctx context.Context, c *app.RequestContext) {
	videoId, err := utils.ConvertStringToInt64(c.Param("id"))
	if err != nil {
		SendResponse(c, errno.ParamErr.WithMessage("id must be an integer"), nil)
		return
	}
	userId := c.GetString("user_id")

	if err := videoService.DeleteVideo(ctx, videoId, userId); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, nil)
}
