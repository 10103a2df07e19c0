package handlers

import (
	"context"

	"PartyHub.com/pkg/errno"
	"PartyHub.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/app"
)

// TelegramClick handles POST /api/videos/:id/telegram-click.
func TelegramClick(ctx context.Context, c *app.RequestContext) {
	videoId, err := utils.ConvertStringToInt64(c.Param("id"))
	if err != nil {
		SendResponse(c, errno.ParamErr.WithMessage("id must be an integer"), nil)
		return
	}
	userId := c.GetString("user_id")

	if err := videoService.TrackTelegramClick(ctx, videoId, userId); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, map[string]interface{}{"success": true})
}
