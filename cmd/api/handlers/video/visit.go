package handlers

import (
	"context"

	"PartyHub.com/pkg/errno"
	"PartyHub.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/app"
)

// VideoVisit handles GET /api/videos/:id. Opening a video counts as a
// view, so the lookup is paired with the view increment.
func VideoVisit(ctx context.Context, c *app.RequestContext) {
	videoId, err := utils.ConvertStringToInt64(c.Param("id"))
	if err != nil {
		SendResponse(c, errno.ParamErr.WithMessage("id must be an integer"), nil)
		return
	}
	userId := c.GetString("user_id")

	video, err := videoService.VisitVideo(ctx, videoId, userId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, video)
}
