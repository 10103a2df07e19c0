package handlers

import (
	"context"

	"PartyHub.com/cmd/model"
	"PartyHub.com/pkg/errno"
	"PartyHub.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

// ListVideos handles GET /api/videos with the exact-match filters and
// comma-joined hashtags of the query string.
func ListVideos(ctx context.Context, c *app.RequestContext) {
	var param ListVideosParam
	if err := c.BindAndValidate(&param); err != nil {
		hlog.Info(err)
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}

	videos, err := videoService.ListVideos(ctx, &model.VideoFilter{
		Country:   param.Country,
		EventType: param.EventType,
		Hashtags:  utils.SplitHashtags(param.Hashtags),
		UserId:    param.UserId,
		Limit:     param.Limit,
		Offset:    param.Offset,
	})
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, videos)
}
