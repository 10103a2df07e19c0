package handlers

import (
	"context"

	"PartyHub.com/cmd/catalog/service"
	"PartyHub.com/pkg/errno"
	"PartyHub.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

// PublishVideo handles POST /api/videos.
func PublishVideo(ctx context.Context, c *app.RequestContext) {
	var param PublishVideoParam
	if err := c.BindAndValidate(&param); err != nil {
		hlog.Info(err)
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	userId := c.GetString("user_id")

	video, err := videoService.CreateVideo(ctx, userId, &service.CreateVideoParams{
		Title:        param.Title,
		Description:  param.Description,
		VideoUrl:     param.VideoUrl,
		CoverUrl:     param.CoverUrl,
		TelegramLink: param.TelegramLink,
		Country:      param.Country,
		EventType:    param.EventType,
		Hashtags:     utils.SplitHashtags(param.Hashtags),
	})
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, video)
}
