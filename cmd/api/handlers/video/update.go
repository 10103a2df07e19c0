package handlers

import (
	"context"

	"PartyHub.com/cmd/model"
	"PartyHub.com/pkg/errno"
	"PartyHub.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

// UpdateVideo handles PUT /api/videos/:id, owner only. Absent fields are
// left untouched; hashtags arrive as a comma-joined string.
func UpdateVideo(ctx context.Context, c *app.RequestContext) {
	videoId, err := utils.ConvertStringToInt64(c.Param("id"))
	if err != nil {
		SendResponse(c, errno.ParamErr.WithMessage("id must be an integer"), nil)
		return
	}
	var param UpdateVideoParam
	if err := c.BindAndValidate(&param); err != nil {
		hlog.Info(err)
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	userId := c.GetString("user_id")

	patch := &model.VideoPatch{
		Title:        param.Title,
		Description:  param.Description,
		VideoUrl:     param.VideoUrl,
		CoverUrl:     param.CoverUrl,
		TelegramLink: param.TelegramLink,
		Country:      param.Country,
		EventType:    param.EventType,
	}
	if param.Hashtags != nil {
		tags := utils.SplitHashtags(*param.Hashtags)
		patch.Hashtags = &tags
	}

	video, err := videoService.UpdateVideo(ctx, videoId, userId, patch)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, video)
}
