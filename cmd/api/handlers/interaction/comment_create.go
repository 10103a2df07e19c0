package handlers

import (
	"context"

	"PartyHub.com/pkg/errno"
	"PartyHub.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

// CreateComment handles POST /api/videos/:id/comments.
func CreateComment(ctx context.Context, c *app.RequestContext) {
	videoId, err := utils.ConvertStringToInt64(c.Param("id"))
	if err != nil {
		SendResponse(c, errno.ParamErr.WithMessage("id must be an integer"), nil)
		return
	}
	var param CreateCommentParam
	if err := c.BindAndValidate(&param); err != nil {
		hlog.Info(err)
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	userId := c.GetString("user_id")

	comment, err := commentService.CreateComment(ctx, videoId, userId, param.Content)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, comment)
}
