package handlers

import (
	"context"

	"PartyHub.com/pkg/errno"
	"PartyHub.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/app"
)

// CommentList handles GET /api/videos/:id/comments, newest first.
func CommentList(ctx context.Context, c *app.RequestContext) {
	videoId, err := utils.ConvertStringToInt64(c.Param("id"))
	if err != nil {
		SendResponse(c, errno.ParamErr.WithMessage("id must be an integer"), nil)
		return
	}

	comments, err := commentService.ListComments(ctx, videoId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, comments)
}
