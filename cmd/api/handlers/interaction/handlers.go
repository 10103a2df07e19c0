package handlers

import (
	"PartyHub.com/cmd/catalog/service"
	"PartyHub.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

var (
	likeService    *service.LikeService
	commentService *service.CommentService
)

func Init(like *service.LikeService, comment *service.CommentService) {
	likeService = like
	commentService = comment
}

type Response struct {
	Code    int64       `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// SendResponse pack response
func SendResponse(c *app.RequestContext, err error, data interface{}) {
	Err := errno.ConvertErr(err)
	c.JSON(consts.StatusOK, Response{
		Code:    Err.ErrCode,
		Message: Err.ErrMsg,
		Data:    data,
	})
}

type CreateCommentParam struct {
	Content string `form:"content" json:"content"`
}
