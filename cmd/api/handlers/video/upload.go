package handlers

import (
	"context"

	"PartyHub.com/pkg/errno"
	"PartyHub.com/pkg/oss"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

// UploadVideoFile handles POST /api/upload: stages the raw video (and an
// optional cover image) and returns the locators for PublishVideo.
func UploadVideoFile(ctx context.Context, c *app.RequestContext) {
	if !oss.IsEnabled() {
		SendResponse(c, errno.UploadErr, nil)
		return
	}

	fileHeader, err := c.FormFile("video")
	if err != nil {
		SendResponse(c, errno.ParamErr.WithMessage("video file is required"), nil)
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	defer file.Close()

	videoUrl, err := oss.UploadVideo(ctx, file, fileHeader.Size, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		hlog.CtxErrorf(ctx, "video upload failed: %v", err)
		SendResponse(c, errno.UploadErr.WithMessage(err.Error()), nil)
		return
	}

	result := map[string]interface{}{"videoUrl": videoUrl}

	if coverHeader, err := c.FormFile("cover"); err == nil {
		cover, err := coverHeader.Open()
		if err != nil {
			SendResponse(c, errno.ConvertErr(err), nil)
			return
		}
		defer cover.Close()
		coverUrl, err := oss.UploadCover(ctx, cover, coverHeader.Size, coverHeader.Header.Get("Content-Type"))
		if err != nil {
			hlog.CtxErrorf(ctx, "cover upload failed: %v", err)
			SendResponse(c, errno.UploadErr.WithMessage(err.Error()), nil)
			return
		}
		result["coverUrl"] = coverUrl
	}

	SendResponse(c, errno.Success, result)
}
