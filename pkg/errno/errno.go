package errno

import (
	"errors"
	"fmt"
)

const (
	SuccessCode         = 0
	ServiceErrCode      = 10001
	ParamErrCode        = 10002
	UnauthorizedErrCode = 10003
	VideoNotFoundCode   = 20001
	CommentNotFoundCode = 20002
	UserNotFoundCode    = 20003
	UploadErrCode       = 30001
)

type ErrNo struct {
	ErrCode int64
	ErrMsg  string
}

func (e ErrNo) Error() string {
	return fmt.Sprintf("err_code=%d, err_msg=%s", e.ErrCode, e.ErrMsg)
}

func NewErrNo(code int64, msg string) ErrNo {
	return ErrNo{ErrCode: code, ErrMsg: msg}
}

func (e ErrNo) WithMessage(msg string) ErrNo {
	e.ErrMsg = msg
	return e
}

var (
	Success          = NewErrNo(SuccessCode, "Success")
	ServiceErr       = NewErrNo(ServiceErrCode, "Service internal error")
	ParamErr         = NewErrNo(ParamErrCode, "Wrong parameter has been given")
	ErrBind          = NewErrNo(ParamErrCode, "Failed to bind request body")
	UnauthorizedErr  = NewErrNo(UnauthorizedErrCode, "Operation is only allowed for the owner")
	VideoNotFoundErr = NewErrNo(VideoNotFoundCode, "Video not found")
	CommentNotFound  = NewErrNo(CommentNotFoundCode, "Comment not found")
	UserNotFoundErr  = NewErrNo(UserNotFoundCode, "User not found")
	UploadErr        = NewErrNo(UploadErrCode, "Upload staging is not available")
)

// ConvertErr keeps coded errors as they are and folds everything else
// into ServiceErr so the response envelope always carries a code.
func ConvertErr(err error) ErrNo {
	Err := ErrNo{}
	if errors.As(err, &Err) {
		return Err
	}
	s := ServiceErr
	s.ErrMsg = err.Error()
	return s
}
