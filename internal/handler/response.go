package handler

import (
	"errors"
	"net/http"

	"github.com/ebrahimelkordy/siraj-0.0.1/pkg/errorx"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// ResponseData is the uniform response envelope.
type ResponseData struct {
	Code int `json:"code"`           // business status code
	Msg  any `json:"msg"`            // message
	Data any `json:"data,omitempty"` // payload
}

// HandleSuccess writes a success response.
func HandleSuccess(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{
		"code": errorx.CodeSuccess,
		"msg":  "success",
		"data": data,
	})
}

// HandleCreated writes a success response with HTTP 201.
func HandleCreated(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, gin.H{
		"code": errorx.CodeSuccess,
		"msg":  "success",
		"data": data,
	})
}

// statusOf maps a business code to the HTTP status it travels on.
func statusOf(code int) int {
	switch code {
	case errorx.CodeInvalidParam, errorx.CodeUserExist, errorx.CodeUserNotExist:
		return http.StatusBadRequest
	case errorx.CodeInvalidAuth, errorx.CodeUnauthorized:
		return http.StatusUnauthorized
	case errorx.CodeForbidden:
		return http.StatusForbidden
	case errorx.CodeNotFound:
		return http.StatusNotFound
	case errorx.CodeConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// HandleError resolves an error into the envelope. Business errors
// (*errorx.CodeError) keep their code and message; anything else is
// logged and reported as server busy.
func HandleError(c *gin.Context, err error) {
	var codeErr *errorx.CodeError
	if errors.As(err, &codeErr) {
		c.JSON(statusOf(codeErr.Code), gin.H{
			"code": codeErr.Code,
			"msg":  codeErr.Msg,
			"data": nil,
		})
		return
	}

	zap.L().Error("system error",
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
		zap.Error(err),
	)
	c.JSON(http.StatusInternalServerError, gin.H{
		"code": errorx.ErrServerBusy.Code,
		"msg":  errorx.ErrServerBusy.Msg,
		"data": nil,
	})
}

// HandleParamError resolves a binding error, translating
// validator.ValidationErrors into field-keyed messages.
func HandleParamError(c *gin.Context, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		translatedErrs := RemoveTopStruct(validationErrs.Translate(Trans))
		c.JSON(http.StatusBadRequest, gin.H{
			"code": errorx.ErrInvalidParam.Code,
			"msg":  translatedErrs,
			"data": nil,
		})
		return
	}

	zap.L().Error("param bind error", zap.Error(err))
	c.JSON(http.StatusBadRequest, gin.H{
		"code": errorx.ErrInvalidParam.Code,
		"msg":  errorx.ErrInvalidParam.Msg,
		"data": nil,
	})
}
