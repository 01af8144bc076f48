package httperr

import (
	"net/http"

	"voucher-seckill/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

type mapping struct {
	target error
	status int
	msg    string
}

// Order matters: the first sentinel err is marked with wins.
var domainMappings = []mapping{
	{errs.ErrNoStock, http.StatusConflict, errs.ErrNoStock.Error()},
	{errs.ErrDuplicateOrder, http.StatusConflict, errs.ErrDuplicateOrder.Error()},
	{errs.ErrVoucherExists, http.StatusConflict, "Voucher already published"},
	{errs.ErrVoucherNotFound, http.StatusNotFound, "Voucher not found"},
	{errs.ErrOrderNotFound, http.StatusNotFound, "Order not found"},
	{errs.ErrDomainValidation, http.StatusBadRequest, "Invalid request"},
	{errs.ErrAdmissionUnavailable, http.StatusServiceUnavailable, "Service temporarily unavailable"},
}

// AbortWithDomainError maps use case sentinels to a status and message;
// anything unrecognized is a 500.
func AbortWithDomainError(c *gin.Context, err error) {
	for _, m := range domainMappings {
		if errs.Is(err, m.target) {
			AbortWithError(c, m.status, err, m.msg, nil)
			return
		}
	}
	AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
}
