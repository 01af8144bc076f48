package api

import (
	"errors"
	"net/http"

	reqdto "voucher-seckill/internal/handler/dto/request"
	"voucher-seckill/internal/handler/httperr"
	"voucher-seckill/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

var errInvalidID = errors.New("invalid id")

type VoucherHandler struct {
	cmds commands.VoucherCommands
}

func NewVoucherHandler(cmds commands.VoucherCommands) *VoucherHandler {
	return &VoucherHandler{cmds: cmds}
}

// @Summary Publish seckill voucher
// @Description Store the voucher stock and open it for seckill admission (admin only)
// @Tags vouchers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.PublishSeckillVoucherRequest true "Publish request"
// @Success 201 "Created"
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} map[string]string
// @Failure 409 {object} httperr.Response
// @Router /vouchers/seckill [post]
func (h *VoucherHandler) PublishSeckill(c *gin.Context) {
	var req reqdto.PublishSeckillVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := h.cmds.PublishSeckillVoucher(c.Request.Context(), req.ToInput()); err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.Status(http.StatusCreated)
}
