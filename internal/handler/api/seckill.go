package api

import (
	"errors"
	"net/http"
	"strconv"

	resdto "voucher-seckill/internal/handler/dto/response"
	"voucher-seckill/internal/handler/httperr"
	"voucher-seckill/internal/handler/middleware"
	"voucher-seckill/internal/usecase/commands"
	"voucher-seckill/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

var errMissingUser = errors.New("authenticated user missing from context")

type VoucherOrderHandler struct {
	cmds commands.SeckillCommands
	q    queries.VoucherOrderQueries
}

func NewVoucherOrderHandler(cmds commands.SeckillCommands, q queries.VoucherOrderQueries) *VoucherOrderHandler {
	return &VoucherOrderHandler{cmds: cmds, q: q}
}

// @Summary Seckill voucher
// @Description Try to claim one unit of a flash-sale voucher. Success returns the reserved order id; the order itself is created asynchronously.
// @Tags voucher-orders
// @Produce json
// @Security BearerAuth
// @Param voucherId path int true "Voucher ID"
// @Success 200 {object} resdto.SeckillResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} map[string]string
// @Failure 409 {object} httperr.Response
// @Failure 429 {object} map[string]any
// @Failure 503 {object} httperr.Response
// @Router /voucher-orders/seckill/{voucherId} [post]
func (h *VoucherOrderHandler) Seckill(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingUser, "Unauthorized", nil)
		return
	}
	voucherID, err := strconv.ParseInt(c.Param("voucherId"), 10, 64)
	if err != nil || voucherID <= 0 {
		httperr.AbortWithError(c, http.StatusBadRequest, errors.Join(errInvalidID, err), "Invalid voucher id", nil)
		return
	}

	orderID, err := h.cmds.Seckill(c.Request.Context(), voucherID, userID)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.NewSeckillResponse(orderID))
}

// @Summary Get voucher order
// @Description Get one of the caller's orders. Returns 404 until the order has been materialized.
// @Tags voucher-orders
// @Produce json
// @Security BearerAuth
// @Param id path int true "Order ID"
// @Success 200 {object} resdto.VoucherOrderResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} map[string]string
// @Failure 404 {object} httperr.Response
// @Router /voucher-orders/{id} [get]
func (h *VoucherOrderHandler) Get(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errMissingUser, "Unauthorized", nil)
		return
	}
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		httperr.AbortWithError(c, http.StatusBadRequest, errors.Join(errInvalidID, err), "Invalid id", nil)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), userID, id)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromVoucherOrderView(view))
}
