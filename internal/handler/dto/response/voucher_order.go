package response

import (
	"strconv"

	"voucher-seckill/internal/usecase/queries"
)

// SeckillResponse carries the reserved order id as a string; 64-bit ids
// lose precision as JSON numbers in JavaScript clients.
type SeckillResponse struct {
	OrderID string `json:"orderId"`
}

func NewSeckillResponse(orderID int64) SeckillResponse {
	return SeckillResponse{OrderID: strconv.FormatInt(orderID, 10)}
}

type VoucherOrderResponse struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	VoucherID string `json:"voucher_id"`
	Status    int16  `json:"status"`
	CreatedAt int64  `json:"created_at"`
}

func FromVoucherOrderView(v *queries.VoucherOrderView) *VoucherOrderResponse {
	return &VoucherOrderResponse{
		ID:        v.ID,
		UserID:    v.UserID,
		VoucherID: v.VoucherID,
		Status:    v.Status,
		CreatedAt: v.CreatedAt.Unix(),
	}
}
