package request

import (
	"time"

	"voucher-seckill/internal/usecase/commands"
)

type PublishSeckillVoucherRequest struct {
	VoucherID int64     `json:"voucher_id" binding:"required,gt=0"`
	Stock     int       `json:"stock" binding:"required,gt=0"`
	BeginTime time.Time `json:"begin_time" binding:"required"`
	EndTime   time.Time `json:"end_time" binding:"required,gtfield=BeginTime"`
}

func (r *PublishSeckillVoucherRequest) ToInput() commands.PublishSeckillVoucherInput {
	return commands.PublishSeckillVoucherInput{
		VoucherID: r.VoucherID,
		Stock:     r.Stock,
		BeginTime: r.BeginTime,
		EndTime:   r.EndTime,
	}
}
