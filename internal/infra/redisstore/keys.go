package redisstore

import "strconv"

const (
	stockKeyPrefix    = "seckill:stock:"
	claimSetKeyPrefix = "seckill:order:"
	lockKeyPrefix     = "lock:order:"
	idKeyPrefix       = "icr:"
)

func StockKey(voucherID int64) string {
	return stockKeyPrefix + strconv.FormatInt(voucherID, 10)
}

// ClaimSetKey holds the ids of users already admitted for the voucher.
func ClaimSetKey(voucherID int64) string {
	return claimSetKeyPrefix + strconv.FormatInt(voucherID, 10)
}

func lockKey(userID int64) string {
	return lockKeyPrefix + strconv.FormatInt(userID, 10)
}
