package entity

import (
	"time"
)

const (
	AlertKindBuy  = "buy"
	AlertKindSell = "sell"
)

// SentAlert is the local history row written for every alert the
// monitor decided to send. Delivery itself is best effort, so this
// records the decision, not the delivery outcome.
type SentAlert struct {
	Id        int64  `gorm:"primaryKey;autoIncrement"`
	Kind      string `gorm:"index"`
	User      string `gorm:"index"`
	Symbol    string `gorm:"index"`
	Price     string
	Reason    string
	Ordinal   int // how many alerts this key has produced, including this one
	CreatedAt time.Time `gorm:"index"`
}
