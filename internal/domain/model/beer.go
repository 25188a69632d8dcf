package model

import "time"

// ビールの種類
type BeerType string

const (
	BeerTypeLager    BeerType = "LAGER"
	BeerTypeMalzbier BeerType = "MALZBIER"
	BeerTypeWitbier  BeerType = "WITBIER"
	BeerTypeWeiss    BeerType = "WEISS"
	BeerTypeAle      BeerType = "ALE"
	BeerTypeIPA      BeerType = "IPA"
	BeerTypeStout    BeerType = "STOUT"
)

var beerTypeDescriptions = map[BeerType]string{
	BeerTypeLager:    "Lager",
	BeerTypeMalzbier: "Malzbier",
	BeerTypeWitbier:  "Witbier",
	BeerTypeWeiss:    "Weiss",
	BeerTypeAle:      "Ale",
	BeerTypeIPA:      "IPA",
	BeerTypeStout:    "Stout",
}

// Valid は既知の種類かどうか
func (t BeerType) Valid() bool {
	_, ok := beerTypeDescriptions[t]
	return ok
}

func (t BeerType) Description() string {
	return beerTypeDescriptions[t]
}

// 在庫管理の対象。Quantity は 0 <= Quantity <= Max を保つ。
type Beer struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"type:varchar(200);not null;uniqueIndex" json:"name"`
	Brand     string    `gorm:"type:varchar(200);not null" json:"brand"`
	Max       int       `gorm:"not null" json:"max"`
	Quantity  int       `gorm:"not null" json:"quantity"`
	Type      BeerType  `gorm:"type:varchar(20);not null" json:"type"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
