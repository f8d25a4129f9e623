package models

// ChargeType selects whether the top-up is applied directly to the phone
// balance or issued as a redeemable pincode product.
type ChargeType string

const (
	ChargeTypeDirect  ChargeType = "direct"
	ChargeTypePincode ChargeType = "pincode"
)

// Operator is the reseller's operator/charge-tier code derived from the phone
// prefix and modifiers. It is never stored, only computed per request.
type Operator string

const (
	OperatorMTN          Operator = "MTN"
	OperatorMTNDaemi     Operator = "#MTN"
	OperatorMTNSuper     Operator = "!MTN"
	OperatorMCI          Operator = "MCI"
	OperatorWiMax        Operator = "WiMax"
	OperatorRightel      Operator = "RTL"
	OperatorRightelSuper Operator = "!RTL"
)

// Amount bounds accepted for a charge, in toman.
const (
	AmountMin = 2000
	AmountMax = 20000
)

// ChargeRequest is the inbound top-up request. Immutable once bound; its
// lifetime is a single HTTP request.
type ChargeRequest struct {
	Amount     int        `json:"amount"`
	Phone      string     `json:"phone"`
	Super      bool       `json:"super"`
	Daemi      bool       `json:"daemi"`
	ChargeType ChargeType `json:"charge_type"`
}
