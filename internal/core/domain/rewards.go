package domain

// RedemptionThreshold is the fixed points balance required before any
// reward can be redeemed.
const RedemptionThreshold int64 = 20

// RedemptionKind discriminates the redemption variants.
type RedemptionKind string

const (
	RedemptionCashback   RedemptionKind = "cashback"
	RedemptionMysteryBox RedemptionKind = "mystery_box"
)

// Redemption is a tagged union: exactly one payload field is meaningful,
// selected by Kind. Use the constructors instead of building it by hand.
type Redemption struct {
	Kind RedemptionKind
	// Amount is the cashback amount in integer currency units.
	// Valid only when Kind == RedemptionCashback.
	Amount int64
	// Description names the mystery box gift.
	// Valid only when Kind == RedemptionMysteryBox.
	Description string
}

// CashbackRedemption builds a cashback redemption of the given amount.
func CashbackRedemption(amount int64) Redemption {
	return Redemption{Kind: RedemptionCashback, Amount: amount}
}

// MysteryBoxRedemption builds a mystery-box redemption.
func MysteryBoxRedemption(description string) Redemption {
	return Redemption{Kind: RedemptionMysteryBox, Description: description}
}

// Valid reports whether the redemption carries a known kind.
func (r Redemption) Valid() bool {
	return r.Kind == RedemptionCashback || r.Kind == RedemptionMysteryBox
}
