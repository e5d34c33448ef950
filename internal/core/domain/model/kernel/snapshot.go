package kernel

// PriceSnapshot is the wire/persistence form of a Price. Monetary values
// always cross the boundary as an {amount, currency} pair, never a bare
// number, so currency can never be lost in transit.
type PriceSnapshot struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

// ToSnapshot converts the price to its wire form.
func (p Price) ToSnapshot() PriceSnapshot {
	return PriceSnapshot{
		Amount:   p.amount,
		Currency: string(p.currency.Code()),
	}
}

// PriceFromSnapshot restores a Price from its wire form, re-running all
// construction invariants.
func PriceFromSnapshot(snapshot PriceSnapshot) (Price, error) {
	currency, err := CurrencyFromCode(CurrencyCode(snapshot.Currency))
	if err != nil {
		return Price{}, err
	}

	return NewPrice(snapshot.Amount, currency)
}

// LocationSnapshot is the wire/persistence form of a Location.
type LocationSnapshot struct {
	Address   string  `json:"address"`
	City      string  `json:"city,omitempty"`
	Country   string  `json:"country,omitempty"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// ToSnapshot converts the location to its wire form.
func (l Location) ToSnapshot() LocationSnapshot {
	return LocationSnapshot{
		Address:   l.address,
		City:      l.city,
		Country:   l.country,
		Latitude:  l.latitude,
		Longitude: l.longitude,
	}
}

// LocationFromSnapshot restores a Location from its wire form, re-running
// all construction invariants.
func LocationFromSnapshot(snapshot LocationSnapshot) (Location, error) {
	return NewLocation(snapshot.Address, snapshot.City, snapshot.Country,
		snapshot.Latitude, snapshot.Longitude)
}

// ContactInfoSnapshot is the wire/persistence form of ContactInfo.
type ContactInfoSnapshot struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
}

// ToSnapshot converts the contact info to its wire form.
func (c ContactInfo) ToSnapshot() ContactInfoSnapshot {
	return ContactInfoSnapshot{
		FirstName: c.firstName,
		LastName:  c.lastName,
		Email:     c.email,
		Phone:     c.phone,
	}
}

// ContactInfoFromSnapshot restores ContactInfo from its wire form.
func ContactInfoFromSnapshot(snapshot ContactInfoSnapshot) (ContactInfo, error) {
	return NewContactInfo(snapshot.FirstName, snapshot.LastName, snapshot.Email, snapshot.Phone)
}
