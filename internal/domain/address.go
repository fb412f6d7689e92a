package domain

// Address is a delivery address stored on the user record.
type Address struct {
	ID       string `json:"id"`
	HouseNo  string `json:"houseNo,omitempty"`
	Street   string `json:"street,omitempty"`
	Locality string `json:"locality,omitempty"`
	Pincode  string `json:"pincode,omitempty"`
	City     string `json:"city,omitempty"`
	State    string `json:"state,omitempty"`
}
