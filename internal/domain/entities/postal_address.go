package entities

// PostalAddress is what a postal-code (CEP) lookup resolves to.
type PostalAddress struct {
	ZipCode      string `json:"zipCode"`
	Street       string `json:"street"`
	Complement   string `json:"complement"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
}

// ParsedServiceRequest is the structured form of a free-text service request.
type ParsedServiceRequest struct {
	ServiceType string `json:"serviceType"`
	Notes       string `json:"notes"`
}
