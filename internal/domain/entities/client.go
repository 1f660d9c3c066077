package entities

// ClientOrganization is the pessoa jurídica payload of a Client.
type ClientOrganization struct {
	LegalName             string `json:"razaoSocial" validate:"required"`
	TradeName             string `json:"nomeFantasia,omitempty"`
	CNPJ                  string `json:"cnpj,omitempty"`
	StateRegistration     string `json:"inscricaoEstadual,omitempty"`
	MunicipalRegistration string `json:"inscricaoMunicipal,omitempty"`
	Site                  string `json:"site,omitempty"`
	ContactName           string `json:"contactName,omitempty"`
	Phone                 string `json:"phone,omitempty"`
}

// ClientIndividual is the pessoa física payload of a Client.
type ClientIndividual struct {
	FullName    string `json:"nomeCompleto" validate:"required"`
	BirthDate   string `json:"dataNascimento,omitempty"`
	Sex         string `json:"sexo,omitempty" validate:"omitempty,oneof=Masculino Feminino Outro"`
	CPF         string `json:"cpf,omitempty"`
	RG          string `json:"rg,omitempty"`
	MobilePhone string `json:"telefoneCelular,omitempty"`
	HomePhone   string `json:"telefoneResidencial,omitempty"`
}

// Client is a customer of the field-service business.
//
// Exactly one of Organization / Individual is set and it always matches Type.
// Clients are immutable once stored.
type Client struct {
	ID           string              `json:"id"`
	Type         PartyType           `json:"type"`
	Email        string              `json:"email" validate:"omitempty,email"`
	Address      Address             `json:"address"`
	Organization *ClientOrganization `json:"organization,omitempty"`
	Individual   *ClientIndividual   `json:"individual,omitempty"`
}

func NewOrganizationClient(email string, address Address, org ClientOrganization) Client {
	return Client{Type: PartyTypeOrganization, Email: email, Address: address, Organization: &org}
}

func NewIndividualClient(email string, address Address, ind ClientIndividual) Client {
	return Client{Type: PartyTypeIndividual, Email: email, Address: address, Individual: &ind}
}

// DisplayName returns the legal name, else the full name, else "".
func (c Client) DisplayName() string {
	if c.Organization != nil && c.Organization.LegalName != "" {
		return c.Organization.LegalName
	}
	if c.Individual != nil && c.Individual.FullName != "" {
		return c.Individual.FullName
	}
	return ""
}

// SnapshotName is the name denormalized into orders and quotes.
func (c Client) SnapshotName() string {
	if name := c.DisplayName(); name != "" {
		return name
	}
	return UnknownClientName
}

func (c Client) Validate() error {
	if err := checkPartyShape(c.Type, c.Organization != nil, c.Individual != nil, c.DisplayName()); err != nil {
		return err
	}
	return validate.Struct(c)
}

// Clone returns a copy that shares no pointers with c.
func (c Client) Clone() Client {
	out := c
	if c.Organization != nil {
		org := *c.Organization
		out.Organization = &org
	}
	if c.Individual != nil {
		ind := *c.Individual
		out.Individual = &ind
	}
	return out
}
