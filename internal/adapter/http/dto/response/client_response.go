package response

import "fieldservice/internal/domain/entities"

// ClientResponse flattens a client back into the form layout. Fields of the other party
// type are omitted.
type ClientResponse struct {
	ID           string `json:"id"`
	Type         string `json:"type"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Street       string `json:"street"`
	Number       string `json:"number"`
	Complement   string `json:"complement"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
	ZipCode      string `json:"zipCode"`

	RazaoSocial        string `json:"razaoSocial,omitempty"`
	NomeFantasia       string `json:"nomeFantasia,omitempty"`
	CNPJ               string `json:"cnpj,omitempty"`
	InscricaoEstadual  string `json:"inscricaoEstadual,omitempty"`
	InscricaoMunicipal string `json:"inscricaoMunicipal,omitempty"`
	Site               string `json:"site,omitempty"`
	ContactName        string `json:"contactName,omitempty"`
	Phone              string `json:"phone,omitempty"`

	NomeCompleto        string `json:"nomeCompleto,omitempty"`
	DataNascimento      string `json:"dataNascimento,omitempty"`
	Sexo                string `json:"sexo,omitempty"`
	CPF                 string `json:"cpf,omitempty"`
	RG                  string `json:"rg,omitempty"`
	TelefoneResidencial string `json:"telefoneResidencial,omitempty"`
	TelefoneCelular     string `json:"telefoneCelular,omitempty"`
}

func FromClient(c entities.Client) ClientResponse {
	r := ClientResponse{
		ID:           c.ID,
		Type:         string(c.Type),
		Name:         c.DisplayName(),
		Email:        c.Email,
		Street:       c.Address.Street,
		Number:       c.Address.Number,
		Complement:   c.Address.Complement,
		Neighborhood: c.Address.Neighborhood,
		City:         c.Address.City,
		State:        c.Address.State,
		ZipCode:      c.Address.ZipCode,
	}
	if o := c.Organization; o != nil {
		r.RazaoSocial = o.LegalName
		r.NomeFantasia = o.TradeName
		r.CNPJ = o.CNPJ
		r.InscricaoEstadual = o.StateRegistration
		r.InscricaoMunicipal = o.MunicipalRegistration
		r.Site = o.Site
		r.ContactName = o.ContactName
		r.Phone = o.Phone
	}
	if i := c.Individual; i != nil {
		r.NomeCompleto = i.FullName
		r.DataNascimento = i.BirthDate
		r.Sexo = i.Sex
		r.CPF = i.CPF
		r.RG = i.RG
		r.TelefoneResidencial = i.HomePhone
		r.TelefoneCelular = i.MobilePhone
	}
	return r
}

func FromClients(cs []entities.Client) []ClientResponse {
	out := make([]ClientResponse, 0, len(cs))
	for _, c := range cs {
		out = append(out, FromClient(c))
	}
	return out
}
