package request

import (
	"fieldservice/internal/domain/entities"
)

// AddressFields are the flat address fields shared by client payloads.
type AddressFields struct {
	Street       string `json:"street"`
	Number       string `json:"number"`
	Complement   string `json:"complement"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
	ZipCode      string `json:"zipCode"`
}

func (a AddressFields) ToEntity() entities.Address {
	return entities.Address{
		Street:       a.Street,
		Number:       a.Number,
		Complement:   a.Complement,
		Neighborhood: a.Neighborhood,
		City:         a.City,
		State:        a.State,
		ZipCode:      a.ZipCode,
	}
}

// ClientRequest is the flat client form: common fields plus the fields of one party type.
type ClientRequest struct {
	Type  string `json:"type" binding:"required"`
	Email string `json:"email"`
	AddressFields

	// pessoaJuridica
	RazaoSocial        string `json:"razaoSocial"`
	NomeFantasia       string `json:"nomeFantasia"`
	CNPJ               string `json:"cnpj"`
	InscricaoEstadual  string `json:"inscricaoEstadual"`
	InscricaoMunicipal string `json:"inscricaoMunicipal"`
	Site               string `json:"site"`
	ContactName        string `json:"contactName"`
	Phone              string `json:"phone"`

	// pessoaFisica
	NomeCompleto        string `json:"nomeCompleto"`
	DataNascimento      string `json:"dataNascimento"`
	Sexo                string `json:"sexo"`
	CPF                 string `json:"cpf"`
	RG                  string `json:"rg"`
	TelefoneResidencial string `json:"telefoneResidencial"`
	TelefoneCelular     string `json:"telefoneCelular"`
}

// ToEntity keeps only the fields that belong to the declared type.
func (r ClientRequest) ToEntity() (entities.Client, error) {
	t, err := entities.ParsePartyType(r.Type)
	if err != nil {
		return entities.Client{}, err
	}
	if t == entities.PartyTypeOrganization {
		return entities.NewOrganizationClient(r.Email, r.AddressFields.ToEntity(), entities.ClientOrganization{
			LegalName:             r.RazaoSocial,
			TradeName:             r.NomeFantasia,
			CNPJ:                  r.CNPJ,
			StateRegistration:     r.InscricaoEstadual,
			MunicipalRegistration: r.InscricaoMunicipal,
			Site:                  r.Site,
			ContactName:           r.ContactName,
			Phone:                 r.Phone,
		}), nil
	}
	return entities.NewIndividualClient(r.Email, r.AddressFields.ToEntity(), entities.ClientIndividual{
		FullName:    r.NomeCompleto,
		BirthDate:   r.DataNascimento,
		Sex:         r.Sexo,
		CPF:         r.CPF,
		RG:          r.RG,
		MobilePhone: r.TelefoneCelular,
		HomePhone:   r.TelefoneResidencial,
	}), nil
}
