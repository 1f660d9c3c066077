package request

import (
	"fieldservice/internal/domain/entities"
)

type UserRequest struct {
	Type     string `json:"type" binding:"required"`
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
	Role     string `json:"role" binding:"required"`
	Phone    string `json:"phone"`

	RazaoSocial string `json:"razaoSocial"`
	CNPJ        string `json:"cnpj"`

	NomeCompleto       string `json:"nomeCompleto"`
	TechnicianIDNumber string `json:"technicianIdNumber"`
	CPF                string `json:"cpf"`
	RG                 string `json:"rg"`
}

// ToEntity returns the user record and, separately, the password for the credential map.
func (r UserRequest) ToEntity() (entities.User, string, error) {
	t, err := entities.ParsePartyType(r.Type)
	if err != nil {
		return entities.User{}, "", err
	}
	u := entities.User{
		Type:     t,
		Username: r.Username,
		Email:    r.Email,
		Role:     entities.UserRole(r.Role),
		Phone:    r.Phone,
	}
	if t == entities.PartyTypeOrganization {
		u.Organization = &entities.UserOrganization{LegalName: r.RazaoSocial, CNPJ: r.CNPJ}
	} else {
		u.Individual = &entities.UserIndividual{
			FullName:           r.NomeCompleto,
			TechnicianIDNumber: r.TechnicianIDNumber,
			CPF:                r.CPF,
			RG:                 r.RG,
		}
	}
	return u, r.Password, nil
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
