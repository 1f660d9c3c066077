package entities

type UserRole string

const (
	UserRoleAdmin      UserRole = "Administrador"
	UserRoleTechnician UserRole = "Técnico"
)

type UserStatus string

const (
	UserStatusActive   UserStatus = "Ativo"
	UserStatusInactive UserStatus = "Inativo"
)

type UserOrganization struct {
	LegalName string `json:"razaoSocial" validate:"required"`
	CNPJ      string `json:"cnpj,omitempty"`
}

type UserIndividual struct {
	FullName           string `json:"nomeCompleto" validate:"required"`
	TechnicianIDNumber string `json:"technicianIdNumber,omitempty"`
	CPF                string `json:"cpf,omitempty"`
	RG                 string `json:"rg,omitempty"`
}

// User is an operator of the console (administrator or technician).
//
// The login credential is never part of the record; the store keeps it in a separate
// credential map keyed by Username.
type User struct {
	ID           string            `json:"id"`
	Type         PartyType         `json:"type"`
	Username     string            `json:"username,omitempty"`
	Email        string            `json:"email" validate:"omitempty,email"`
	Role         UserRole          `json:"role" validate:"oneof=Administrador Técnico"`
	Status       UserStatus        `json:"status"`
	Phone        string            `json:"phone,omitempty"`
	Organization *UserOrganization `json:"organization,omitempty"`
	Individual   *UserIndividual   `json:"individual,omitempty"`
}

func (u User) DisplayName() string {
	if u.Organization != nil && u.Organization.LegalName != "" {
		return u.Organization.LegalName
	}
	if u.Individual != nil && u.Individual.FullName != "" {
		return u.Individual.FullName
	}
	return u.Username
}

func (u User) Active() bool {
	return u.Status != UserStatusInactive
}

func (u User) Validate() error {
	name := ""
	if u.Organization != nil {
		name = u.Organization.LegalName
	} else if u.Individual != nil {
		name = u.Individual.FullName
	}
	if err := checkPartyShape(u.Type, u.Organization != nil, u.Individual != nil, name); err != nil {
		return err
	}
	return validate.Struct(u)
}

func (u User) Clone() User {
	out := u
	if u.Organization != nil {
		org := *u.Organization
		out.Organization = &org
	}
	if u.Individual != nil {
		ind := *u.Individual
		out.Individual = &ind
	}
	return out
}
