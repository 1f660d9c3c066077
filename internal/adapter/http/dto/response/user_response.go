package response

import "fieldservice/internal/domain/entities"

// UserResponse never carries a password; credentials live outside the record.
type UserResponse struct {
	ID       string `json:"id"`
	Type     string `json:"type"`
	Name     string `json:"name"`
	Username string `json:"username,omitempty"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Status   string `json:"status"`
	Phone    string `json:"phone,omitempty"`

	RazaoSocial string `json:"razaoSocial,omitempty"`
	CNPJ        string `json:"cnpj,omitempty"`

	NomeCompleto       string `json:"nomeCompleto,omitempty"`
	TechnicianIDNumber string `json:"technicianIdNumber,omitempty"`
	CPF                string `json:"cpf,omitempty"`
	RG                 string `json:"rg,omitempty"`
}

func FromUser(u entities.User) UserResponse {
	r := UserResponse{
		ID:       u.ID,
		Type:     string(u.Type),
		Name:     u.DisplayName(),
		Username: u.Username,
		Email:    u.Email,
		Role:     string(u.Role),
		Status:   string(u.Status),
		Phone:    u.Phone,
	}
	if o := u.Organization; o != nil {
		r.RazaoSocial = o.LegalName
		r.CNPJ = o.CNPJ
	}
	if i := u.Individual; i != nil {
		r.NomeCompleto = i.FullName
		r.TechnicianIDNumber = i.TechnicianIDNumber
		r.CPF = i.CPF
		r.RG = i.RG
	}
	return r
}

func FromUsers(us []entities.User) []UserResponse {
	out := make([]UserResponse, 0, len(us))
	for _, u := range us {
		out = append(out, FromUser(u))
	}
	return out
}
