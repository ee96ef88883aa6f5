package model

// ToUser maps the creation input onto a new entity. The password is not copied;
// callers hash it into PasswordHash.
func (d UserForCreationDTO) ToUser() *User {
	return &User{
		Username:  d.Username,
		Phone:     d.Phone,
		FirstName: d.FirstName,
	}
}

// ApplyTo copies the mutable fields onto an existing entity
func (d UserForCreationDTO) ApplyTo(u *User) {
	u.Username = d.Username
	u.Phone = d.Phone
	u.FirstName = d.FirstName
}

// ToUserDTO projects an entity into its output shape
func ToUserDTO(u *User) *UserDTO {
	if u == nil {
		return nil
	}
	return &UserDTO{
		ID:        u.ID,
		Username:  u.Username,
		Phone:     u.Phone,
		FirstName: u.FirstName,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func ToUserDTOs(users []User) []UserDTO {
	out := make([]UserDTO, 0, len(users))
	for i := range users {
		out = append(out, *ToUserDTO(&users[i]))
	}
	return out
}
