package dto

type LoginRequestDTO struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required"`
}

type LoginResponseDTO struct {
	Token    string `json:"token"`
	Username string `json:"username" example:"guildmaster"`
	Role     string `json:"role" example:"ADMIN"`
	PlayerID *int   `json:"player_id,omitempty" example:"7"`
}
