package entity

import "time"

// User representa un usuario del sistema. ClubID es opcional: los roles de
// plataforma (SUPER_ADMIN, SUPPLIER) no pertenecen a ningún club.
type User struct {
	ID           string
	ClubID       string // vacío = usuario de plataforma, sin tenant
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         string // ver constantes Role* en module.go
	Status       string // active, inactive, suspended
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
