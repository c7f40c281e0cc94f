package umpires

// RoleHomePlate is the official role label for the umpire calling balls and strikes.
const RoleHomePlate = "Home Plate"

// Umpire identifies a home-plate umpire.
type Umpire struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
