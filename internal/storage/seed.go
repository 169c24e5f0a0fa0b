package storage

// Bootstrap administrator created by every store on first use so a
// fresh deployment has a working login.
const (
	SeedAdministratorEmail    = "administrador@teste.com"
	SeedAdministratorPassword = "123456"
)
